package regexlib

// StateID addresses one nfaState within a Program's arena. Using integer
// IDs rather than *nfaState pointers lets a quantifier's back edges form
// arbitrary cycles without reference-count cycles — the arena owns every
// state and is released as a unit when the Program is dropped, per
// spec §3's recommended strategy.
type StateID int

type nfaState struct {
	isStart    bool
	isTerminal bool
	trans      map[rune][]StateID // character-consuming edges
	eps        []StateID          // epsilon transitions
}

// Program is a compiled NFA: an arena of states plus the two endpoints
// of the outermost fragment. It is immutable after Compile returns and
// therefore safe for concurrent read access from multiple goroutines —
// Simulate never mutates it.
type Program struct {
	states []nfaState
	Start  StateID
	Accept StateID
}

func newArena() *Program { return &Program{} }

func (p *Program) newState() StateID {
	id := StateID(len(p.states))
	p.states = append(p.states, nfaState{trans: make(map[rune][]StateID)})
	return id
}

func (p *Program) addEpsilon(from, to StateID) {
	s := &p.states[from]
	s.eps = append(s.eps, to)
}

func (p *Program) addTrans(from StateID, c rune, to StateID) {
	s := &p.states[from]
	s.trans[c] = append(s.trans[c], to)
}

// fragment is exactly spec §4.2's Thompson fragment: one entry state and
// one exit state, never more, never fewer.
type fragment struct {
	start, end StateID
}

// buildProgram performs Thompson construction over tokens — the
// concatenation sequence that is the AST root — and marks the outermost
// fragment's entry/exit as start/terminal. It is total: a well-formed
// AST never fails to compile.
func buildProgram(tokens []Token) *Program {
	p := newArena()
	frag := compileSeq(p, tokens)
	p.states[frag.start].isStart = true
	p.states[frag.end].isTerminal = true
	p.Start = frag.start
	p.Accept = frag.end
	return p
}

// compileSeq concatenates the fragments of a token sequence: entry of the
// whole is s1, exit is e_k, with epsilon edges chaining e_i to s_{i+1}.
func compileSeq(p *Program, seq []Token) fragment {
	if len(seq) == 0 {
		s := p.newState()
		e := p.newState()
		p.addEpsilon(s, e)
		return fragment{s, e}
	}
	first := compileToken(p, seq[0])
	cur := first
	for _, tok := range seq[1:] {
		next := compileToken(p, tok)
		p.addEpsilon(cur.end, next.start)
		cur = next
	}
	return fragment{first.start, cur.end}
}

func compileToken(p *Program, tok Token) fragment {
	switch tok.Kind {
	case KindLiteral:
		s := p.newState()
		e := p.newState()
		p.addTrans(s, tok.Literal, e)
		return fragment{s, e}

	case KindBracket:
		s := p.newState()
		e := p.newState()
		for _, c := range tok.Bracket {
			p.addTrans(s, c, e)
		}
		return fragment{s, e}

	case KindGroup:
		return compileSeq(p, tok.Group)

	case KindOr:
		s := p.newState()
		e := p.newState()
		left := compileSeq(p, tok.OrLeft)
		right := compileSeq(p, tok.OrRight)
		p.addEpsilon(s, left.start)
		p.addEpsilon(s, right.start)
		p.addEpsilon(left.end, e)
		p.addEpsilon(right.end, e)
		return fragment{s, e}

	case KindRepeat:
		return compileRepeat(p, tok)

	default:
		panic("regexlib: unknown token kind")
	}
}

// compileRepeat implements spec §4.2's Repeat expansion table. A fresh
// fragment is instantiated per occurrence: sharing one compiled inner
// fragment across repetitions would introduce a spurious back edge into
// the first occurrence and corrupt the language.
func compileRepeat(p *Program, tok Token) fragment {
	inner := *tok.Inner
	min, max := tok.Min, tok.Max

	switch {
	case min == 0 && max == 0:
		s := p.newState()
		e := p.newState()
		p.addEpsilon(s, e)
		return fragment{s, e}

	case min == 0 && max == maxRepeat: // Kleene star
		s := p.newState()
		e := p.newState()
		i := compileToken(p, inner)
		p.addEpsilon(s, i.start)
		p.addEpsilon(s, e)
		p.addEpsilon(i.end, i.start)
		p.addEpsilon(i.end, e)
		return fragment{s, e}

	case min == 1 && max == maxRepeat: // one-or-more
		i := compileToken(p, inner)
		p.addEpsilon(i.end, i.start)
		return fragment{i.start, i.end}

	case min == 0 && max == 1: // optional
		s := p.newState()
		e := p.newState()
		i := compileToken(p, inner)
		p.addEpsilon(s, i.start)
		p.addEpsilon(s, e)
		p.addEpsilon(i.end, e)
		return fragment{s, e}

	default:
		return compileRepeatChain(p, inner, min, max)
	}
}

// compileRepeatChain handles every Repeat not covered by the four special
// cases above: min mandatory copies concatenated, then either an
// unbounded Kleene tail (max == ∞) or a chain of optional copies up to
// max, exactly as spec §4.2 describes.
func compileRepeatChain(p *Program, inner Token, min, max uint32) fragment {
	s := p.newState()
	cursor := s
	for i := uint32(0); i < min; i++ {
		cp := compileToken(p, inner)
		p.addEpsilon(cursor, cp.start)
		cursor = cp.end
	}

	e := p.newState()
	if max == maxRepeat {
		cp := compileToken(p, inner)
		p.addEpsilon(cursor, cp.start)
		p.addEpsilon(cp.end, cp.start)
		p.addEpsilon(cp.end, e)
		p.addEpsilon(cursor, e)
		return fragment{s, e}
	}

	for i := min; i < max; i++ {
		cp := compileToken(p, inner)
		p.addEpsilon(cursor, cp.start)
		next := p.newState()
		p.addEpsilon(cursor, next)
		p.addEpsilon(cp.end, next)
		cursor = next
	}
	p.addEpsilon(cursor, e)
	return fragment{s, e}
}
