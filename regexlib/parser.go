package regexlib

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// parser implements the recursive-descent grammar from spec §4.1:
//
//	regex      := expression EOF
//	expression := term ('|' term)*
//	term       := factor*
//	factor     := atom quantifier?
//	atom       := LITERAL | '(' expression ')' | '[' char_set ']'
//	quantifier := '*' | '+' | '?' | '{' count_spec '}'
type parser struct {
	lex     *lexer
	look    token
	pattern string
}

// Parse consumes pattern in its entirety and produces a sequence of
// top-level tokens — the AST root is a list, not a single Token.
func Parse(pattern string) ([]Token, error) {
	p := &parser{lex: newLexer(pattern), pattern: pattern}
	p.scan()

	seq, err := p.parseExpression(noStop)
	if err != nil {
		return nil, err
	}
	// parseExpression(noStop) only returns once parseTerm has consumed
	// every token up to EOF or surfaced an error: every token type that
	// could appear here is either absorbed by parseFactor or rejected as
	// UnexpectedCharacter first. So p.look.typ is always tEOF at this
	// point, and TrailingInput can never actually be produced by this
	// grammar — it is kept in the taxonomy for a future grammar
	// extension (e.g. a top-level stop token) that would need it.
	if p.look.typ != tEOF {
		return nil, newParseError(pattern, TrailingInput, p.look.pos, "unexpected trailing input after a complete pattern")
	}
	return seq, nil
}

func (p *parser) scan() { p.look = p.lex.next() }

func noStop(tokenType) bool     { return false }
func isRParen(t tokenType) bool { return t == tRParen }

// parseExpression implements term ('|' term)*, stopping when the current
// token satisfies stop or the pattern ends. '|' left-associates; an
// empty operand on either side is an error.
func (p *parser) parseExpression(stop func(tokenType) bool) ([]Token, error) {
	left, err := p.parseTerm(stop)
	if err != nil {
		return nil, err
	}
	for p.look.typ == tUnion {
		if len(left) == 0 {
			return nil, newParseError(p.pattern, EmptyAlternationOperand, p.look.pos, "'|' with no expression before it")
		}
		unionPos := p.look.pos
		p.scan() // consume '|'

		right, err := p.parseTerm(stop)
		if err != nil {
			return nil, err
		}
		if len(right) == 0 {
			return nil, newParseError(p.pattern, EmptyAlternationOperand, unionPos, "'|' with no expression after it")
		}
		left = []Token{orToken(left, right)}
	}
	return left, nil
}

// parseTerm implements factor*, the implicit concatenation of factors.
func (p *parser) parseTerm(stop func(tokenType) bool) ([]Token, error) {
	var seq []Token
	for p.look.typ != tEOF && p.look.typ != tUnion && !stop(p.look.typ) {
		tok, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		seq = append(seq, tok)
	}
	return seq, nil
}

// parseFactor implements atom quantifier?.
func (p *parser) parseFactor() (Token, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return Token{}, err
	}
	return p.parseQuantifier(atom)
}

// parseAtom implements LITERAL | '(' expression ')' | '[' char_set ']'.
// Disallowed atoms are exactly ) * + ? { | — with no escapes in this
// dialect, ']', '}', and ',' have no other way to appear as literals
// outside their special contexts, so they fall through to plain
// literal tokens here rather than raising UnexpectedCharacter.
func (p *parser) parseAtom() (Token, error) {
	switch p.look.typ {
	case tChar:
		r := p.look.ch
		p.scan()
		return literalToken(r), nil

	case tLParen:
		groupPos := p.look.pos
		p.scan()
		inner, err := p.parseExpression(isRParen)
		if err != nil {
			return Token{}, err
		}
		if p.look.typ != tRParen {
			return Token{}, newParseError(p.pattern, UnterminatedGroup, groupPos, "missing closing ')'")
		}
		p.scan()
		return groupToken(inner), nil

	case tLBracket:
		bracketPos := p.look.pos
		// The lexer's raw cursor already sits just past '[' — the class
		// body is scanned rune-by-rune, bypassing metacharacter
		// classification, since every rune but '-' and ']' is literal
		// here.
		set, err := p.parseCharClass(bracketPos)
		if err != nil {
			return Token{}, err
		}
		p.scan() // resync p.look to whatever follows ']'
		return bracketToken(set), nil

	case tRBracket:
		p.scan()
		return literalToken(']'), nil

	case tRBrace:
		p.scan()
		return literalToken('}'), nil

	case tComma:
		p.scan()
		return literalToken(','), nil

	case tEOF:
		return Token{}, newParseError(p.pattern, UnexpectedCharacter, p.look.pos, "unexpected end of pattern where an atom was expected")

	default:
		return Token{}, newParseError(p.pattern, UnexpectedCharacter, p.look.pos, "unexpected character where an atom was expected")
	}
}

// parseQuantifier implements the optional '*' | '+' | '?' | '{' count_spec '}'.
func (p *parser) parseQuantifier(atom Token) (Token, error) {
	switch p.look.typ {
	case tStar:
		p.scan()
		return repeatToken(0, maxRepeat, atom), nil
	case tPlus:
		p.scan()
		return repeatToken(1, maxRepeat, atom), nil
	case tQMark:
		p.scan()
		return repeatToken(0, 1, atom), nil
	case tLBrace:
		bracePos := p.look.pos
		p.scan()
		min, max, err := p.parseCountSpec(bracePos)
		if err != nil {
			return Token{}, err
		}
		return repeatToken(min, max, atom), nil
	default:
		return atom, nil
	}
}

// parseCountSpec implements count_spec, the body of a '{'...'}' quantifier:
//
//	count_spec := DIGITS | DIGITS ',' | DIGITS ',' DIGITS | ',' DIGITS
func (p *parser) parseCountSpec(bracePos int) (uint32, uint32, error) {
	first, sawFirst := p.scanDigits()

	if p.look.typ == tRBrace {
		p.scan()
		if !sawFirst {
			return 0, 0, newParseError(p.pattern, EmptyQuantifier, bracePos, "'{}' has no count")
		}
		return first, first, nil
	}
	if p.look.typ != tComma {
		return 0, 0, p.quantifierError(bracePos)
	}
	p.scan() // consume ','

	second, sawSecond := p.scanDigits()
	if p.look.typ != tRBrace {
		return 0, 0, p.quantifierError(bracePos)
	}
	p.scan()

	switch {
	case !sawFirst && !sawSecond:
		return 0, 0, newParseError(p.pattern, EmptyQuantifier, bracePos, "'{,}' has no bounds")
	case !sawFirst:
		return 0, second, nil // {,n}
	case !sawSecond:
		return first, maxRepeat, nil // {m,}
	default:
		if first > second {
			return 0, 0, newParseError(p.pattern, InvalidQuantifierRange, bracePos, fmt.Sprintf("{%d,%d}: min exceeds max", first, second))
		}
		return first, second, nil
	}
}

// scanDigits consumes a (possibly empty) run of decimal digit tokens.
func (p *parser) scanDigits() (uint32, bool) {
	var n uint64
	saw := false
	for p.look.typ == tChar && p.look.ch >= '0' && p.look.ch <= '9' {
		saw = true
		n = n*10 + uint64(p.look.ch-'0')
		if n >= uint64(maxRepeat) {
			n = uint64(maxRepeat - 1)
		}
		p.scan()
	}
	return uint32(n), saw
}

// quantifierError classifies whatever stopped scanDigits/the comma check:
// end-of-pattern means the brace was never closed, anything else means
// the body held something other than digits and a single comma.
func (p *parser) quantifierError(bracePos int) error {
	if p.look.typ == tEOF {
		return newParseError(p.pattern, UnterminatedQuantifier, bracePos, "missing closing '}'")
	}
	return newParseError(p.pattern, MalformedQuantifier, p.look.pos, "quantifier body must be digits and at most one ','")
}

// parseCharClass implements char_set, the body of a '['...']' bracket
// expression. It operates on the lexer's raw rune cursor rather than
// classified tokens, because every character here is a literal except
// '-' in range position and the closing ']'.
//
// At each position, if the next three characters are X '-' Y (with
// Y != ']'), they expand to the inclusive range [X..Y] and the cursor
// advances past all three; otherwise the single character is added.
func (p *parser) parseCharClass(bracketPos int) ([]rune, error) {
	var runes []rune
	for {
		r, ok := p.lex.peekRune()
		if !ok {
			return nil, newParseError(p.pattern, UnterminatedCharClass, bracketPos, "missing closing ']'")
		}
		if r == ']' {
			p.lex.advanceRune()
			break
		}
		start, _ := p.lex.advanceRune()

		if dash, ok := p.lex.peekRune(); ok && dash == '-' {
			saved := p.lex.savePos()
			p.lex.advanceRune() // tentatively consume '-'
			if end, ok2 := p.lex.peekRune(); ok2 && end != ']' {
				p.lex.advanceRune() // consume the range's end character
				if start > end {
					return nil, newParseError(p.pattern, InvalidRange, bracketPos, fmt.Sprintf("range %q-%q has start greater than end", start, end))
				}
				for c := start; c <= end; c++ {
					runes = append(runes, c)
				}
				continue
			}
			// '-' isn't part of a range (trailing hyphen, or pattern
			// ends right after it) — it's a literal, handled next
			// iteration.
			p.lex.restorePos(saved)
		}
		runes = append(runes, start)
	}

	if len(runes) == 0 {
		return nil, newParseError(p.pattern, EmptyCharClass, bracketPos, "'[]' matches nothing")
	}
	return dedupRunes(runes), nil
}

func dedupRunes(rs []rune) []rune {
	out := append([]rune(nil), rs...)
	slices.Sort(out)
	return slices.Compact(out)
}
