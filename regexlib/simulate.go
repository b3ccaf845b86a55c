package regexlib

import (
	"context"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
)

// closureScratch bundles the two containers one Simulate call needs to
// track its current state set: a worklist and the set being built from
// it. Pooled because a compiled Program is typically matched against
// many inputs, and each call would otherwise allocate both afresh.
type closureScratch struct {
	set   *hashset.Set
	stack *arraystack.Stack
}

var (
	scratchCtx  = context.Background()
	scratchPool *pool.ObjectPool
)

func init() {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &closureScratch{set: hashset.New(), stack: arraystack.New()}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unbounded: never blocks a concurrent Simulate call
	config.BlockWhenExhausted = false
	scratchPool = pool.NewObjectPool(scratchCtx, factory, config)
}

func borrowScratch() *closureScratch {
	o, err := scratchPool.BorrowObject(scratchCtx)
	if err != nil {
		// Pool exhaustion is disabled (MaxTotal=-1); this only fires if
		// the factory itself errors, which it never does. Fall back to
		// a fresh scratch rather than propagate an error Simulate's
		// signature has no room for.
		return &closureScratch{set: hashset.New(), stack: arraystack.New()}
	}
	return o.(*closureScratch)
}

func releaseScratch(s *closureScratch) {
	s.set.Clear()
	s.stack.Clear()
	_ = scratchPool.ReturnObject(scratchCtx, s)
}

// epsilonClosure returns the smallest superset of seeds closed under
// epsilon transitions, per spec §4.3. Deduplication by state identity
// (the hashset) guarantees termination on epsilon cycles.
func epsilonClosure(prog *Program, seeds []StateID, scratch *closureScratch) []StateID {
	scratch.set.Clear()
	scratch.stack.Clear()

	for _, s := range seeds {
		if !scratch.set.Contains(s) {
			scratch.set.Add(s)
			scratch.stack.Push(s)
		}
	}
	for !scratch.stack.Empty() {
		v, _ := scratch.stack.Pop()
		id := v.(StateID)
		for _, to := range prog.states[id].eps {
			if !scratch.set.Contains(to) {
				scratch.set.Add(to)
				scratch.stack.Push(to)
			}
		}
	}

	vals := scratch.set.Values()
	ids := make([]StateID, len(vals))
	for i, v := range vals {
		ids[i] = v.(StateID)
	}
	return ids
}

// Simulate returns true iff prog accepts input in full: iterative subset
// simulation over epsilon-closures, per spec §4.3. O(|states| * |input|)
// time, O(|states|) space, no backtracking.
func Simulate(prog *Program, input string) bool {
	scratch := borrowScratch()
	defer releaseScratch(scratch)

	current := epsilonClosure(prog, []StateID{prog.Start}, scratch)

	for _, c := range input {
		var frontier []StateID
		for _, id := range current {
			frontier = append(frontier, prog.states[id].trans[c]...)
		}
		if len(frontier) == 0 {
			return false
		}
		current = epsilonClosure(prog, frontier, scratch)
	}

	for _, id := range current {
		if prog.states[id].isTerminal {
			return true
		}
	}
	return false
}
