package cp

import "fmt"

// Sequencer linearly considers a list of branching generators: one
// branching of the list runs when every previous one is exhausted
// (returns no alternatives). This lets compound strategies be layered.
func Sequencer(branchings []Branching) Branching {
	return func() []func() error {
		for _, b := range branchings {
			alts := b()
			if len(alts) != 0 {
				return alts
			}
		}
		return nil
	}
}

// limitedDiscrepancy wraps a branching so that the accumulated
// discrepancy (sum of non-leftmost choices from the root) along any
// explored path never exceeds maxDiscrepancy. curDiscrepancy is
// reversible so it unwinds with the search tree exactly like any other
// search-scoped state.
type limitedDiscrepancy struct {
	branching      Branching
	maxDiscrepancy int
	curDiscrepancy StateInt
}

// NewLimitedDiscrepancyBranching cuts off any path whose accumulated
// discrepancy exceeds maxDiscrepancy. Each alternative returned by
// branching is wrapped so that entering the alternative at position p
// increases the current discrepancy by p; alternatives that would
// exceed the limit are dropped (safe to stop at the first excluded
// position since discrepancy is non-decreasing in p).
func NewLimitedDiscrepancyBranching(sm StateManager, branching Branching, maxDiscrepancy int) (Branching, error) {
	if maxDiscrepancy < 0 {
		return nil, fmt.Errorf("%w: max discrepancy must be >= 0", ErrInvalidArgument)
	}
	ld := &limitedDiscrepancy{
		branching:      branching,
		maxDiscrepancy: maxDiscrepancy,
		curDiscrepancy: sm.MakeStateInt(0),
	}
	return ld.call, nil
}

func (ld *limitedDiscrepancy) call() []func() error {
	alts := ld.branching()
	if len(alts) == 0 {
		return nil
	}
	d := ld.curDiscrepancy.Value()
	kept := make([]func() error, 0, len(alts))
	for pos, alt := range alts {
		if d+pos > ld.maxDiscrepancy {
			break
		}
		p, a := pos, alt
		kept = append(kept, func() error {
			ld.curDiscrepancy.SetValue(d + p)
			return a()
		})
	}
	return kept
}

// FirstFail selects, among the variables with a domain larger than
// one, the one with the smallest domain (ties broken by first-in-list)
// and branches fixing it to its minimum value, then excluding that
// value.
func FirstFail(xs []IntVar) Branching {
	return func() []func() error {
		var sel IntVar
		for _, xi := range xs {
			if xi.Size() > 1 && (sel == nil || xi.Size() < sel.Size()) {
				sel = xi
			}
		}
		if sel == nil {
			return nil
		}
		v := sel.Min()
		left := func() error { return sel.Solver().Post(newFixValueConstraint(sel, v), true) }
		right := func() error { return sel.Solver().Post(newExcludeValueConstraint(sel, v), true) }
		return []func() error{left, right}
	}
}
