package cp

import "fmt"

// allDifferentBinary enforces pairwise distinctness by decomposing into
// n*(n-1)/2 notEqualConstraint posts, mirroring constraint.py's
// AllDifferentBinary (the weaker, non-domain-consistent all_different
// the reference factory builds by default). The decomposition is the
// entire effect: once posted, this constraint itself never propagates
// again.
type allDifferentBinary struct {
	baseConstraint
	xs []IntVar
}

func newAllDifferentBinary(xs []IntVar) (*allDifferentBinary, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: all_different requires at least one variable", ErrInvalidArgument)
	}
	c := &allDifferentBinary{xs: xs}
	c.baseConstraint = newBaseConstraint(xs[0].Solver().StateManager())
	return c, nil
}

func (c *allDifferentBinary) Post() error {
	s := c.xs[0].Solver()
	for i := 0; i < len(c.xs); i++ {
		for j := i + 1; j < len(c.xs); j++ {
			if err := s.Post(newNotEqual(c.xs[i], c.xs[j], 0), false); err != nil {
				return err
			}
		}
	}
	c.SetActive(false)
	return nil
}

func (c *allDifferentBinary) Propagate() error { return nil }
