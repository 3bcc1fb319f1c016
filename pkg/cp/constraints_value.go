package cp

// fixValueConstraint and excludeValueConstraint back the single-variable
// forms of the equal/not_equal factory functions (equal(x, v) and
// not_equal(x, v)): tiny, never-rescheduled constraints whose entire
// effect happens in Post.

type fixValueConstraint struct {
	baseConstraint
	x IntVar
	v int
}

func newFixValueConstraint(x IntVar, v int) *fixValueConstraint {
	c := &fixValueConstraint{x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *fixValueConstraint) Post() error      { return c.x.Fix(c.v) }
func (c *fixValueConstraint) Propagate() error { return nil }

type excludeValueConstraint struct {
	baseConstraint
	x IntVar
	v int
}

func newExcludeValueConstraint(x IntVar, v int) *excludeValueConstraint {
	c := &excludeValueConstraint{x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *excludeValueConstraint) Post() error      { return c.x.Remove(c.v) }
func (c *excludeValueConstraint) Propagate() error { return nil }

// leValueConstraint and geValueConstraint back less_or_equal(x, v) and
// larger_or_equal(x, v).

type leValueConstraint struct {
	baseConstraint
	x IntVar
	v int
}

func newLEValueConstraint(x IntVar, v int) *leValueConstraint {
	c := &leValueConstraint{x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *leValueConstraint) Post() error      { return c.x.RemoveAbove(c.v) }
func (c *leValueConstraint) Propagate() error { return nil }

type geValueConstraint struct {
	baseConstraint
	x IntVar
	v int
}

func newGEValueConstraint(x IntVar, v int) *geValueConstraint {
	c := &geValueConstraint{x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *geValueConstraint) Post() error      { return c.x.RemoveBelow(c.v) }
func (c *geValueConstraint) Propagate() error { return nil }
