package cp

// lessOrEqualConstraint enforces bound-consistent x <= y. Grounded on
// constraint.py's LessOrEqual: tighten x's max to y's max and y's min
// to x's min, re-triggered on either side's bound change, deactivating
// once the two ranges can no longer cross.
type lessOrEqualConstraint struct {
	baseConstraint
	x, y IntVar
}

func newLessOrEqual(x, y IntVar) *lessOrEqualConstraint {
	c := &lessOrEqualConstraint{x: x, y: y}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *lessOrEqualConstraint) Post() error {
	if err := c.Propagate(); err != nil {
		return err
	}
	if c.IsActive() {
		c.x.WhenBoundChange(func() { c.x.Solver().Schedule(c) })
		c.y.WhenBoundChange(func() { c.x.Solver().Schedule(c) })
	}
	return nil
}

func (c *lessOrEqualConstraint) Propagate() error {
	if err := c.x.RemoveAbove(c.y.Max()); err != nil {
		return err
	}
	if err := c.y.RemoveBelow(c.x.Min()); err != nil {
		return err
	}
	if c.x.Max() <= c.y.Min() {
		c.SetActive(false)
	}
	return nil
}
