package cp

// isEqualConstraint reifies b <-> (x == v). Grounded on constraint.py's
// IsEqual: a four-way switch covering both propagation directions
// (b fixed implies a domain change on x; x settling the question
// implies fixing b), any one of which entails the constraint.
type isEqualConstraint struct {
	baseConstraint
	b BoolVar
	x IntVar
	v int
}

func newIsEqual(b BoolVar, x IntVar, v int) *isEqualConstraint {
	c := &isEqualConstraint{b: b, x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *isEqualConstraint) Post() error {
	if err := c.Propagate(); err != nil {
		return err
	}
	if c.IsActive() {
		c.b.WhenFixed(func() { c.x.Solver().Schedule(c) })
		c.x.WhenDomainChange(func() { c.x.Solver().Schedule(c) })
	}
	return nil
}

func (c *isEqualConstraint) Propagate() error {
	switch {
	case c.b.IsTrue():
		if err := c.x.Fix(c.v); err != nil {
			return err
		}
		c.SetActive(false)
	case c.b.IsFalse():
		if err := c.x.Remove(c.v); err != nil {
			return err
		}
		c.SetActive(false)
	case !c.x.Contains(c.v):
		if err := c.b.FixBool(false); err != nil {
			return err
		}
		c.SetActive(false)
	case c.x.IsFixed() && c.x.Min() == c.v:
		if err := c.b.FixBool(true); err != nil {
			return err
		}
		c.SetActive(false)
	}
	return nil
}

// isLessOrEqualConstraint reifies b <-> (x <= v). Symmetric to
// isEqualConstraint with inequalities over x's bounds in place of
// domain membership.
type isLessOrEqualConstraint struct {
	baseConstraint
	b BoolVar
	x IntVar
	v int
}

func newIsLessOrEqual(b BoolVar, x IntVar, v int) *isLessOrEqualConstraint {
	c := &isLessOrEqualConstraint{b: b, x: x, v: v}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *isLessOrEqualConstraint) Post() error {
	if err := c.Propagate(); err != nil {
		return err
	}
	if c.IsActive() {
		c.b.WhenFixed(func() { c.x.Solver().Schedule(c) })
		c.x.WhenBoundChange(func() { c.x.Solver().Schedule(c) })
	}
	return nil
}

func (c *isLessOrEqualConstraint) Propagate() error {
	switch {
	case c.b.IsTrue():
		if err := c.x.RemoveAbove(c.v); err != nil {
			return err
		}
		c.SetActive(false)
	case c.b.IsFalse():
		if err := c.x.RemoveBelow(c.v + 1); err != nil {
			return err
		}
		c.SetActive(false)
	case c.x.Max() <= c.v:
		if err := c.b.FixBool(true); err != nil {
			return err
		}
		c.SetActive(false)
	case c.x.Min() > c.v:
		if err := c.b.FixBool(false); err != nil {
			return err
		}
		c.SetActive(false)
	}
	return nil
}
