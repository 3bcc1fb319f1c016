package cp

// equalConstraint enforces domain-consistent x == y. Grounded on
// constraint.py's Equal: bound propagation followed by a bidirectional
// value sweep using a shared scratch buffer sized to the larger domain.
//
// The scratch buffer is allocated fresh on every Propagate call rather
// than once at Post time and closed over by the WhenDomainChange
// callbacks — the source builds it outside the closures it registers
// but only ever reads it from inside Propagate, so re-allocating per
// call is the safe reading of that ambiguity and avoids a buffer sized
// for the domain as it was at Post time going stale.
type equalConstraint struct {
	baseConstraint
	x, y IntVar
}

func newEqual(x, y IntVar) *equalConstraint {
	c := &equalConstraint{x: x, y: y}
	c.baseConstraint = newBaseConstraint(x.Solver().StateManager())
	return c
}

func (c *equalConstraint) Post() error {
	if c.x.IsFixed() {
		return c.y.Fix(c.x.Min())
	}
	if c.y.IsFixed() {
		return c.x.Fix(c.y.Min())
	}
	if err := c.Propagate(); err != nil {
		return err
	}
	if c.IsActive() {
		c.x.WhenDomainChange(func() { c.x.Solver().Schedule(c) })
		c.y.WhenDomainChange(func() { c.x.Solver().Schedule(c) })
	}
	return nil
}

func (c *equalConstraint) Propagate() error {
	newMin := max(c.x.Min(), c.y.Min())
	newMax := min(c.x.Max(), c.y.Max())
	if err := c.x.RemoveBelow(newMin); err != nil {
		return err
	}
	if err := c.x.RemoveAbove(newMax); err != nil {
		return err
	}
	if err := c.y.RemoveBelow(newMin); err != nil {
		return err
	}
	if err := c.y.RemoveAbove(newMax); err != nil {
		return err
	}

	sz := c.x.Size()
	if c.y.Size() > sz {
		sz = c.y.Size()
	}
	buf := make([]int, sz)
	if err := c.pruneMissing(c.x, c.y, buf); err != nil {
		return err
	}
	if err := c.pruneMissing(c.y, c.x, buf); err != nil {
		return err
	}
	if c.x.IsFixed() && c.y.IsFixed() {
		c.SetActive(false)
	}
	return nil
}

// pruneMissing removes from a every value not present in b, enumerating
// a's domain into buf.
func (c *equalConstraint) pruneMissing(a, b IntVar, buf []int) error {
	n := a.FillArray(buf)
	for i := 0; i < n; i++ {
		v := buf[i]
		if !b.Contains(v) {
			if err := a.Remove(v); err != nil {
				return err
			}
		}
	}
	return nil
}
