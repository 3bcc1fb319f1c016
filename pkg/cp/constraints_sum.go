package cp

import "fmt"

// sumConstraint enforces sum(xs) == 0 — the public factory adds a
// synthetic -y or constant -v term to xs so that any linear equality
// reduces to this shape, mirroring constraint.py's Sum. A reversible
// prefix partition (order, nFixed) separates already-fixed terms, whose
// contribution is cached in sumFixed, from the rest; each Propagate
// call first advances the partition, then recomputes global bounds,
// then tightens every still-unfixed term against those bounds.
type sumConstraint struct {
	baseConstraint
	xs       []IntVar
	order    []int
	nFixed   StateInt
	sumFixed StateInt
}

func newSum(xs []IntVar) (*sumConstraint, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: sum requires at least one term", ErrInvalidArgument)
	}
	var sumMin, sumMax int64
	for _, x := range xs {
		sumMin += int64(x.Min())
		sumMax += int64(x.Max())
	}
	if sumMin <= minValue || sumMax >= maxValue {
		return nil, fmt.Errorf("%w: sum bounds exceed the 32-bit signed range", ErrOverflow)
	}
	sm := xs[0].Solver().StateManager()
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	c := &sumConstraint{
		xs:       xs,
		order:    order,
		nFixed:   sm.MakeStateInt(0),
		sumFixed: sm.MakeStateInt(0),
	}
	c.baseConstraint = newBaseConstraint(sm)
	return c, nil
}

func (c *sumConstraint) Post() error {
	for _, x := range c.xs {
		x := x
		x.WhenBoundChange(func() { x.Solver().Schedule(c) })
	}
	return c.Propagate()
}

func (c *sumConstraint) Propagate() error {
	nFixed := c.nFixed.Value()
	sumFixed := c.sumFixed.Value()

	for i := nFixed; i < len(c.order); i++ {
		idx := c.order[i]
		if c.xs[idx].IsFixed() {
			c.order[i], c.order[nFixed] = c.order[nFixed], c.order[i]
			sumFixed += c.xs[idx].Min()
			nFixed++
		}
	}
	c.nFixed.SetValue(nFixed)
	c.sumFixed.SetValue(sumFixed)

	sumMin, sumMax := sumFixed, sumFixed
	for i := nFixed; i < len(c.order); i++ {
		x := c.xs[c.order[i]]
		sumMin += x.Min()
		sumMax += x.Max()
	}

	if sumMin > 0 || sumMax < 0 {
		return ErrInconsistency
	}

	for i := nFixed; i < len(c.order); i++ {
		x := c.xs[c.order[i]]
		if err := x.RemoveBelow(x.Max() - sumMax); err != nil {
			return err
		}
		if err := x.RemoveAbove(x.Min() - sumMin); err != nil {
			return err
		}
	}
	if nFixed == len(c.order) {
		c.SetActive(false)
	}
	return nil
}
