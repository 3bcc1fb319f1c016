package cp

import "fmt"

const (
	maxValue = 2147483647
	minValue = -2147483648
)

// IntVar is a variable owning an integer domain. Its mutators
// (Remove, Fix, RemoveBelow, RemoveAbove) delegate to the domain and
// translate domain events into scheduling the constraints subscribed
// on the corresponding event stack into the owning solver's
// propagation queue.
type IntVar interface {
	Solver() Solver
	Min() int
	Max() int
	Size() int
	Contains(v int) bool
	IsFixed() bool

	Remove(v int) error
	Fix(v int) error
	RemoveBelow(v int) error
	RemoveAbove(v int) error
	FillArray(dest []int) int

	// WhenFixed/WhenBoundChange/WhenDomainChange register a closure,
	// wrapped as a constraint, posted with enforceFixPoint=false. A
	// view forwards these to its backing variable unchanged, so an
	// event on x also fires for any view of x.
	WhenFixed(f func())
	WhenBoundChange(f func())
	WhenDomainChange(f func())

	onDomainChange(c Constraint)
	onFixed(c Constraint)
	onBoundChange(c Constraint)

	String() string
}

// varListener adapts DomainListener into the scheduling behavior an
// IntVar needs: Empty reports inconsistency to the caller of the
// mutator that triggered it; the rest schedule the relevant
// subscriber stack into the solver's propagation queue.
type varListener struct {
	v       *intVarImpl
	isEmpty bool
}

func (l *varListener) reset()     { l.isEmpty = false }
func (l *varListener) Empty()     { l.isEmpty = true }
func (l *varListener) Fix()       { l.v.scheduleAll(l.v.onFix) }
func (l *varListener) Change()    { l.v.scheduleAll(l.v.onDomain) }
func (l *varListener) ChangeMin() { l.v.scheduleAll(l.v.onBound) }
func (l *varListener) ChangeMax() { l.v.scheduleAll(l.v.onBound) }

// intVarImpl is the base IntVar implementation: a solver reference, a
// domain, and three reversible subscriber stacks (onDomain, onFix,
// onBound).
type intVarImpl struct {
	solver   Solver
	dom      *SparseSetDomain
	onDomain *constraintStack
	onFix    *constraintStack
	onBound  *constraintStack
	listener *varListener
}

// IntVarSpec selects exactly one way to build a variable's initial
// domain: {Min,Max}, {Size}, or {Values}.
type IntVarSpec struct {
	Min, Max *int
	Size     *int
	Values   []int
}

// NewIntVar creates a variable from exactly one of spec's three
// mutually-exclusive shapes, mirroring the ambiguous constructor of
// the reference factory (make_int_var). Passing more than one, or
// none, is a programmer error.
func NewIntVar(s Solver, spec IntVarSpec) (IntVar, error) {
	switch {
	case spec.Size != nil && spec.Min == nil && spec.Max == nil && spec.Values == nil:
		return NewIntVarSize(s, *spec.Size)
	case spec.Min != nil && spec.Max != nil && spec.Size == nil && spec.Values == nil:
		return NewIntVarRange(s, *spec.Min, *spec.Max)
	case spec.Values != nil && spec.Min == nil && spec.Max == nil && spec.Size == nil:
		return NewIntVarValues(s, spec.Values)
	default:
		return nil, fmt.Errorf("%w: exactly one of {min,max}, {size} or {values} must be set", ErrInvalidArgument)
	}
}

// NewIntVarRange creates a variable with domain [min, max].
func NewIntVarRange(s Solver, min, max int) (IntVar, error) {
	if min == minValue {
		return nil, fmt.Errorf("%w: min == MIN_VALUE is rejected", ErrOverflow)
	}
	if max == maxValue {
		return nil, fmt.Errorf("%w: max == MAX_VALUE is rejected", ErrOverflow)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min (%d) > max (%d)", ErrInvalidArgument, min, max)
	}
	sm := s.StateManager()
	v := &intVarImpl{
		solver:   s,
		dom:      NewSparseSetDomain(sm, min, max),
		onDomain: newConstraintStack(sm),
		onFix:    newConstraintStack(sm),
		onBound:  newConstraintStack(sm),
	}
	v.listener = &varListener{v: v}
	s.registerVariable(v)
	return v, nil
}

// NewIntVarSize creates a variable with domain {0, ..., sz-1}.
func NewIntVarSize(s Solver, sz int) (IntVar, error) {
	if sz <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidArgument)
	}
	return NewIntVarRange(s, 0, sz-1)
}

// NewIntVarValues creates a variable whose domain is exactly the given
// set of values. The set must be non-empty; values are deduplicated
// over the covering [min,max] range via the listener passed to Remove
// (no event subscribers exist yet at construction time, so a no-op
// listener is used).
func NewIntVarValues(s Solver, values []int) (IntVar, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: values must be non-empty", ErrInvalidArgument)
	}
	min, max := values[0], values[0]
	present := make(map[int]bool, len(values))
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		present[v] = true
	}
	iv, err := NewIntVarRange(s, min, max)
	if err != nil {
		return nil, err
	}
	impl := iv.(*intVarImpl)
	impl.listener.reset()
	for v := min; v <= max; v++ {
		if !present[v] {
			impl.dom.Remove(v, noopListener{})
		}
	}
	return iv, nil
}

type noopListener struct{}

func (noopListener) Empty()     {}
func (noopListener) Fix()       {}
func (noopListener) Change()    {}
func (noopListener) ChangeMin() {}
func (noopListener) ChangeMax() {}

func (v *intVarImpl) Solver() Solver { return v.solver }
func (v *intVarImpl) Min() int       { return v.dom.Min() }
func (v *intVarImpl) Max() int       { return v.dom.Max() }
func (v *intVarImpl) Size() int      { return v.dom.Size() }
func (v *intVarImpl) Contains(val int) bool { return v.dom.Contains(val) }
func (v *intVarImpl) IsFixed() bool  { return v.dom.Size() == 1 }

func (v *intVarImpl) scheduleAll(stack *constraintStack) {
	stack.forEach(func(c Constraint) { v.solver.Schedule(c) })
}

func (v *intVarImpl) Remove(val int) error {
	v.listener.reset()
	v.dom.Remove(val, v.listener)
	if v.listener.isEmpty {
		return ErrInconsistency
	}
	return nil
}

func (v *intVarImpl) Fix(val int) error {
	v.listener.reset()
	v.dom.RemoveAllBut(val, v.listener)
	if v.listener.isEmpty {
		return ErrInconsistency
	}
	return nil
}

func (v *intVarImpl) RemoveBelow(val int) error {
	v.listener.reset()
	v.dom.RemoveBelow(val, v.listener)
	if v.listener.isEmpty {
		return ErrInconsistency
	}
	return nil
}

func (v *intVarImpl) RemoveAbove(val int) error {
	v.listener.reset()
	v.dom.RemoveAbove(val, v.listener)
	if v.listener.isEmpty {
		return ErrInconsistency
	}
	return nil
}

func (v *intVarImpl) FillArray(dest []int) int { return v.dom.FillArray(dest) }

func (v *intVarImpl) onDomainChange(c Constraint) { v.onDomain.push(c) }
func (v *intVarImpl) onFixed(c Constraint)        { v.onFix.push(c) }
func (v *intVarImpl) onBoundChange(c Constraint)  { v.onBound.push(c) }

func (v *intVarImpl) WhenFixed(f func()) {
	c := newClosureConstraint(v.solver.StateManager(), v, eventFix, f)
	_ = v.solver.Post(c, false)
}

func (v *intVarImpl) WhenBoundChange(f func()) {
	c := newClosureConstraint(v.solver.StateManager(), v, eventBound, f)
	_ = v.solver.Post(c, false)
}

func (v *intVarImpl) WhenDomainChange(f func()) {
	c := newClosureConstraint(v.solver.StateManager(), v, eventDomain, f)
	_ = v.solver.Post(c, false)
}

func (v *intVarImpl) String() string { return v.dom.String() }
