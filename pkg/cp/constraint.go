package cp

// Constraint is a propagator: posted once into a Solver, then
// scheduled and propagated any number of times as the variables it
// watches change.
type Constraint interface {
	// Post is called exactly once, when the constraint is added to the
	// solver. It may fix or prune variables directly and must register
	// for whatever domain events it needs to be rescheduled on.
	Post() error
	// Propagate is called by the solver's fix-point loop. It may be
	// re-entered: the fix-point may schedule the same constraint many
	// times, and each invocation may further tighten domains,
	// deactivate itself, or report inconsistency.
	Propagate() error
	IsActive() bool
	SetActive(v bool)
	IsScheduled() bool
	setScheduled(v bool)
}

// baseConstraint supplies the active/scheduled bookkeeping shared by
// every concrete constraint. active is reversible (so a
// SetActive(false) made while entailing is undone on backtrack);
// scheduled is a plain flag the solver flips on enqueue/dequeue and is
// not part of reversible state.
type baseConstraint struct {
	active    StateBool
	scheduled bool
}

func newBaseConstraint(sm StateManager) baseConstraint {
	return baseConstraint{active: sm.MakeStateBool(true)}
}

func (c *baseConstraint) IsActive() bool     { return c.active.Value() }
func (c *baseConstraint) SetActive(v bool)   { c.active.SetValue(v) }
func (c *baseConstraint) IsScheduled() bool  { return c.scheduled }
func (c *baseConstraint) setScheduled(v bool) { c.scheduled = v }

// constraintStack is a reversible, append-mostly collection of
// subscribed constraints. Only its logical length is reversible — the
// backing slice has no undo log, and entries past the length are just
// overwritten by later pushes, so a whole batch of subscriptions added
// during search disappears on restore without needing its own undo log
// per entry.
type constraintStack struct {
	items []Constraint
	size  StateInt
}

func newConstraintStack(sm StateManager) *constraintStack {
	return &constraintStack{size: sm.MakeStateInt(0)}
}

func (s *constraintStack) push(c Constraint) {
	n := s.size.Value()
	if n < len(s.items) {
		s.items[n] = c
	} else {
		s.items = append(s.items, c)
	}
	s.size.SetValue(n + 1)
}

func (s *constraintStack) forEach(f func(Constraint)) {
	n := s.size.Value()
	for i := 0; i < n; i++ {
		f(s.items[i])
	}
}

// eventKind selects which of a variable's three subscriber stacks a
// closureConstraint registers itself on.
type eventKind int

const (
	eventDomain eventKind = iota
	eventFix
	eventBound
)

// closureConstraint adapts a plain closure into a Constraint so it can
// be posted with enforceFixPoint=false via IntVar.When*. Its Post
// subscribes itself onto the requested event stack of the variable it
// was created for; Propagate simply invokes the closure.
type closureConstraint struct {
	baseConstraint
	variable IntVar
	kind     eventKind
	fn       func()
}

func newClosureConstraint(sm StateManager, v IntVar, kind eventKind, fn func()) *closureConstraint {
	return &closureConstraint{baseConstraint: newBaseConstraint(sm), variable: v, kind: kind, fn: fn}
}

func (c *closureConstraint) Post() error {
	switch c.kind {
	case eventDomain:
		c.variable.onDomainChange(c)
	case eventFix:
		c.variable.onFixed(c)
	case eventBound:
		c.variable.onBoundChange(c)
	}
	return nil
}

func (c *closureConstraint) Propagate() error {
	c.fn()
	return nil
}
