package cp

import (
	"go.uber.org/zap"
)

// Solver is the fix-point engine: it owns the propagation queue and
// relays Schedule/Post calls from variables and constraints into it.
type Solver interface {
	StateManager() StateManager
	// Post registers c (calling its Post() once) and, if
	// enforceFixPoint, immediately runs FixPoint.
	Post(c Constraint, enforceFixPoint bool) error
	// PostBool fixes b to true, then runs FixPoint — the "post(b)"
	// form of the reference solver.
	PostBool(b BoolVar) error
	// Schedule enqueues c if it is active and not already scheduled.
	Schedule(c Constraint)
	// FixPoint drains the propagation queue to a fix-point, notifying
	// fix-point listeners first.
	FixPoint() error
	// OnFixPoint registers a listener invoked at the start of every
	// FixPoint call (used by Minimize to assert the primal cutoff).
	OnFixPoint(listener func() error)

	registerVariable(v IntVar)
}

// SolverOption configures NewSolver.
type SolverOption func(*solverConfig)

type solverConfig struct {
	logger *zap.SugaredLogger
}

// WithLogger attaches a structured logger; the solver is silent
// (no-op logger) unless a caller opts in.
func WithLogger(l *zap.SugaredLogger) SolverOption {
	return func(c *solverConfig) { c.logger = l }
}

// miniCP is the concrete Solver: a FIFO propagation queue, the
// variables registered with it (kept only for bookkeeping, per the
// core's documented scope), and a list of fix-point listeners.
type miniCP struct {
	sm               StateManager
	queue            []Constraint
	variables        []IntVar
	fixPointListeners []func() error
	log              *zap.SugaredLogger
}

// NewSolver creates a constraint programming solver. byCopy selects
// copy-based state management; false selects trail-based.
func NewSolver(byCopy bool, opts ...SolverOption) Solver {
	cfg := solverConfig{logger: zap.NewNop().Sugar()}
	for _, o := range opts {
		o(&cfg)
	}
	var sm StateManager
	if byCopy {
		sm = NewCopier()
	} else {
		sm = NewTrailer()
	}
	return &miniCP{sm: sm, log: cfg.logger}
}

func (s *miniCP) StateManager() StateManager { return s.sm }

func (s *miniCP) registerVariable(v IntVar) {
	s.variables = append(s.variables, v)
}

func (s *miniCP) OnFixPoint(listener func() error) {
	s.fixPointListeners = append(s.fixPointListeners, listener)
}

func (s *miniCP) Schedule(c Constraint) {
	if c.IsActive() && !c.IsScheduled() {
		c.setScheduled(true)
		s.queue = append(s.queue, c)
	}
}

func (s *miniCP) FixPoint() error {
	for _, l := range s.fixPointListeners {
		if err := l(); err != nil {
			s.drainQueue()
			return err
		}
	}
	for len(s.queue) > 0 {
		c := s.queue[0]
		s.queue = s.queue[1:]
		c.setScheduled(false)
		if !c.IsActive() {
			continue
		}
		if err := c.Propagate(); err != nil {
			s.drainQueue()
			return err
		}
	}
	return nil
}

// drainQueue clears the scheduled flag of every constraint still
// queued, matching the reference fix_point's cleanup on Inconsistency.
func (s *miniCP) drainQueue() {
	for _, c := range s.queue {
		c.setScheduled(false)
	}
	s.queue = s.queue[:0]
}

func (s *miniCP) Post(c Constraint, enforceFixPoint bool) error {
	s.log.Debugw("posting constraint", "enforceFixPoint", enforceFixPoint)
	if err := c.Post(); err != nil {
		return err
	}
	if enforceFixPoint {
		return s.FixPoint()
	}
	return nil
}

func (s *miniCP) PostBool(b BoolVar) error {
	if err := b.FixBool(true); err != nil {
		return err
	}
	return s.FixPoint()
}
