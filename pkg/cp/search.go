package cp

import (
	"errors"
	"fmt"
)

// Branching is a closure returning an ordered list of zero or more
// alternative closures. An empty list means the current node is a
// solution; otherwise each alternative is a child branch, tried in
// order.
type Branching func() []func() error

// Objective tightens a primal bound each time a solution is found, so
// that the next solution found by branch-and-bound search is
// strictly better.
type Objective interface {
	Tighten() error
}

// Minimize is a minimization objective over an IntVar: it registers a
// solver fix-point hook enforcing x <= bound, and tightens bound to
// x.Max()-1 on every solution.
type Minimize struct {
	bound int
	x     IntVar
}

// NewMinimize creates a minimization objective over x.
func NewMinimize(x IntVar) *Minimize {
	m := &Minimize{bound: maxValue, x: x}
	x.Solver().OnFixPoint(func() error { return x.RemoveAbove(m.bound) })
	return m
}

func (m *Minimize) Tighten() error {
	if !m.x.IsFixed() {
		return ErrNotFixed
	}
	m.bound = m.x.Max() - 1
	return nil
}

func (m *Minimize) String() string { return fmt.Sprintf("Objective: %d", m.x.Min()) }

// NewMaximize creates a maximization objective over x, realized as a
// Minimize over the opposite view — the reference solver has no
// separate Maximize type; maximize(x) is minimize(-x).
func NewMaximize(x IntVar) *Minimize {
	return NewMinimize(NewOppositeView(x))
}

// SearchStatistics accumulates the counters produced by a DFSearch
// run. Its getters are plain reads over live counters, so it can be
// polled mid-search (via Snapshot) as well as read once a run
// completes.
type SearchStatistics struct {
	nodes, failures, solutions int
	completed                  bool
}

func (s *SearchStatistics) incrNodes()     { s.nodes++ }
func (s *SearchStatistics) incrFailures()  { s.failures++ }
func (s *SearchStatistics) incrSolutions() { s.solutions++ }
func (s *SearchStatistics) setCompleted()  { s.completed = true }

func (s *SearchStatistics) Nodes() int      { return s.nodes }
func (s *SearchStatistics) Failures() int   { return s.failures }
func (s *SearchStatistics) Solutions() int  { return s.solutions }
func (s *SearchStatistics) Completed() bool { return s.completed }

func (s *SearchStatistics) String() string {
	return fmt.Sprintf("\n\t#choice: %d\n\t#fail: %d\n\t#sols: %d\n\tcompleted: %t\n",
		s.nodes, s.failures, s.solutions, s.completed)
}

// StatisticsSnapshot is an immutable copy of SearchStatistics' counters,
// safe to read from outside the search (e.g. by a metrics reporter)
// while the search is still running.
type StatisticsSnapshot struct {
	Nodes, Failures, Solutions int
	Completed                  bool
}

// Snapshot returns the current counters, usable mid-search.
func (s *SearchStatistics) Snapshot() StatisticsSnapshot {
	return StatisticsSnapshot{Nodes: s.nodes, Failures: s.failures, Solutions: s.solutions, Completed: s.completed}
}

// LimitFunc is called at every search node; returning true raises
// ErrStopSearch.
type LimitFunc func(*SearchStatistics) bool

func neverLimit(*SearchStatistics) bool { return false }

// DFSListener receives notifications for every solution, failure and
// branch point of a DFSearch run, suitable for tree visualization.
type DFSListener interface {
	Solution(parentID, nodeID, position int)
	Fail(parentID, nodeID, position int)
	Branch(parentID, nodeID, position, nChildren int)
}

type funcDFSListener struct {
	solution func(int, int, int)
	fail     func(int, int, int)
	branch   func(int, int, int, int)
}

func (l funcDFSListener) Solution(p, id, pos int) {
	if l.solution != nil {
		l.solution(p, id, pos)
	}
}
func (l funcDFSListener) Fail(p, id, pos int) {
	if l.fail != nil {
		l.fail(p, id, pos)
	}
}
func (l funcDFSListener) Branch(p, id, pos, n int) {
	if l.branch != nil {
		l.branch(p, id, pos, n)
	}
}

// DFSearch is a depth-first branch-and-bound search driver: at every
// node it saves the state, invokes the branching closure, and
// restores on exit (including on Inconsistency, via StateManager's
// scoped WithNewState).
type DFSearch struct {
	sm        StateManager
	branching Branching
	curNodeID int
	listeners []DFSListener
}

// NewDFSearch creates a search using sm to save/restore state at every
// node.
func NewDFSearch(sm StateManager, branching Branching) *DFSearch {
	return &DFSearch{sm: sm, branching: branching}
}

// OnSolution registers a listener called whenever a solution is found.
func (d *DFSearch) OnSolution(f func()) {
	d.listeners = append(d.listeners, funcDFSListener{solution: func(int, int, int) { f() }})
}

// OnFailure registers a listener called whenever the search backtracks
// after an Inconsistency.
func (d *DFSearch) OnFailure(f func()) {
	d.listeners = append(d.listeners, funcDFSListener{fail: func(int, int, int) { f() }})
}

// AddListener registers a fully general DFSListener.
func (d *DFSearch) AddListener(l DFSListener) {
	d.listeners = append(d.listeners, l)
}

func (d *DFSearch) notifySolution(p, id, pos int) {
	for _, l := range d.listeners {
		l.Solution(p, id, pos)
	}
}
func (d *DFSearch) notifyFail(p, id, pos int) {
	for _, l := range d.listeners {
		l.Fail(p, id, pos)
	}
}
func (d *DFSearch) notifyBranch(p, id, pos, n int) {
	for _, l := range d.listeners {
		l.Branch(p, id, pos, n)
	}
}

func (d *DFSearch) dfs(stats *SearchStatistics, limit LimitFunc, parentID, position int) error {
	if limit(stats) {
		return ErrStopSearch
	}
	branches := d.branching()
	nodeID := d.curNodeID
	d.curNodeID++

	if len(branches) == 0 {
		stats.incrSolutions()
		d.notifySolution(parentID, nodeID, position)
		return nil
	}

	d.notifyBranch(parentID, nodeID, position, len(branches))
	for pos, b := range branches {
		p := pos
		branch := b
		err := d.sm.WithNewState(func() error {
			stats.incrNodes()
			if err := branch(); err != nil {
				return err
			}
			return d.dfs(stats, limit, nodeID, p)
		})
		if err == nil {
			continue
		}
		if errors.Is(err, ErrInconsistency) {
			stats.incrFailures()
			d.notifyFail(parentID, nodeID, p)
			continue
		}
		return err
	}
	return nil
}

func (d *DFSearch) solveWithLimit(stats *SearchStatistics, limit LimitFunc) error {
	d.curNodeID = 0
	return d.sm.WithNewState(func() error {
		err := d.dfs(stats, limit, -1, -1)
		if err == nil {
			stats.setCompleted()
			return nil
		}
		if errors.Is(err, ErrStopSearch) {
			return nil
		}
		return err
	})
}

// Solve explores every solution. If limit is nil, the search never
// stops early.
func (d *DFSearch) Solve(limit LimitFunc) (*SearchStatistics, error) {
	if limit == nil {
		limit = neverLimit
	}
	stats := &SearchStatistics{}
	err := d.solveWithLimit(stats, limit)
	return stats, err
}

// SolveSubjectTo saves the state, runs subjectTo, then searches within
// that same frame, restoring on exit. An Inconsistency raised by
// subjectTo yields an empty-statistics result rather than propagating.
func (d *DFSearch) SolveSubjectTo(limit LimitFunc, subjectTo func() error) (*SearchStatistics, error) {
	if limit == nil {
		limit = neverLimit
	}
	stats := &SearchStatistics{}
	err := d.sm.WithNewState(func() error {
		if err := subjectTo(); err != nil {
			if errors.Is(err, ErrInconsistency) {
				return nil
			}
			return err
		}
		return d.solveWithLimit(stats, limit)
	})
	return stats, err
}

// Optimize runs a branch-and-bound search tightening obj on every
// solution found.
func (d *DFSearch) Optimize(obj Objective, limit LimitFunc) (*SearchStatistics, error) {
	if limit == nil {
		limit = neverLimit
	}
	d.OnSolution(func() {
		if err := obj.Tighten(); err != nil {
			panic(err)
		}
	})
	stats := &SearchStatistics{}
	err := d.solveWithLimit(stats, limit)
	return stats, err
}

// OptimizeSubjectTo composes SolveSubjectTo with Optimize: this is the
// large-neighborhood-search primitive.
func (d *DFSearch) OptimizeSubjectTo(obj Objective, limit LimitFunc, subjectTo func() error) (*SearchStatistics, error) {
	if limit == nil {
		limit = neverLimit
	}
	stats := &SearchStatistics{}
	err := d.sm.WithNewState(func() error {
		if err := subjectTo(); err != nil {
			if errors.Is(err, ErrInconsistency) {
				return nil
			}
			return err
		}
		s2, err2 := d.Optimize(obj, limit)
		*stats = *s2
		return err2
	})
	return stats, err
}
