package cp

import "errors"

// Expected, branch-scoped control errors. Both are returned rather than
// panicked: a propagator or a branching closure returns one of these
// (wrapped or bare) and the caller checks with errors.Is.
var (
	// ErrInconsistency signals that a domain became empty or that a
	// constraint detected infeasibility during propagation. It is
	// expected during search and is only ever observed at a DFS branch
	// boundary or a solve-subject-to/optimize-subject-to boundary; it
	// is never swallowed inside a constraint's own Propagate.
	ErrInconsistency = errors.New("cp: inconsistency")

	// ErrStopSearch is returned by the search loop once its limit
	// predicate reports true. It is caught exactly once, at the top of
	// Solve.
	ErrStopSearch = errors.New("cp: search stopped")
)

// Programmer-error sentinels. These are not expected during a correct
// search; they indicate a misuse of the modeling API (overflow at view
// construction, incompatible factory arguments, tightening an
// unfixed objective, posting across solvers).
var (
	ErrOverflow        = errors.New("cp: bound arithmetic overflow")
	ErrInvalidArgument = errors.New("cp: invalid argument")
	ErrNotFixed        = errors.New("cp: variable not fixed")
	ErrWrongSolver     = errors.New("cp: variables belong to different solvers")
)
