// Package cp implements the core of a finite-domain constraint
// programming engine: a backtrackable state manager, integer-variable
// domains with event-driven propagation, a fix-point constraint
// propagator, and a depth-first search driver with optional
// branch-and-bound optimization.
//
// A typical model is built and solved as:
//
//	solver := cp.NewSolver(false)
//	q, _ := cp.NewIntVarArrayRange(solver, n, 0, n-1)
//	for i := 0; i < n; i++ {
//	    for j := i + 1; j < n; j++ {
//	        solver.Post(cp.NotEqualVar(q[i], q[j], 0), true)
//	        solver.Post(cp.NotEqualVar(q[i], q[j], j-i), true)
//	        solver.Post(cp.NotEqualVar(q[i], q[j], i-j), true)
//	    }
//	}
//	search := cp.NewDFS(solver, cp.FirstFail(q))
//	stats, err := search.Solve(nil)
package cp
