package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func postNQueens(t *testing.T, s Solver, n int) []IntVar {
	t.Helper()
	q, err := NewIntVarArrayRange(s, n, 0, n-1)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, s.Post(newNotEqual(q[i], q[j], 0), true))
			require.NoError(t, s.Post(newNotEqual(q[i], q[j], j-i), true))
			require.NoError(t, s.Post(newNotEqual(q[i], q[j], i-j), true))
		}
	}
	return q
}

func TestDFSolveFindsAllNQueensSolutions(t *testing.T) {
	s := NewSolver(false)
	q := postNQueens(t, s, 6)

	search := NewDFS(s, FirstFail(q))
	stats, err := search.Solve(nil)
	require.NoError(t, err)
	require.True(t, stats.Completed())
	require.Equal(t, 4, stats.Solutions(), "6-queens has exactly 4 solutions")
}

func TestDFSolveByCopyMatchesByTrail(t *testing.T) {
	sTrail := NewSolver(false)
	qTrail := postNQueens(t, sTrail, 6)
	statsTrail, err := NewDFS(sTrail, FirstFail(qTrail)).Solve(nil)
	require.NoError(t, err)

	sCopy := NewSolver(true)
	qCopy := postNQueens(t, sCopy, 6)
	statsCopy, err := NewDFS(sCopy, FirstFail(qCopy)).Solve(nil)
	require.NoError(t, err)

	require.Equal(t, statsTrail.Solutions(), statsCopy.Solutions())
}

func TestSolveRespectsNodeLimit(t *testing.T) {
	s := NewSolver(false)
	q := postNQueens(t, s, 8)

	search := NewDFS(s, FirstFail(q))
	stats, err := search.Solve(func(st *SearchStatistics) bool { return st.Nodes() >= 5 })
	require.NoError(t, err)
	require.False(t, stats.Completed())
}

func TestOptimizeMaximizesObjective(t *testing.T) {
	s := NewSolver(false)
	xs, err := NewIntVarArrayRange(s, 3, 0, 5)
	require.NoError(t, err)

	sum, err := SumVar(xs)
	require.NoError(t, err)

	branching := FirstFail(xs)
	search := NewDFS(s, branching)
	obj := NewMaximize(sum)

	var best int
	search.OnSolution(func() {
		v := 0
		for _, x := range xs {
			v += x.Min()
		}
		best = v
	})

	stats, err := search.Optimize(obj, nil)
	require.NoError(t, err)
	require.True(t, stats.Completed())
	require.Equal(t, 15, best, "maximizing the sum of three [0,5] vars settles at 5+5+5")
}

func TestSolveSubjectToInfeasibleYieldsEmptyStats(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 3)

	search := NewDFS(s, FirstFail([]IntVar{x}))
	stats, err := search.SolveSubjectTo(nil, func() error {
		if err := x.Fix(1); err != nil {
			return err
		}
		return x.Fix(2)
	})
	require.NoError(t, err)
	require.Equal(t, 0, stats.Solutions())
}

func TestOnFailureListenerCountsBacktracks(t *testing.T) {
	s := NewSolver(false)
	q := postNQueens(t, s, 6)

	search := NewDFS(s, FirstFail(q))
	fails := 0
	search.OnFailure(func() { fails++ })

	stats, err := search.Solve(nil)
	require.NoError(t, err)
	require.Equal(t, stats.Failures(), fails)
	require.Greater(t, fails, 0)
}

func TestSequencerFallsThroughToSecondBranching(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 0)
	y, _ := NewIntVarRange(s, 0, 2)

	branching := Sequencer([]Branching{FirstFail([]IntVar{x}), FirstFail([]IntVar{y})})
	search := NewDFS(s, branching)
	stats, err := search.Solve(nil)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Solutions())
}

func TestLimitedDiscrepancyBranchingBoundsDiscrepancy(t *testing.T) {
	s := NewSolver(false)
	xs, err := NewIntVarArrayRange(s, 3, 0, 1)
	require.NoError(t, err)

	branching, err := NewLimitedDiscrepancyBranching(s.StateManager(), FirstFail(xs), 0)
	require.NoError(t, err)

	search := NewDFS(s, branching)
	stats, err := search.Solve(nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Solutions(), "zero discrepancy only ever takes the leftmost branch")
}
