package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixPointDrainsQueueOnce(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 5)
	y, _ := NewIntVarRange(s, 0, 5)

	require.NoError(t, s.Post(newLessOrEqual(x, y), true))
	require.NoError(t, x.RemoveBelow(3))
	require.NoError(t, s.FixPoint())
	require.Equal(t, 3, y.Min())
}

func TestFixPointClearsScheduledFlagsOnInconsistency(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 2)
	y, _ := NewIntVarRange(s, 0, 2)

	require.NoError(t, s.Post(newEqual(x, y), true))
	require.NoError(t, x.Fix(0))
	require.NoError(t, y.Fix(1))
	err := s.FixPoint()
	require.ErrorIs(t, err, ErrInconsistency)

	// the solver must still be usable after an Inconsistency.
	z, _ := NewIntVarRange(s, 0, 2)
	require.NoError(t, z.Fix(1))
	require.NoError(t, s.FixPoint())
}

func TestOnFixPointListenerRunsBeforeQueue(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 10)

	var order []string
	s.OnFixPoint(func() error { order = append(order, "listener"); return nil })
	x.WhenBoundChange(func() { order = append(order, "constraint") })

	require.NoError(t, x.RemoveBelow(1))
	require.NoError(t, s.FixPoint())
	require.Equal(t, []string{"listener", "constraint"}, order)
}

func TestPostBoolFixesAndPropagates(t *testing.T) {
	s := NewSolver(false)
	b, _ := NewBoolVar(s)
	require.NoError(t, s.PostBool(b))
	require.True(t, b.IsTrue())
}
