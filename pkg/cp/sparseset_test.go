package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSparseSetBasics(t *testing.T) {
	sm := NewTrailer()
	s := NewStateSparseSet(sm, 10, 0)

	require.Equal(t, 10, s.Size())
	require.Equal(t, 0, s.Min())
	require.Equal(t, 9, s.Max())
	require.True(t, s.Contains(5))

	s.Remove(5)
	require.False(t, s.Contains(5))
	require.Equal(t, 9, s.Size())
}

func TestStateSparseSetRemoveUpdatesMinMax(t *testing.T) {
	sm := NewTrailer()
	s := NewStateSparseSet(sm, 5, 0)

	s.Remove(0)
	require.Equal(t, 1, s.Min())

	s.Remove(4)
	require.Equal(t, 3, s.Max())
}

func TestStateSparseSetRemoveBelowAbove(t *testing.T) {
	sm := NewTrailer()
	s := NewStateSparseSet(sm, 10, 0)

	s.RemoveBelow(3)
	require.Equal(t, 3, s.Min())
	require.Equal(t, 7, s.Size())

	s.RemoveAbove(6)
	require.Equal(t, 6, s.Max())
	require.Equal(t, 4, s.Size())
}

func TestStateSparseSetRestoreUndoesRemovals(t *testing.T) {
	sm := NewTrailer()
	s := NewStateSparseSet(sm, 5, 0)

	sm.SaveState()
	s.Remove(2)
	s.Remove(3)
	require.Equal(t, 3, s.Size())

	sm.RestoreState()
	require.Equal(t, 5, s.Size())
	require.True(t, s.Contains(2))
	require.True(t, s.Contains(3))
}

func TestStateSparseSetFillArray(t *testing.T) {
	sm := NewTrailer()
	s := NewStateSparseSet(sm, 5, 10)
	s.Remove(12)

	buf := make([]int, s.Size())
	n := s.FillArray(buf)
	require.Equal(t, 4, n)
	for _, v := range buf[:n] {
		require.NotEqual(t, 12, v)
		require.True(t, v >= 10 && v < 15)
	}
}
