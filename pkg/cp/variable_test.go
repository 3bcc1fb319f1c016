package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntVarRangeRejectsBoundaryValues(t *testing.T) {
	s := NewSolver(false)

	_, err := NewIntVarRange(s, minValue, 0)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = NewIntVarRange(s, 0, maxValue)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = NewIntVarRange(s, 5, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIntVarFixEmptiesOnInconsistentValue(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)

	err = x.Fix(10)
	require.ErrorIs(t, err, ErrInconsistency)
}

func TestIntVarWhenFixedFiresOnlyOnFix(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)

	fired := false
	x.WhenFixed(func() { fired = true })

	require.NoError(t, x.Remove(1))
	require.NoError(t, s.FixPoint())
	require.False(t, fired, "removing a non-boundary value must not fire WhenFixed")

	require.NoError(t, x.Fix(3))
	require.NoError(t, s.FixPoint())
	require.True(t, fired)
}

func TestIntVarWhenDomainChangeFiresOnAnyRemoval(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)

	count := 0
	x.WhenDomainChange(func() { count++ })

	require.NoError(t, x.Remove(2))
	require.NoError(t, s.FixPoint())
	require.Equal(t, 1, count)
}

func TestNewIntVarValuesKeepsOnlyGivenSet(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarValues(s, []int{2, 4, 6})
	require.NoError(t, err)

	require.Equal(t, 3, x.Size())
	require.True(t, x.Contains(4))
	require.False(t, x.Contains(3))
	require.Equal(t, 2, x.Min())
	require.Equal(t, 6, x.Max())
}
