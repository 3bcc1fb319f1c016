package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotEqualPrunesOnceOneSideFixes(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 3)
	y, _ := NewIntVarRange(s, 0, 3)

	require.NoError(t, s.Post(newNotEqual(x, y, 0), true))
	require.NoError(t, x.Fix(2))
	require.NoError(t, s.FixPoint())

	require.False(t, y.Contains(2))
}

func TestEqualIsDomainConsistent(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarValues(s, []int{1, 3, 5})
	y, _ := NewIntVarValues(s, []int{2, 3, 4})

	require.NoError(t, s.Post(newEqual(x, y), true))

	require.Equal(t, 1, x.Size())
	require.Equal(t, 1, y.Size())
	require.Equal(t, 3, x.Min())
	require.Equal(t, 3, y.Min())
}

func TestLessOrEqualTightensBothSides(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 10)
	y, _ := NewIntVarRange(s, 5, 8)

	require.NoError(t, s.Post(newLessOrEqual(x, y), true))

	require.Equal(t, 8, x.Max())
	require.Equal(t, 0, x.Min())
	require.Equal(t, 5, y.Min())
}

func TestIsEqualReifiesBothDirections(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 5)
	b, _ := NewBoolVar(s)

	require.NoError(t, s.Post(newIsEqual(b, x, 3), true))
	require.NoError(t, x.Fix(3))
	require.NoError(t, s.FixPoint())
	require.True(t, b.IsTrue())

	s2 := NewSolver(false)
	x2, _ := NewIntVarRange(s2, 0, 5)
	b2, _ := NewBoolVar(s2)
	require.NoError(t, s2.Post(newIsEqual(b2, x2, 3), true))
	require.NoError(t, b2.FixBool(false))
	require.NoError(t, s2.FixPoint())
	require.False(t, x2.Contains(3))
}

func TestIsLessOrEqualReifiesBothDirections(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 10)
	b, _ := NewBoolVar(s)

	require.NoError(t, s.Post(newIsLessOrEqual(b, x, 4), true))
	require.NoError(t, x.RemoveBelow(5))
	require.NoError(t, s.FixPoint())
	require.True(t, b.IsFalse())
}

func TestSumConstraintPrunesBounds(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 5)
	y, _ := NewIntVarRange(s, 0, 5)
	z, _ := NewIntVarRange(s, 0, 5)

	total, err := SumValue([]IntVar{x, y, z}, 10)
	require.NoError(t, err)
	require.NoError(t, s.Post(total, true))

	require.NoError(t, x.Fix(5))
	require.NoError(t, y.Fix(5))
	require.NoError(t, s.FixPoint())

	require.Equal(t, 0, z.Max())
}

func TestSumConstraintDetectsInfeasibility(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 3, 3)
	y, _ := NewIntVarRange(s, 3, 3)

	c, err := SumValue([]IntVar{x, y}, 5)
	require.NoError(t, err)
	require.ErrorIs(t, s.Post(c, true), ErrInconsistency)
}

func TestAllDifferentBinaryPrunesFixedValues(t *testing.T) {
	s := NewSolver(false)
	x, _ := NewIntVarRange(s, 0, 2)
	y, _ := NewIntVarRange(s, 0, 2)
	z, _ := NewIntVarRange(s, 0, 2)

	ad, err := AllDifferent([]IntVar{x, y, z})
	require.NoError(t, err)
	require.NoError(t, s.Post(ad, true))

	require.NoError(t, x.Fix(0))
	require.NoError(t, s.FixPoint())
	require.False(t, y.Contains(0))
	require.False(t, z.Contains(0))
}

func TestElement2DMapsIndicesToValue(t *testing.T) {
	s := NewSolver(false)
	matrix := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	x, _ := NewIntVarRange(s, 0, 1)
	y, _ := NewIntVarRange(s, 0, 2)

	z, err := Element2D(matrix, x, y)
	require.NoError(t, err)

	require.NoError(t, x.Fix(1))
	require.NoError(t, y.Fix(2))
	require.NoError(t, s.FixPoint())

	require.True(t, z.IsFixed())
	require.Equal(t, 6, z.Min())
}

func TestElement2DFiltersIndicesByZBound(t *testing.T) {
	s := NewSolver(false)
	matrix := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	x, _ := NewIntVarRange(s, 0, 1)
	y, _ := NewIntVarRange(s, 0, 2)

	z, err := Element2D(matrix, x, y)
	require.NoError(t, err)

	require.NoError(t, z.RemoveAbove(3))
	require.NoError(t, s.FixPoint())

	require.False(t, x.Contains(1), "row 1 only supports values > 3, all excluded by z's upper bound")
}
