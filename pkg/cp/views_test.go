package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetViewArithmetic(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)
	y, err := NewOffsetView(x, 10)
	require.NoError(t, err)

	require.Equal(t, 10, y.Min())
	require.Equal(t, 15, y.Max())
	require.True(t, y.Contains(12))

	require.NoError(t, y.Remove(12))
	require.NoError(t, s.FixPoint())
	require.False(t, x.Contains(2))
}

func TestOffsetViewRejectsOverflow(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)

	_, err = NewOffsetView(x, maxValue)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestOppositeViewArithmetic(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, -3, 7)
	require.NoError(t, err)
	y := NewOppositeView(x)

	require.Equal(t, -7, y.Min())
	require.Equal(t, 3, y.Max())

	require.NoError(t, y.RemoveBelow(-2))
	require.NoError(t, s.FixPoint())
	require.Equal(t, 2, x.Max())
}

func TestScaledViewPositiveFactor(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)
	y, err := NewScaledView(x, 3)
	require.NoError(t, err)

	require.Equal(t, 0, y.Min())
	require.Equal(t, 15, y.Max())
	require.True(t, y.Contains(9))
	require.False(t, y.Contains(10))
}

func TestScaledViewNegativeFactor(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)
	y, err := NewScaledView(x, -2)
	require.NoError(t, err)

	require.Equal(t, -10, y.Min())
	require.Equal(t, 0, y.Max())
}

func TestScaledViewFixRejectsNonMultiple(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, 0, 5)
	require.NoError(t, err)
	y, err := NewScaledView(x, 2)
	require.NoError(t, err)

	require.ErrorIs(t, y.Fix(3), ErrInconsistency)
}

func TestScaledViewRemoveBelowRoundsTowardInfinity(t *testing.T) {
	s := NewSolver(false)
	x, err := NewIntVarRange(s, -5, 5)
	require.NoError(t, err)
	y, err := NewScaledView(x, -2)
	require.NoError(t, err)

	// y = -2x, removing below -7 must exclude x values whose -2x < -7,
	// i.e. x > 3.5, so x.RemoveAbove(3).
	require.NoError(t, y.RemoveBelow(-7))
	require.NoError(t, s.FixPoint())
	require.Equal(t, 3, x.Max())
}

func TestNotReturnsComplementOfBoolVar(t *testing.T) {
	s := NewSolver(false)
	b, err := NewBoolVar(s)
	require.NoError(t, err)
	nb := Not(b)

	require.NoError(t, b.FixBool(true))
	require.NoError(t, s.FixPoint())
	require.True(t, nb.IsFixed())
	require.Equal(t, 0, nb.Min())
}
