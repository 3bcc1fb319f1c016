package cp

import "fmt"

// Mul returns a view of a*x, folding the degenerate factors the way
// factory.py's mul does: a==0 collapses to a fixed-at-0 variable, a==1
// returns x itself, and a negative factor is realized as the opposite
// of a positively-scaled view rather than asking intVarViewMul to
// reason about sign itself.
func Mul(x IntVar, a int) (IntVar, error) {
	switch {
	case a == 0:
		return NewIntVarRange(x.Solver(), 0, 0)
	case a == 1:
		return x, nil
	case a < 0:
		scaled, err := NewScaledView(x, -a)
		if err != nil {
			return nil, err
		}
		return NewOppositeView(scaled), nil
	default:
		return NewScaledView(x, a)
	}
}

// Minus returns a view of -x (when called with a zero offset) or x-v,
// folding the v==0 case to the Opposite view and any other offset to
// an Offset view of -v, matching factory.py's minus(x, v=None).
func Minus(x IntVar, v int) (IntVar, error) {
	if v == 0 {
		return NewOppositeView(x), nil
	}
	return NewOffsetView(x, -v)
}

// Plus returns a view of x+v, folding v==0 to x itself.
func Plus(x IntVar, v int) (IntVar, error) {
	if v == 0 {
		return x, nil
	}
	return NewOffsetView(x, v)
}

// EqualValue and EqualVar return the constraint x == v (a single-shot
// fix) or x == y (the domain-consistent pairwise constraint), the two
// forms of factory.py's dual-shaped equal(x, v=None, y=None). The
// caller posts the returned constraint.
func EqualValue(x IntVar, v int) Constraint { return newFixValueConstraint(x, v) }
func EqualVar(x, y IntVar) Constraint       { return newEqual(x, y) }

// NotEqualValue and NotEqualVar return the constraint x != v or
// x != y + v, per factory.py's not_equal.
func NotEqualValue(x IntVar, v int) Constraint  { return newExcludeValueConstraint(x, v) }
func NotEqualVar(x, y IntVar, v int) Constraint { return newNotEqual(x, y, v) }

// LessOrEqualValue and LessOrEqualVar return the constraint x <= v or
// x <= y, per factory.py's less_or_equal.
func LessOrEqualValue(x IntVar, v int) Constraint { return newLEValueConstraint(x, v) }
func LessOrEqualVar(x, y IntVar) Constraint       { return newLessOrEqual(x, y) }

// LargerOrEqualValue and LargerOrEqualVar return the constraint x >= v
// or x >= y, per factory.py's larger_or_equal — the variable form is just LessOrEqualVar with its
// operands swapped.
func LargerOrEqualValue(x IntVar, v int) Constraint { return newGEValueConstraint(x, v) }
func LargerOrEqualVar(x, y IntVar) Constraint       { return newLessOrEqual(y, x) }

// IsEqual returns a fresh boolean variable reified to (x == c), posted
// immediately onto x's solver.
func IsEqual(x IntVar, c int) (BoolVar, error) {
	b, err := NewBoolVar(x.Solver())
	if err != nil {
		return nil, err
	}
	if err := x.Solver().Post(newIsEqual(b, x, c), true); err != nil {
		return nil, err
	}
	return b, nil
}

// IsLessOrEqual returns a fresh boolean variable reified to (x <= c).
func IsLessOrEqual(x IntVar, c int) (BoolVar, error) {
	b, err := NewBoolVar(x.Solver())
	if err != nil {
		return nil, err
	}
	if err := x.Solver().Post(newIsLessOrEqual(b, x, c), true); err != nil {
		return nil, err
	}
	return b, nil
}

// IsLess returns a fresh boolean variable reified to (x < c), built as
// IsLessOrEqual(x, c-1) per factory.py's is_less.
func IsLess(x IntVar, c int) (BoolVar, error) { return IsLessOrEqual(x, c-1) }

// IsLargerOrEqual returns a fresh boolean variable reified to
// (x >= c), built as IsLessOrEqual(-x, -c) per factory.py's
// is_larger_or_equal.
func IsLargerOrEqual(x IntVar, c int) (BoolVar, error) {
	return IsLessOrEqual(NewOppositeView(x), -c)
}

// IsLarger returns a fresh boolean variable reified to (x > c), built
// as IsLargerOrEqual(x, c+1) per factory.py's is_larger.
func IsLarger(x IntVar, c int) (BoolVar, error) { return IsLargerOrEqual(x, c+1) }

// Element2D returns a fresh variable z constrained to matrix[x][y] and
// posts the constraint maintaining it, per factory.py's element_2d.
func Element2D(matrix [][]int, x, y IntVar) (IntVar, error) {
	zMin, zMax := matrix[0][0], matrix[0][0]
	for _, row := range matrix {
		for _, v := range row {
			if v < zMin {
				zMin = v
			}
			if v > zMax {
				zMax = v
			}
		}
	}
	z, err := NewIntVarRange(x.Solver(), zMin, zMax)
	if err != nil {
		return nil, err
	}
	c, err := newElement2D(matrix, x, y, z)
	if err != nil {
		return nil, err
	}
	if err := x.Solver().Post(c, true); err != nil {
		return nil, err
	}
	return z, nil
}

// SumVar returns a fresh variable constrained to sum(xs), introducing
// the synthetic -s term so the underlying constraint reduces to
// sum(xs) - s == 0, per factory.py's sum_var (with its overflow check
// performed by newSum on construction).
func SumVar(xs []IntVar) (IntVar, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: sum_var requires at least one variable", ErrInvalidArgument)
	}
	var sumMin, sumMax int64
	for _, x := range xs {
		sumMin += int64(x.Min())
		sumMax += int64(x.Max())
	}
	if sumMin <= minValue || sumMax >= maxValue {
		return nil, fmt.Errorf("%w: sum_var bounds exceed the 32-bit signed range", ErrOverflow)
	}
	s, err := NewIntVarRange(xs[0].Solver(), int(sumMin), int(sumMax))
	if err != nil {
		return nil, err
	}
	terms := append(append([]IntVar{}, xs...), NewOppositeView(s))
	c, err := newSum(terms)
	if err != nil {
		return nil, err
	}
	if err := s.Solver().Post(c, true); err != nil {
		return nil, err
	}
	return s, nil
}

// Sum returns the constraint enforcing sum(xs) == y, per factory.py's
// Sum(x, y=None, v=None) variable form.
func Sum(xs []IntVar, y IntVar) (Constraint, error) {
	terms := append(append([]IntVar{}, xs...), NewOppositeView(y))
	return newSum(terms)
}

// SumValue returns the constraint enforcing sum(xs) == v, per
// factory.py's Sum(x, y=None, v=None) constant form.
func SumValue(xs []IntVar, v int) (Constraint, error) {
	zero, err := NewIntVarRange(xs[0].Solver(), -v, -v)
	if err != nil {
		return nil, err
	}
	return newSum(append(append([]IntVar{}, xs...), zero))
}

// AllDifferent returns the pairwise-decomposed all-different constraint,
// per factory.py's default all_different (the stronger, domain-
// consistent variant is out of scope here, as it is left to
// all_different_dc in the reference).
func AllDifferent(xs []IntVar) (Constraint, error) { return newAllDifferentBinary(xs) }

// NewIntVarArrayRange creates n variables, each with domain [min,max].
func NewIntVarArrayRange(s Solver, n, min, max int) ([]IntVar, error) {
	vars := make([]IntVar, n)
	for i := 0; i < n; i++ {
		v, err := NewIntVarRange(s, min, max)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return vars, nil
}

// NewIntVarArraySize creates n variables, each with domain {0,...,sz-1}.
func NewIntVarArraySize(s Solver, n, sz int) ([]IntVar, error) {
	vars := make([]IntVar, n)
	for i := 0; i < n; i++ {
		v, err := NewIntVarSize(s, sz)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return vars, nil
}

// NewDFS wraps NewDFSearch using the solver's own state manager, the
// common entry point mirroring factory.py's make_dfs(cp, branching).
func NewDFS(s Solver, branching Branching) *DFSearch {
	return NewDFSearch(s.StateManager(), branching)
}
