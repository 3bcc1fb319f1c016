package cp

import "fmt"

// floorDiv and ceilDiv implement true floor/ceil division toward ±∞
// (never truncation), matching the scaled view's remove_below /
// remove_above contract across signs.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// ---------------------------------------------------------------------
// Offset view: y = x + o
// ---------------------------------------------------------------------

type intVarViewOffset struct {
	x IntVar
	o int
}

// NewOffsetView returns a variable that is a view of x+o. Construction
// rejects an offset that would push either endpoint to the rejected
// 32-bit boundary values.
func NewOffsetView(x IntVar, o int) (IntVar, error) {
	newMin := int64(x.Min()) + int64(o)
	newMax := int64(x.Max()) + int64(o)
	if newMin <= minValue || newMax >= maxValue {
		return nil, fmt.Errorf("%w: offset view would exceed the 32-bit signed range", ErrOverflow)
	}
	return &intVarViewOffset{x: x, o: o}, nil
}

func (v *intVarViewOffset) Solver() Solver       { return v.x.Solver() }
func (v *intVarViewOffset) Min() int             { return v.x.Min() + v.o }
func (v *intVarViewOffset) Max() int             { return v.x.Max() + v.o }
func (v *intVarViewOffset) Size() int            { return v.x.Size() }
func (v *intVarViewOffset) Contains(val int) bool { return v.x.Contains(val - v.o) }
func (v *intVarViewOffset) IsFixed() bool        { return v.x.IsFixed() }

func (v *intVarViewOffset) Remove(val int) error      { return v.x.Remove(val - v.o) }
func (v *intVarViewOffset) Fix(val int) error         { return v.x.Fix(val - v.o) }
func (v *intVarViewOffset) RemoveBelow(val int) error { return v.x.RemoveBelow(val - v.o) }
func (v *intVarViewOffset) RemoveAbove(val int) error { return v.x.RemoveAbove(val - v.o) }

func (v *intVarViewOffset) FillArray(dest []int) int {
	n := v.x.FillArray(dest)
	for i := 0; i < n; i++ {
		dest[i] += v.o
	}
	return n
}

func (v *intVarViewOffset) WhenFixed(f func())       { v.x.WhenFixed(f) }
func (v *intVarViewOffset) WhenBoundChange(f func()) { v.x.WhenBoundChange(f) }
func (v *intVarViewOffset) WhenDomainChange(f func()) { v.x.WhenDomainChange(f) }
func (v *intVarViewOffset) onDomainChange(c Constraint) { v.x.onDomainChange(c) }
func (v *intVarViewOffset) onFixed(c Constraint)        { v.x.onFixed(c) }
func (v *intVarViewOffset) onBoundChange(c Constraint)  { v.x.onBoundChange(c) }
func (v *intVarViewOffset) String() string              { return fmt.Sprintf("(%s+%d)", v.x, v.o) }

// ---------------------------------------------------------------------
// Opposite view: y = -x
// ---------------------------------------------------------------------

type intVarViewOpposite struct{ x IntVar }

// NewOppositeView returns a variable that is a view of -x.
func NewOppositeView(x IntVar) IntVar { return &intVarViewOpposite{x: x} }

func (v *intVarViewOpposite) Solver() Solver       { return v.x.Solver() }
func (v *intVarViewOpposite) Min() int             { return -v.x.Max() }
func (v *intVarViewOpposite) Max() int             { return -v.x.Min() }
func (v *intVarViewOpposite) Size() int            { return v.x.Size() }
func (v *intVarViewOpposite) Contains(val int) bool { return v.x.Contains(-val) }
func (v *intVarViewOpposite) IsFixed() bool        { return v.x.IsFixed() }

func (v *intVarViewOpposite) Remove(val int) error      { return v.x.Remove(-val) }
func (v *intVarViewOpposite) Fix(val int) error         { return v.x.Fix(-val) }
func (v *intVarViewOpposite) RemoveBelow(val int) error { return v.x.RemoveAbove(-val) }
func (v *intVarViewOpposite) RemoveAbove(val int) error { return v.x.RemoveBelow(-val) }

func (v *intVarViewOpposite) FillArray(dest []int) int {
	n := v.x.FillArray(dest)
	for i := 0; i < n; i++ {
		dest[i] = -dest[i]
	}
	return n
}

func (v *intVarViewOpposite) WhenFixed(f func())        { v.x.WhenFixed(f) }
func (v *intVarViewOpposite) WhenBoundChange(f func())  { v.x.WhenBoundChange(f) }
func (v *intVarViewOpposite) WhenDomainChange(f func()) { v.x.WhenDomainChange(f) }
func (v *intVarViewOpposite) onDomainChange(c Constraint) { v.x.onDomainChange(c) }
func (v *intVarViewOpposite) onFixed(c Constraint)        { v.x.onFixed(c) }
func (v *intVarViewOpposite) onBoundChange(c Constraint)  { v.x.onBoundChange(c) }
func (v *intVarViewOpposite) String() string              { return fmt.Sprintf("(-%s)", v.x) }

// ---------------------------------------------------------------------
// Scaled view: y = a*x (a != 0, sign-aware so a general factory can
// realize negative factors by composing with Opposite)
// ---------------------------------------------------------------------

type intVarViewMul struct {
	x IntVar
	a int
}

// NewScaledView returns a variable that is a view of a*x. Construction
// rejects a factor that would push either endpoint to the rejected
// 32-bit boundary values. a must not be zero (callers fold a==0 into a
// fixed-at-0 variable and a==1 into x itself before reaching here, as
// the reference factory does).
func NewScaledView(x IntVar, a int) (IntVar, error) {
	if a == 0 {
		return nil, fmt.Errorf("%w: scale factor must not be zero", ErrInvalidArgument)
	}
	lo := (int64(1) + int64(x.Min())) * int64(a)
	hi := (int64(1) + int64(x.Max())) * int64(a)
	if lo <= minValue || hi >= maxValue {
		return nil, fmt.Errorf("%w: scaled view would exceed the 32-bit signed range", ErrOverflow)
	}
	return &intVarViewMul{x: x, a: a}, nil
}

func (v *intVarViewMul) Solver() Solver { return v.x.Solver() }

func (v *intVarViewMul) Min() int {
	if v.a >= 0 {
		return v.a * v.x.Min()
	}
	return v.a * v.x.Max()
}

func (v *intVarViewMul) Max() int {
	if v.a >= 0 {
		return v.a * v.x.Max()
	}
	return v.a * v.x.Min()
}

func (v *intVarViewMul) Size() int { return v.x.Size() }
func (v *intVarViewMul) IsFixed() bool { return v.x.IsFixed() }

func (v *intVarViewMul) Contains(val int) bool {
	return val%v.a == 0 && v.x.Contains(val/v.a)
}

func (v *intVarViewMul) Remove(val int) error {
	if val%v.a != 0 {
		return nil
	}
	return v.x.Remove(val / v.a)
}

func (v *intVarViewMul) Fix(val int) error {
	if val%v.a != 0 {
		return ErrInconsistency
	}
	return v.x.Fix(val / v.a)
}

func (v *intVarViewMul) RemoveBelow(val int) error {
	if v.a > 0 {
		return v.x.RemoveBelow(ceilDiv(val, v.a))
	}
	return v.x.RemoveAbove(floorDiv(val, v.a))
}

func (v *intVarViewMul) RemoveAbove(val int) error {
	if v.a > 0 {
		return v.x.RemoveAbove(floorDiv(val, v.a))
	}
	return v.x.RemoveBelow(ceilDiv(val, v.a))
}

func (v *intVarViewMul) FillArray(dest []int) int {
	n := v.x.FillArray(dest)
	for i := 0; i < n; i++ {
		dest[i] *= v.a
	}
	return n
}

func (v *intVarViewMul) WhenFixed(f func())        { v.x.WhenFixed(f) }
func (v *intVarViewMul) WhenBoundChange(f func())  { v.x.WhenBoundChange(f) }
func (v *intVarViewMul) WhenDomainChange(f func()) { v.x.WhenDomainChange(f) }
func (v *intVarViewMul) onDomainChange(c Constraint) { v.x.onDomainChange(c) }
func (v *intVarViewMul) onFixed(c Constraint)        { v.x.onFixed(c) }
func (v *intVarViewMul) onBoundChange(c Constraint)  { v.x.onBoundChange(c) }
func (v *intVarViewMul) String() string              { return fmt.Sprintf("(%d*%s)", v.a, v.x) }

// ---------------------------------------------------------------------
// BoolVar
// ---------------------------------------------------------------------

// BoolVar is an IntVar whose domain is a subset of {0,1}.
type BoolVar interface {
	IntVar
	IsTrue() bool
	IsFalse() bool
	FixBool(b bool) error
}

// boolVarImpl wraps a fresh (or existing) 0/1-domain IntVar.
type boolVarImpl struct{ x IntVar }

// NewBoolVar creates an un-instantiated boolean variable.
func NewBoolVar(s Solver) (BoolVar, error) {
	x, err := NewIntVarRange(s, 0, 1)
	if err != nil {
		return nil, err
	}
	return &boolVarImpl{x: x}, nil
}

// wrapBoolVar adapts an existing 0/1 IntVar (typically a view) into a
// BoolVar, as the reference Not() does.
func wrapBoolVar(x IntVar) BoolVar { return &boolVarImpl{x: x} }

func (b *boolVarImpl) Solver() Solver        { return b.x.Solver() }
func (b *boolVarImpl) Min() int              { return b.x.Min() }
func (b *boolVarImpl) Max() int              { return b.x.Max() }
func (b *boolVarImpl) Size() int             { return b.x.Size() }
func (b *boolVarImpl) Contains(val int) bool { return b.x.Contains(val) }
func (b *boolVarImpl) IsFixed() bool         { return b.x.IsFixed() }
func (b *boolVarImpl) Remove(val int) error      { return b.x.Remove(val) }
func (b *boolVarImpl) Fix(val int) error         { return b.x.Fix(val) }
func (b *boolVarImpl) RemoveBelow(val int) error { return b.x.RemoveBelow(val) }
func (b *boolVarImpl) RemoveAbove(val int) error { return b.x.RemoveAbove(val) }
func (b *boolVarImpl) FillArray(dest []int) int  { return b.x.FillArray(dest) }
func (b *boolVarImpl) WhenFixed(f func())        { b.x.WhenFixed(f) }
func (b *boolVarImpl) WhenBoundChange(f func())  { b.x.WhenBoundChange(f) }
func (b *boolVarImpl) WhenDomainChange(f func()) { b.x.WhenDomainChange(f) }
func (b *boolVarImpl) onDomainChange(c Constraint) { b.x.onDomainChange(c) }
func (b *boolVarImpl) onFixed(c Constraint)        { b.x.onFixed(c) }
func (b *boolVarImpl) onBoundChange(c Constraint)  { b.x.onBoundChange(c) }
func (b *boolVarImpl) String() string              { return b.x.String() }

func (b *boolVarImpl) IsTrue() bool  { return b.x.IsFixed() && b.x.Min() == 1 }
func (b *boolVarImpl) IsFalse() bool { return b.x.IsFixed() && b.x.Min() == 0 }

// FixBool fixes the variable to true or false; either form of the
// reference fix(b=None, v=None) dual constructor is sufficient, so
// only the boolean form is exposed here.
func (b *boolVarImpl) FixBool(v bool) error {
	if v {
		return b.x.Fix(1)
	}
	return b.x.Fix(0)
}

// Not returns a boolean variable that is a view of !b, realized as
// plus(minus(b), 1) i.e. the view (1 - b).
func Not(b BoolVar) BoolVar {
	opp := NewOppositeView(b)
	off, err := NewOffsetView(opp, 1)
	if err != nil {
		// b is already boolean-bounded; 1-b can never overflow.
		panic(err)
	}
	return wrapBoolVar(off)
}
