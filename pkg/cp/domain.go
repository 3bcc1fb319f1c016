package cp

import (
	"strconv"
	"strings"
)

// DomainListener receives notifications from an IntDomain's mutator
// methods. The order in which methods fire for a given mutator is
// fixed per-mutator (see each IntDomain method's doc) and is part of
// the contract relied on by IntVar's event scheduling.
type DomainListener interface {
	// Empty is called whenever the domain becomes empty.
	Empty()
	// Fix is called whenever the domain becomes a single value.
	Fix()
	// Change is called whenever the domain loses a value.
	Change()
	// ChangeMin is called whenever the domain's minimum value is lost.
	ChangeMin()
	// ChangeMax is called whenever the domain's maximum value is lost.
	ChangeMax()
}

// IntDomain is a mutable set of integers, encapsulated inside an
// IntVar. Every mutator takes a DomainListener and fires its methods
// according to the table documented on each method.
type IntDomain interface {
	Min() int
	Max() int
	Size() int
	Contains(v int) bool
	IsSingleton() bool

	// Remove removes v. Listener, only if v was present: Empty if the
	// domain is empty afterward; then Change; ChangeMax if v was the max;
	// ChangeMin if v was the min; Fix if the domain has one value
	// afterward.
	Remove(v int, l DomainListener)

	// RemoveAllBut removes every value except v. Listener: Fix and
	// Change if v was present and the domain had more than one value;
	// ChangeMax/ChangeMin if v was not the prior max/min; Empty (and
	// nothing else) if v was not present.
	RemoveAllBut(v int, l DomainListener)

	// RemoveBelow removes every value strictly less than v. Listener:
	// Empty if the domain becomes empty; otherwise Fix (if singleton),
	// ChangeMin and Change.
	RemoveBelow(v int, l DomainListener)

	// RemoveAbove removes every value strictly greater than v.
	// Symmetrical to RemoveBelow with ChangeMax in place of ChangeMin.
	RemoveAbove(v int, l DomainListener)

	// FillArray copies the domain's values, in unspecified order, into
	// dest and returns the count written.
	FillArray(dest []int) int

	String() string
}

// SparseSetDomain is the IntDomain implementation backed by a
// StateSparseSet.
type SparseSetDomain struct {
	set *StateSparseSet
}

// NewSparseSetDomain creates a domain equal to the closed interval
// [min, max].
func NewSparseSetDomain(sm StateManager, min, max int) *SparseSetDomain {
	return &SparseSetDomain{set: NewStateSparseSet(sm, max-min+1, min)}
}

func (d *SparseSetDomain) FillArray(dest []int) int { return d.set.FillArray(dest) }
func (d *SparseSetDomain) Min() int                 { return d.set.Min() }
func (d *SparseSetDomain) Max() int                 { return d.set.Max() }
func (d *SparseSetDomain) Size() int                { return d.set.Size() }
func (d *SparseSetDomain) Contains(v int) bool       { return d.set.Contains(v) }
func (d *SparseSetDomain) IsSingleton() bool         { return d.set.Size() == 1 }

func (d *SparseSetDomain) Remove(v int, l DomainListener) {
	if !d.set.Contains(v) {
		return
	}
	maxChanged := d.Max() == v
	minChanged := d.Min() == v
	d.set.Remove(v)
	if d.set.Size() == 0 {
		l.Empty()
	}
	l.Change()
	if maxChanged {
		l.ChangeMax()
	}
	if minChanged {
		l.ChangeMin()
	}
	if d.set.Size() == 1 {
		l.Fix()
	}
}

func (d *SparseSetDomain) RemoveAllBut(v int, l DomainListener) {
	if d.set.Contains(v) {
		if d.set.Size() != 1 {
			maxChanged := d.Max() != v
			minChanged := d.Min() != v
			d.set.RemoveAllBut(v)
			if d.set.Size() == 0 {
				l.Empty()
			}
			l.Fix()
			l.Change()
			if maxChanged {
				l.ChangeMax()
			}
			if minChanged {
				l.ChangeMin()
			}
		}
	} else {
		d.set.RemoveAll()
		l.Empty()
	}
}

func (d *SparseSetDomain) RemoveBelow(value int, l DomainListener) {
	if d.Min() >= value {
		return
	}
	d.set.RemoveBelow(value)
	switch {
	case d.set.Size() == 0:
		l.Empty()
	case d.set.Size() == 1:
		l.Fix()
		l.ChangeMin()
		l.Change()
	default:
		l.ChangeMin()
		l.Change()
	}
}

func (d *SparseSetDomain) RemoveAbove(value int, l DomainListener) {
	if d.Max() <= value {
		return
	}
	d.set.RemoveAbove(value)
	switch {
	case d.set.Size() == 0:
		l.Empty()
	case d.set.Size() == 1:
		l.Fix()
		l.ChangeMax()
		l.Change()
	default:
		l.ChangeMax()
		l.Change()
	}
}

func (d *SparseSetDomain) String() string {
	if d.Size() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := d.Min(); i < d.Max(); i++ {
		if d.Contains(i) {
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(',')
		}
	}
	b.WriteString(strconv.Itoa(d.Max()))
	b.WriteByte('}')
	return b.String()
}
