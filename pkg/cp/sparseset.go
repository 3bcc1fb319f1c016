package cp

// StateSparseSet is a reversible set over the contiguous integer range
// [ofs, ofs+n-1]. It follows the classic sparse-set shape (dense array
// of values plus an inverse-index array) used for O(1) membership,
// insert and remove, generalized here with reversible size/min/max so
// that a whole sequence of removals undoes in O(1) per frame: only
// size, min and max are ever snapshotted or trailed — the dense/sparse
// arrays are permuted in place but never need their own undo log,
// because membership is defined purely by sparse[v] < size.
type StateSparseSet struct {
	dense  []int // dense[i] is the i-th offset value, in swap order
	sparse []int // sparse[offset] is the position of that offset in dense
	ofs    int
	n      int
	size   StateInt
	min    StateInt
	max    StateInt
}

// NewStateSparseSet creates a set initially containing every value in
// [ofs, ofs+n-1].
func NewStateSparseSet(sm StateManager, n, ofs int) *StateSparseSet {
	dense := make([]int, n)
	sparse := make([]int, n)
	for i := 0; i < n; i++ {
		dense[i] = i
		sparse[i] = i
	}
	return &StateSparseSet{
		dense:  dense,
		sparse: sparse,
		ofs:    ofs,
		n:      n,
		size:   sm.MakeStateInt(n),
		min:    sm.MakeStateInt(0),
		max:    sm.MakeStateInt(n - 1),
	}
}

// Size returns the number of present values.
func (s *StateSparseSet) Size() int { return s.size.Value() }

// IsEmpty reports whether the set has no present values.
func (s *StateSparseSet) IsEmpty() bool { return s.Size() == 0 }

// Min returns the smallest present value. Unspecified when empty.
func (s *StateSparseSet) Min() int { return s.min.Value() + s.ofs }

// Max returns the largest present value. Unspecified when empty.
func (s *StateSparseSet) Max() int { return s.max.Value() + s.ofs }

// Contains reports whether v is present.
func (s *StateSparseSet) Contains(v int) bool {
	i := v - s.ofs
	if i < 0 || i >= s.n {
		return false
	}
	return s.sparse[i] < s.size.Value()
}

func (s *StateSparseSet) exchangePositions(v1, v2 int) {
	i1, i2 := v1-s.ofs, v2-s.ofs
	p1, p2 := s.sparse[i1], s.sparse[i2]
	s.dense[p1], s.dense[p2] = i2, i1
	s.sparse[i1], s.sparse[i2] = p2, p1
}

// Remove removes v, returning true iff it was present. O(1) beyond a
// bounded inward scan to find a new min/max if v was a boundary.
func (s *StateSparseSet) Remove(v int) bool {
	if !s.Contains(v) {
		return false
	}
	wasMin := v == s.Min()
	wasMax := v == s.Max()

	size := s.size.Value()
	last := s.dense[size-1] + s.ofs
	s.exchangePositions(v, last)
	s.size.SetValue(size - 1)

	if s.IsEmpty() {
		return true
	}
	if wasMin {
		m := s.min.Value() + 1
		for m <= s.max.Value() && !s.Contains(m+s.ofs) {
			m++
		}
		s.min.SetValue(m)
	}
	if wasMax {
		m := s.max.Value() - 1
		for m >= s.min.Value() && !s.Contains(m+s.ofs) {
			m--
		}
		s.max.SetValue(m)
	}
	return true
}

// RemoveAllBut keeps only v, which must be present. Sets size to 1 and
// min == max == v.
func (s *StateSparseSet) RemoveAllBut(v int) {
	i := v - s.ofs
	first := s.dense[0] + s.ofs
	s.exchangePositions(v, first)
	s.size.SetValue(1)
	s.min.SetValue(i)
	s.max.SetValue(i)
}

// RemoveAll empties the set.
func (s *StateSparseSet) RemoveAll() { s.size.SetValue(0) }

// RemoveBelow removes every present value strictly less than k.
func (s *StateSparseSet) RemoveBelow(k int) {
	if s.Max() < k {
		s.RemoveAll()
		return
	}
	for v := s.Min(); v < k; v = s.Min() {
		s.Remove(v)
	}
}

// RemoveAbove removes every present value strictly greater than k.
func (s *StateSparseSet) RemoveAbove(k int) {
	if s.Min() > k {
		s.RemoveAll()
		return
	}
	for v := s.Max(); v > k; v = s.Max() {
		s.Remove(v)
	}
}

// FillArray copies the present values, in internal (swap) order, into
// dest (which must be at least Size() long) and returns their count.
func (s *StateSparseSet) FillArray(dest []int) int {
	sz := s.size.Value()
	for i := 0; i < sz; i++ {
		dest[i] = s.dense[i] + s.ofs
	}
	return sz
}
