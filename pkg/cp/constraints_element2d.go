package cp

import (
	"fmt"
	"sort"
)

// element2DTriple is one (row, col, value) cell of the constant matrix,
// pre-sorted by value so the propagation window can be maintained with
// two monotone cursors instead of a full rescan.
type element2DTriple struct{ row, col, val int }

// element2DConstraint enforces z == matrix[x][y]. Grounded on
// constraint.py's Element2D: matrix cells are flattened into a
// value-sorted triple list; low/up cursors (reversible) bound the
// surviving window of triples consistent with D(x), D(y) and [z.min,
// z.max]; per-row/per-col reversible support counters let a triple
// falling out of the window remove its row from D(x) or column from
// D(y) once no other triple supports it.
type element2DConstraint struct {
	baseConstraint
	x, y, z  IntVar
	triples  []element2DTriple
	low, up  StateInt
	rowSup   []StateInt
	colSup   []StateInt
}

func newElement2D(matrix [][]int, x, y, z IntVar) (*element2DConstraint, error) {
	nRows := len(matrix)
	if nRows == 0 {
		return nil, fmt.Errorf("%w: element2d matrix must have at least one row", ErrInvalidArgument)
	}
	nCols := len(matrix[0])
	triples := make([]element2DTriple, 0, nRows*nCols)
	rowCount := make([]int, nRows)
	colCount := make([]int, nCols)
	for i, row := range matrix {
		if len(row) != nCols {
			return nil, fmt.Errorf("%w: element2d matrix rows must be uniform length", ErrInvalidArgument)
		}
		for j, v := range row {
			triples = append(triples, element2DTriple{row: i, col: j, val: v})
			rowCount[i]++
			colCount[j]++
		}
	}
	sort.Slice(triples, func(a, b int) bool { return triples[a].val < triples[b].val })

	sm := x.Solver().StateManager()
	rowSup := make([]StateInt, nRows)
	for i := range rowSup {
		rowSup[i] = sm.MakeStateInt(rowCount[i])
	}
	colSup := make([]StateInt, nCols)
	for j := range colSup {
		colSup[j] = sm.MakeStateInt(colCount[j])
	}

	c := &element2DConstraint{
		x: x, y: y, z: z,
		triples: triples,
		low:     sm.MakeStateInt(0),
		up:      sm.MakeStateInt(len(triples) - 1),
		rowSup:  rowSup,
		colSup:  colSup,
	}
	c.baseConstraint = newBaseConstraint(sm)
	return c, nil
}

func (c *element2DConstraint) Post() error {
	if err := c.x.RemoveBelow(0); err != nil {
		return err
	}
	if err := c.x.RemoveAbove(len(c.rowSup) - 1); err != nil {
		return err
	}
	if err := c.y.RemoveBelow(0); err != nil {
		return err
	}
	if err := c.y.RemoveAbove(len(c.colSup) - 1); err != nil {
		return err
	}
	c.x.WhenDomainChange(func() { c.x.Solver().Schedule(c) })
	c.y.WhenDomainChange(func() { c.x.Solver().Schedule(c) })
	c.z.WhenBoundChange(func() { c.x.Solver().Schedule(c) })
	return c.Propagate()
}

// loseSupport is called when a triple falls out of the surviving
// window: decrementing its row's and column's support counters, and
// removing the row/column from x/y once a counter reaches zero.
func (c *element2DConstraint) loseSupport(t element2DTriple) error {
	if c.rowSup[t.row].Decrement() == 0 {
		if err := c.x.Remove(t.row); err != nil {
			return err
		}
	}
	if c.colSup[t.col].Decrement() == 0 {
		if err := c.y.Remove(t.col); err != nil {
			return err
		}
	}
	return nil
}

func (c *element2DConstraint) supported(t element2DTriple) bool {
	return c.x.Contains(t.row) && c.y.Contains(t.col)
}

func (c *element2DConstraint) Propagate() error {
	low, up := c.low.Value(), c.up.Value()
	zMin, zMax := c.z.Min(), c.z.Max()

	for low <= up {
		t := c.triples[low]
		if t.val >= zMin && c.supported(t) {
			break
		}
		if err := c.loseSupport(t); err != nil {
			return err
		}
		low++
	}
	c.low.SetValue(low)

	for up >= low {
		t := c.triples[up]
		if t.val <= zMax && c.supported(t) {
			break
		}
		if err := c.loseSupport(t); err != nil {
			return err
		}
		up--
	}
	c.up.SetValue(up)

	if low > up {
		return ErrInconsistency
	}
	if err := c.z.RemoveBelow(c.triples[low].val); err != nil {
		return err
	}
	if err := c.z.RemoveAbove(c.triples[up].val); err != nil {
		return err
	}
	return nil
}
