package grid

import "github.com/hnimtadd/knitchart/chart/point"

// ShiftDirection is the direction a row (or column) rotates in.
type ShiftDirection int

const (
	// ShiftLeft moves every cell toward index 0; the first cell wraps to
	// the end.
	ShiftLeft ShiftDirection = iota
	// ShiftRight moves every cell toward the end; the last cell wraps to
	// index 0.
	ShiftRight
)

func (d ShiftDirection) String() string {
	switch d {
	case ShiftLeft:
		return "left"
	case ShiftRight:
		return "right"
	default:
		return "unknown"
	}
}

// ShiftRows rotates every row of g by one column in place.
func ShiftRows(g Grid, direction ShiftDirection) {
	cols := g.Cols()
	if cols < 2 {
		return
	}

	// offset: added to a source column (mod cols) to get its destination.
	// tmpFrom: the cell that would be overwritten before it is read; it is
	//          parked in a temporary.
	// tmpTo: where the parked cell lands once the walk is done.
	// start, end, step: the walk over source columns, inclusive.
	var offset, tmpFrom, tmpTo, start, end, step int
	switch direction {
	case ShiftLeft:
		offset, tmpFrom, tmpTo, start, end, step = cols-1, 0, cols-1, 1, cols-1, 1
	case ShiftRight:
		offset, tmpFrom, tmpTo, start, end, step = 1, cols-1, 0, cols-2, 0, -1
	default:
		panic("unknown shift direction")
	}

	for row := range g.Rows() {
		temp := g.Cell(row, tmpFrom)
		for from := start; from != end+step; from += step {
			to := (from + offset) % cols
			g.SetCell(row, to, g.Cell(row, from))
		}
		g.SetCell(row, tmpTo, temp)
	}
}

// ShiftCols rotates every column of g by one row in place. ShiftLeft moves
// cells up. It shifts the rows of a transposed view over the same cells.
func ShiftCols(g Grid, direction ShiftDirection) {
	ShiftRows(NewTransposedGrid(point.GridTemp, g), direction)
}
