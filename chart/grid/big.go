package grid

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// The fixed backing capacity of every BigGrid.
const (
	MaxRows = 100
	MaxCols = 100
)

// BigGrid keeps a MaxRows x MaxCols backing store and exposes a logical
// window into it. Resizing only moves the window, so cells painted
// outside the current window come back when the window grows again.
type BigGrid struct {
	id    point.GridID
	cells []color.Color

	height int
	width  int
}

var _ Grid = (*BigGrid)(nil)

// NewBigGrid returns a BigGrid with the given logical size.
func NewBigGrid(id point.GridID, rows, cols int) (*BigGrid, error) {
	g := &BigGrid{
		id:    id,
		cells: make([]color.Color, MaxRows*MaxCols),
	}
	if err := g.Resize(rows, cols); err != nil {
		return nil, err
	}
	return g, nil
}

// The stride is the capacity width, not the logical width.
func (g *BigGrid) index(row, col int) int {
	assertInBounds(g.id, row, col, g.height, g.width)
	return row*MaxCols + col
}

// Resize changes the logical size without touching any cell. Sizes
// outside [0, MaxRows] x [0, MaxCols] are rejected and leave g unchanged.
func (g *BigGrid) Resize(rows, cols int) error {
	if rows < 0 || rows > MaxRows {
		return &ConfigurationError{
			Grid:    g.id,
			Message: fmt.Sprintf("rows (%d) must be in [0, %d]", rows, MaxRows),
		}
	}
	if cols < 0 || cols > MaxCols {
		return &ConfigurationError{
			Grid:    g.id,
			Message: fmt.Sprintf("cols (%d) must be in [0, %d]", cols, MaxCols),
		}
	}
	g.height = rows
	g.width = cols
	return nil
}

func (g *BigGrid) ID() point.GridID { return g.id }

func (g *BigGrid) CellID(row, col int) point.CellID {
	assertInBounds(g.id, row, col, g.height, g.width)
	return point.NewCellID(g.id, row, col)
}

func (g *BigGrid) Rows() int { return g.height }
func (g *BigGrid) Cols() int { return g.width }

func (g *BigGrid) Cell(row, col int) color.Color {
	return g.cells[g.index(row, col)]
}

func (g *BigGrid) SetCell(row, col int, value color.Color) {
	g.cells[g.index(row, col)] = value
}

// Clear wipes the whole backing store, including cells hidden by the
// current window.
func (g *BigGrid) Clear() {
	clear(g.cells)
}

// stored returns a backing-store cell regardless of the logical window.
func (g *BigGrid) stored(row, col int) color.Color {
	return g.cells[row*MaxCols+col]
}
