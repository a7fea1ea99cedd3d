package grid

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/utils"
)

// SimpleGrid owns exactly rows*cols cells and never changes size.
type SimpleGrid struct {
	id     point.GridID
	cells  []color.Color
	height int
	width  int
}

var _ Grid = (*SimpleGrid)(nil)

func NewSimpleGrid(id point.GridID, rows, cols int) *SimpleGrid {
	utils.Assert(rows >= 0 && cols >= 0, "grid dimensions must not be negative")
	return &SimpleGrid{
		id:     id,
		cells:  make([]color.Color, rows*cols),
		height: rows,
		width:  cols,
	}
}

func (g *SimpleGrid) index(row, col int) int {
	assertInBounds(g.id, row, col, g.height, g.width)
	return row*g.width + col
}

func (g *SimpleGrid) ID() point.GridID { return g.id }

func (g *SimpleGrid) CellID(row, col int) point.CellID {
	assertInBounds(g.id, row, col, g.height, g.width)
	return point.NewCellID(g.id, row, col)
}

func (g *SimpleGrid) Rows() int { return g.height }
func (g *SimpleGrid) Cols() int { return g.width }

func (g *SimpleGrid) Cell(row, col int) color.Color {
	return g.cells[g.index(row, col)]
}

func (g *SimpleGrid) SetCell(row, col int, value color.Color) {
	g.cells[g.index(row, col)] = value
}

func (g *SimpleGrid) Clear() {
	clear(g.cells)
}
