package grid

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// TransposedGrid swaps rows and columns of its base. It is the one
// writable view: writes land in the base at the swapped coordinates.
type TransposedGrid struct {
	id   point.GridID
	base Grid
}

var _ Grid = (*TransposedGrid)(nil)

func NewTransposedGrid(id point.GridID, base Grid) *TransposedGrid {
	return &TransposedGrid{id: id, base: base}
}

func (g *TransposedGrid) ID() point.GridID { return g.id }

func (g *TransposedGrid) CellID(row, col int) point.CellID {
	return g.base.CellID(col, row)
}

func (g *TransposedGrid) Rows() int { return g.base.Cols() }
func (g *TransposedGrid) Cols() int { return g.base.Rows() }

func (g *TransposedGrid) Cell(row, col int) color.Color {
	return g.base.Cell(col, row)
}

func (g *TransposedGrid) SetCell(row, col int, value color.Color) {
	g.base.SetCell(col, row, value)
}

func (g *TransposedGrid) Clear() {
	clearCells(g)
}
