package grid

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// FlippedGrid mirrors its base left to right. Read-only.
type FlippedGrid struct {
	id   point.GridID
	base Grid
}

var _ Grid = (*FlippedGrid)(nil)

func NewFlippedGrid(id point.GridID, base Grid) *FlippedGrid {
	return &FlippedGrid{id: id, base: base}
}

func (g *FlippedGrid) toBase(col int) int {
	return g.base.Cols() - col - 1
}

func (g *FlippedGrid) ID() point.GridID { return g.id }

func (g *FlippedGrid) CellID(row, col int) point.CellID {
	assertInBounds(g.id, row, col, g.Rows(), g.Cols())
	return g.base.CellID(row, g.toBase(col))
}

func (g *FlippedGrid) Rows() int { return g.base.Rows() }
func (g *FlippedGrid) Cols() int { return g.base.Cols() }

func (g *FlippedGrid) Cell(row, col int) color.Color {
	assertInBounds(g.id, row, col, g.Rows(), g.Cols())
	return g.base.Cell(row, g.toBase(col))
}

func (g *FlippedGrid) SetCell(int, int, color.Color) {}
func (g *FlippedGrid) Clear()                         {}
