package grid

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// InvertedGrid shows the toggled color of every base cell. Read-only.
type InvertedGrid struct {
	id   point.GridID
	base Grid
}

var _ Grid = (*InvertedGrid)(nil)

func NewInvertedGrid(id point.GridID, base Grid) *InvertedGrid {
	return &InvertedGrid{id: id, base: base}
}

func (g *InvertedGrid) ID() point.GridID { return g.id }

func (g *InvertedGrid) CellID(row, col int) point.CellID {
	return g.base.CellID(row, col)
}

func (g *InvertedGrid) Rows() int { return g.base.Rows() }
func (g *InvertedGrid) Cols() int { return g.base.Cols() }

func (g *InvertedGrid) Cell(row, col int) color.Color {
	return g.base.Cell(row, col).Toggle()
}

func (g *InvertedGrid) SetCell(int, int, color.Color) {}
func (g *InvertedGrid) Clear()                         {}
