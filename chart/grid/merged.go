package grid

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// MergedGrid interleaves the columns of two equally sized grids. Even
// columns come from the second grid and odd columns from the first, so on
// a chart the first grid's stitches sit to the right of the second's.
// Read-only.
type MergedGrid struct {
	id  point.GridID
	one Grid
	two Grid
}

var _ Grid = (*MergedGrid)(nil)

// NewMergedGrid fails when one and two differ in size.
func NewMergedGrid(id point.GridID, one, two Grid) (*MergedGrid, error) {
	if one.Rows() != two.Rows() || one.Cols() != two.Cols() {
		return nil, &ConfigurationError{
			Grid: id,
			Message: fmt.Sprintf(
				"grids must be same size. grid one: (%d, %d), grid two: (%d, %d)",
				one.Rows(), one.Cols(), two.Rows(), two.Cols(),
			),
		}
	}
	return &MergedGrid{id: id, one: one, two: two}, nil
}

func (g *MergedGrid) locate(row, col int) (Grid, int, int) {
	assertInBounds(g.id, row, col, g.Rows(), g.Cols())
	if col%2 == 0 {
		return g.two, row, col / 2
	}
	return g.one, row, col / 2
}

func (g *MergedGrid) ID() point.GridID { return g.id }

func (g *MergedGrid) CellID(row, col int) point.CellID {
	base, baseRow, baseCol := g.locate(row, col)
	return base.CellID(baseRow, baseCol)
}

func (g *MergedGrid) Rows() int { return g.one.Rows() }
func (g *MergedGrid) Cols() int { return g.one.Cols() + g.two.Cols() }

func (g *MergedGrid) Cell(row, col int) color.Color {
	base, baseRow, baseCol := g.locate(row, col)
	return base.Cell(baseRow, baseCol)
}

func (g *MergedGrid) SetCell(int, int, color.Color) {}
func (g *MergedGrid) Clear()                         {}
