package grid

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/utils"
)

// TiledGrid repeats its base repeatRows times down and repeatCols times
// across. Mutating a TiledGrid panics with ErrReadOnly.
type TiledGrid struct {
	id         point.GridID
	base       Grid
	repeatRows int
	repeatCols int
}

var _ Grid = (*TiledGrid)(nil)

func NewTiledGrid(id point.GridID, base Grid, repeatRows, repeatCols int) *TiledGrid {
	utils.Assert(repeatRows >= 0 && repeatCols >= 0, "tile repeats must not be negative")
	return &TiledGrid{
		id:         id,
		base:       base,
		repeatRows: repeatRows,
		repeatCols: repeatCols,
	}
}

func (g *TiledGrid) toBase(row, col int) (int, int) {
	assertInBounds(g.id, row, col, g.Rows(), g.Cols())
	return row % g.base.Rows(), col % g.base.Cols()
}

func (g *TiledGrid) ID() point.GridID { return g.id }

func (g *TiledGrid) CellID(row, col int) point.CellID {
	return g.base.CellID(g.toBase(row, col))
}

func (g *TiledGrid) Rows() int { return g.repeatRows * g.base.Rows() }
func (g *TiledGrid) Cols() int { return g.repeatCols * g.base.Cols() }

func (g *TiledGrid) Cell(row, col int) color.Color {
	return g.base.Cell(g.toBase(row, col))
}

func (g *TiledGrid) SetCell(int, int, color.Color) {
	panic(ErrReadOnly)
}

func (g *TiledGrid) Clear() {
	panic(ErrReadOnly)
}
