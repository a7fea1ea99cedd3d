package grid

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// MetaGrid stretches every base cell into a block of "meta pixels". The
// height of base row i is rowRuns[i] and the width of base column j is
// colRuns[j]. Mutating a MetaGrid panics with ErrReadOnly.
type MetaGrid struct {
	id   point.GridID
	base Grid

	rowTable []int
	colTable []int
}

var _ Grid = (*MetaGrid)(nil)

// NewMetaGrid expands both run-length vectors once. Every base index
// that a run refers to must exist in base.
func NewMetaGrid(id point.GridID, base Grid, rowRuns, colRuns []uint8) (*MetaGrid, error) {
	rowTable := ExpandRunLengths(rowRuns)
	colTable := ExpandRunLengths(colRuns)
	if n := len(rowTable); n > 0 && rowTable[n-1] >= base.Rows() {
		return nil, &ConfigurationError{
			Grid: id,
			Message: fmt.Sprintf(
				"row runs address base row %d but base has %d rows",
				rowTable[n-1], base.Rows(),
			),
		}
	}
	if n := len(colTable); n > 0 && colTable[n-1] >= base.Cols() {
		return nil, &ConfigurationError{
			Grid: id,
			Message: fmt.Sprintf(
				"col runs address base col %d but base has %d cols",
				colTable[n-1], base.Cols(),
			),
		}
	}
	return &MetaGrid{
		id:       id,
		base:     base,
		rowTable: rowTable,
		colTable: colTable,
	}, nil
}

// RowTable maps every meta row to its base row.
func (g *MetaGrid) RowTable() []int { return g.rowTable }

// ColTable maps every meta column to its base column.
func (g *MetaGrid) ColTable() []int { return g.colTable }

func (g *MetaGrid) toBase(row, col int) (int, int) {
	assertInBounds(g.id, row, col, g.Rows(), g.Cols())
	return g.rowTable[row], g.colTable[col]
}

func (g *MetaGrid) ID() point.GridID { return g.id }

func (g *MetaGrid) CellID(row, col int) point.CellID {
	return g.base.CellID(g.toBase(row, col))
}

func (g *MetaGrid) Rows() int { return len(g.rowTable) }
func (g *MetaGrid) Cols() int { return len(g.colTable) }

func (g *MetaGrid) Cell(row, col int) color.Color {
	return g.base.Cell(g.toBase(row, col))
}

func (g *MetaGrid) SetCell(int, int, color.Color) {
	panic(ErrReadOnly)
}

func (g *MetaGrid) Clear() {
	panic(ErrReadOnly)
}
