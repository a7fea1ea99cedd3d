// Package grid holds the chart data model: rectangular matrices of
// colors, the views that derive one grid from another, and the tools that
// rearrange a grid in place.
//
// Every grid reports a point.GridID. Views never own their bases; they
// are cheap to build and are meant to be rebuilt for every render pass.
// A view resolves CellID down to the base grid that stores the color, so
// pointer input observed through any chain of views paints the right
// cell.
package grid

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Grid is a matrix of colors addressed by (row, col).
//
// Cell and SetCell require row in [0, Rows()) and col in [0, Cols());
// anything else panics with an *IndexError. Read-only views ignore
// SetCell and Clear unless documented otherwise.
type Grid interface {
	ID() point.GridID
	CellID(row, col int) point.CellID

	Rows() int
	Cols() int

	Cell(row, col int) color.Color
	SetCell(row, col int, value color.Color)

	// Clear sets every cell to White.
	Clear()
}

// ErrReadOnly is the panic value of mutating a view that forbids it.
var ErrReadOnly = errors.New("grid: read-only view")

// IndexError reports an access outside a grid's bounds.
type IndexError struct {
	Grid       point.GridID
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(
		"grid: index (%d, %d) out of range for %s grid of %dx%d",
		e.Row, e.Col, e.Grid, e.Rows, e.Cols,
	)
}

// ConfigurationError reports geometry that a grid or view cannot accept.
type ConfigurationError struct {
	Grid    point.GridID
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("grid: invalid configuration for %s grid: %s", e.Grid, e.Message)
}

// Contains reports whether (row, col) is addressable in g.
func Contains(g Grid, row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

func assertInBounds(id point.GridID, row, col, rows, cols int) {
	utils.AssertErr(
		row >= 0 && row < rows && col >= 0 && col < cols,
		func() error {
			return &IndexError{Grid: id, Row: row, Col: col, Rows: rows, Cols: cols}
		},
	)
}

// clearCells is the generic Clear for grids without a faster path.
func clearCells(g Grid) {
	for row := range g.Rows() {
		for col := range g.Cols() {
			g.SetCell(row, col, color.White)
		}
	}
}

type fingerprint struct {
	ID    point.GridID
	Rows  int
	Cols  int
	Cells []color.Color
}

// Fingerprint hashes the visible contents of g. Shells use it to skip
// persisting state that did not change.
func Fingerprint(g Grid) uint64 {
	fp := fingerprint{
		ID:    g.ID(),
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([]color.Color, 0, g.Rows()*g.Cols()),
	}
	for row := range g.Rows() {
		for col := range g.Cols() {
			fp.Cells = append(fp.Cells, g.Cell(row, col))
		}
	}
	hashed, err := hashstructure.Hash(fp, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash grid: %v", err))
	return hashed
}
