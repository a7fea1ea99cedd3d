package decorator

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/utils"
)

// Printable keeps cell backgrounds when a chart is printed.
type Printable struct{}

func (Printable) CellClasses(grid.Grid, int, int, color.Color) []string {
	return []string{"prtexact"}
}

func (Printable) Rules() []string {
	return []string{".prtexact { color-adjust:exact; -webkit-print-color-adjust: exact }"}
}

// BorderedCell draws a thin border around every cell.
type BorderedCell struct{}

func (BorderedCell) CellClasses(grid.Grid, int, int, color.Color) []string {
	return []string{"bdrcell"}
}

func (BorderedCell) Rules() []string {
	return []string{".bdrcell { border: 1px solid black }"}
}

// ThickBorders thickens every fifth grid line, counted from the
// bottom-right corner the way knitters count stitches and rows.
type ThickBorders struct {
	skipHoriz bool
	skipVert  bool
}

func NewThickBorders() ThickBorders {
	return ThickBorders{}
}

// ThickHorizontal only thickens horizontal lines. Merged charts use it
// because their columns alternate between two layers.
func ThickHorizontal() ThickBorders {
	return ThickBorders{skipVert: true}
}

func (d ThickBorders) CellClasses(g grid.Grid, row, col int, _ color.Color) []string {
	var classes []string

	// 1-indexed from the bottom-right.
	rowP := g.Rows() - row
	colP := g.Cols() - col

	if !d.skipHoriz && rowP%5 == 0 && row != 0 {
		classes = append(classes, "tcktop")
	}
	if !d.skipVert && colP%5 == 0 && col != 0 {
		classes = append(classes, "tckleft")
	}
	return classes
}

// Rules selects on td so that the thick border overrides bdrcell.
func (ThickBorders) Rules() []string {
	return []string{
		"td.tckleft { border-left: 3px solid black}",
		"td.tcktop { border-top: 3px solid black}",
		"td.tckright { border-right: 3px solid black}",
		"td.tckbottom { border-bottom: 3px solid black}",
	}
}

// RegularSized gives data and label cells a 20px square.
type RegularSized struct{}

func (RegularSized) CellClasses(grid.Grid, int, int, color.Color) []string {
	return []string{"rszcell"}
}

func (RegularSized) LabelClasses(grid.Grid, int) []string {
	return []string{"rszcell"}
}

func (RegularSized) Rules() []string {
	return []string{".rszcell { height: 20px; width: 20px }"}
}

// SmallSized gives data and label cells a 12px square.
type SmallSized struct{}

func (SmallSized) CellClasses(grid.Grid, int, int, color.Color) []string {
	return []string{"sszcell"}
}

func (SmallSized) LabelClasses(grid.Grid, int) []string {
	return []string{"sszcell"}
}

func (SmallSized) Rules() []string {
	return []string{".sszcell { height: 12px; width: 12px; font-size: 8px }"}
}

// MergedBorder separates the column pairs of a merged grid.
type MergedBorder struct{}

func (MergedBorder) CellClasses(_ grid.Grid, _, col int, _ color.Color) []string {
	if col%2 == 0 {
		return []string{"mthick"}
	}
	return nil
}

func (MergedBorder) Rules() []string {
	return []string{"td.mthick{border-left:3px solid black}"}
}

// Metagrid outlines the meta-pixels of a MetaGrid.
type Metagrid struct {
	rowStarts *utils.StaticBitSet
	colStarts *utils.StaticBitSet
}

func NewMetagrid(meta *grid.MetaGrid) *Metagrid {
	return &Metagrid{
		rowStarts: grid.Boundaries(meta.RowTable()),
		colStarts: grid.Boundaries(meta.ColTable()),
	}
}

func (d *Metagrid) CellClasses(_ grid.Grid, row, col int, _ color.Color) []string {
	var classes []string
	if col < d.colStarts.Size() && d.colStarts.IsSet(col) {
		classes = append(classes, "metathickleft")
	}
	if row < d.rowStarts.Size() && d.rowStarts.IsSet(row) {
		classes = append(classes, "metathicktop")
	}
	return classes
}

func (*Metagrid) Rules() []string {
	return []string{
		"td.metathickleft{border-left:4px solid black}",
		"td.metathicktop{border-top:4px solid black}",
	}
}
