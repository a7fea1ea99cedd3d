package decorator

import (
	"strconv"

	"github.com/hnimtadd/knitchart/chart/grid"
)

// EmptyLabels produces no label cells. Embed it to implement only part of
// Labeler.
type EmptyLabels struct{}

func (EmptyLabels) Left(grid.Grid, int) (Label, bool)   { return Label{}, false }
func (EmptyLabels) Right(grid.Grid, int) (Label, bool)  { return Label{}, false }
func (EmptyLabels) HasFooter() bool                     { return false }
func (EmptyLabels) Footer(grid.Grid, int) (Label, bool) { return Label{}, false }

// sideLabel numbers rows from the bottom. Even numbers are written on the
// left and odd numbers on the right, following the direction a flat piece
// is knitted in. The other side gets a label cell with no text.
func sideLabel(g grid.Grid, row, offset int, left bool) (Label, bool) {
	n := g.Rows() - row + offset
	if (n%2 == 0) == left {
		return Label{Text: strconv.Itoa(n)}, true
	}
	return Label{}, true
}

// FlatLabels numbers a chart knitted flat.
type FlatLabels struct {
	rowOffset int
	colOffset int
}

func NewFlatLabels() FlatLabels {
	return FlatLabels{}
}

// FlatLabelsStartingAt numbers the bottom row rowStart and the rightmost
// column colStart.
func FlatLabelsStartingAt(rowStart, colStart int) FlatLabels {
	return FlatLabels{rowOffset: rowStart - 1, colOffset: colStart - 1}
}

func (d FlatLabels) Left(g grid.Grid, row int) (Label, bool) {
	return sideLabel(g, row, d.rowOffset, true)
}

func (d FlatLabels) Right(g grid.Grid, row int) (Label, bool) {
	return sideLabel(g, row, d.rowOffset, false)
}

func (FlatLabels) HasFooter() bool { return true }

func (d FlatLabels) Footer(g grid.Grid, col int) (Label, bool) {
	return Label{Text: strconv.Itoa(g.Cols() - col + d.colOffset), ColSpan: 1}, true
}

// MergedFlatLabels numbers a merged two-layer chart: each footer label
// spans the two columns of one stitch.
type MergedFlatLabels struct {
	rowOffset int
	colOffset int
}

func NewMergedFlatLabels() MergedFlatLabels {
	return MergedFlatLabels{}
}

func MergedFlatLabelsStartingAt(rowStart, colStart int) MergedFlatLabels {
	return MergedFlatLabels{rowOffset: rowStart - 1, colOffset: colStart - 1}
}

func (d MergedFlatLabels) Left(g grid.Grid, row int) (Label, bool) {
	return sideLabel(g, row, d.rowOffset, true)
}

func (d MergedFlatLabels) Right(g grid.Grid, row int) (Label, bool) {
	return sideLabel(g, row, d.rowOffset, false)
}

func (MergedFlatLabels) HasFooter() bool { return true }

func (d MergedFlatLabels) Footer(g grid.Grid, col int) (Label, bool) {
	if col%2 != 0 {
		return Label{}, false
	}
	label := Label{
		Text:    strconv.Itoa((g.Cols()-col)/2 + d.colOffset),
		ColSpan: 2,
	}
	if col != 0 {
		label.Classes = []string{"mleft"}
	}
	return label, true
}

func (MergedFlatLabels) Rules() []string {
	return []string{"th.mleft{border-left:1px solid black}"}
}

// RoundLabels numbers a chart knitted in the round: every row on the
// right.
type RoundLabels struct {
	EmptyLabels
}

func (RoundLabels) Right(g grid.Grid, row int) (Label, bool) {
	return Label{Text: strconv.Itoa(g.Rows() - row)}, true
}

func (RoundLabels) HasFooter() bool { return true }

func (RoundLabels) Footer(g grid.Grid, col int) (Label, bool) {
	return Label{Text: strconv.Itoa(g.Cols() - col)}, true
}
