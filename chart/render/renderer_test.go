package render

import (
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PlainTable(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 2, 3)
	g.SetCell(1, 2, color.Red)

	table := New(g, WithSheet(css.NewSheet())).Render()
	assert.Equal(t, []string{"tblrdr", "user-select-none"}, table.Classes)
	assert.Equal(t, point.GridMain, table.Grid)
	require.Len(t, table.Rows, 2)
	require.Len(t, table.Rows[0].Cells, 3)

	_, hasFooter := table.Footer()
	assert.False(t, hasFooter)

	cell, ok := table.Data(1, 2)
	require.True(t, ok)
	assert.Equal(t, KindData, cell.Kind)
	assert.Equal(t, color.Red, cell.Color)
	assert.Equal(t, "", table.Style(cell))
	assert.Zero(t, cell.StyleID)
	assert.Empty(t, cell.Classes)
	assert.False(t, cell.Purl)
	assert.Equal(t, point.NewCellID(point.GridMain, 1, 2), cell.Address)

	_, ok = table.Data(2, 0)
	assert.False(t, ok)
}

func TestRender_RegularWithLabels(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 2, 2)
	g.SetCell(0, 0, color.Gray)

	sheet := css.NewSheet()
	r := Regular(g, WithSheet(sheet))
	r.SetLabelDecorator(decorator.NewFlatLabels())
	table := r.Render()

	require.Len(t, table.Rows, 3)
	top := table.Rows[0].Cells
	require.Len(t, top, 4)

	// Row 0 is label 2: even, written on the left.
	assert.Equal(t, KindLabel, top[0].Kind)
	assert.Equal(t, "2", top[0].Text)
	assert.Equal(t, []string{"rszcell"}, top[0].Classes)
	assert.Equal(t, "", top[3].Text)

	assert.Equal(t, "background: darkgray", table.Style(&top[1]))
	assert.Equal(t, []string{"prtexact", "bdrcell", "rszcell"}, top[1].Classes)

	footer, ok := table.Footer()
	require.True(t, ok)
	require.Len(t, footer.Cells, 4)
	assert.Equal(t, KindBlank, footer.Cells[0].Kind)
	assert.Equal(t, "2", footer.Cells[1].Text)
	assert.Equal(t, "1", footer.Cells[2].Text)
	assert.Equal(t, KindBlank, footer.Cells[3].Kind)

	assert.Equal(t, []string{
		".tblrdr td, .tblrdr th {line-height:1.0; vertical-align: middle; text-align: center }",
		".prtexact { color-adjust:exact; -webkit-print-color-adjust: exact }",
		".bdrcell { border: 1px solid black }",
		".rszcell { height: 20px; width: 20px }",
	}, sheet.Rules())
}

func TestRender_MergedChart(t *testing.T) {
	front := grid.NewSimpleGrid(point.GridLayerOne, 3, 3)
	back := grid.NewSimpleGrid(point.GridLayerTwo, 3, 3)
	merged, err := grid.NewMergedGrid(point.GridMerged, front, back)
	require.NoError(t, err)

	r := Regular(merged, WithSheet(css.NewSheet()))
	r.AddClassDecorator(decorator.MergedBorder{})
	r.AddClassDecorator(decorator.ThickHorizontal())
	r.SetLabelDecorator(decorator.NewMergedFlatLabels())
	r.SetPurlDecorator(decorator.EvenPurl{})
	table := r.Render()

	footer, ok := table.Footer()
	require.True(t, ok)
	// Corner, one label per stitch, corner.
	require.Len(t, footer.Cells, 5)
	assert.Equal(t, 2, footer.Cells[1].ColSpan)
	assert.Equal(t, "3", footer.Cells[1].Text)
	assert.Equal(t, []string{"mleft", "rszcell"}, footer.Cells[2].Classes)

	cell, ok := table.Data(0, 0)
	require.True(t, ok)
	assert.True(t, cell.Purl)
	assert.Contains(t, cell.Classes, "mthick")
	assert.Equal(t, point.NewCellID(point.GridLayerTwo, 0, 0), cell.Address)

	cell, _ = table.Data(0, 1)
	assert.False(t, cell.Purl)
	assert.Equal(t, point.NewCellID(point.GridLayerOne, 0, 0), cell.Address)
}

func TestRender_Deterministic(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 10, 10)
	g.SetCell(3, 4, color.Blue)
	build := func() *Table {
		r := Small(g, WithSheet(css.NewSheet()))
		r.AddClassDecorator(decorator.NewThickBorders())
		r.AddStyleDecorator(decorator.NewCellSize(9))
		r.SetLabelDecorator(decorator.RoundLabels{})
		return r.Render()
	}

	a, b := build(), build()
	require.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		require.Equal(t, len(a.Rows[i].Cells), len(b.Rows[i].Cells))
		for j := range a.Rows[i].Cells {
			assert.Equal(t, a.Rows[i].Cells[j].Classes, b.Rows[i].Cells[j].Classes)
			assert.Equal(t, a.Style(&a.Rows[i].Cells[j]), b.Style(&b.Rows[i].Cells[j]))
		}
	}

	cell, _ := a.Data(3, 4)
	assert.Equal(t, "background: blue;height: 9px;width: 9px", a.Style(cell))
}

func TestRender_InteractionsBoundToAddress(t *testing.T) {
	base := grid.NewSimpleGrid(point.GridMain, 2, 3)
	flipped := grid.NewFlippedGrid(point.GridFlipped, base)

	var got []string
	record := func(kind string) Callback {
		return func(id point.CellID) { got = append(got, kind+" "+id.String()) }
	}

	r := New(flipped, WithSheet(css.NewSheet()))
	r.SetInteractions(Interactions{
		Down:  record("down"),
		Up:    record("up"),
		Enter: record("enter"),
	})
	table := r.Render()
	// Later changes do not leak into a rendered table.
	r.SetInteractions(Interactions{})

	cell, ok := table.Data(1, 0)
	require.True(t, ok)
	cell.PointerDown()
	cell.PointerEnter()
	cell.PointerExit()
	cell.PointerUp()

	assert.Equal(t, []string{"down main(1, 2)", "enter main(1, 2)", "up main(1, 2)"}, got)

	var blank Cell
	assert.NotPanics(t, blank.PointerDown)
}

func TestRender_RegisterOncePerDecoratorType(t *testing.T) {
	sheet := css.NewSheet()
	g := grid.NewSimpleGrid(point.GridMain, 1, 1)
	for range 3 {
		r := Regular(g, WithSheet(sheet))
		r.AddClassDecorator(decorator.NewThickBorders())
		r.AddClassDecorator(decorator.ThickHorizontal())
	}
	assert.Len(t, sheet.Rules(), 8)
}

func TestRender_EmptyGrid(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 0, 0)
	r := Regular(g, WithSheet(css.NewSheet()))
	r.SetLabelDecorator(decorator.NewFlatLabels())
	table := r.Render()
	require.Len(t, table.Rows, 1)
	assert.True(t, table.Rows[0].Footer)
	assert.Len(t, table.Rows[0].Cells, 2)
}

type rawStyle []string

func (s rawStyle) CellStyle(int, int, color.Color) []string { return s }

func TestRender_StylesJoinedVerbatimAndShared(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 3, 3)
	g.SetCell(1, 1, color.Red)

	r := New(g, WithSheet(css.NewSheet()))
	r.AddStyleDecorator(decorator.Color{})
	r.AddStyleDecorator(rawStyle{"Width:4px", ""})
	table := r.Render()

	red, _ := table.Data(1, 1)
	assert.Equal(t, "background: red;Width:4px;", table.Style(red))

	first, _ := table.Data(0, 0)
	last, _ := table.Data(2, 2)
	assert.NotZero(t, first.StyleID)
	assert.Equal(t, first.StyleID, last.StyleID)
	assert.NotEqual(t, first.StyleID, red.StyleID)
}
