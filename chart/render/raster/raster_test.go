package raster

import (
	"bytes"
	stdcolor "image/color"
	"image/png"
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgba(c color.Color) stdcolor.RGBA {
	rgb := c.RGB()
	return stdcolor.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
}

func TestImage_ScalesCells(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 2, 3)
	g.SetCell(1, 2, color.Red)

	img := Image(g, Options{CellPx: 4})
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	assert.Equal(t, rgba(color.White), img.RGBAAt(0, 0))
	assert.Equal(t, rgba(color.Red), img.RGBAAt(8, 4))
	assert.Equal(t, rgba(color.Red), img.RGBAAt(11, 7))
	assert.Equal(t, rgba(color.White), img.RGBAAt(7, 4))
}

func TestImage_GridLines(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 2, 2)
	img := Image(g, Options{CellPx: 5, GridLines: true})

	assert.Equal(t, lineColor, img.RGBAAt(5, 1))
	assert.Equal(t, lineColor, img.RGBAAt(1, 5))
	assert.Equal(t, rgba(color.White), img.RGBAAt(1, 1))
}

func TestEncodePNG(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 3, 3)
	g.SetCell(0, 0, color.Blue)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, g, Options{}))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60, decoded.Bounds().Dx())
	r, _, b, _ := decoded.At(10, 10).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), b)
}

func TestPanels_SideBySide(t *testing.T) {
	sheet := css.NewSheet()
	left := grid.NewSimpleGrid(point.GridLayerOne, 2, 2)
	left.SetCell(0, 0, color.Blue)
	right := grid.NewSimpleGrid(point.GridLayerTwo, 3, 1)
	right.SetCell(2, 0, color.Green)

	labelled := render.Regular(left, render.WithSheet(sheet))
	labelled.SetLabelDecorator(decorator.NewFlatLabels())
	panels := []render.Panel{
		{Title: "left", Table: labelled.Render()},
		{Title: "right", Table: render.Regular(right, render.WithSheet(sheet)).Render()},
	}

	img := Panels(panels, Options{CellPx: 2})
	assert.Equal(t, 2*2+2+1*2, img.Bounds().Dx())
	assert.Equal(t, 3*2, img.Bounds().Dy())

	assert.Equal(t, rgba(color.Blue), img.RGBAAt(1, 1))
	assert.Equal(t, rgba(color.White), img.RGBAAt(5, 1))
	assert.Equal(t, rgba(color.White), img.RGBAAt(1, 5))
	assert.Equal(t, rgba(color.Green), img.RGBAAt(7, 5))

	var buf bytes.Buffer
	require.NoError(t, EncodePanelsPNG(&buf, panels, Options{CellPx: 2}))
	_, err := png.Decode(&buf)
	require.NoError(t, err)
}

func TestTableGrid_ReadOnly(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 1, 1)
	tg := tableGrid{render.New(g, render.WithSheet(css.NewSheet())).Render()}
	assert.Equal(t, point.NewCellID(point.GridMain, 0, 0), tg.CellID(0, 0))
	assert.PanicsWithValue(t, grid.ErrReadOnly, func() { tg.SetCell(0, 0, color.Red) })
	assert.Panics(t, func() { tg.Cell(1, 0) })
}
