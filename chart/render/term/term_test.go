package term

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain() Options {
	return Options{Codes: true, Renderer: lipgloss.NewRenderer(io.Discard)}
}

func labelledTable() *render.Table {
	g := grid.NewSimpleGrid(point.GridMain, 2, 2)
	g.SetCell(0, 0, color.Gray)
	r := render.Regular(g, render.WithSheet(css.NewSheet()))
	r.SetLabelDecorator(decorator.NewFlatLabels())
	return r.Render()
}

func TestRender_Layout(t *testing.T) {
	f := Render(labelledTable(), plain())

	assert.Equal(t, []string{
		"2 x .   ",
		"  . .  1",
		"  2 1 ",
	}, f.Lines())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 8, f.Width())
}

func TestFrame_At(t *testing.T) {
	f := Render(labelledTable(), plain())

	cell, ok := f.At(2, 0)
	require.True(t, ok)
	assert.Equal(t, point.NewCellID(point.GridMain, 0, 0), cell.Address)

	cell, ok = f.At(5, 1)
	require.True(t, ok)
	assert.Equal(t, point.NewCellID(point.GridMain, 1, 1), cell.Address)

	for _, xy := range [][2]int{{1, 0}, {6, 0}, {2, 2}, {-1, 0}, {2, -1}} {
		_, ok := f.At(xy[0], xy[1])
		assert.False(t, ok, "at %v", xy)
	}
}

func TestRender_NoLabelsWideCells(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 1, 2)
	g.SetCell(0, 1, color.Red)
	r := render.New(g, render.WithSheet(css.NewSheet()))
	r.SetPurlDecorator(decorator.EvenPurl{})

	opts := plain()
	opts.CellWidth = 3
	f := Render(r.Render(), opts)
	assert.Equal(t, []string{".• r  "}, f.Lines())

	cell, ok := f.At(3, 0)
	require.True(t, ok)
	assert.Equal(t, 1, cell.Address.Col)
}

func TestInk(t *testing.T) {
	assert.Equal(t, color.Gray, ink(color.White))
	assert.Equal(t, color.Gray, ink(color.Yellow))
	assert.Equal(t, color.White, ink(color.Blue))
}
