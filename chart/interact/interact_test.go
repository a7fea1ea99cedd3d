package interact

import (
	"bytes"
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(kind Kind, row, col int) Event {
	return Event{Kind: kind, Cell: point.NewCellID(point.GridMain, row, col)}
}

func TestOneColor_PaintSession(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 3, 3)
	grids := Grids{point.GridMain: g}
	i := NewOneColor()

	assert.True(t, i.Update(grids, at(Down, 1, 1)))
	assert.Equal(t, color.Gray, g.Cell(1, 1))

	assert.True(t, i.Update(grids, at(Enter, 1, 2)))
	assert.Equal(t, color.Gray, g.Cell(1, 2))

	assert.False(t, i.Update(grids, at(Exit, 1, 2)))
	assert.False(t, i.Update(grids, at(Enter, 1, 1)))
	assert.False(t, i.Update(grids, at(Up, 1, 1)))

	assert.False(t, i.Update(grids, at(Enter, 0, 0)))
	assert.Equal(t, color.White, g.Cell(0, 0))

	_, painting := i.State()
	assert.False(t, painting)
}

func TestOneColor_DragErases(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 1, 3)
	g.SetCell(0, 0, color.Blue)
	g.SetCell(0, 1, color.Red)
	grids := Grids{point.GridMain: g}
	i := NewOneColor()

	assert.True(t, i.Update(grids, at(Down, 0, 0)))
	c, painting := i.State()
	assert.True(t, painting)
	assert.Equal(t, color.White, c)

	assert.True(t, i.Update(grids, at(Enter, 0, 1)))
	assert.False(t, i.Update(grids, at(Enter, 0, 2)))
	assert.Equal(t, grid.NewSimpleGrid(point.GridMain, 1, 3).Snapshot(), g.Snapshot())
}

func TestPalette(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridMain, 2, 2)
	grids := Grids{point.GridMain: g}
	p := NewPalette(color.Orange)
	assert.Equal(t, color.Orange, p.Color())

	assert.True(t, p.Update(grids, at(Down, 0, 0)))
	assert.Equal(t, color.Orange, g.Cell(0, 0))

	// A drag in progress keeps its color.
	p.SetColor(color.Blue)
	assert.True(t, p.Update(grids, at(Enter, 0, 1)))
	assert.Equal(t, color.Orange, g.Cell(0, 1))
	p.Update(grids, at(Up, 0, 1))

	assert.True(t, p.Update(grids, at(Down, 1, 1)))
	assert.Equal(t, color.Blue, g.Cell(1, 1))

	// Painting a cell with the color it has is not a change.
	p.Update(grids, at(Up, 1, 1))
	assert.False(t, p.Update(grids, at(Down, 1, 1)))
}

func TestPaintOnDrag_IgnoresStaleEvents(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Buffer: &buf, Level: logger.DebugLevel, Type: logger.TypeJSON})

	g := grid.NewSimpleGrid(point.GridMain, 2, 2)
	grids := Grids{point.GridMain: g}
	i := NewOneColor(WithLogger(l))

	assert.False(t, i.Update(grids, Event{Kind: Down, Cell: point.NewCellID(point.GridLayerOne, 0, 0)}))
	_, painting := i.State()
	assert.False(t, painting)

	assert.False(t, i.Update(grids, at(Down, 5, 0)))
	assert.Contains(t, buf.String(), "pointer event for unknown grid")
	assert.Contains(t, buf.String(), "pointer event outside grid")

	assert.True(t, i.Update(grids, at(Down, 0, 0)))
	assert.False(t, i.Update(grids, at(Enter, 0, 9)))
	assert.True(t, i.Update(grids, at(Enter, 1, 1)))
}

func TestInstall_RoutesThroughViews(t *testing.T) {
	front := grid.NewSimpleGrid(point.GridLayerOne, 2, 2)
	back := grid.NewSimpleGrid(point.GridLayerTwo, 2, 2)
	merged, err := grid.NewMergedGrid(point.GridMerged, front, back)
	require.NoError(t, err)
	grids := Grids{point.GridLayerOne: front, point.GridLayerTwo: back}

	i := NewOneColor()
	var changed []bool
	r := render.Regular(merged, render.WithSheet(css.NewSheet()))
	Install(r, func(ev Event) {
		changed = append(changed, i.Update(grids, ev))
	})
	table := r.Render()

	cell, ok := table.Data(0, 1)
	require.True(t, ok)
	cell.PointerDown()
	next, _ := table.Data(0, 0)
	next.PointerEnter()
	next.PointerExit()
	next.PointerUp()

	assert.Equal(t, []bool{true, true, false, false}, changed)
	assert.Equal(t, color.Gray, front.Cell(0, 0))
	assert.Equal(t, color.Gray, back.Cell(0, 0))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "enter main(1, 2)", at(Enter, 1, 2).String())
	assert.Equal(t, "unknown", Kind(9).String())
}
