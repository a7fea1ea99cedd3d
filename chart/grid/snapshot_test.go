package grid

import (
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleGrid_SnapshotRoundTrip(t *testing.T) {
	g := NewSimpleGrid(point.GridLayerOne, 4, 5)
	g.SetCell(0, 0, color.Gray)
	g.SetCell(1, 3, color.Red)

	s := g.Snapshot()
	assert.Equal(t, []string{"x", "...r"}, s.Cells)
	assert.Equal(t, 4, s.Rows)

	restored, err := RestoreSimple(s)
	require.NoError(t, err)
	assert.Equal(t, point.GridLayerOne, restored.ID())
	assert.True(t, sameCells(g, restored))
}

func TestRestoreSimple_Rejects(t *testing.T) {
	_, err := RestoreSimple(Snapshot{Rows: 1, Cols: 2, Cells: []string{"xxx"}})
	assert.Error(t, err)

	_, err = RestoreSimple(Snapshot{Rows: 1, Cols: 2, Cells: []string{"x", "x"}})
	assert.Error(t, err)

	_, err = RestoreSimple(Snapshot{Rows: 1, Cols: 2, Cells: []string{"?"}})
	assert.Error(t, err)

	_, err = RestoreSimple(Snapshot{Rows: -1, Cols: 2})
	assert.Error(t, err)
}

func TestBigGrid_SnapshotKeepsHiddenCells(t *testing.T) {
	g, err := NewBigGrid(point.GridMain, 5, 5)
	require.NoError(t, err)
	g.SetCell(4, 4, color.Green)
	require.NoError(t, g.Resize(2, 2))

	restored, err := RestoreBig(g.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Rows())

	require.NoError(t, restored.Resize(5, 5))
	assert.Equal(t, color.Green, restored.Cell(4, 4))
}

func TestRestoreBig_Rejects(t *testing.T) {
	_, err := RestoreBig(Snapshot{Rows: MaxRows + 1, Cols: 1})
	assert.Error(t, err)
}
