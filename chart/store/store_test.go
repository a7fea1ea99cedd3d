package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Grid grid.Snapshot `yaml:"grid"`
	Runs []uint8       `yaml:"runs" validate:"max=100,dive,min=1"`
}

func stores(t *testing.T) map[string]Store {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	return map[string]Store{"file": fs, "memory": NewMemory()}
}

func TestStore_RoundTrip(t *testing.T) {
	g := grid.NewSimpleGrid(point.GridLayerOne, 3, 3)
	g.SetCell(1, 1, color.Red)
	doc := document{Grid: g.Snapshot(), Runs: []uint8{1, 2, 3}}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save("twocolor", doc))

			var loaded document
			require.NoError(t, s.Load("twocolor", &loaded))
			assert.Equal(t, doc, loaded)

			restored, err := grid.RestoreSimple(loaded.Grid)
			require.NoError(t, err)
			assert.Equal(t, g.Snapshot(), restored.Snapshot())

			require.NoError(t, s.Delete("twocolor"))
			require.NoError(t, s.Delete("twocolor"))
			assert.ErrorIs(t, s.Load("twocolor", &loaded), ErrNotFound)
		})
	}
}

func TestStore_InvalidKey(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var keyErr *KeyError
			assert.ErrorAs(t, s.Save("../escape", document{}), &keyErr)
			assert.ErrorAs(t, s.Load("", &document{}), &keyErr)
			assert.ErrorAs(t, s.Delete("A"), &keyErr)
		})
	}
}

func TestStore_RejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte("runs: [1, 0, 2]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("grid:\n  rows: [\n"), 0o644))
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	var doc document
	var parseErr *ParseError
	require.ErrorAs(t, s.Load("meta", &doc), &parseErr)
	assert.Equal(t, "meta", parseErr.Key)

	require.ErrorAs(t, s.Load("broken", &doc), &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestStore_NonStructValues(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("runs", []uint8{4, 5}))

	var runs []uint8
	require.NoError(t, m.Load("runs", &runs))
	assert.Equal(t, []uint8{4, 5}, runs)

}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	require.NoError(t, s.Save("metapixel", document{Runs: []uint8{1}}))
	data, err := os.ReadFile(filepath.Join(dir, "metapixel.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "runs:")

	_, err = os.Stat(filepath.Join(dir, "metapixel.yaml.tmp"))
	assert.True(t, os.IsNotExist(err))
}
