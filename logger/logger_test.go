package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})
	l.Debug("painted", "grid", "main", "row", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "painted", entry["message"])
	assert.Equal(t, "main", entry["grid"])
	assert.EqualValues(t, 3, entry["row"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeJSON})
	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestNew_TextWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Type: TypeText})
	l.Info("saved", "key", "twocolor")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "key=twocolor")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_AutoPicksJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Buffer: &buf, Type: TypeAuto}).Info("hello")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParse(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)

	kind, err := ParseType("json")
	require.NoError(t, err)
	assert.Equal(t, TypeJSON, kind)

	_, err = ParseType("xml")
	assert.Error(t, err)
}

func TestNopAndOrNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop.Error("ignored", "k", 1) })
	assert.Equal(t, Nop, OrNop(nil))

	l := New(Options{Buffer: &bytes.Buffer{}})
	assert.Equal(t, l, OrNop(l))
}
