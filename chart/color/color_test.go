package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_ToggleRange(t *testing.T) {
	assert.Equal(t, White, White.Toggle().Toggle())
	for _, c := range All() {
		toggled := c.Toggle()
		assert.Contains(t, []Color{White, Gray}, toggled, "toggle of %v", c)
	}
	assert.Equal(t, White, Blue.Toggle())
	assert.Equal(t, Gray, White.Toggle())
}

func TestColor_OnlyWhiteIsOff(t *testing.T) {
	for _, c := range All() {
		assert.Equal(t, c == White, c.IsWhite(), "%v", c)
	}
	var zero Color
	assert.True(t, zero.IsWhite())
}

func TestColor_CSSMapping(t *testing.T) {
	expected := map[Color]string{
		White:  "white",
		Gray:   "darkgray",
		Blue:   "blue",
		Orange: "orange",
		Yellow: "yellow",
		Red:    "red",
		Green:  "green",
		Brown:  "brown",
	}
	assert.Len(t, All(), len(expected))
	for c, css := range expected {
		assert.Equal(t, css, c.CSS())
	}
}

func TestColor_RGB(t *testing.T) {
	assert.Equal(t, RGB{0xff, 0xff, 0xff}, White.RGB())
	assert.Equal(t, RGB{0xa9, 0xa9, 0xa9}, Gray.RGB())
	assert.Equal(t, RGB{0xff, 0xa5, 0x00}, Orange.RGB())
}

func TestColor_CodeRoundTrip(t *testing.T) {
	seen := map[rune]bool{}
	for _, c := range All() {
		code := c.Code()
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true

		parsed, err := ParseCode(code)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCode('?')
	assert.Error(t, err)
}

func TestColor_Parse(t *testing.T) {
	c, err := Parse("DarkGray")
	require.NoError(t, err)
	assert.Equal(t, Gray, c)

	c, err = Parse(" brown ")
	require.NoError(t, err)
	assert.Equal(t, Brown, c)

	_, err = Parse("purple")
	assert.Error(t, err)
}

func TestColor_Text(t *testing.T) {
	text, err := Green.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "green", string(text))

	var c Color
	require.NoError(t, c.UnmarshalText([]byte("orange")))
	assert.Equal(t, Orange, c)

	_, err = Color(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Color(42)", Color(42).String())
}
