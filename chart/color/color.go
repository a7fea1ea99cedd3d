// Package color defines the closed palette a chart is painted with.
package color

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/knitchart/chart/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a palette entry. The zero value is White, the background.
type Color uint8

const (
	White Color = iota
	Gray
	Blue
	Orange
	Yellow
	Red
	Green
	Brown

	numColors = iota
)

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

type entry struct {
	name string
	css  string
	hex  string
	code rune
}

var entries = [numColors]entry{
	White:  {"White", "white", "#ffffff", '.'},
	Gray:   {"Gray", "darkgray", "#a9a9a9", 'x'},
	Blue:   {"Blue", "blue", "#0000ff", 'b'},
	Orange: {"Orange", "orange", "#ffa500", 'o'},
	Yellow: {"Yellow", "yellow", "#ffff00", 'y'},
	Red:    {"Red", "red", "#ff0000", 'r'},
	Green:  {"Green", "green", "#008000", 'g'},
	Brown:  {"Brown", "brown", "#a52a2a", 'n'},
}

var palette = func() [numColors]RGB {
	var result [numColors]RGB
	for i, e := range entries {
		c, err := colorful.Hex(e.hex)
		utils.Assert(err == nil, fmt.Sprintf("bad palette hex %q", e.hex))
		r, g, b := c.RGB255()
		result[i] = RGB{r, g, b}
	}
	return result
}()

// All returns the palette in display order.
func All() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

func (c Color) valid() bool {
	return int(c) < numColors
}

// IsWhite reports whether c is the "off" color.
func (c Color) IsWhite() bool {
	return c == White
}

// Toggle is the only color arithmetic: White becomes Gray and every other
// color becomes White. Toggle is not an involution.
func (c Color) Toggle() Color {
	if c.IsWhite() {
		return Gray
	}
	return White
}

// CSS returns the CSS color name used to paint c.
func (c Color) CSS() string {
	utils.Assert(c.valid(), "unknown color")
	return entries[c].css
}

// Hex returns the "#rrggbb" form of c.
func (c Color) Hex() string {
	utils.Assert(c.valid(), "unknown color")
	return entries[c].hex
}

// RGB returns the display value of c.
func (c Color) RGB() RGB {
	utils.Assert(c.valid(), "unknown color")
	return palette[c]
}

// Code is the single rune used for c in snapshots.
func (c Color) Code() rune {
	utils.Assert(c.valid(), "unknown color")
	return entries[c].code
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return entries[c].name
}

// ParseCode is the inverse of Code.
func ParseCode(r rune) (Color, error) {
	for i, e := range entries {
		if e.code == r {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("color: unknown code %q", r)
}

// Parse accepts either the palette name or the CSS name, case-insensitive.
func Parse(name string) (Color, error) {
	name = strings.TrimSpace(name)
	for i, e := range entries {
		if strings.EqualFold(name, e.name) || strings.EqualFold(name, e.css) {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("color: unknown color %q", name)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("color: cannot marshal %v", c)
	}
	return []byte(strings.ToLower(entries[c].name)), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
