// Package style holds the inline style of a rendered cell.
package style

import (
	"slices"
	"strings"

	"github.com/hnimtadd/knitchart/chart/set"
)

// Style is the list of declarations style decorators emitted for a cell,
// in decorator order and exactly as emitted.
type Style struct {
	Declarations []string
}

// New returns the style made of declarations.
func New(declarations ...string) Style {
	return Style{Declarations: slices.Clone(declarations)}
}

// String joins the declarations with ";".
func (s Style) String() string {
	return strings.Join(s.Declarations, ";")
}

func (s Style) Hash() uint64 {
	return set.HashOf(s.Declarations)
}

func (s Style) Equals(other set.Hashable) bool {
	o, ok := other.(Style)
	return ok && slices.Equal(s.Declarations, o.Declarations)
}
