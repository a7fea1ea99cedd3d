package decorator

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
)

type (
	// Class contributes classes to a data cell.
	Class interface {
		CellClasses(g grid.Grid, row, col int, c color.Color) []string
	}

	// LabelClass contributes classes to label cells. index is the row for
	// side labels and the column for footer labels.
	LabelClass interface {
		LabelClasses(g grid.Grid, index int) []string
	}

	// Style contributes inline "property: value" declarations to a data
	// cell.
	Style interface {
		CellStyle(row, col int, c color.Color) []string
	}

	// Labeler decides the label cells around a table. A false second
	// result means no cell is produced at all, which differs from a
	// label with empty text.
	Labeler interface {
		Left(g grid.Grid, row int) (Label, bool)
		Right(g grid.Grid, row int) (Label, bool)
		HasFooter() bool
		Footer(g grid.Grid, col int) (Label, bool)
	}

	// Purl marks the cells drawn with a purl symbol.
	Purl interface {
		IsPurl(row, col int) bool
	}

	// Registrar contributes stylesheet rules.
	Registrar interface {
		Rules() []string
	}
)

// Label is the content of one label cell.
type Label struct {
	Text string
	// ColSpan is the number of data columns the label spans; 0 means 1.
	ColSpan int
	Classes []string
}

// Span returns the effective column span.
func (l Label) Span() int {
	return max(l.ColSpan, 1)
}
