package render

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/set"
	"github.com/hnimtadd/knitchart/chart/style"
)

// Kind is the role of a table cell.
type Kind int

const (
	// KindBlank is an empty header cell, such as a footer corner.
	KindBlank Kind = iota
	// KindLabel is a row or column number.
	KindLabel
	// KindData is one grid cell.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindLabel:
		return "label"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Callback receives the base address of the cell a pointer acted on.
type Callback func(point.CellID)

// Interactions are the pointer callbacks bound to every data cell. A nil
// callback is a no-op.
type Interactions struct {
	Down  Callback
	Up    Callback
	Enter Callback
	Exit  Callback
}

func (c Callback) call(id point.CellID) {
	if c != nil {
		c(id)
	}
}

// Cell is one rendered table cell.
type Cell struct {
	Kind    Kind
	Text    string
	ColSpan int
	Classes []string
	// StyleID is the cell's inline style in its table, 0 for none. Cells
	// with the same declarations share an ID.
	StyleID set.ID
	Color   color.Color
	Purl  bool
	// Address is the base grid cell a data cell shows.
	Address point.CellID

	interactions *Interactions
}

func (c *Cell) PointerDown() {
	if c.interactions != nil {
		c.interactions.Down.call(c.Address)
	}
}

func (c *Cell) PointerUp() {
	if c.interactions != nil {
		c.interactions.Up.call(c.Address)
	}
}

func (c *Cell) PointerEnter() {
	if c.interactions != nil {
		c.interactions.Enter.call(c.Address)
	}
}

func (c *Cell) PointerExit() {
	if c.interactions != nil {
		c.interactions.Exit.call(c.Address)
	}
}

// Span returns the number of grid columns the cell covers.
func (c *Cell) Span() int {
	return max(c.ColSpan, 1)
}

// Row is one table row. Footer rows hold column labels.
type Row struct {
	Cells  []Cell
	Footer bool
}

// Table is the output of a render pass: what to draw, and the pointer
// callbacks that belong to each drawn cell.
type Table struct {
	Grid    point.GridID
	Classes []string
	Rows    []Row

	// Dimensions of the rendered grid.
	GridRows int
	GridCols int

	styles *set.Set
}

// Style returns the inline style of c, declarations joined with ";".
func (t *Table) Style(c *Cell) string {
	if c.StyleID == 0 || t.styles == nil {
		return ""
	}
	return t.styles.Get(c.StyleID).(style.Style).String()
}

// Data returns the data cell that shows grid cell (row, col) of the
// rendered grid.
func (t *Table) Data(row, col int) (*Cell, bool) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return nil, false
	}
	r := &t.Rows[row]
	if r.Footer {
		return nil, false
	}
	seen := 0
	for i := range r.Cells {
		if r.Cells[i].Kind != KindData {
			continue
		}
		if seen == col {
			return &r.Cells[i], true
		}
		seen++
	}
	return nil, false
}

// Footer returns the footer row, if the table has one.
func (t *Table) Footer() (*Row, bool) {
	if n := len(t.Rows); n > 0 && t.Rows[n-1].Footer {
		return &t.Rows[n-1], true
	}
	return nil, false
}

// Panel is a titled table, the unit shells hand to output formats.
type Panel struct {
	Title string
	Table *Table
}
