// Package render turns a grid into a Table: rows of label and data cells
// with classes, inline styles, purl marks and pointer callbacks. Output
// formats live in the markup, term and raster subpackages.
package render

import (
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/hnimtadd/knitchart/chart/set"
	"github.com/hnimtadd/knitchart/chart/style"
)

// TableClasses are the classes of every rendered table.
var TableClasses = []string{"tblrdr", "user-select-none"}

const tableRule = ".tblrdr td, .tblrdr th {line-height:1.0; vertical-align: middle; text-align: center }"

type tableKey struct{}

// TableRenderer renders one grid. It is built for a single render pass;
// shells build a fresh renderer for every pass.
type TableRenderer struct {
	grid  grid.Grid
	sheet *css.Sheet

	interactions Interactions

	classDecorators []decorator.Class
	styleDecorators []decorator.Style
	labelDecorator  decorator.Labeler
	purlDecorator   decorator.Purl
}

type Option func(*TableRenderer)

// WithSheet registers decorator rules with sheet instead of css.Default.
func WithSheet(sheet *css.Sheet) Option {
	return func(r *TableRenderer) {
		r.sheet = sheet
	}
}

// New returns a renderer without decorations.
func New(g grid.Grid, opts ...Option) *TableRenderer {
	r := &TableRenderer{
		grid:           g,
		sheet:          css.Default,
		labelDecorator: decorator.EmptyLabels{},
		purlDecorator:  decorator.NoPurl{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.sheet.RegisterOnce(tableKey{}, tableRule)
	return r
}

// Base returns a renderer with colored, printable, bordered cells. The
// cells have no size; use Regular or Small to display a table.
func Base(g grid.Grid, opts ...Option) *TableRenderer {
	r := New(g, opts...)
	r.AddStyleDecorator(decorator.Color{})
	r.AddClassDecorator(decorator.Printable{})
	r.AddClassDecorator(decorator.BorderedCell{})
	return r
}

// Regular returns a Base renderer with 20px cells.
func Regular(g grid.Grid, opts ...Option) *TableRenderer {
	r := Base(g, opts...)
	r.AddClassDecorator(decorator.RegularSized{})
	return r
}

// Small returns a Base renderer with 12px cells.
func Small(g grid.Grid, opts ...Option) *TableRenderer {
	r := Base(g, opts...)
	r.AddClassDecorator(decorator.SmallSized{})
	return r
}

func (r *TableRenderer) register(d any) {
	if registrar, ok := d.(decorator.Registrar); ok {
		r.sheet.RegisterOnce(d, registrar.Rules()...)
	}
}

func (r *TableRenderer) AddClassDecorator(d decorator.Class) {
	r.register(d)
	r.classDecorators = append(r.classDecorators, d)
}

func (r *TableRenderer) AddStyleDecorator(d decorator.Style) {
	r.register(d)
	r.styleDecorators = append(r.styleDecorators, d)
}

func (r *TableRenderer) SetLabelDecorator(d decorator.Labeler) {
	r.register(d)
	r.labelDecorator = d
}

func (r *TableRenderer) SetPurlDecorator(d decorator.Purl) {
	r.register(d)
	r.purlDecorator = d
}

func (r *TableRenderer) SetInteractions(interactions Interactions) {
	r.interactions = interactions
}

// Grid returns the grid being rendered.
func (r *TableRenderer) Grid() grid.Grid {
	return r.grid
}

// Render builds the table. Every data cell of the result carries the
// interactions set at the time of the call.
func (r *TableRenderer) Render() *Table {
	interactions := r.interactions
	rows, cols := r.grid.Rows(), r.grid.Cols()

	t := &Table{
		Grid:     r.grid.ID(),
		Classes:  append([]string(nil), TableClasses...),
		Rows:     make([]Row, 0, rows+1),
		GridRows: rows,
		GridCols: cols,
		styles:   set.New(set.Options{}),
	}
	for row := range rows {
		t.Rows = append(t.Rows, r.renderRow(t, row, &interactions))
	}
	if r.labelDecorator.HasFooter() {
		t.Rows = append(t.Rows, r.renderFooter())
	}
	return t
}

func (r *TableRenderer) renderRow(t *Table, row int, interactions *Interactions) Row {
	cells := make([]Cell, 0, r.grid.Cols()+2)
	if label, ok := r.labelDecorator.Left(r.grid, row); ok {
		cells = append(cells, r.labelCell(label, row))
	}
	for col := range r.grid.Cols() {
		cells = append(cells, r.dataCell(t, row, col, interactions))
	}
	if label, ok := r.labelDecorator.Right(r.grid, row); ok {
		cells = append(cells, r.labelCell(label, row))
	}
	return Row{Cells: cells}
}

func (r *TableRenderer) renderFooter() Row {
	cells := make([]Cell, 0, r.grid.Cols()+2)
	cells = append(cells, Cell{Kind: KindBlank})
	for col := range r.grid.Cols() {
		if label, ok := r.labelDecorator.Footer(r.grid, col); ok {
			cells = append(cells, r.labelCell(label, col))
		}
	}
	cells = append(cells, Cell{Kind: KindBlank})
	return Row{Cells: cells, Footer: true}
}

func (r *TableRenderer) labelCell(label decorator.Label, index int) Cell {
	classes := append([]string(nil), label.Classes...)
	for _, d := range r.classDecorators {
		if lc, ok := d.(decorator.LabelClass); ok {
			classes = append(classes, lc.LabelClasses(r.grid, index)...)
		}
	}
	return Cell{
		Kind:    KindLabel,
		Text:    label.Text,
		ColSpan: label.Span(),
		Classes: classes,
	}
}

func (r *TableRenderer) dataCell(t *Table, row, col int, interactions *Interactions) Cell {
	contents := r.grid.Cell(row, col)

	var declarations []string
	for _, d := range r.styleDecorators {
		declarations = append(declarations, d.CellStyle(row, col, contents)...)
	}

	var classes []string
	for _, d := range r.classDecorators {
		classes = append(classes, d.CellClasses(r.grid, row, col, contents)...)
	}

	var styleID set.ID
	if len(declarations) > 0 {
		styleID = t.styles.Add(style.New(declarations...))
	}

	return Cell{
		Kind:         KindData,
		ColSpan:      1,
		Classes:      classes,
		StyleID:      styleID,
		Color:        contents,
		Purl:         r.purlDecorator.IsPurl(row, col),
		Address:      r.grid.CellID(row, col),
		interactions: interactions,
	}
}
