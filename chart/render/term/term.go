// Package term draws rendered tables on a terminal and maps terminal
// coordinates back to table cells.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/mattn/go-runewidth"
)

// PurlMark is drawn in purl data cells.
const PurlMark = "•"

type Options struct {
	// CellWidth is the number of terminal columns per data cell. Defaults
	// to 2, which keeps cells roughly square.
	CellWidth int

	// Codes draws the color code of every data cell, for output that
	// cannot carry colors.
	Codes bool

	// Renderer is the lipgloss renderer cells are styled with. Defaults
	// to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

// Frame is a drawn table. Coordinates are relative to the frame's top-left
// corner.
type Frame struct {
	table *render.Table
	lines []string

	cellWidth int
	// dataX is the column of the first data cell.
	dataX int
	width int
}

// Render draws t.
func Render(t *render.Table, opts Options) *Frame {
	if opts.CellWidth < 1 {
		opts.CellWidth = 2
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	leftWidth, rightWidth := labelWidths(t)
	f := &Frame{
		table:     t,
		cellWidth: opts.CellWidth,
		dataX:     leftWidth,
	}
	if leftWidth > 0 {
		f.dataX++
	}

	labelStyle := opts.Renderer.NewStyle().Faint(true)
	for _, row := range t.Rows {
		var b strings.Builder
		if row.Footer {
			b.WriteString(strings.Repeat(" ", f.dataX))
			for _, c := range row.Cells {
				if c.Kind != render.KindLabel {
					continue
				}
				b.WriteString(labelStyle.Render(center(c.Text, c.Span()*opts.CellWidth)))
			}
			f.lines = append(f.lines, b.String())
			continue
		}

		cells := row.Cells
		if leftWidth > 0 && len(cells) > 0 && cells[0].Kind == render.KindLabel {
			b.WriteString(labelStyle.Render(runewidth.FillLeft(cells[0].Text, leftWidth)))
			b.WriteByte(' ')
			cells = cells[1:]
		}
		for _, c := range cells {
			switch c.Kind {
			case render.KindData:
				b.WriteString(dataCell(opts, &c))
			case render.KindLabel:
				if rightWidth > 0 {
					b.WriteByte(' ')
					b.WriteString(labelStyle.Render(runewidth.FillRight(c.Text, rightWidth)))
				}
			}
		}
		f.lines = append(f.lines, b.String())
	}

	for _, line := range f.lines {
		f.width = max(f.width, lipgloss.Width(line))
	}
	return f
}

func dataCell(opts Options, c *render.Cell) string {
	var content strings.Builder
	if opts.Codes {
		content.WriteRune(c.Color.Code())
	}
	if c.Purl {
		content.WriteString(PurlMark)
	}
	s := opts.Renderer.NewStyle().
		Background(lipgloss.Color(c.Color.Hex())).
		Foreground(lipgloss.Color(ink(c.Color).Hex()))
	return s.Render(runewidth.FillRight(runewidth.Truncate(content.String(), opts.CellWidth, ""), opts.CellWidth))
}

// ink is the color marks are drawn with on a background of c.
func ink(c color.Color) color.Color {
	rgb := c.RGB()
	if int(rgb.R)*299+int(rgb.G)*587+int(rgb.B)*114 > 128*1000 {
		return color.Gray
	}
	return color.White
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// labelWidths measures the widest left and right labels of t. A zero
// width means the table has no labels on that side.
func labelWidths(t *render.Table) (left, right int) {
	for _, row := range t.Rows {
		if row.Footer || len(row.Cells) == 0 {
			continue
		}
		first, last := row.Cells[0], row.Cells[len(row.Cells)-1]
		if first.Kind == render.KindLabel {
			left = max(left, runewidth.StringWidth(first.Text), 1)
		}
		if last.Kind == render.KindLabel && len(row.Cells) > 1 {
			right = max(right, runewidth.StringWidth(last.Text), 1)
		}
	}
	return left, right
}

func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Lines returns the drawn lines, top to bottom.
func (f *Frame) Lines() []string {
	return f.lines
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return len(f.lines) }

// Table returns the table the frame was drawn from.
func (f *Frame) Table() *render.Table {
	return f.table
}

// At returns the data cell drawn at column x of line y.
func (f *Frame) At(x, y int) (*render.Cell, bool) {
	if y < 0 || y >= f.table.GridRows || x < f.dataX {
		return nil, false
	}
	col := (x - f.dataX) / f.cellWidth
	if col >= f.table.GridCols {
		return nil, false
	}
	return f.table.Data(y, col)
}
