// Package tui paints charts in a terminal. Mouse events are mapped to the
// data cell under the pointer and delivered through the pointer callbacks
// of the rendered tables, so painting behaves as it does in any other
// front end.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/term"
	"github.com/hnimtadd/knitchart/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// runsField is the run-length vector being edited.
type runsField int

const (
	editNone runsField = iota
	editRows
	editCols
)

// Panels are laid out side by side, separated by panelGap columns, below
// the header.
const (
	panelGap  = 4
	headerTop = 2
)

// placed is a drawn panel and the screen position of its frame.
type placed struct {
	title string
	frame *term.Frame
	x, y  int
}

// Options configure a Model.
type Options struct {
	// CellWidth is the number of terminal columns per chart cell.
	CellWidth int
	Renderer  *lipgloss.Renderer
	Logger    logger.Logger
}

// Model is the bubbletea model of the paint UI.
type Model struct {
	chart *knitchart.Chart
	opts  term.Options

	panels []placed

	// The cell under a pressed pointer and where the pointer was.
	hover        *render.Cell
	lastX, lastY int
	pressed      bool

	input   textinput.Model
	editing runsField

	status   string
	width    int
	quitting bool

	title  cases.Caser
	logger logger.Logger
}

// New returns the paint UI for chart.
func New(chart *knitchart.Chart, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "1, 2, 3"
	ti.CharLimit = 400

	m := Model{
		chart: chart,
		opts: term.Options{
			CellWidth: opts.CellWidth,
			Renderer:  opts.Renderer,
		},
		input:  ti,
		title:  cases.Title(language.English),
		logger: logger.OrNop(opts.Logger),
	}
	m.refresh()
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Status returns the message shown under the charts.
func (m Model) Status() string {
	return m.status
}

// refresh renders every panel again and lays them out. A pressed pointer
// keeps tracking the cell at its position in the new tables.
func (m *Model) refresh() {
	m.panels = nil
	x := 0
	for _, p := range m.chart.Render() {
		frame := term.Render(p.Table, m.opts)
		m.panels = append(m.panels, placed{
			title: p.Title,
			frame: frame,
			x:     x,
			y:     headerTop + 1,
		})
		x += max(frame.Width(), lipgloss.Width(p.Title)) + panelGap
	}
	if m.hover != nil {
		m.hover, _ = m.cellAt(m.lastX, m.lastY)
	}
}

// cellAt returns the data cell drawn at screen position (x, y).
func (m *Model) cellAt(x, y int) (*render.Cell, bool) {
	for _, p := range m.panels {
		if x < p.x || x >= p.x+p.frame.Width() {
			continue
		}
		if c, ok := p.frame.At(x-p.x, y-p.y); ok {
			return c, true
		}
	}
	return nil, false
}
