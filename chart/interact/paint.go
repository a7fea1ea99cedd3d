package interact

import (
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/logger"
)

// PickFunc chooses the paint color of a drag from the color under the
// pointer when the drag starts.
type PickFunc func(under color.Color) color.Color

// PaintOnDrag paints every cell a pointer passes over while pressed.
//
// It is Idle until a Down event, then Painting with the color chosen at
// that moment until the next Up. Enter events while Idle are ignored so a
// drag that started elsewhere does not paint.
type PaintOnDrag struct {
	pick PickFunc

	painting bool
	color    color.Color

	logger logger.Logger
}

var _ Interactor = (*PaintOnDrag)(nil)

type Option func(*PaintOnDrag)

func WithLogger(l logger.Logger) Option {
	return func(p *PaintOnDrag) {
		p.logger = logger.OrNop(l)
	}
}

func NewPaintOnDrag(pick PickFunc, opts ...Option) *PaintOnDrag {
	p := &PaintOnDrag{pick: pick, logger: logger.Nop}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewOneColor paints with the toggle of the cell a drag starts on, so a
// drag either fills or erases.
func NewOneColor(opts ...Option) *PaintOnDrag {
	return NewPaintOnDrag(color.Color.Toggle, opts...)
}

// State returns the paint color and whether a drag is in progress.
func (p *PaintOnDrag) State() (color.Color, bool) {
	return p.color, p.painting
}

func (p *PaintOnDrag) Update(grids GridSet, ev Event) bool {
	switch ev.Kind {
	case Down:
		g, ok := p.resolve(grids, ev)
		if !ok {
			return false
		}
		p.color = p.pick(g.Cell(ev.Cell.Row, ev.Cell.Col))
		p.painting = true
		return p.paint(g, ev)
	case Enter:
		if !p.painting {
			return false
		}
		g, ok := p.resolve(grids, ev)
		if !ok {
			return false
		}
		return p.paint(g, ev)
	case Up:
		p.painting = false
		p.color = color.White
		return false
	default:
		return false
	}
}

// resolve finds the grid under ev. Events for unknown grids or outside a
// grid come from a stale table and are dropped.
func (p *PaintOnDrag) resolve(grids GridSet, ev Event) (grid.Grid, bool) {
	g, ok := grids.Grid(ev.Cell.Grid)
	if !ok {
		p.logger.Warn("pointer event for unknown grid", "event", ev.String())
		return nil, false
	}
	if !grid.Contains(g, ev.Cell.Row, ev.Cell.Col) {
		p.logger.Warn("pointer event outside grid", "event", ev.String(),
			"rows", g.Rows(), "cols", g.Cols())
		return nil, false
	}
	return g, true
}

func (p *PaintOnDrag) paint(g grid.Grid, ev Event) bool {
	if g.Cell(ev.Cell.Row, ev.Cell.Col) == p.color {
		return false
	}
	g.SetCell(ev.Cell.Row, ev.Cell.Col, p.color)
	p.logger.Debug("painted cell", "event", ev.String(), "color", p.color.String())
	return true
}

// Palette paints with a selected color.
type Palette struct {
	*PaintOnDrag
	selected color.Color
}

func NewPalette(initial color.Color, opts ...Option) *Palette {
	p := &Palette{selected: initial}
	p.PaintOnDrag = NewPaintOnDrag(func(color.Color) color.Color {
		return p.selected
	}, opts...)
	return p
}

// SetColor selects the color of the next drag. A drag in progress keeps
// its color.
func (p *Palette) SetColor(c color.Color) {
	p.selected = c
}

func (p *Palette) Color() color.Color {
	return p.selected
}
