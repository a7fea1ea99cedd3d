// Package metapixel is a metapixel pattern editor. A small pixel grid is
// painted with a palette and shown again with every row and column
// stretched by a run length, the way a metapixel chart is knitted.
package metapixel

import (
	"errors"

	"github.com/hnimtadd/knitchart/apps"
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/input"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/hnimtadd/knitchart/chart/store"
	"github.com/hnimtadd/knitchart/chart/utils"
	"github.com/hnimtadd/knitchart/logger"
)

const (
	Name = "metapixel"

	storageKey = "metapixel"
)

// Compass is the direction ShiftBase moves the pixel grid in.
type Compass int

const (
	Left Compass = iota
	Right
	Up
	Down
)

func (c Compass) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

var (
	defaultRowRuns = []uint8{1, 2, 1, 3, 3, 1, 2, 1}
	defaultColRuns = []uint8{1, 2, 3, 2, 1, 1, 1, 2, 3, 2, 1}

	// invader is painted green on a fresh pixel grid.
	invader = [][2]int{
		{0, 2}, {0, 8},
		{1, 3}, {1, 7},
		{2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7}, {2, 8},
		{3, 1}, {3, 2}, {3, 4}, {3, 5}, {3, 6}, {3, 8}, {3, 9},
		{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}, {4, 7}, {4, 8}, {4, 9}, {4, 10},
		{5, 0}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 10},
		{6, 0}, {6, 2}, {6, 8}, {6, 10},
		{7, 3}, {7, 4}, {7, 6}, {7, 7},
	}
)

const initialColor = color.Orange

// document is the stored state.
type document struct {
	Base    grid.Snapshot `yaml:"base" validate:"required"`
	RowRuns []uint8       `yaml:"row_runs" validate:"min=1,max=100,run_total,dive,min=1"`
	ColRuns []uint8       `yaml:"col_runs" validate:"min=1,max=100,run_total,dive,min=1"`
}

type App struct {
	base    *grid.BigGrid
	rowRuns []uint8
	colRuns []uint8

	// Messages of the last rejected run-length input, empty when the
	// input was accepted.
	rowErr string
	colErr string

	interact *interact.Palette

	opts   apps.Options
	logger logger.Logger
}

var _ apps.App = (*App)(nil)

// New restores the last saved pattern, or starts from the invader.
func New(opts apps.Options) *App {
	opts = opts.WithDefaults()
	a := &App{
		opts:     opts,
		logger:   opts.Logger,
		interact: interact.NewPalette(initialColor, interact.WithLogger(opts.Logger)),
	}
	a.reset()
	if err := a.Load(); err != nil && !errors.Is(err, store.ErrNotFound) {
		a.logger.Warn("discarding stored pattern", "key", storageKey, "error", err.Error())
	}
	return a
}

func (a *App) reset() {
	a.rowRuns = utils.Clone(defaultRowRuns)
	a.colRuns = utils.Clone(defaultColRuns)
	base, err := grid.NewBigGrid(point.GridMain, len(a.rowRuns), len(a.colRuns))
	if err != nil {
		panic(err)
	}
	for _, p := range invader {
		base.SetCell(p[0], p[1], color.Green)
	}
	a.base = base
}

func (*App) Name() string { return Name }

// Grid returns the pixel grid. Metapixel cells resolve to it too.
func (a *App) Grid(id point.GridID) (grid.Grid, bool) {
	if id != point.GridMain {
		return nil, false
	}
	return a.base, true
}

func (a *App) RowRuns() []uint8 { return utils.Clone(a.rowRuns) }
func (a *App) ColRuns() []uint8 { return utils.Clone(a.colRuns) }

// RowError returns why the last row run-length input was rejected.
func (a *App) RowError() string { return a.rowErr }

// ColError returns why the last column run-length input was rejected.
func (a *App) ColError() string { return a.colErr }

func (a *App) save() {
	if err := a.Save(); err != nil {
		a.logger.Error("failed to save pattern", "error", err.Error())
	}
}

// Pointer paints with the palette. The pattern is saved when a drag ends.
func (a *App) Pointer(ev interact.Event) bool {
	changed := a.interact.Update(a, ev)
	if ev.Kind == interact.Up {
		a.save()
	}
	return changed
}

// SelectColor picks the color of the next drag.
func (a *App) SelectColor(c color.Color) bool {
	if c == a.interact.Color() {
		return false
	}
	a.interact.SetColor(c)
	return true
}

func (a *App) Color() color.Color {
	return a.interact.Color()
}

// SetRowRuns parses text as the row run lengths. Rejected input keeps the
// current runs and is reported by RowError.
func (a *App) SetRowRuns(text string) bool {
	runs, err := input.ParseRunLengths("rows", text)
	if err != nil {
		a.rowErr = message(err)
		return true
	}
	a.rowErr = ""
	a.rowRuns = runs
	a.resize()
	return true
}

// SetColRuns is SetRowRuns for columns.
func (a *App) SetColRuns(text string) bool {
	runs, err := input.ParseRunLengths("columns", text)
	if err != nil {
		a.colErr = message(err)
		return true
	}
	a.colErr = ""
	a.colRuns = runs
	a.resize()
	return true
}

func message(err error) string {
	var verr *input.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// resize fits the pixel grid to one cell per run and saves.
func (a *App) resize() {
	// ParseRunLengths caps the number of runs at the grid capacity.
	if err := a.base.Resize(len(a.rowRuns), len(a.colRuns)); err != nil {
		panic(err)
	}
	a.save()
}

// ShiftMetaX rotates the column runs by one.
func (a *App) ShiftMetaX(direction grid.ShiftDirection) bool {
	return a.shiftRuns(a.colRuns, direction)
}

// ShiftMetaY rotates the row runs by one.
func (a *App) ShiftMetaY(direction grid.ShiftDirection) bool {
	return a.shiftRuns(a.rowRuns, direction)
}

func (a *App) shiftRuns(runs []uint8, direction grid.ShiftDirection) bool {
	if len(runs) == 0 {
		return false
	}
	switch direction {
	case grid.ShiftLeft:
		utils.RotateOnce(runs)
	case grid.ShiftRight:
		utils.RotateOnceR(runs)
	default:
		return false
	}
	a.save()
	return true
}

// ShiftBase rotates the pixel grid one cell toward direction.
func (a *App) ShiftBase(direction Compass) bool {
	switch direction {
	case Left:
		grid.ShiftRows(a.base, grid.ShiftLeft)
	case Right:
		grid.ShiftRows(a.base, grid.ShiftRight)
	case Up:
		grid.ShiftCols(a.base, grid.ShiftLeft)
	case Down:
		grid.ShiftCols(a.base, grid.ShiftRight)
	default:
		return false
	}
	a.save()
	return true
}

// Clear wipes the pixel grid, including cells hidden by a smaller size.
func (a *App) Clear() bool {
	a.base.Clear()
	a.save()
	return true
}

// MetaGrid returns the stretched view of the pixel grid.
func (a *App) MetaGrid() *grid.MetaGrid {
	meta, err := grid.NewMetaGrid(point.GridMeta, a.base, a.rowRuns, a.colRuns)
	// The grid is resized with every run-length change.
	if err != nil {
		panic(err)
	}
	return meta
}

func (a *App) Panels(dispatch func(interact.Event)) []render.Panel {
	pixels := render.Regular(a.base, a.opts.RenderOptions()...)

	metaGrid := a.MetaGrid()
	meta := render.Regular(metaGrid, a.opts.RenderOptions()...)
	meta.AddClassDecorator(decorator.NewMetagrid(metaGrid))

	if dispatch != nil {
		interact.Install(pixels, dispatch)
		interact.Install(meta, dispatch)
	}
	return []render.Panel{
		{Title: "Pixel grid", Table: pixels.Render()},
		{Title: "Metapixel grid", Table: meta.Render()},
	}
}

func (a *App) Save() error {
	doc := document{
		Base:    a.base.Snapshot(),
		RowRuns: a.rowRuns,
		ColRuns: a.colRuns,
	}
	if err := a.opts.Store.Save(storageKey, doc); err != nil {
		return err
	}
	a.logger.Debug("saved pattern", "key", storageKey)
	return nil
}

// Load replaces the pattern with the stored one. On error the current
// pattern is kept.
func (a *App) Load() error {
	var doc document
	if err := a.opts.Store.Load(storageKey, &doc); err != nil {
		return err
	}
	base, err := grid.RestoreBig(doc.Base)
	if err != nil {
		return err
	}
	if base.ID() != point.GridMain {
		return &grid.ConfigurationError{Grid: base.ID(), Message: "expected " + point.GridMain.String()}
	}
	// The runs decide the size.
	if err := base.Resize(len(doc.RowRuns), len(doc.ColRuns)); err != nil {
		return err
	}

	a.base = base
	a.rowRuns = doc.RowRuns
	a.colRuns = doc.ColRuns
	a.rowErr, a.colErr = "", ""
	return nil
}
