// Package twocolor is a double-knit chart editor. Two same-sized layers
// are painted separately and shown interleaved column by column, the way
// the fabric is knitted: odd columns from the front, even from the back.
package twocolor

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/knitchart/apps"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/hnimtadd/knitchart/chart/store"
	"github.com/hnimtadd/knitchart/logger"
)

const (
	Name = "twocolor"

	// Size is the number of rows and columns of each layer.
	Size = 15

	// Label numbering skips the cast-on rows and edge stitches.
	labelStart = 3

	storageKey = "twocolor"
)

// document is the stored state.
type document struct {
	Front     grid.Snapshot `yaml:"front" validate:"required"`
	Back      grid.Snapshot `yaml:"back" validate:"required"`
	Printable bool          `yaml:"printable"`
}

type App struct {
	front *grid.SimpleGrid
	back  *grid.SimpleGrid

	printable bool
	interact  *interact.PaintOnDrag

	// fingerprint of the layers at the last save.
	saved uint64

	opts   apps.Options
	logger logger.Logger
}

var _ apps.App = (*App)(nil)

// New restores the last saved chart, or starts from two blank layers.
func New(opts apps.Options) *App {
	opts = opts.WithDefaults()
	a := &App{
		opts:   opts,
		logger: opts.Logger,
	}
	a.interact = interact.NewOneColor(interact.WithLogger(opts.Logger))
	a.reset()
	if err := a.Load(); err != nil && !errors.Is(err, store.ErrNotFound) {
		a.logger.Warn("discarding stored chart", "key", storageKey, "error", err.Error())
	}
	return a
}

func (a *App) reset() {
	a.front = grid.NewSimpleGrid(point.GridLayerOne, Size, Size)
	a.back = grid.NewSimpleGrid(point.GridLayerTwo, Size, Size)
	a.printable = false
	a.saved = a.fingerprint()
}

func (a *App) fingerprint() uint64 {
	return grid.Fingerprint(a.front) ^ grid.Fingerprint(a.back)<<1
}

func (*App) Name() string { return Name }

// Grid returns the layer tagged id.
func (a *App) Grid(id point.GridID) (grid.Grid, bool) {
	switch id {
	case point.GridLayerOne:
		return a.front, true
	case point.GridLayerTwo:
		return a.back, true
	default:
		return nil, false
	}
}

// Pointer paints with the one-color interactor. The chart is saved when a
// drag that changed it ends.
func (a *App) Pointer(ev interact.Event) bool {
	changed := a.interact.Update(a, ev)
	if ev.Kind == interact.Up && a.fingerprint() != a.saved {
		if err := a.Save(); err != nil {
			a.logger.Error("failed to save chart", "error", err.Error())
		}
	}
	return changed
}

// Clear wipes the layer tagged id.
func (a *App) Clear(id point.GridID) bool {
	g, ok := a.Grid(id)
	if !ok {
		a.logger.Warn("clear of unknown layer", "grid", id.String())
		return false
	}
	g.Clear()
	if err := a.Save(); err != nil {
		a.logger.Error("failed to save chart", "error", err.Error())
	}
	return true
}

// TogglePrintable switches between the editing panels and the combined
// chart alone.
func (a *App) TogglePrintable() bool {
	a.printable = !a.printable
	if err := a.Save(); err != nil {
		a.logger.Error("failed to save chart", "error", err.Error())
	}
	return true
}

func (a *App) Printable() bool {
	return a.printable
}

func (a *App) renderer(g grid.Grid, dispatch func(interact.Event)) *render.TableRenderer {
	r := render.Regular(g, a.opts.RenderOptions()...)
	if dispatch != nil {
		interact.Install(r, dispatch)
	}
	return r
}

func (a *App) layerPanel(title string, g grid.Grid, dispatch func(interact.Event)) render.Panel {
	r := a.renderer(g, dispatch)
	r.AddClassDecorator(decorator.NewThickBorders())
	r.SetLabelDecorator(decorator.FlatLabelsStartingAt(labelStart, labelStart))
	return render.Panel{Title: title, Table: r.Render()}
}

func (a *App) Panels(dispatch func(interact.Event)) []render.Panel {
	var panels []render.Panel
	if !a.printable {
		panels = append(panels,
			a.layerPanel("Layer 1", a.front, dispatch),
			a.layerPanel("Layer 2", a.back, dispatch),
		)
	}

	merged, err := grid.NewMergedGrid(point.GridMerged, a.front, a.back)
	if err != nil {
		// Both layers are built at Size and restored layers are checked.
		panic(err)
	}
	r := a.renderer(merged, dispatch)
	r.AddClassDecorator(decorator.MergedBorder{})
	r.AddClassDecorator(decorator.ThickHorizontal())
	r.SetLabelDecorator(decorator.MergedFlatLabelsStartingAt(labelStart, labelStart))
	r.SetPurlDecorator(decorator.EvenPurl{})
	return append(panels, render.Panel{Title: "Chart", Table: r.Render()})
}

func (a *App) Save() error {
	doc := document{
		Front:     a.front.Snapshot(),
		Back:      a.back.Snapshot(),
		Printable: a.printable,
	}
	if err := a.opts.Store.Save(storageKey, doc); err != nil {
		return err
	}
	a.saved = a.fingerprint()
	a.logger.Debug("saved chart", "key", storageKey)
	return nil
}

// Load replaces the layers with the stored ones. On error the current
// layers are kept.
func (a *App) Load() error {
	var doc document
	if err := a.opts.Store.Load(storageKey, &doc); err != nil {
		return err
	}
	front, err := grid.RestoreSimple(doc.Front)
	if err != nil {
		return err
	}
	back, err := grid.RestoreSimple(doc.Back)
	if err != nil {
		return err
	}
	if err := checkLayer(front, point.GridLayerOne); err != nil {
		return err
	}
	if err := checkLayer(back, point.GridLayerTwo); err != nil {
		return err
	}

	a.front, a.back = front, back
	a.printable = doc.Printable
	a.saved = a.fingerprint()
	return nil
}

func checkLayer(g grid.Grid, id point.GridID) error {
	switch {
	case g.ID() != id:
		return &grid.ConfigurationError{Grid: g.ID(), Message: "expected " + id.String()}
	case g.Rows() != Size || g.Cols() != Size:
		return &grid.ConfigurationError{Grid: g.ID(), Message: fmt.Sprintf("stored layer is %dx%d", g.Rows(), g.Cols())}
	}
	return nil
}
