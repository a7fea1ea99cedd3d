// Package apps holds what the chart applications share. Each application
// lives in its own subpackage and owns its base grids; views over them are
// rebuilt on every render pass.
package apps

import (
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/store"
	"github.com/hnimtadd/knitchart/logger"
)

// App is a chart application.
type App interface {
	interact.GridSet

	Name() string

	// Pointer feeds a pointer event to the application's interactor and
	// reports whether anything changed.
	Pointer(ev interact.Event) bool

	// Panels renders every chart the application shows. A nil dispatch
	// renders static tables.
	Panels(dispatch func(interact.Event)) []render.Panel

	// Save persists the application state.
	Save() error
}

// Options configure an application.
type Options struct {
	// Store persists state between runs. Nil keeps state in memory only.
	Store store.Store
	// Sheet collects decorator rules. Nil uses css.Default.
	Sheet  *css.Sheet
	Logger logger.Logger
}

// WithDefaults fills in unset fields.
func (o Options) WithDefaults() Options {
	if o.Store == nil {
		o.Store = store.NewMemory()
	}
	if o.Sheet == nil {
		o.Sheet = css.Default
	}
	o.Logger = logger.OrNop(o.Logger)
	return o
}

// RenderOptions returns the renderer options for o.
func (o Options) RenderOptions() []render.Option {
	return []render.Option{render.WithSheet(o.Sheet)}
}
