package knitchart

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/hnimtadd/knitchart/apps"
	"github.com/hnimtadd/knitchart/apps/metapixel"
	"github.com/hnimtadd/knitchart/apps/twocolor"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/store"
	"github.com/hnimtadd/knitchart/logger"
)

// ErrUnknownApp is returned by New for an application name that is not
// registered.
var ErrUnknownApp = errors.New("knitchart: unknown app")

var factories = map[string]func(apps.Options) apps.App{
	twocolor.Name:  func(o apps.Options) apps.App { return twocolor.New(o) },
	metapixel.Name: func(o apps.Options) apps.App { return metapixel.New(o) },
}

// Apps returns the registered application names, sorted.
func Apps() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Chart struct {
	// The application owning the grids. It is not safe for concurrent use;
	// every call into it holds mu.
	app apps.App
	mu  sync.Mutex

	// The pointer handler. Rendered tables call back into it.
	handler *PointerHandler

	sheet  *css.Sheet
	logger logger.Logger
}

type Options struct {
	// App names the application, one of Apps().
	App    string
	Store  store.Store
	Logger logger.Logger
}

// New starts the named application. State saved in opts.Store is
// restored.
func New(opts Options) (*Chart, error) {
	factory, ok := factories[opts.App]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownApp, opts.App)
	}
	log := logger.OrNop(opts.Logger)
	sheet := css.NewSheet()

	app := factory(apps.Options{
		Store:  opts.Store,
		Sheet:  sheet,
		Logger: log,
	})
	c := &Chart{
		app:    app,
		sheet:  sheet,
		logger: log,
	}
	c.handler = &PointerHandler{chart: c, logger: log}
	return c, nil
}

func (c *Chart) Name() string {
	return c.app.Name()
}

// Sheet holds the style rules of every table rendered so far.
func (c *Chart) Sheet() *css.Sheet {
	return c.sheet
}

// Handler returns the handler bound to the tables returned by Render.
func (c *Chart) Handler() *PointerHandler {
	return c.handler
}

// HandlePointer feeds ev to the application. A panic inside the
// application is recovered and returned as an error; the chart stays
// usable.
func (c *Chart) HandlePointer(ev interact.Event) (bool, error) {
	return c.Do(func(app apps.App) bool {
		return app.Pointer(ev)
	})
}

// Do runs fn with exclusive access to the application and reports whether
// fn changed it. Panics are handled as in HandlePointer.
func (c *Chart) Do(fn func(app apps.App) bool) (changed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic in application", "app", c.app.Name(),
				"panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			changed = false
			err = fmt.Errorf("panic in %s: %v", c.app.Name(), r)
		}
	}()
	return fn(c.app), nil
}

// Render renders every panel of the application. Pointer callbacks of the
// returned tables go to Handler.
func (c *Chart) Render() []render.Panel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app.Panels(c.handler.Dispatch)
}

// RenderStatic renders every panel without pointer callbacks.
func (c *Chart) RenderStatic() []render.Panel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app.Panels(nil)
}

func (c *Chart) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app.Save()
}
