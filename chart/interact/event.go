// Package interact turns pointer gestures over rendered tables into grid
// mutations.
package interact

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
)

// Kind is the kind of a pointer event.
type Kind int

const (
	Down Kind = iota
	Up
	Enter
	Exit
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Up:
		return "up"
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is a pointer event over a cell. Cell is always a base grid
// address, as resolved by the renderer.
type Event struct {
	Kind Kind
	Cell point.CellID
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.Cell)
}

// GridSet finds the base grid stored under an id.
type GridSet interface {
	Grid(id point.GridID) (grid.Grid, bool)
}

// Grids is a GridSet backed by a map.
type Grids map[point.GridID]grid.Grid

func (g Grids) Grid(id point.GridID) (grid.Grid, bool) {
	found, ok := g[id]
	return found, ok
}

// Interactor consumes pointer events. Update reports whether the event
// changed a grid, in which case the caller re-renders.
type Interactor interface {
	Update(grids GridSet, ev Event) bool
}

// Install binds r's pointer callbacks to dispatch.
func Install(r *render.TableRenderer, dispatch func(Event)) {
	send := func(kind Kind) render.Callback {
		return func(id point.CellID) {
			dispatch(Event{Kind: kind, Cell: id})
		}
	}
	r.SetInteractions(render.Interactions{
		Down:  send(Down),
		Up:    send(Up),
		Enter: send(Enter),
		Exit:  send(Exit),
	})
}
