package knitchart

import (
	"sync/atomic"

	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/logger"
)

// PointerHandler receives the pointer callbacks of rendered tables. It
// lives as long as its chart; tables from any render pass may call it.
type PointerHandler struct {
	chart *Chart

	// Set when an event changed a grid and the chart needs a new render
	// pass. Cleared by TakeDirty.
	dirty atomic.Bool

	// Number of events handled, for diagnostics.
	events atomic.Uint64

	logger logger.Logger
}

// Dispatch handles one event. Errors are logged; callbacks have nowhere
// to return them.
func (h *PointerHandler) Dispatch(ev interact.Event) {
	h.events.Add(1)
	changed, err := h.chart.HandlePointer(ev)
	if err != nil {
		h.logger.Error("pointer event failed", "event", ev.String(), "error", err.Error())
		return
	}
	if changed {
		h.dirty.Store(true)
	}
}

// TakeDirty reports whether any event changed a grid since the last call.
func (h *PointerHandler) TakeDirty() bool {
	return h.dirty.Swap(false)
}

// Events returns the number of events dispatched so far.
func (h *PointerHandler) Events() uint64 {
	return h.events.Load()
}
