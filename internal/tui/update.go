package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hnimtadd/knitchart/apps"
	"github.com/hnimtadd/knitchart/apps/metapixel"
	"github.com/hnimtadd/knitchart/apps/twocolor"
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/input"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/point"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateInput(msg)
		}
		return m.key(msg)
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.lastX, m.lastY = msg.X, msg.Y
		if c, ok := m.cellAt(msg.X, msg.Y); ok {
			m.hover = c
			c.PointerDown()
		}
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		m.lastX, m.lastY = msg.X, msg.Y
		c, _ := m.cellAt(msg.X, msg.Y)
		if c == m.hover {
			return
		}
		if m.hover != nil {
			m.hover.PointerExit()
		}
		m.hover = c
		if c != nil {
			c.PointerEnter()
		}
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		if m.hover != nil {
			m.hover.PointerUp()
			m.hover = nil
		} else {
			// Released off the charts; the drag still ends.
			m.do(func(app apps.App) bool {
				return app.Pointer(interact.Event{Kind: interact.Up})
			})
		}
	}
	if m.chart.Handler().TakeDirty() {
		m.refresh()
	}
}

// do runs fn on the application and renders again when it reports a
// change.
func (m *Model) do(fn func(app apps.App) bool) {
	changed, err := m.chart.Do(fn)
	if err != nil {
		m.status = err.Error()
		m.logger.Error("action failed", "error", err.Error())
		return
	}
	if changed {
		m.refresh()
	}
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "s":
		if err := m.chart.Save(); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "saved"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.do(func(app apps.App) bool {
		switch a := app.(type) {
		case *twocolor.App:
			return m.twocolorKey(a, msg.String())
		case *metapixel.App:
			var changed bool
			changed, cmd = m.metapixelKey(a, msg.String())
			return changed
		}
		return false
	})
	return m, cmd
}

func (m *Model) twocolorKey(a *twocolor.App, key string) bool {
	switch key {
	case "1":
		m.status = "cleared layer 1"
		return a.Clear(point.GridLayerOne)
	case "2":
		m.status = "cleared layer 2"
		return a.Clear(point.GridLayerTwo)
	case "p":
		return a.TogglePrintable()
	}
	return false
}

var baseShifts = map[string]metapixel.Compass{
	"left":  metapixel.Left,
	"right": metapixel.Right,
	"up":    metapixel.Up,
	"down":  metapixel.Down,
}

func (m *Model) metapixelKey(a *metapixel.App, key string) (bool, tea.Cmd) {
	if dir, ok := baseShifts[key]; ok {
		return a.ShiftBase(dir), nil
	}
	switch key {
	case "h":
		return a.ShiftMetaX(grid.ShiftLeft), nil
	case "l":
		return a.ShiftMetaX(grid.ShiftRight), nil
	case "k":
		return a.ShiftMetaY(grid.ShiftLeft), nil
	case "j":
		return a.ShiftMetaY(grid.ShiftRight), nil
	case "[", "]":
		next := nextColor(a.Color(), key == "]")
		m.status = fmt.Sprintf("painting with %s", m.title.String(next.CSS()))
		return a.SelectColor(next), nil
	case "x":
		return a.Clear(), nil
	case "r":
		m.editing = editRows
		m.input.SetValue(input.FormatRunLengths(a.RowRuns()))
		return false, m.input.Focus()
	case "c":
		m.editing = editCols
		m.input.SetValue(input.FormatRunLengths(a.ColRuns()))
		return false, m.input.Focus()
	}
	return false, nil
}

// nextColor steps through the palette, skipping White.
func nextColor(c color.Color, forward bool) color.Color {
	all := color.All()
	i := 0
	for j, x := range all {
		if x == c {
			i = j
		}
	}
	for {
		if forward {
			i = (i + 1) % len(all)
		} else {
			i = (i + len(all) - 1) % len(all)
		}
		if !all[i].IsWhite() {
			return all[i]
		}
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		field, text := m.editing, m.input.Value()
		m.editing = editNone
		m.input.Blur()
		m.do(func(app apps.App) bool {
			a, ok := app.(*metapixel.App)
			if !ok {
				return false
			}
			if field == editRows {
				a.SetRowRuns(text)
				m.status = a.RowError()
			} else {
				a.SetColRuns(text)
				m.status = a.ColError()
			}
			return true
		})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
