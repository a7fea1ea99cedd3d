package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart/apps/metapixel"
	"github.com/hnimtadd/knitchart/apps/twocolor"
)

var help = map[string]string{
	twocolor.Name:  "drag to paint · 1/2 clear a layer · p printable · s save · q quit",
	metapixel.Name: "drag to paint · [ ] color · arrows move · h/l j/k shift runs · r/c edit runs · x clear · s save · q quit",
}

// View draws the header, the panels side by side and the status line.
// Panel frames are drawn at the positions recorded by refresh.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("knitchart · " + m.title.String(m.chart.Name())))
	b.WriteString(strings.Repeat("\n", headerTop))

	blocks := make([]string, 0, 2*len(m.panels))
	for i, p := range m.panels {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", panelGap))
		}
		lines := append([]string{titleStyle.Render(p.title)}, p.frame.Lines()...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")

	if m.editing != editNone {
		label := "row runs"
		if m.editing == editCols {
			label = "column runs"
		}
		b.WriteString("\n" + label + " " + m.input.View())
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render(help[m.chart.Name()]))
	return b.String()
}
