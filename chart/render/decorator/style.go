package decorator

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/color"
)

// Color paints the cell background with the cell's color.
type Color struct{}

func (Color) CellStyle(_, _ int, c color.Color) []string {
	return []string{"background: " + c.CSS()}
}

// CellSize fixes the cell size inline, for charts whose size is chosen
// at run time.
type CellSize struct {
	declarations []string
}

func NewCellSize(px int) CellSize {
	return CellSize{declarations: []string{
		fmt.Sprintf("height: %dpx", px),
		fmt.Sprintf("width: %dpx", px),
	}}
}

func (d CellSize) CellStyle(int, int, color.Color) []string {
	return d.declarations
}
