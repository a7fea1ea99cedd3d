package grid

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/point"
)

// Snapshot is the plain, serializable state of a stored grid. Cells holds
// one string of color codes per stored row; trailing White cells and
// trailing empty rows are omitted.
type Snapshot struct {
	ID    point.GridID `yaml:"id" json:"id"`
	Rows  int          `yaml:"rows" json:"rows" validate:"gte=0"`
	Cols  int          `yaml:"cols" json:"cols" validate:"gte=0"`
	Cells []string     `yaml:"cells,omitempty" json:"cells,omitempty"`
}

func encodeRows(rows, cols int, at func(row, col int) color.Color) []string {
	lines := make([]string, rows)
	last := -1
	for row := range rows {
		var b strings.Builder
		for col := range cols {
			b.WriteRune(at(row, col).Code())
		}
		lines[row] = strings.TrimRight(b.String(), string(color.White.Code()))
		if lines[row] != "" {
			last = row
		}
	}
	return lines[:last+1]
}

func decodeRows(s Snapshot, maxRows, maxCols int, set func(row, col int, c color.Color)) error {
	if len(s.Cells) > maxRows {
		return &ConfigurationError{
			Grid:    s.ID,
			Message: fmt.Sprintf("snapshot has %d rows of cells, limit is %d", len(s.Cells), maxRows),
		}
	}
	for row, line := range s.Cells {
		col := 0
		for _, code := range line {
			if col >= maxCols {
				return &ConfigurationError{
					Grid:    s.ID,
					Message: fmt.Sprintf("snapshot row %d is wider than %d", row, maxCols),
				}
			}
			c, err := color.ParseCode(code)
			if err != nil {
				return fmt.Errorf("snapshot row %d: %w", row, err)
			}
			set(row, col, c)
			col++
		}
	}
	return nil
}

// Snapshot captures g.
func (g *SimpleGrid) Snapshot() Snapshot {
	return Snapshot{
		ID:    g.id,
		Rows:  g.height,
		Cols:  g.width,
		Cells: encodeRows(g.height, g.width, g.Cell),
	}
}

// RestoreSimple rebuilds a SimpleGrid from a snapshot.
func RestoreSimple(s Snapshot) (*SimpleGrid, error) {
	if s.Rows < 0 || s.Cols < 0 {
		return nil, &ConfigurationError{
			Grid:    s.ID,
			Message: fmt.Sprintf("negative size %dx%d", s.Rows, s.Cols),
		}
	}
	g := NewSimpleGrid(s.ID, s.Rows, s.Cols)
	if err := decodeRows(s, s.Rows, s.Cols, g.SetCell); err != nil {
		return nil, err
	}
	return g, nil
}

// Snapshot captures the logical size of g and the painted part of its
// whole backing store, so cells outside the window survive a round trip.
func (g *BigGrid) Snapshot() Snapshot {
	return Snapshot{
		ID:    g.id,
		Rows:  g.height,
		Cols:  g.width,
		Cells: encodeRows(MaxRows, MaxCols, g.stored),
	}
}

// RestoreBig rebuilds a BigGrid from a snapshot.
func RestoreBig(s Snapshot) (*BigGrid, error) {
	g, err := NewBigGrid(s.ID, s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}
	err = decodeRows(s, MaxRows, MaxCols, func(row, col int, c color.Color) {
		g.cells[row*MaxCols+col] = c
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}
