package point

import "fmt"

// CellID addresses one stored cell: the grid that owns it and the
// coordinates inside that grid, never the coordinates in a derived view.
type CellID struct {
	Grid GridID
	Row  int
	Col  int
}

func NewCellID(grid GridID, row, col int) CellID {
	return CellID{Grid: grid, Row: row, Col: col}
}

func (c CellID) String() string {
	return fmt.Sprintf("%s(%d, %d)", c.Grid, c.Row, c.Col)
}
