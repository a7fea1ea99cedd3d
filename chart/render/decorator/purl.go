package decorator

// NoPurl marks no cell.
type NoPurl struct{}

func (NoPurl) IsPurl(int, int) bool { return false }

// EvenPurl marks every even column. On a merged chart those are the
// back layer's stitches.
type EvenPurl struct{}

func (EvenPurl) IsPurl(_, col int) bool { return col%2 == 0 }
