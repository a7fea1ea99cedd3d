package point

import "fmt"

// GridID tags a grid so a cell observed through any chain of views can be
// routed back to the grid that stores it. Nothing enforces uniqueness;
// the owning application assigns meaning to each tag.
type GridID int

const (
	// The primary grid of a single-grid chart.
	GridMain GridID = iota

	// Tags for derived views. Views report their base's tag in CellID,
	// so these only show up through ID().
	GridFlipped
	GridInverted
	GridTransposed
	GridMerged
	GridMeta
	GridTiled

	// The two layers of a double-knit chart. LayerOne is the front.
	GridLayerOne
	GridLayerTwo

	// Scratch views that never escape the function creating them.
	GridTemp

	numGridIDs = iota
)

var gridIDNames = [numGridIDs]string{
	GridMain:       "main",
	GridFlipped:    "flipped",
	GridInverted:   "inverted",
	GridTransposed: "transposed",
	GridMerged:     "merged",
	GridMeta:       "meta",
	GridTiled:      "tiled",
	GridLayerOne:   "layer-one",
	GridLayerTwo:   "layer-two",
	GridTemp:       "temp",
}

func (t GridID) String() string {
	if t < 0 || int(t) >= numGridIDs {
		return "unknown"
	}
	return gridIDNames[t]
}

// ParseGridID is the inverse of String.
func ParseGridID(s string) (GridID, error) {
	for i, name := range gridIDNames {
		if name == s {
			return GridID(i), nil
		}
	}
	return 0, fmt.Errorf("point: unknown grid id %q", s)
}

func (t GridID) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= numGridIDs {
		return nil, fmt.Errorf("point: cannot marshal grid id %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *GridID) UnmarshalText(text []byte) error {
	parsed, err := ParseGridID(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
