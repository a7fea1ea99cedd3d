package grid

import "github.com/hnimtadd/knitchart/chart/utils"

// ExpandRunLengths turns a run-length vector into a lookup table: base
// index 0 repeated runs[0] times, base index 1 repeated runs[1] times, and
// so on. A zero run skips its base index.
//
//	ExpandRunLengths([]uint8{1, 2, 3}) == []int{0, 1, 1, 2, 2, 2}
func ExpandRunLengths(runs []uint8) []int {
	total := 0
	for _, n := range runs {
		total += int(n)
	}
	table := make([]int, 0, total)
	for base, n := range runs {
		for range n {
			table = append(table, base)
		}
	}
	return table
}

// Boundaries marks every index i of an expanded table where a new
// meta-pixel starts, that is i > 0 and table[i] != table[i-1].
func Boundaries(table []int) *utils.StaticBitSet {
	set := utils.NewStaticBitSet(len(table))
	for i := 1; i < len(table); i++ {
		if table[i] != table[i-1] {
			set.Set(i)
		}
	}
	return set
}
