// Package set interns hashable values. Each distinct value is stored once
// under a stable ID, and iteration follows the order in which values were
// first added. CSS sheets use it to collect rules and rendered tables use
// it to share inline styles between cells.
package set

import (
	"fmt"

	"github.com/hnimtadd/knitchart/chart/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type Hashable interface {
	Hash() uint64
	Equals(t Hashable) bool
}

// ID identifies an item in a set. 0 is never handed out.
type ID uint64

type Set struct {
	// The backing store of items, indexed by ID. Slot 0 is unused.
	items []Hashable

	// IDs of the items sharing a hash, oldest first.
	table map[uint64][]ID
}

type Options struct {
	// Cap is a capacity hint. If not set, it defaults to 64.
	Cap *uint64
}

func New(opts Options) *Set {
	var cap uint64 = 64
	if opts.Cap != nil {
		cap = *opts.Cap
	}
	return &Set{
		items: make([]Hashable, 1, cap+1),
		table: make(map[uint64][]ID, cap),
	}
}

// Add an item to the set if not present.
//
// Returns the item's ID. Adding an equal item again returns the first
// item's ID and keeps the stored value.
func (s *Set) Add(value Hashable) ID {
	hash := value.Hash()
	for _, id := range s.table[hash] {
		if s.items[id].Equals(value) {
			return id
		}
	}

	id := ID(len(s.items))
	s.items = append(s.items, value)
	s.table[hash] = append(s.table[hash], id)
	return id
}

// Get returns the value stored under id.
func (s *Set) Get(id ID) Hashable {
	utils.Assert(id > 0 && int(id) < len(s.items), fmt.Sprintf("unknown set item %d", id))
	return s.items[id]
}

func (s *Set) Count() int {
	return len(s.items) - 1
}

// Each calls fn for every item in the order items were first added,
// stopping early when fn returns false.
func (s *Set) Each(fn func(ID, Hashable) bool) {
	for id := 1; id < len(s.items); id++ {
		if !fn(ID(id), s.items[id]) {
			return
		}
	}
}

// HashOf hashes any value with hashstructure. Hashable implementations
// that are plain data can build their Hash on it.
func HashOf(v any) uint64 {
	hashed, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash %T: %v", v, err))
	return hashed
}
