package utils

import (
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a fixed-size set of indexes in [0, size).
type StaticBitSet struct {
	bits []uint64
	size int
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	Assert(size >= 0, "bit set size must not be negative")
	return &StaticBitSet{
		bits: make([]uint64, (size+bitSetSize-1)/bitSetSize),
		size: size,
	}
}

// Size is the number of addressable bits.
func (s *StaticBitSet) Size() int {
	return s.size
}

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	word, offset := s.addr(idx)
	s.bits[word] |= 1 << offset
}

// Unset clears the bit at the given idx
func (s *StaticBitSet) Unset(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	word, offset := s.addr(idx)
	s.bits[word] &^= 1 << offset
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	word, offset := s.addr(idx)
	return s.bits[word]&(1<<offset) != 0
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for _, word := range s.bits {
		total += bits.OnesCount64(word)
	}
	return total
}

// Clear unsets every bit.
func (s *StaticBitSet) Clear() {
	clear(s.bits)
}

// addr return the index of the word holding idx and the offset of idx in
// that word.
func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}
