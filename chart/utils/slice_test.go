package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateOnce(t *testing.T) {
	items := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 3, 4, 1}, RotateOnce(items))
	assert.Equal(t, []int{1, 2, 3, 4}, RotateOnceR(items))
}

func TestRotateEmpty(t *testing.T) {
	assert.Empty(t, RotateOnce([]int{}))
	assert.Empty(t, RotateOnceR([]int(nil)))
}

func TestClone(t *testing.T) {
	items := []uint8{1, 2}
	cloned := Clone(items)
	cloned[0] = 9
	assert.Equal(t, uint8(1), items[0])
	assert.Nil(t, Clone[int](nil))
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithValue(t, "boom", func() { Assert(false, "boom") })
	assert.PanicsWithValue(t, "failed assertion", func() { Assert(false) })
}
