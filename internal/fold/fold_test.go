package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := Reduce([]int{1, 2, 3, 4}, func(a, b int) int { return a + b })
	assert.Equal(t, 10, sum)

	single := Reduce([]int{7}, func(a, b int) int { return a + b })
	assert.Equal(t, 7, single)
}

func TestReduceEmptyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Reduce([]int{}, func(a, b int) int { return a + b })
	})
}

func TestChunk(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 8}}, Chunk(8, 3))
	assert.Equal(t, [][2]int{{0, 4}}, Chunk(4, 4))
	assert.Equal(t, [][2]int{}, Chunk(0, 4))
}

func TestChunkInvalidSizePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Chunk(10, 0) })
}
