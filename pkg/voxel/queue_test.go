package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildQueue_EnqueueAndPopOrdersByPriority(t *testing.T) {
	q := NewRebuildQueue()
	low := NewChunkCoord(1, 0, 0)
	high := NewChunkCoord(2, 0, 0)
	mid := NewChunkCoord(3, 0, 0)

	q.Enqueue(low, 1.0, 0)
	q.Enqueue(high, 10.0, 0)
	q.Enqueue(mid, 5.0, 0)

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, high, first.Coord)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, mid, second.Coord)

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, low, third.Coord)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestRebuildQueue_EnqueueDeduplicates(t *testing.T) {
	q := NewRebuildQueue()
	coord := NewChunkCoord(0, 0, 0)

	assert.True(t, q.Enqueue(coord, 1.0, 0))
	assert.False(t, q.Enqueue(coord, 2.0, 0))
	assert.Equal(t, 1, q.Len())
}

func TestRebuildQueue_ContainsAndRemove(t *testing.T) {
	q := NewRebuildQueue()
	coord := NewChunkCoord(0, 0, 0)
	q.Enqueue(coord, 1.0, 0)

	assert.True(t, q.Contains(coord))
	assert.True(t, q.Remove(coord))
	assert.False(t, q.Contains(coord))

	_, ok := q.Pop()
	assert.False(t, ok, "removed entries must be skipped on pop")
}

func TestRebuildQueue_PeekIsNonDestructive(t *testing.T) {
	q := NewRebuildQueue()
	coord := NewChunkCoord(0, 0, 0)
	q.Enqueue(coord, 5.0, 3)

	peeked, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, coord, peeked.Coord)
	assert.Equal(t, uint64(3), peeked.DataVersion)
	assert.Equal(t, 1, q.Len())
}

func TestRebuildQueue_ClearEmptiesQueue(t *testing.T) {
	q := NewRebuildQueue()
	q.Enqueue(NewChunkCoord(0, 0, 0), 1.0, 0)
	q.Enqueue(NewChunkCoord(1, 0, 0), 2.0, 0)
	q.Clear()

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}

func TestRebuildQueue_DataVersionPreservedThroughPop(t *testing.T) {
	q := NewRebuildQueue()
	coord := NewChunkCoord(4, 4, 4)
	q.Enqueue(coord, 1.0, 42)

	req, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint64(42), req.DataVersion)
}

func TestCalculatePriority_HigherForCloserChunks(t *testing.T) {
	camera := [3]float32{0, 0, 0}
	near := CalculatePriority([3]float32{1, 0, 0}, camera)
	far := CalculatePriority([3]float32{100, 0, 0}, camera)
	assert.True(t, near > far)
}

func TestCalculatePriority_AtCameraPositionIsLarge(t *testing.T) {
	camera := [3]float32{5, 5, 5}
	priority := CalculatePriority(camera, camera)
	assert.True(t, priority > 100.0)
}
