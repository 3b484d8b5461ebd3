package voxel

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl32"
)

// RebuildRequest is a pending mesh rebuild, ordered by Priority (higher
// values are more urgent).
type RebuildRequest struct {
	Coord       ChunkCoord
	Priority    float32
	DataVersion uint64
}

// rebuildHeap implements container/heap.Interface. container/heap is a
// min-heap, so Less is inverted to give max-heap (highest priority first)
// behavior.
type rebuildHeap []RebuildRequest

func (h rebuildHeap) Len() int            { return len(h) }
func (h rebuildHeap) Less(i, j int) bool  { return h[i].Priority > h[j].Priority }
func (h rebuildHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rebuildHeap) Push(x interface{}) { *h = append(*h, x.(RebuildRequest)) }
func (h *rebuildHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// RebuildQueue is a priority queue of chunk rebuilds. It deduplicates by
// chunk coordinate: each chunk can only be in the queue once at a time.
// Removal is lazy — entries dropped by Remove stay in the heap and are
// skipped when popped, since membership is tracked separately in inQueue.
// After UpdatePriority both entries for a coord stay in the heap; the one
// that surfaces first is returned and the other is skipped.
type RebuildQueue struct {
	queue   rebuildHeap
	inQueue map[ChunkCoord]struct{}
}

// NewRebuildQueue returns an empty rebuild queue.
func NewRebuildQueue() *RebuildQueue {
	return &RebuildQueue{inQueue: make(map[ChunkCoord]struct{})}
}

// NewRebuildQueueWithCapacity returns an empty rebuild queue with
// pre-allocated capacity.
func NewRebuildQueueWithCapacity(capacity int) *RebuildQueue {
	return &RebuildQueue{
		queue:   make(rebuildHeap, 0, capacity),
		inQueue: make(map[ChunkCoord]struct{}, capacity),
	}
}

// Enqueue adds coord to the queue with the given priority. Returns false
// (no-op) if coord is already queued.
func (q *RebuildQueue) Enqueue(coord ChunkCoord, priority float32, dataVersion uint64) bool {
	if _, ok := q.inQueue[coord]; ok {
		return false
	}
	q.inQueue[coord] = struct{}{}
	heap.Push(&q.queue, RebuildRequest{Coord: coord, Priority: priority, DataVersion: dataVersion})
	return true
}

// Pop removes and returns the highest-priority request, or false if the
// queue is empty.
func (q *RebuildQueue) Pop() (RebuildRequest, bool) {
	for q.queue.Len() > 0 {
		request := heap.Pop(&q.queue).(RebuildRequest)
		if _, ok := q.inQueue[request.Coord]; ok {
			delete(q.inQueue, request.Coord)
			return request, true
		}
	}
	return RebuildRequest{}, false
}

// Peek returns the highest-priority request without removing it. Stale
// heap entries for removed coords are discarded along the way.
func (q *RebuildQueue) Peek() (RebuildRequest, bool) {
	for q.queue.Len() > 0 {
		top := q.queue[0]
		if _, ok := q.inQueue[top.Coord]; ok {
			return top, true
		}
		heap.Pop(&q.queue)
	}
	return RebuildRequest{}, false
}

// Remove drops coord from the queue's membership set. The stale heap
// entry, if any, is skipped the next time it is popped. Returns whether
// coord was queued.
func (q *RebuildQueue) Remove(coord ChunkCoord) bool {
	if _, ok := q.inQueue[coord]; !ok {
		return false
	}
	delete(q.inQueue, coord)
	return true
}

// Contains reports whether coord is currently queued.
func (q *RebuildQueue) Contains(coord ChunkCoord) bool {
	_, ok := q.inQueue[coord]
	return ok
}

// Len returns the number of pending (deduplicated) rebuilds.
func (q *RebuildQueue) Len() int {
	return len(q.inQueue)
}

// IsEmpty reports whether the queue has no pending rebuilds.
func (q *RebuildQueue) IsEmpty() bool {
	return len(q.inQueue) == 0
}

// Clear drops all pending rebuilds.
func (q *RebuildQueue) Clear() {
	q.queue = q.queue[:0]
	q.inQueue = make(map[ChunkCoord]struct{})
}

// UpdatePriority re-inserts coord with a new priority if it is still
// queued. The old heap entry for coord is left in place, so whichever of
// the two entries (old or new priority) surfaces first from Pop is
// returned; that Pop deletes coord from inQueue, and the other entry is
// skipped later.
func (q *RebuildQueue) UpdatePriority(coord ChunkCoord, priority float32, dataVersion uint64) {
	if _, ok := q.inQueue[coord]; ok {
		heap.Push(&q.queue, RebuildRequest{Coord: coord, Priority: priority, DataVersion: dataVersion})
	}
}

// Coords returns a snapshot of all currently queued coordinates, unordered.
func (q *RebuildQueue) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(q.inQueue))
	for coord := range q.inQueue {
		coords = append(coords, coord)
	}
	return coords
}

// CalculatePriority scores a chunk for rebuild urgency based on distance
// from the camera: closer chunks get a higher value. The epsilon guards
// against division by zero when the camera sits exactly at chunkCenter.
func CalculatePriority(chunkCenter, cameraPos mgl32.Vec3) float32 {
	diff := chunkCenter.Sub(cameraPos)
	return 1.0 / (diff.Dot(diff) + 0.001)
}
