package voxel

// DirtyTracker tracks which chunks need a mesh rebuild. Backed by a plain
// map for deduplication: marking an already-dirty chunk is a no-op.
type DirtyTracker struct {
	dirty map[ChunkCoord]struct{}
}

// NewDirtyTracker returns an empty tracker.
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{dirty: make(map[ChunkCoord]struct{})}
}

// MarkDirty marks a single chunk dirty, reporting whether it was not
// already dirty.
func (t *DirtyTracker) MarkDirty(coord ChunkCoord) bool {
	if _, ok := t.dirty[coord]; ok {
		return false
	}
	t.dirty[coord] = struct{}{}
	return true
}

// MarkDirtyWithNeighbors marks coord dirty along with every neighbor chunk
// that boundary indicates was affected by the edit.
func (t *DirtyTracker) MarkDirtyWithNeighbors(coord ChunkCoord, boundary BoundaryFlags) {
	t.dirty[coord] = struct{}{}

	for _, offset := range boundary.AffectedNeighbors() {
		neighbor := ChunkCoord{
			X: coord.X + offset[0],
			Y: coord.Y + offset[1],
			Z: coord.Z + offset[2],
		}
		t.dirty[neighbor] = struct{}{}
	}
}

// Unmark removes coord from the dirty set, reporting whether it was
// present. Call this when a chunk starts meshing.
func (t *DirtyTracker) Unmark(coord ChunkCoord) bool {
	if _, ok := t.dirty[coord]; !ok {
		return false
	}
	delete(t.dirty, coord)
	return true
}

// IsDirty reports whether coord is currently marked dirty.
func (t *DirtyTracker) IsDirty(coord ChunkCoord) bool {
	_, ok := t.dirty[coord]
	return ok
}

// TakeDirty returns all dirty coordinates and clears the set.
func (t *DirtyTracker) TakeDirty() []ChunkCoord {
	taken := make([]ChunkCoord, 0, len(t.dirty))
	for coord := range t.dirty {
		taken = append(taken, coord)
	}
	t.dirty = make(map[ChunkCoord]struct{})
	return taken
}

// HasDirty reports whether any chunk is currently dirty.
func (t *DirtyTracker) HasDirty() bool {
	return len(t.dirty) > 0
}

// DirtyCount returns the number of dirty chunks.
func (t *DirtyTracker) DirtyCount() int {
	return len(t.dirty)
}

// Clear removes every dirty marker.
func (t *DirtyTracker) Clear() {
	t.dirty = make(map[ChunkCoord]struct{})
}

// Coords returns a snapshot slice of currently dirty coordinates without
// clearing the set.
func (t *DirtyTracker) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(t.dirty))
	for coord := range t.dirty {
		coords = append(coords, coord)
	}
	return coords
}
