package voxel

// ChunkStateKind discriminates the phases of a chunk's mesh lifecycle.
type ChunkStateKind int

const (
	// StateClean: mesh is up-to-date with voxel data.
	StateClean ChunkStateKind = iota
	// StateDirty: voxel data changed; mesh needs rebuild.
	StateDirty
	// StateMeshing: currently being meshed (async job in progress).
	StateMeshing
	// StateReadyToSwap: new mesh ready, waiting to swap into render.
	StateReadyToSwap
)

// ChunkState is a chunk's lifecycle state. DataVersion is meaningful only
// for StateMeshing (version when meshing started) and StateReadyToSwap
// (version the ready mesh was built from); it is the Go analogue of a
// Rust enum's per-variant payload.
type ChunkState struct {
	Kind        ChunkStateKind
	DataVersion uint64
}

// DirtyChunkState is the default state for a freshly created chunk.
func DirtyChunkState() ChunkState {
	return ChunkState{Kind: StateDirty}
}

// MeshingChunkState builds a Meshing state recording the data version
// meshing started from.
func MeshingChunkState(dataVersion uint64) ChunkState {
	return ChunkState{Kind: StateMeshing, DataVersion: dataVersion}
}

// ReadyToSwapChunkState builds a ReadyToSwap state recording the data
// version the pending mesh was built from.
func ReadyToSwapChunkState(dataVersion uint64) ChunkState {
	return ChunkState{Kind: StateReadyToSwap, DataVersion: dataVersion}
}

// NeedsRebuild reports whether this state is Dirty.
func (s ChunkState) NeedsRebuild() bool {
	return s.Kind == StateDirty
}

// IsMeshing reports whether this state is Meshing.
func (s ChunkState) IsMeshing() bool {
	return s.Kind == StateMeshing
}

// HasPendingMesh reports whether this state is ReadyToSwap.
func (s ChunkState) HasPendingMesh() bool {
	return s.Kind == StateReadyToSwap
}

// IsClean reports whether this state is Clean.
func (s ChunkState) IsClean() bool {
	return s.Kind == StateClean
}

// BoundaryFlags records which of a chunk's six faces a modified voxel
// touches, so the right set of neighbor chunks can be marked dirty.
type BoundaryFlags struct {
	NegX, PosX bool
	NegY, PosY bool
	NegZ, PosZ bool
}

// Any reports whether any boundary flag is set.
func (b BoundaryFlags) Any() bool {
	return b.NegX || b.PosX || b.NegY || b.PosY || b.NegZ || b.PosZ
}

// Count returns how many boundaries are touched.
func (b BoundaryFlags) Count() int {
	count := 0
	if b.NegX {
		count++
	}
	if b.PosX {
		count++
	}
	if b.NegY {
		count++
	}
	if b.PosY {
		count++
	}
	if b.NegZ {
		count++
	}
	if b.PosZ {
		count++
	}
	return count
}

// AffectedNeighbors returns the [dx,dy,dz] chunk offsets that need marking
// dirty, in the fixed order neg_x, pos_x, neg_y, pos_y, neg_z, pos_z.
func (b BoundaryFlags) AffectedNeighbors() [][3]int32 {
	neighbors := make([][3]int32, 0, 6)
	if b.NegX {
		neighbors = append(neighbors, [3]int32{-1, 0, 0})
	}
	if b.PosX {
		neighbors = append(neighbors, [3]int32{1, 0, 0})
	}
	if b.NegY {
		neighbors = append(neighbors, [3]int32{0, -1, 0})
	}
	if b.PosY {
		neighbors = append(neighbors, [3]int32{0, 1, 0})
	}
	if b.NegZ {
		neighbors = append(neighbors, [3]int32{0, 0, -1})
	}
	if b.PosZ {
		neighbors = append(neighbors, [3]int32{0, 0, 1})
	}
	return neighbors
}

// Merge ORs other's flags into b.
func (b *BoundaryFlags) Merge(other BoundaryFlags) {
	b.NegX = b.NegX || other.NegX
	b.PosX = b.PosX || other.PosX
	b.NegY = b.NegY || other.NegY
	b.PosY = b.PosY || other.PosY
	b.NegZ = b.NegZ || other.NegZ
	b.PosZ = b.PosZ || other.PosZ
}
