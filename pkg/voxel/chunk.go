package voxel

// ChunkMesh holds the vertex arrays generated for a single chunk, plus the
// data version it was built from.
type ChunkMesh struct {
	Positions   []float32
	Normals     []float32
	Indices     []uint32
	UVs         []float32
	MaterialIds []MaterialId

	DataVersion uint64

	TriangleCount int
	VertexCount   int
}

// EmptyChunkMesh returns a zero-value mesh placeholder.
func EmptyChunkMesh() ChunkMesh {
	return ChunkMesh{}
}

// ChunkMeshFromOutput wraps a MeshOutput as a ChunkMesh tagged with the
// voxel data version it was generated from.
func ChunkMeshFromOutput(output *MeshOutput, dataVersion uint64) ChunkMesh {
	return ChunkMesh{
		Positions:     output.Positions,
		Normals:       output.Normals,
		Indices:       output.Indices,
		UVs:           output.UVs,
		MaterialIds:   output.MaterialIds,
		DataVersion:   dataVersion,
		TriangleCount: output.TriangleCount(),
		VertexCount:   output.VertexCount(),
	}
}

// IsEmpty reports whether the mesh has no vertices.
func (m ChunkMesh) IsEmpty() bool {
	return m.VertexCount == 0
}

// MemoryBytes estimates the mesh's resident memory footprint.
func (m ChunkMesh) MemoryBytes() int {
	return len(m.Positions)*4 +
		len(m.Normals)*4 +
		len(m.Indices)*4 +
		len(m.UVs)*4 +
		len(m.MaterialIds)*2
}

// ChunkSize is the usable edge length of a chunk (excludes padding).
const ChunkSize = uint32(CS)

// Chunk is the full unit of chunk-level state: its voxel storage, lifecycle
// state, version counter, active mesh, and any pending mesh awaiting swap.
type Chunk struct {
	Coord       ChunkCoord
	State       ChunkState
	DataVersion uint64
	Voxels      *ChunkBlock
	Mesh        *ChunkMesh
	PendingMesh *ChunkMesh
}

// NewChunk returns a new, empty, Dirty chunk at coord.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		State:  DirtyChunkState(),
		Voxels: NewChunkBlock(),
	}
}

// GetVoxel returns the material at local coordinates [0,ChunkSize), or
// MaterialEmpty if out of range.
func (c *Chunk) GetVoxel(x, y, z uint32) MaterialId {
	if x >= ChunkSize || y >= ChunkSize || z >= ChunkSize {
		return MaterialEmpty
	}
	return c.Voxels.GetMaterial(int(x)+1, int(y)+1, int(z)+1)
}

// SetVoxel sets a local voxel and increments DataVersion. Out-of-range
// coordinates are ignored.
func (c *Chunk) SetVoxel(x, y, z uint32, material MaterialId) {
	if x >= ChunkSize || y >= ChunkSize || z >= ChunkSize {
		return
	}
	c.Voxels.Set(int(x)+1, int(y)+1, int(z)+1, material)
	c.DataVersion++
}

// SetVoxelRaw sets a local voxel without bumping DataVersion, for batched
// edits. Call IncrementVersion once after the batch completes.
func (c *Chunk) SetVoxelRaw(x, y, z uint32, material MaterialId) {
	if x >= ChunkSize || y >= ChunkSize || z >= ChunkSize {
		return
	}
	c.Voxels.Set(int(x)+1, int(y)+1, int(z)+1, material)
}

// IncrementVersion bumps DataVersion by one.
func (c *Chunk) IncrementVersion() {
	c.DataVersion++
}

// IsOnBoundary reports which of the chunk's six faces local coordinate
// (x,y,z) lies on.
func (c *Chunk) IsOnBoundary(x, y, z uint32) BoundaryFlags {
	return BoundaryFlags{
		NegX: x == 0,
		PosX: x == ChunkSize-1,
		NegY: y == 0,
		PosY: y == ChunkSize-1,
		NegZ: z == 0,
		PosZ: z == ChunkSize-1,
	}
}

// IsEmpty reports whether the chunk has no solid voxels.
func (c *Chunk) IsEmpty() bool {
	return c.Voxels.IsEmpty()
}

// SolidCount returns the number of solid voxels in the chunk.
func (c *Chunk) SolidCount() int {
	return c.Voxels.SolidCount()
}

// FillRatio returns the fraction of the chunk's volume that is solid.
func (c *Chunk) FillRatio() float32 {
	total := float32(ChunkSize) * float32(ChunkSize) * float32(ChunkSize)
	return float32(c.SolidCount()) / total
}

// MarkDirty transitions the chunk to Dirty.
func (c *Chunk) MarkDirty() {
	c.State = DirtyChunkState()
}

// MarkMeshing transitions the chunk to Meshing at its current data version.
func (c *Chunk) MarkMeshing() {
	c.State = MeshingChunkState(c.DataVersion)
}

// MarkReadyToSwap stashes mesh as the pending mesh and transitions to
// ReadyToSwap at the chunk's current data version.
func (c *Chunk) MarkReadyToSwap(mesh ChunkMesh) {
	c.PendingMesh = &mesh
	c.State = ReadyToSwapChunkState(c.DataVersion)
}

// GetMesh returns the active mesh, or nil if none has been built yet.
func (c *Chunk) GetMesh() *ChunkMesh {
	return c.Mesh
}

// Clear discards all voxel data and resets the chunk to Dirty.
func (c *Chunk) Clear() {
	c.Voxels = NewChunkBlock()
	c.DataVersion++
	c.State = DirtyChunkState()
	c.PendingMesh = nil
}
