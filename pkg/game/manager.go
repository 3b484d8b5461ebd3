package game

import (
	"math"
	"sync"
	"time"

	"github.com/leterax/voxelmesh/pkg/voxel"
)

// buildMeshForChunk runs the full meshing pipeline for a chunk's current
// voxel data and wraps the result as a ChunkMesh tagged with the version
// it was built from.
func buildMeshForChunk(chunk *voxel.Chunk, voxelSize float32) voxel.ChunkMesh {
	origin := chunk.Coord.OriginWorld(voxelSize)
	output := voxel.MeshChunkWithUVs(chunk.Voxels, voxelSize, origin)
	return voxel.ChunkMeshFromOutput(output, chunk.DataVersion)
}

// ChunkManager is the central authority for chunk storage, voxel edits,
// dirty tracking, and priority-scheduled mesh rebuilds. All public methods
// are safe for concurrent use.
type ChunkManager struct {
	mu           sync.RWMutex
	chunks       map[voxel.ChunkCoord]*voxel.Chunk
	dirtyTracker *voxel.DirtyTracker
	rebuildQueue *voxel.RebuildQueue
	config       voxel.RebuildConfig
}

// NewChunkManager returns a manager using the default rebuild config.
func NewChunkManager() *ChunkManager {
	return NewChunkManagerWithConfig(voxel.DefaultRebuildConfig())
}

// NewChunkManagerWithConfig returns a manager using a caller-supplied
// rebuild config.
func NewChunkManagerWithConfig(config voxel.RebuildConfig) *ChunkManager {
	return &ChunkManager{
		chunks:       make(map[voxel.ChunkCoord]*voxel.Chunk),
		dirtyTracker: voxel.NewDirtyTracker(),
		rebuildQueue: voxel.NewRebuildQueue(),
		config:       config,
	}
}

// VoxelSize returns the configured world-unit size of a single voxel.
func (m *ChunkManager) VoxelSize() float32 {
	return m.config.VoxelSize
}

// GetChunk returns the chunk at coord, or nil if it does not exist.
func (m *ChunkManager) GetChunk(coord voxel.ChunkCoord) *voxel.Chunk {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chunks[coord]
}

// GetOrCreateChunk returns the chunk at coord, creating an empty Dirty
// chunk there if none exists yet.
func (m *ChunkManager) GetOrCreateChunk(coord voxel.ChunkCoord) *voxel.Chunk {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrCreateChunkLocked(coord)
}

func (m *ChunkManager) getOrCreateChunkLocked(coord voxel.ChunkCoord) *voxel.Chunk {
	chunk, ok := m.chunks[coord]
	if !ok {
		chunk = voxel.NewChunk(coord)
		m.chunks[coord] = chunk
	}
	return chunk
}

// HasChunk reports whether a chunk exists at coord.
func (m *ChunkManager) HasChunk(coord voxel.ChunkCoord) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.chunks[coord]
	return ok
}

// RemoveChunk deletes the chunk at coord, along with any dirty/queue
// bookkeeping for it. Returns the removed chunk, or nil if none existed.
func (m *ChunkManager) RemoveChunk(coord voxel.ChunkCoord) *voxel.Chunk {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirtyTracker.Unmark(coord)
	m.rebuildQueue.Remove(coord)

	chunk, ok := m.chunks[coord]
	if !ok {
		return nil
	}
	delete(m.chunks, coord)
	return chunk
}

// ChunkCount returns the number of chunks currently managed.
func (m *ChunkManager) ChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// Coords returns a snapshot of every managed chunk coordinate.
func (m *ChunkManager) Coords() []voxel.ChunkCoord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	coords := make([]voxel.ChunkCoord, 0, len(m.chunks))
	for coord := range m.chunks {
		coords = append(coords, coord)
	}
	return coords
}

// worldToVoxel converts a world position to an integer voxel index.
func (m *ChunkManager) worldToVoxel(worldPos [3]float32) [3]int32 {
	return [3]int32{
		int32(math.Floor(float64(worldPos[0] / m.config.VoxelSize))),
		int32(math.Floor(float64(worldPos[1] / m.config.VoxelSize))),
		int32(math.Floor(float64(worldPos[2] / m.config.VoxelSize))),
	}
}

// GetVoxel returns the material at a world position, or MaterialEmpty if
// its chunk does not exist.
func (m *ChunkManager) GetVoxel(worldPos [3]float32) voxel.MaterialId {
	voxelIdx := m.worldToVoxel(worldPos)
	chunkCoord := voxel.ChunkCoordFromVoxel(voxelIdx)
	local := voxel.VoxelToLocal(voxelIdx)

	m.mu.RLock()
	defer m.mu.RUnlock()
	chunk, ok := m.chunks[chunkCoord]
	if !ok {
		return voxel.MaterialEmpty
	}
	return chunk.GetVoxel(local[0], local[1], local[2])
}

// SetVoxel writes material at a world position, creating its chunk if
// necessary and marking it (and any boundary-affected neighbor) dirty.
func (m *ChunkManager) SetVoxel(worldPos [3]float32, material voxel.MaterialId) {
	voxelIdx := m.worldToVoxel(worldPos)
	m.SetVoxelAt(voxelIdx, material)
}

// SetVoxelAt writes material at an integer voxel index, creating its
// chunk if necessary and marking it (and any boundary-affected neighbor)
// dirty.
func (m *ChunkManager) SetVoxelAt(voxelIdx [3]int32, material voxel.MaterialId) {
	chunkCoord := voxel.ChunkCoordFromVoxel(voxelIdx)
	local := voxel.VoxelToLocal(voxelIdx)

	m.mu.Lock()
	defer m.mu.Unlock()

	chunk := m.getOrCreateChunkLocked(chunkCoord)
	boundary := chunk.IsOnBoundary(local[0], local[1], local[2])
	chunk.SetVoxel(local[0], local[1], local[2], material)
	m.dirtyTracker.MarkDirtyWithNeighbors(chunkCoord, boundary)
	chunk.MarkDirty()
}

// VoxelEdit is a single (position, material) pair for a batched write.
type VoxelEdit struct {
	WorldPos [3]float32
	Material voxel.MaterialId
}

// SetVoxelsBatch applies many edits at once, grouping them by chunk so
// each affected chunk's data version and dirty/boundary marking only
// happens once per call rather than once per edit.
func (m *ChunkManager) SetVoxelsBatch(edits []VoxelEdit) {
	type localEdit struct {
		local    [3]uint32
		material voxel.MaterialId
	}
	byChunk := make(map[voxel.ChunkCoord][]localEdit)

	for _, edit := range edits {
		voxelIdx := m.worldToVoxel(edit.WorldPos)
		chunkCoord := voxel.ChunkCoordFromVoxel(voxelIdx)
		local := voxel.VoxelToLocal(voxelIdx)
		byChunk[chunkCoord] = append(byChunk[chunkCoord], localEdit{local: local, material: edit.Material})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for chunkCoord, chunkEdits := range byChunk {
		chunk := m.getOrCreateChunkLocked(chunkCoord)

		var combinedBoundary voxel.BoundaryFlags
		for _, edit := range chunkEdits {
			boundary := chunk.IsOnBoundary(edit.local[0], edit.local[1], edit.local[2])
			combinedBoundary.Merge(boundary)
			chunk.SetVoxelRaw(edit.local[0], edit.local[1], edit.local[2], edit.material)
		}

		chunk.IncrementVersion()
		m.dirtyTracker.MarkDirtyWithNeighbors(chunkCoord, combinedBoundary)
		chunk.MarkDirty()
	}
}

// ProcessRebuilds drains the dirty tracker into the priority queue (scored
// by distance from cameraPos) and rebuilds as many chunks as the frame
// budget allows.
func (m *ChunkManager) ProcessRebuilds(cameraPos [3]float32) voxel.RebuildStats {
	start := time.Now()
	var stats voxel.RebuildStats
	voxelSize := m.config.VoxelSize

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, coord := range m.dirtyTracker.TakeDirty() {
		if chunk, ok := m.chunks[coord]; ok {
			center := coord.CenterWorld(voxelSize)
			priority := voxel.CalculatePriority(center, cameraPos)
			m.rebuildQueue.Enqueue(coord, priority, chunk.DataVersion)
		}
	}

	for stats.ChunksRebuilt < m.config.MaxChunksPerFrame {
		elapsedMs := float64(time.Since(start)) / float64(time.Millisecond)
		if elapsedMs >= m.config.MaxTimePerFrameMs {
			stats.TimeBudgetExceeded = true
			break
		}

		request, ok := m.rebuildQueue.Pop()
		if !ok {
			break
		}

		chunk, ok := m.chunks[request.Coord]
		if !ok {
			stats.ChunksMissing++
			continue
		}

		if chunk.DataVersion != request.DataVersion {
			center := request.Coord.CenterWorld(voxelSize)
			priority := voxel.CalculatePriority(center, cameraPos)
			m.rebuildQueue.Enqueue(request.Coord, priority, chunk.DataVersion)
			stats.VersionMismatches++
			continue
		}

		mesh := buildMeshForChunk(chunk, voxelSize)
		stats.TrianglesGenerated += mesh.TriangleCount
		stats.VerticesGenerated += mesh.VertexCount
		stats.ChunksRebuilt++

		chunk.MarkReadyToSwap(mesh)
	}

	if stats.ChunksRebuilt >= m.config.MaxChunksPerFrame {
		stats.ChunkLimitReached = true
	}

	stats.QueueRemaining = m.rebuildQueue.Len()
	stats.ElapsedMs = float64(time.Since(start)) / float64(time.Millisecond)
	return stats
}

// SwapPendingMeshes swaps every ReadyToSwap chunk's pending mesh into its
// active slot, provided the chunk's data version has not advanced since
// the mesh was built. Version-mismatched chunks are reverted to Dirty so
// they get rebuilt again. Call this after ProcessRebuilds, before render.
func (m *ChunkManager) SwapPendingMeshes() voxel.SwapStats {
	var stats voxel.SwapStats

	m.mu.Lock()
	defer m.mu.Unlock()

	var needsDirty []voxel.ChunkCoord

	for _, chunk := range m.chunks {
		if chunk.State.Kind != voxel.StateReadyToSwap {
			continue
		}

		if chunk.State.DataVersion == chunk.DataVersion {
			if chunk.PendingMesh != nil {
				if chunk.Mesh != nil {
					stats.MeshesDisposed++
				}
				chunk.Mesh = chunk.PendingMesh
				chunk.PendingMesh = nil
				stats.MeshesSwapped++
				chunk.State = voxel.ChunkState{Kind: voxel.StateClean}
			}
		} else {
			chunk.PendingMesh = nil
			chunk.MarkDirty()
			needsDirty = append(needsDirty, chunk.Coord)
			stats.VersionConflicts++
		}
	}

	for _, coord := range needsDirty {
		m.dirtyTracker.MarkDirty(coord)
	}

	return stats
}

// Update runs one full frame: rebuild then swap, and reports combined
// frame statistics.
func (m *ChunkManager) Update(cameraPos [3]float32) voxel.FrameStats {
	rebuildStats := m.ProcessRebuilds(cameraPos)
	swapStats := m.SwapPendingMeshes()

	m.mu.RLock()
	defer m.mu.RUnlock()

	totalChunks := len(m.chunks)
	chunksWithMesh := 0
	for _, chunk := range m.chunks {
		if chunk.Mesh != nil {
			chunksWithMesh++
		}
	}

	return voxel.FrameStats{
		Rebuild:        rebuildStats,
		Swap:           swapStats,
		TotalChunks:    totalChunks,
		ChunksWithMesh: chunksWithMesh,
		DirtyChunks:    m.dirtyTracker.DirtyCount(),
	}
}

// DebugInfo reports a snapshot of the manager's internal state for
// diagnostics and telemetry.
func (m *ChunkManager) DebugInfo() voxel.ChunkDebugInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var info voxel.ChunkDebugInfo

	for _, chunk := range m.chunks {
		info.TotalChunks++
		switch chunk.State.Kind {
		case voxel.StateClean:
			info.CleanChunks++
		case voxel.StateDirty:
			info.DirtyChunks++
		case voxel.StateMeshing:
			info.MeshingChunks++
		case voxel.StateReadyToSwap:
			info.ReadyToSwapChunks++
		}

		info.VoxelMemoryBytes += voxel.CSP3

		if chunk.Mesh != nil {
			info.TotalTriangles += chunk.Mesh.TriangleCount
			info.TotalVertices += chunk.Mesh.VertexCount
			info.MeshMemoryBytes += chunk.Mesh.MemoryBytes()
		}
	}

	info.QueueSize = m.rebuildQueue.Len()
	info.DirtyTrackerSize = m.dirtyTracker.DirtyCount()
	return info
}

// RebuildAllDirty immediately meshes and swaps every dirty or queued
// chunk, ignoring the frame budget. Intended for tests and bulk loads.
func (m *ChunkManager) RebuildAllDirty(cameraPos [3]float32) int {
	m.mu.Lock()
	voxelSize := m.config.VoxelSize
	count := 0

	for _, coord := range m.dirtyTracker.TakeDirty() {
		if chunk, ok := m.chunks[coord]; ok {
			mesh := buildMeshForChunk(chunk, voxelSize)
			chunk.MarkReadyToSwap(mesh)
			count++
		}
	}

	for {
		request, ok := m.rebuildQueue.Pop()
		if !ok {
			break
		}
		chunk, ok := m.chunks[request.Coord]
		if !ok || chunk.DataVersion != request.DataVersion {
			continue
		}
		mesh := buildMeshForChunk(chunk, voxelSize)
		chunk.MarkReadyToSwap(mesh)
		count++
	}

	m.mu.Unlock()

	m.SwapPendingMeshes()
	return count
}

// Clear removes every chunk and resets dirty/queue bookkeeping.
func (m *ChunkManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = make(map[voxel.ChunkCoord]*voxel.Chunk)
	m.dirtyTracker.Clear()
	m.rebuildQueue.Clear()
}
