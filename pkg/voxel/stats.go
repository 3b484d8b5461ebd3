package voxel

// RebuildStats reports what happened during a single frame's rebuild pass.
type RebuildStats struct {
	ChunksRebuilt      int
	TrianglesGenerated int
	VerticesGenerated  int
	VersionMismatches  int
	ChunksMissing      int
	QueueRemaining     int
	TimeBudgetExceeded bool
	ChunkLimitReached  bool
	ElapsedMs          float64
}

// AnyRebuilt reports whether any chunk was rebuilt.
func (s RebuildStats) AnyRebuilt() bool {
	return s.ChunksRebuilt > 0
}

// HasRemaining reports whether more rebuilds are queued.
func (s RebuildStats) HasRemaining() bool {
	return s.QueueRemaining > 0
}

// SwapStats reports what happened during a mesh swap pass.
type SwapStats struct {
	MeshesSwapped    int
	MeshesDisposed   int
	VersionConflicts int
}

// AnySwapped reports whether any mesh was swapped in.
func (s SwapStats) AnySwapped() bool {
	return s.MeshesSwapped > 0
}

// FrameStats combines the rebuild and swap phases of a single frame.
type FrameStats struct {
	Rebuild        RebuildStats
	Swap           SwapStats
	TotalChunks    int
	ChunksWithMesh int
	DirtyChunks    int
}

// ChunkDebugInfo is a snapshot of the chunk manager's internal state for
// debugging and telemetry.
type ChunkDebugInfo struct {
	TotalChunks       int
	CleanChunks       int
	DirtyChunks       int
	MeshingChunks     int
	ReadyToSwapChunks int
	QueueSize         int
	DirtyTrackerSize  int
	TotalTriangles    int
	TotalVertices     int
	VoxelMemoryBytes  int
	MeshMemoryBytes   int
}

// TotalMemoryBytes returns voxel plus mesh memory usage.
func (d ChunkDebugInfo) TotalMemoryBytes() int {
	return d.VoxelMemoryBytes + d.MeshMemoryBytes
}

// TotalMemoryMB returns total memory usage in megabytes.
func (d ChunkDebugInfo) TotalMemoryMB() float32 {
	return float32(d.TotalMemoryBytes()) / (1024.0 * 1024.0)
}

// RebuildConfig tunes how much rebuild work is allowed per frame.
type RebuildConfig struct {
	MaxChunksPerFrame int
	MaxTimePerFrameMs float64
	VoxelSize         float32
}

// DefaultRebuildConfig is a balanced preset suitable for most hardware.
func DefaultRebuildConfig() RebuildConfig {
	return RebuildConfig{
		MaxChunksPerFrame: 4,
		MaxTimePerFrameMs: 8.0,
		VoxelSize:         1.0,
	}
}

// HighPerformanceRebuildConfig favors throughput on capable hardware.
func HighPerformanceRebuildConfig() RebuildConfig {
	return RebuildConfig{
		MaxChunksPerFrame: 8,
		MaxTimePerFrameMs: 12.0,
		VoxelSize:         1.0,
	}
}

// LowPerformanceRebuildConfig favors frame pacing on weaker hardware.
func LowPerformanceRebuildConfig() RebuildConfig {
	return RebuildConfig{
		MaxChunksPerFrame: 2,
		MaxTimePerFrameMs: 4.0,
		VoxelSize:         1.0,
	}
}
