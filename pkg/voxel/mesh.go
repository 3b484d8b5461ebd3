package voxel

// MeshChunk runs the full meshing pipeline over chunk (cull, greedy merge,
// expand) and returns the resulting vertex arrays with no UVs or material
// ids attached.
func MeshChunk(chunk *ChunkBlock, voxelSize float32, origin [3]float32) *MeshOutput {
	if chunk.IsEmpty() {
		return &MeshOutput{}
	}

	masks := NewFaceMasks()
	CullFaces(chunk, masks)

	packed := mergeAllFaces(chunk, masks)

	return ExpandQuads(packed, voxelSize, origin)
}

// MeshChunkWithUVs is MeshChunk but also populates UV coordinates (tiled to
// quad size) and per-vertex material ids, for textured rendering.
func MeshChunkWithUVs(chunk *ChunkBlock, voxelSize float32, origin [3]float32) *MeshOutput {
	if chunk.IsEmpty() {
		return &MeshOutput{}
	}

	masks := NewFaceMasks()
	CullFaces(chunk, masks)

	packed := mergeAllFaces(chunk, masks)

	return ExpandQuadsWithUVs(packed, voxelSize, origin)
}

func mergeAllFaces(chunk *ChunkBlock, masks *FaceMasks) [6][]uint64 {
	var packed [6][]uint64

	MergeYFaces(FacePosY, chunk, masks, &packed[FacePosY])
	MergeYFaces(FaceNegY, chunk, masks, &packed[FaceNegY])
	MergeXFaces(FacePosX, chunk, masks, &packed[FacePosX])
	MergeXFaces(FaceNegX, chunk, masks, &packed[FaceNegX])
	MergeZFaces(FacePosZ, chunk, masks, &packed[FacePosZ])
	MergeZFaces(FaceNegZ, chunk, masks, &packed[FaceNegZ])

	return packed
}

// MeshStats reports size and merge-quality metrics for a meshing pass.
type MeshStats struct {
	QuadCount        int
	QuadsPerFace     [6]int
	VertexCount      int
	TriangleCount    int
	MaxPossibleQuads int
	MergeEfficiency  float32
}

// MeshChunkWithStats meshes chunk and additionally reports MeshStats:
// quad counts per face, vertex/triangle totals, and merge efficiency
// (1 - quads/visible faces: 0.0 when no faces were merged, rising toward
// 1.0 as more faces are merged into fewer quads).
func MeshChunkWithStats(chunk *ChunkBlock, voxelSize float32, origin [3]float32) (*MeshOutput, MeshStats) {
	if chunk.IsEmpty() {
		return &MeshOutput{}, MeshStats{}
	}

	masks := NewFaceMasks()
	CullFaces(chunk, masks)
	maxPossibleQuads := masks.TotalFaces()

	packed := mergeAllFaces(chunk, masks)

	var quadsPerFace [6]int
	quadCount := 0
	for face := range packed {
		quadsPerFace[face] = len(packed[face])
		quadCount += len(packed[face])
	}

	mesh := ExpandQuads(packed, voxelSize, origin)

	var mergeEfficiency float32
	if maxPossibleQuads > 0 {
		mergeEfficiency = 1.0 - float32(quadCount)/float32(maxPossibleQuads)
	}

	stats := MeshStats{
		QuadCount:        quadCount,
		QuadsPerFace:     quadsPerFace,
		VertexCount:      mesh.VertexCount(),
		TriangleCount:    mesh.TriangleCount(),
		MaxPossibleQuads: maxPossibleQuads,
		MergeEfficiency:  mergeEfficiency,
	}

	return mesh, stats
}
