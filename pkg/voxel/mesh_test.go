package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCube(block *ChunkBlock, minX, minY, minZ, size int, material MaterialId) {
	for x := minX; x < minX+size; x++ {
		for y := minY; y < minY+size; y++ {
			for z := minZ; z < minZ+size; z++ {
				block.Set(x, y, z, material)
			}
		}
	}
}

func TestMeshChunk_EmptyChunkProducesNoGeometry(t *testing.T) {
	block := NewChunkBlock()
	mesh := MeshChunk(block, 1.0, [3]float32{})
	assert.Equal(t, 0, mesh.VertexCount())
	assert.Equal(t, 0, mesh.TriangleCount())
}

func TestMeshChunk_SingleVoxelProducesSixQuads(t *testing.T) {
	block := NewChunkBlock()
	block.Set(1, 1, 1, MaterialDefault)

	_, stats := MeshChunkWithStats(block, 1.0, [3]float32{})
	assert.Equal(t, 6, stats.QuadCount)
	assert.Equal(t, [6]int{1, 1, 1, 1, 1, 1}, stats.QuadsPerFace)
	assert.Equal(t, 24, stats.VertexCount)
	assert.Equal(t, 12, stats.TriangleCount)
}

func TestMeshChunk_SolidCubeInteriorCulled(t *testing.T) {
	block := NewChunkBlock()
	fillCube(block, 1, 1, 1, 10, MaterialDefault)

	_, stats := MeshChunkWithStats(block, 1.0, [3]float32{})
	assert.Equal(t, [6]int{1, 1, 1, 1, 1, 1}, stats.QuadsPerFace)
	assert.Equal(t, 6, stats.QuadCount)
}

func TestMeshChunk_FlatSlabMergesIntoOneQuadPerExposedFace(t *testing.T) {
	// A single-voxel-thick 10x10 slab: top and bottom faces each merge
	// into one big quad, the four sides stay as 10x1 strips.
	thin := NewChunkBlock()
	for x := 1; x <= 10; x++ {
		for z := 1; z <= 10; z++ {
			thin.Set(x, 1, z, MaterialDefault)
		}
	}

	_, stats := MeshChunkWithStats(thin, 1.0, [3]float32{})
	assert.Equal(t, 1, stats.QuadsPerFace[FacePosY])
	assert.Equal(t, 1, stats.QuadsPerFace[FaceNegY])
	assert.True(t, stats.MergeEfficiency > 0.5, "expected high merge efficiency for a flat slab, got %f", stats.MergeEfficiency)
}

func TestMeshChunk_CheckerboardPreventsMerging(t *testing.T) {
	block := NewChunkBlock()
	for x := 1; x <= 8; x++ {
		for z := 1; z <= 8; z++ {
			if (x+z)%2 == 0 {
				block.Set(x, 1, z, MaterialDefault)
			}
		}
	}

	_, stats := MeshChunkWithStats(block, 1.0, [3]float32{})
	// No two exposed top faces share an edge, so none can merge: one quad
	// per solid voxel's top face.
	solidCount := block.SolidCount()
	assert.Equal(t, solidCount, stats.QuadsPerFace[FacePosY])
}

func TestMeshChunk_DifferentMaterialsDoNotMerge(t *testing.T) {
	block := NewChunkBlock()
	block.Set(1, 1, 1, 1)
	block.Set(2, 1, 1, 2)

	_, stats := MeshChunkWithStats(block, 1.0, [3]float32{})
	assert.Equal(t, 2, stats.QuadsPerFace[FacePosY])
}

func TestMeshChunkWithUVs_PopulatesUVsAndMaterialIds(t *testing.T) {
	block := NewChunkBlock()
	block.Set(1, 1, 1, 7)

	mesh := MeshChunkWithUVs(block, 1.0, [3]float32{})
	require.True(t, mesh.HasUVs())
	require.True(t, mesh.HasMaterialIds())
	for _, id := range mesh.MaterialIds {
		assert.Equal(t, MaterialId(7), id)
	}
}
