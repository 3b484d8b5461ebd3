package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandQuads_SingleQuadGeometry(t *testing.T) {
	var packed [6][]uint64
	packed[FacePosY] = []uint64{PackQuad(2, 3, 4, 5, 6, MaterialDefault)}

	mesh := ExpandQuads(packed, 1.0, [3]float32{})
	require.Equal(t, 4, mesh.VertexCount())
	require.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)

	for i := 0; i < 4; i++ {
		assert.Equal(t, FaceNormals[FacePosY], [3]float32{mesh.Normals[i*3], mesh.Normals[i*3+1], mesh.Normals[i*3+2]})
	}
}

func TestExpandQuads_ScalesWithVoxelSize(t *testing.T) {
	var packed [6][]uint64
	packed[FacePosX] = []uint64{PackQuad(0, 0, 0, 2, 3, MaterialDefault)}

	mesh := ExpandQuads(packed, 2.0, [3]float32{})
	// Every position component should be a multiple of the voxel size.
	for _, p := range mesh.Positions {
		assert.Equal(t, float32(0), mod32(p, 2.0))
	}
}

func mod32(a, b float32) float32 {
	q := float32(int(a / b))
	return a - q*b
}

func TestExpandQuads_AppliesOriginOffset(t *testing.T) {
	var packed [6][]uint64
	packed[FaceNegY] = []uint64{PackQuad(0, 0, 0, 1, 1, MaterialDefault)}

	origin := [3]float32{10, 20, 30}
	mesh := ExpandQuads(packed, 1.0, origin)

	minX, minY, minZ := mesh.Positions[0], mesh.Positions[1], mesh.Positions[2]
	for i := 0; i < len(mesh.Positions); i += 3 {
		if mesh.Positions[i] < minX {
			minX = mesh.Positions[i]
		}
		if mesh.Positions[i+1] < minY {
			minY = mesh.Positions[i+1]
		}
		if mesh.Positions[i+2] < minZ {
			minZ = mesh.Positions[i+2]
		}
	}
	assert.Equal(t, origin[0], minX)
	assert.Equal(t, origin[1], minY)
	assert.Equal(t, origin[2], minZ)
}

func TestExpandQuadsWithUVs_TilesToQuadDimensions(t *testing.T) {
	var packed [6][]uint64
	packed[FacePosY] = []uint64{PackQuad(0, 0, 0, 4, 3, 9)}

	mesh := ExpandQuadsWithUVs(packed, 1.0, [3]float32{})
	require.True(t, mesh.HasUVs())
	require.Len(t, mesh.UVs, 8)

	maxU, maxV := mesh.UVs[0], mesh.UVs[1]
	for i := 0; i < len(mesh.UVs); i += 2 {
		if mesh.UVs[i] > maxU {
			maxU = mesh.UVs[i]
		}
		if mesh.UVs[i+1] > maxV {
			maxV = mesh.UVs[i+1]
		}
	}
	assert.Equal(t, float32(4), maxU)
	assert.Equal(t, float32(3), maxV)

	for _, id := range mesh.MaterialIds {
		assert.Equal(t, MaterialId(9), id)
	}
}

func TestComputeQuadCorners_PanicsOnInvalidFace(t *testing.T) {
	assert.Panics(t, func() {
		computeQuadCorners(99, 0, 0, 0, 1, 1, 1)
	})
}
