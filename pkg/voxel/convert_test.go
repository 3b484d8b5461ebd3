package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobustFloor(t *testing.T) {
	assert.Equal(t, 3, robustFloor(3.4))
	assert.Equal(t, 4, robustFloor(3.9999999)) // within epsilon of 4, rounds instead of floors
	assert.Equal(t, 4, robustFloor(4.0000001)) // within epsilon of 4
	assert.Equal(t, -4, robustFloor(-3.5))
	assert.Equal(t, -3, robustFloor(-2.9999999)) // within epsilon of -3
}

func TestPositionsToChunkBlock_SingleVoxel(t *testing.T) {
	positions := []float32{5, 5, 5}
	block := PositionsToChunkBlock(positions, 1.0, [3]float32{}, MaterialDefault)

	assert.Equal(t, 1, block.SolidCount())
	assert.Equal(t, MaterialDefault, block.GetMaterial(6, 6, 6))
}

func TestPositionsToChunkBlock_MultipleVoxels(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 1, 1, 2, 2, 2}
	block := PositionsToChunkBlock(positions, 1.0, [3]float32{}, MaterialDefault)
	assert.Equal(t, 3, block.SolidCount())
}

func TestPositionsToChunkBlock_OriginOffset(t *testing.T) {
	positions := []float32{10, 10, 10}
	block := PositionsToChunkBlock(positions, 1.0, [3]float32{10, 10, 10}, MaterialDefault)
	assert.Equal(t, MaterialDefault, block.GetMaterial(1, 1, 1))
}

func TestPositionsToChunkBlock_VoxelSizeScaling(t *testing.T) {
	positions := []float32{2, 2, 2}
	block := PositionsToChunkBlock(positions, 2.0, [3]float32{}, MaterialDefault)
	assert.Equal(t, MaterialDefault, block.GetMaterial(2, 2, 2))
}

func TestPositionsToChunkBlock_OutOfBoundsIgnored(t *testing.T) {
	positions := []float32{-5, -5, -5, 1000, 1000, 1000}
	block := PositionsToChunkBlock(positions, 1.0, [3]float32{}, MaterialDefault)
	assert.Equal(t, 0, block.SolidCount())
}

func TestDenseToChunkBlock_RoundTrip(t *testing.T) {
	dims := [3]int{2, 2, 2}
	dense := make([]MaterialId, 8)
	dense[0] = 1 // (0,0,0)
	dense[1+2+4] = 2 // x=1,y=1,z=1 -> idx 1 + 1*2 + 1*4 = 7

	block := DenseToChunkBlock(dense, dims)
	assert.Equal(t, MaterialId(1), block.GetMaterial(1, 1, 1))
	assert.Equal(t, MaterialId(2), block.GetMaterial(2, 2, 2))
	assert.Equal(t, 2, block.SolidCount())
}

func TestDenseToChunkBlock_OversizedInputClamped(t *testing.T) {
	dims := [3]int{CS + 10, CS + 10, CS + 10}
	dense := make([]MaterialId, dims[0]*dims[1]*dims[2])
	for i := range dense {
		dense[i] = MaterialDefault
	}

	block := DenseToChunkBlock(dense, dims)
	assert.Equal(t, CS*CS*CS, block.SolidCount())
}

func TestDenseToChunkBlockZYX_RoundTrip(t *testing.T) {
	dims := [3]int{2, 2, 2}
	dense := make([]MaterialId, 8)
	// src_idx = z + y*dz + x*dz*dy, voxel (x=1,y=1,z=1) -> 1+1*2+1*4=7
	dense[7] = 5

	block := DenseToChunkBlockZYX(dense, dims)
	assert.Equal(t, MaterialId(5), block.GetMaterial(2, 2, 2))
	assert.Equal(t, 1, block.SolidCount())
}
