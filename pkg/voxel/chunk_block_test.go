package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkBlock_EmptyByDefault(t *testing.T) {
	block := NewChunkBlock()
	assert.True(t, block.IsEmpty())
	assert.Equal(t, 0, block.SolidCount())
	assert.False(t, block.IsSolid(1, 1, 1))
}

func TestChunkBlock_SetAndGetMaterial(t *testing.T) {
	block := NewChunkBlock()
	block.Set(1, 1, 1, 42)

	assert.Equal(t, MaterialId(42), block.GetMaterial(1, 1, 1))
	assert.True(t, block.IsSolid(1, 1, 1))
	assert.False(t, block.IsEmpty())
	assert.Equal(t, 1, block.SolidCount())
}

func TestChunkBlock_ClearRemovesVoxel(t *testing.T) {
	block := NewChunkBlock()
	block.Set(2, 3, 4, 9)
	block.Clear(2, 3, 4)

	assert.Equal(t, MaterialEmpty, block.GetMaterial(2, 3, 4))
	assert.False(t, block.IsSolid(2, 3, 4))
	assert.True(t, block.IsEmpty())
}

func TestChunkBlock_ColumnBitsReflectYOccupancy(t *testing.T) {
	block := NewChunkBlock()
	block.Set(5, 0, 5, 1)
	block.Set(5, 3, 5, 1)

	column := block.Column(5, 5)
	assert.Equal(t, uint64(1)<<0|uint64(1)<<3, column)
}

func TestChunkBlock_SolidCountAcrossMultipleVoxels(t *testing.T) {
	block := NewChunkBlock()
	for x := 1; x <= 10; x++ {
		block.Set(x, 1, 1, MaterialDefault)
	}
	assert.Equal(t, 10, block.SolidCount())
}
