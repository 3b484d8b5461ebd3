package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestChunkCoord_ZeroConstant(t *testing.T) {
	assert.Equal(t, ChunkCoord{0, 0, 0}, ChunkCoordZero)
}

func TestChunkCoord_NeighborsReturnsSixInFixedOrder(t *testing.T) {
	c := NewChunkCoord(1, 2, 3)
	want := [6]ChunkCoord{
		{2, 2, 3}, {0, 2, 3},
		{1, 3, 3}, {1, 1, 3},
		{1, 2, 4}, {1, 2, 2},
	}
	assert.Equal(t, want, c.Neighbors())
}

func TestChunkCoordFromWorld_Positive(t *testing.T) {
	size := float32(CS)
	got := ChunkCoordFromWorld([3]float32{size + 1, size*2 + 1, 1}, 1.0)
	assert.Equal(t, NewChunkCoord(1, 2, 0), got)
}

func TestChunkCoordFromWorld_Negative(t *testing.T) {
	got := ChunkCoordFromWorld([3]float32{-1, -float32(CS) - 1, 0}, 1.0)
	assert.Equal(t, NewChunkCoord(-1, -2, 0), got)
}

func TestChunkCoordFromVoxel_Positive(t *testing.T) {
	got := ChunkCoordFromVoxel([3]int32{CS, CS * 2, 0})
	assert.Equal(t, NewChunkCoord(1, 2, 0), got)
}

func TestChunkCoordFromVoxel_Negative(t *testing.T) {
	got := ChunkCoordFromVoxel([3]int32{-1, -CS - 1, 0})
	assert.Equal(t, NewChunkCoord(-1, -2, 0), got)
}

func TestVoxelToLocal_EuclideanRemainder(t *testing.T) {
	local := VoxelToLocal([3]int32{-1, -1, CS + 3})
	assert.Equal(t, [3]uint32{CS - 1, CS - 1, 3}, local)
}

func TestChunkCoord_CenterWorld(t *testing.T) {
	c := NewChunkCoord(0, 0, 0)
	center := c.CenterWorld(1.0)
	half := float32(CS) * 0.5
	assert.Equal(t, mgl32.Vec3{half, half, half}, center)
}

func TestChunkCoord_OriginWorld(t *testing.T) {
	c := NewChunkCoord(2, -1, 0)
	origin := c.OriginWorld(1.0)
	assert.Equal(t, mgl32.Vec3{2 * float32(CS), -float32(CS), 0}, origin)
}

func TestChunkCoord_DistanceSquaredTo(t *testing.T) {
	c := NewChunkCoord(0, 0, 0)
	center := c.CenterWorld(1.0)
	assert.Equal(t, float32(0), c.DistanceSquaredTo(center, 1.0))
}

func TestDivEuclidAndRemEuclid(t *testing.T) {
	assert.Equal(t, int32(-1), divEuclid(-1, CS))
	assert.Equal(t, int32(CS-1), remEuclid(-1, CS))
	assert.Equal(t, int32(0), divEuclid(0, CS))
	assert.Equal(t, int32(0), remEuclid(0, CS))
}
