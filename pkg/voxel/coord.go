package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord addresses a chunk in chunk-space (not world-space). Each chunk
// covers a CS^3 usable region; coordinates may be negative to support
// unbounded worlds.
type ChunkCoord struct {
	X, Y, Z int32
}

// ChunkCoordZero is the chunk at the origin.
var ChunkCoordZero = ChunkCoord{}

// NewChunkCoord builds a ChunkCoord from its components.
func NewChunkCoord(x, y, z int32) ChunkCoord {
	return ChunkCoord{X: x, Y: y, Z: z}
}

// Neighbors returns the 6 face-adjacent chunk coordinates, in the fixed
// order +X, -X, +Y, -Y, +Z, -Z.
func (c ChunkCoord) Neighbors() [6]ChunkCoord {
	return [6]ChunkCoord{
		{c.X + 1, c.Y, c.Z},
		{c.X - 1, c.Y, c.Z},
		{c.X, c.Y + 1, c.Z},
		{c.X, c.Y - 1, c.Z},
		{c.X, c.Y, c.Z + 1},
		{c.X, c.Y, c.Z - 1},
	}
}

// divEuclid performs Euclidean (floor) division: the remainder is always
// non-negative, unlike Go's truncating "/" for negative operands.
func divEuclid(a, b int32) int32 {
	q := a / b
	r := a % b
	if r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// remEuclid performs Euclidean (floor) remainder, always in [0, |b|).
func remEuclid(a, b int32) int32 {
	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r
}

// ChunkCoordFromWorld converts a world-space position to the chunk
// containing it.
func ChunkCoordFromWorld(worldPos mgl32.Vec3, voxelSize float32) ChunkCoord {
	chunkWorldSize := float32(CS) * voxelSize
	return ChunkCoord{
		X: int32(math.Floor(float64(worldPos[0] / chunkWorldSize))),
		Y: int32(math.Floor(float64(worldPos[1] / chunkWorldSize))),
		Z: int32(math.Floor(float64(worldPos[2] / chunkWorldSize))),
	}
}

// ChunkCoordFromVoxel converts a global voxel index to the chunk containing
// it, using Euclidean division so negative voxel coordinates map correctly.
func ChunkCoordFromVoxel(voxel [3]int32) ChunkCoord {
	return ChunkCoord{
		X: divEuclid(voxel[0], CS),
		Y: divEuclid(voxel[1], CS),
		Z: divEuclid(voxel[2], CS),
	}
}

// WorldToLocal converts a world position to local voxel coordinates within
// this chunk, clamped to [0, CS).
func (c ChunkCoord) WorldToLocal(worldPos mgl32.Vec3, voxelSize float32) [3]uint32 {
	chunkWorldSize := float32(CS) * voxelSize
	lx := uint32((worldPos[0] - float32(c.X)*chunkWorldSize) / voxelSize)
	ly := uint32((worldPos[1] - float32(c.Y)*chunkWorldSize) / voxelSize)
	lz := uint32((worldPos[2] - float32(c.Z)*chunkWorldSize) / voxelSize)
	return [3]uint32{
		clampU32(lx, CS-1),
		clampU32(ly, CS-1),
		clampU32(lz, CS-1),
	}
}

func clampU32(v, max uint32) uint32 {
	if v > max {
		return max
	}
	return v
}

// VoxelToLocal converts a global voxel index to local coordinates within
// its chunk, using Euclidean remainder for correct negative handling.
func VoxelToLocal(voxel [3]int32) [3]uint32 {
	return [3]uint32{
		uint32(remEuclid(voxel[0], CS)),
		uint32(remEuclid(voxel[1], CS)),
		uint32(remEuclid(voxel[2], CS)),
	}
}

// CenterWorld returns the world-space center of this chunk.
func (c ChunkCoord) CenterWorld(voxelSize float32) mgl32.Vec3 {
	chunkWorldSize := float32(CS) * voxelSize
	half := chunkWorldSize * 0.5
	return mgl32.Vec3{
		float32(c.X)*chunkWorldSize + half,
		float32(c.Y)*chunkWorldSize + half,
		float32(c.Z)*chunkWorldSize + half,
	}
}

// OriginWorld returns the world-space minimum corner of this chunk.
func (c ChunkCoord) OriginWorld(voxelSize float32) mgl32.Vec3 {
	chunkWorldSize := float32(CS) * voxelSize
	return mgl32.Vec3{
		float32(c.X) * chunkWorldSize,
		float32(c.Y) * chunkWorldSize,
		float32(c.Z) * chunkWorldSize,
	}
}

// DistanceSquaredTo returns the squared distance from this chunk's center
// to a world position.
func (c ChunkCoord) DistanceSquaredTo(worldPos mgl32.Vec3, voxelSize float32) float32 {
	diff := c.CenterWorld(voxelSize).Sub(worldPos)
	return diff.Dot(diff)
}
