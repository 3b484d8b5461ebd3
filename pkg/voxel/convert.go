package voxel

import "math"

// coordEpsilon guards against floating point edge cases near integer
// voxel boundaries when converting world positions to chunk-local indices.
const coordEpsilon = 1e-5

// robustFloor floors value, except when value sits within coordEpsilon of
// an integer, in which case it rounds instead. This keeps boundary voxels
// from being misattributed to their neighbor due to float imprecision.
func robustFloor(value float32) int {
	rounded := math.Round(float64(value))
	if math.Abs(float64(value)-rounded) < coordEpsilon {
		return int(rounded)
	}
	return int(math.Floor(float64(value)))
}

// PositionsToChunkBlock converts a flat array of world-space voxel center
// positions (x,y,z triples) into a ChunkBlock, assigning material to every
// voxel whose position falls within chunk bounds. Positions outside bounds
// are silently ignored.
func PositionsToChunkBlock(positions []float32, voxelSize float32, chunkOrigin [3]float32, material MaterialId) *ChunkBlock {
	chunk := NewChunkBlock()
	invSize := 1.0 / voxelSize

	for i := 0; i+2 < len(positions); i += 3 {
		lx := robustFloor((positions[i]-chunkOrigin[0])*invSize) + 1
		ly := robustFloor((positions[i+1]-chunkOrigin[1])*invSize) + 1
		lz := robustFloor((positions[i+2]-chunkOrigin[2])*invSize) + 1

		if lx >= 1 && lx < CSP-1 && ly >= 1 && ly < CSP-1 && lz >= 1 && lz < CSP-1 {
			chunk.Set(lx, ly, lz, material)
		}
	}

	return chunk
}

// DenseToChunkBlock converts a dense per-voxel material array, stored
// X-major (voxels[x + y*dims[0] + z*dims[0]*dims[1]]), into a ChunkBlock.
// Input larger than CS per axis is clamped.
func DenseToChunkBlock(voxelsData []MaterialId, dims [3]int) *ChunkBlock {
	chunk := NewChunkBlock()
	denseFillChunk(chunk, voxelsData, dims)
	return chunk
}

func denseFillChunk(chunk *ChunkBlock, voxelsData []MaterialId, dims [3]int) {
	dx, dy, dz := dims[0], dims[1], dims[2]

	maxZ := min(dz, CS)
	maxY := min(dy, CS)
	maxX := min(dx, CS)

	for z := 0; z < maxZ; z++ {
		for y := 0; y < maxY; y++ {
			for x := 0; x < maxX; x++ {
				srcIdx := x + y*dx + z*dx*dy
				if srcIdx >= len(voxelsData) {
					continue
				}
				material := voxelsData[srcIdx]
				if material != MaterialEmpty {
					chunk.Set(x+1, y+1, z+1, material)
				}
			}
		}
	}
}

// DenseToChunkBlockZYX is DenseToChunkBlock for the alternative Z-major
// layout (voxels[z + y*dims[2] + x*dims[2]*dims[1]]) used by some voxel
// formats.
func DenseToChunkBlockZYX(voxelsData []MaterialId, dims [3]int) *ChunkBlock {
	chunk := NewChunkBlock()
	denseFillChunkZYX(chunk, voxelsData, dims)
	return chunk
}

func denseFillChunkZYX(chunk *ChunkBlock, voxelsData []MaterialId, dims [3]int) {
	dx, dy, dz := dims[0], dims[1], dims[2]

	maxX := min(dx, CS)
	maxY := min(dy, CS)
	maxZ := min(dz, CS)

	for x := 0; x < maxX; x++ {
		for y := 0; y < maxY; y++ {
			for z := 0; z < maxZ; z++ {
				srcIdx := z + y*dz + x*dz*dy
				if srcIdx >= len(voxelsData) {
					continue
				}
				material := voxelsData[srcIdx]
				if material != MaterialEmpty {
					chunk.Set(x+1, y+1, z+1, material)
				}
			}
		}
	}
}
