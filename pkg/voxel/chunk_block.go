package voxel

import "math/bits"

// ChunkBlock is a padded CSP^3 voxel block: a per-column opaque bitmask plus
// a palette-compressed material store. Voxel coordinates here are in padded
// space [0,CSP); callers working in usable space offset by +1 (see Chunk).
type ChunkBlock struct {
	opaqueMask [CSP2]uint64 // indexed x*CSP+z, bit y set iff voxel (x,y,z) is opaque
	materials  *PaletteStore
}

// NewChunkBlock returns an empty (all-air) chunk block.
func NewChunkBlock() *ChunkBlock {
	return &ChunkBlock{materials: NewPaletteStore(CSP3)}
}

func voxelIndex(x, y, z int) int {
	return x*CSP2 + y*CSP + z
}

func columnIndex(x, z int) int {
	return x*CSP + z
}

// Set writes material at padded coordinate (x,y,z), updating both the
// column occupancy bit and the palette store.
func (b *ChunkBlock) Set(x, y, z int, material MaterialId) {
	b.materials.Set(voxelIndex(x, y, z), material)
	if material == MaterialEmpty {
		b.opaqueMask[columnIndex(x, z)] &^= uint64(1) << uint(y)
	} else {
		b.opaqueMask[columnIndex(x, z)] |= uint64(1) << uint(y)
	}
}

// Clear writes the empty material at padded coordinate (x,y,z).
func (b *ChunkBlock) Clear(x, y, z int) {
	b.Set(x, y, z, MaterialEmpty)
}

// GetMaterial returns the material stored at padded coordinate (x,y,z).
func (b *ChunkBlock) GetMaterial(x, y, z int) MaterialId {
	return b.materials.Get(voxelIndex(x, y, z))
}

// IsSolid reports whether padded coordinate (x,y,z) holds a non-empty
// material.
func (b *ChunkBlock) IsSolid(x, y, z int) bool {
	return (b.opaqueMask[columnIndex(x, z)]>>uint(y))&1 != 0
}

// Column returns the raw 64-bit occupancy word for padded column (x,z).
func (b *ChunkBlock) Column(x, z int) uint64 {
	return b.opaqueMask[columnIndex(x, z)]
}

// SolidCount returns the total number of opaque voxels in the block.
func (b *ChunkBlock) SolidCount() int {
	count := 0
	for _, word := range b.opaqueMask {
		count += bits.OnesCount64(word)
	}
	return count
}

// IsEmpty reports whether the block contains no opaque voxels.
func (b *ChunkBlock) IsEmpty() bool {
	for _, word := range b.opaqueMask {
		if word != 0 {
			return false
		}
	}
	return true
}

