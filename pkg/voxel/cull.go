package voxel

import "math/bits"

// FaceMasks holds, for each of the six face directions, a CSxCS grid of
// visibility bitmasks: bit y of masks[face][x*CS+z] is 1 iff usable-space
// voxel (x,y,z) has an exposed face in that direction.
type FaceMasks struct {
	masks [6 * CS * CS]uint64
}

// NewFaceMasks returns a zeroed FaceMasks.
func NewFaceMasks() *FaceMasks {
	return &FaceMasks{}
}

func faceMaskIndex(face, x, z int) int {
	return face*CS*CS + x*CS + z
}

// Get returns the visibility word for (face, x, z) in usable-space (x,z).
func (m *FaceMasks) Get(face, x, z int) uint64 {
	return m.masks[faceMaskIndex(face, x, z)]
}

func (m *FaceMasks) set(face, x, z int, value uint64) {
	m.masks[faceMaskIndex(face, x, z)] = value
}

// TotalFaces returns the total number of visible faces across all six
// directions (the theoretical maximum quad count before merging).
func (m *FaceMasks) TotalFaces() int {
	total := 0
	for _, w := range m.masks {
		total += bits.OnesCount64(w)
	}
	return total
}

const usableMask = (uint64(1) << CS) - 1

// CullFaces computes all six per-direction visibility bitmasks for chunk,
// storing them into masks. Only padded columns x,z in [1,CSP-1) are
// considered; columns that are entirely empty are skipped.
func CullFaces(chunk *ChunkBlock, masks *FaceMasks) {
	for x := 1; x < CSP-1; x++ {
		for z := 1; z < CSP-1; z++ {
			column := chunk.Column(x, z)
			if column == 0 {
				continue
			}

			posY := column &^ (column >> 1)
			negY := column &^ (column << 1)
			posX := column &^ chunk.Column(x+1, z)
			negX := column &^ chunk.Column(x-1, z)
			posZ := column &^ chunk.Column(x, z+1)
			negZ := column &^ chunk.Column(x, z-1)

			ux, uz := x-1, z-1
			masks.set(FacePosY, ux, uz, (posY>>1)&usableMask)
			masks.set(FaceNegY, ux, uz, (negY>>1)&usableMask)
			masks.set(FacePosX, ux, uz, (posX>>1)&usableMask)
			masks.set(FaceNegX, ux, uz, (negX>>1)&usableMask)
			masks.set(FacePosZ, ux, uz, (posZ>>1)&usableMask)
			masks.set(FaceNegZ, ux, uz, (negZ>>1)&usableMask)
		}
	}
}
