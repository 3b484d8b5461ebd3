package voxel

// MergeYFaces greedily merges visible faces for the +Y or -Y direction into
// packed quads, appending results to output. Width extends along X, height
// extends along Z, swept one Y slice at a time.
func MergeYFaces(face int, chunk *ChunkBlock, masks *FaceMasks, output *[]uint64) {
	var processed [CS][CS]bool

	for y := 0; y < CS; y++ {
		for i := range processed {
			for j := range processed[i] {
				processed[i][j] = false
			}
		}

		for startX := 0; startX < CS; startX++ {
			for startZ := 0; startZ < CS; startZ++ {
				if processed[startX][startZ] {
					continue
				}

				faceMask := masks.Get(face, startX, startZ)
				if (faceMask>>uint(y))&1 == 0 {
					continue
				}

				material := chunk.GetMaterial(startX+1, y+1, startZ+1)

				width := 1
				for startX+width < CS {
					nextX := startX + width
					if processed[nextX][startZ] {
						break
					}
					nextMask := masks.Get(face, nextX, startZ)
					if (nextMask>>uint(y))&1 == 0 {
						break
					}
					if chunk.GetMaterial(nextX+1, y+1, startZ+1) != material {
						break
					}
					width++
				}

				height := 1
			heightLoop:
				for startZ+height < CS {
					nextZ := startZ + height
					for checkX := startX; checkX < startX+width; checkX++ {
						if processed[checkX][nextZ] {
							break heightLoop
						}
						checkMask := masks.Get(face, checkX, nextZ)
						if (checkMask>>uint(y))&1 == 0 {
							break heightLoop
						}
						if chunk.GetMaterial(checkX+1, y+1, nextZ+1) != material {
							break heightLoop
						}
					}
					height++
				}

				for px := startX; px < startX+width; px++ {
					for pz := startZ; pz < startZ+height; pz++ {
						processed[px][pz] = true
					}
				}

				*output = append(*output, PackQuad(uint32(startX), uint32(y), uint32(startZ), uint32(width), uint32(height), material))
			}
		}
	}
}
