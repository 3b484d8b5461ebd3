package voxel

// MergeXFaces greedily merges visible faces for the +X or -X direction into
// packed quads, appending results to output. Width extends along Y, height
// extends along Z, swept one X slice at a time.
func MergeXFaces(face int, chunk *ChunkBlock, masks *FaceMasks, output *[]uint64) {
	var processed [CS][CS]bool

	for x := 0; x < CS; x++ {
		for i := range processed {
			for j := range processed[i] {
				processed[i][j] = false
			}
		}

		for startY := 0; startY < CS; startY++ {
			for startZ := 0; startZ < CS; startZ++ {
				if processed[startY][startZ] {
					continue
				}

				faceMask := masks.Get(face, x, startZ)
				if (faceMask>>uint(startY))&1 == 0 {
					continue
				}

				material := chunk.GetMaterial(x+1, startY+1, startZ+1)

				width := 1
				for startY+width < CS {
					nextY := startY + width
					if processed[nextY][startZ] {
						break
					}
					if (faceMask>>uint(nextY))&1 == 0 {
						break
					}
					if chunk.GetMaterial(x+1, nextY+1, startZ+1) != material {
						break
					}
					width++
				}

				height := 1
			heightLoop:
				for startZ+height < CS {
					nextZ := startZ + height
					nextFaceMask := masks.Get(face, x, nextZ)
					for checkY := startY; checkY < startY+width; checkY++ {
						if processed[checkY][nextZ] {
							break heightLoop
						}
						if (nextFaceMask>>uint(checkY))&1 == 0 {
							break heightLoop
						}
						if chunk.GetMaterial(x+1, checkY+1, nextZ+1) != material {
							break heightLoop
						}
					}
					height++
				}

				for py := startY; py < startY+width; py++ {
					for pz := startZ; pz < startZ+height; pz++ {
						processed[py][pz] = true
					}
				}

				*output = append(*output, PackQuad(uint32(x), uint32(startY), uint32(startZ), uint32(width), uint32(height), material))
			}
		}
	}
}
