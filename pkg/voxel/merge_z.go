package voxel

// MergeZFaces greedily merges visible faces for the +Z or -Z direction into
// packed quads, appending results to output. Width extends along X, height
// extends along Y, swept one Z slice at a time.
func MergeZFaces(face int, chunk *ChunkBlock, masks *FaceMasks, output *[]uint64) {
	var processed [CS][CS]bool

	for z := 0; z < CS; z++ {
		for i := range processed {
			for j := range processed[i] {
				processed[i][j] = false
			}
		}

		for startX := 0; startX < CS; startX++ {
			for startY := 0; startY < CS; startY++ {
				if processed[startX][startY] {
					continue
				}

				faceMask := masks.Get(face, startX, z)
				if (faceMask>>uint(startY))&1 == 0 {
					continue
				}

				material := chunk.GetMaterial(startX+1, startY+1, z+1)

				width := 1
				for startX+width < CS {
					nextX := startX + width
					if processed[nextX][startY] {
						break
					}
					nextMask := masks.Get(face, nextX, z)
					if (nextMask>>uint(startY))&1 == 0 {
						break
					}
					if chunk.GetMaterial(nextX+1, startY+1, z+1) != material {
						break
					}
					width++
				}

				height := 1
			heightLoop:
				for startY+height < CS {
					nextY := startY + height
					for checkX := startX; checkX < startX+width; checkX++ {
						if processed[checkX][nextY] {
							break heightLoop
						}
						checkMask := masks.Get(face, checkX, z)
						if (checkMask>>uint(nextY))&1 == 0 {
							break heightLoop
						}
						if chunk.GetMaterial(checkX+1, nextY+1, z+1) != material {
							break heightLoop
						}
					}
					height++
				}

				for px := startX; px < startX+width; px++ {
					for py := startY; py < startY+height; py++ {
						processed[px][py] = true
					}
				}

				*output = append(*output, PackQuad(uint32(startX), uint32(startY), uint32(z), uint32(width), uint32(height), material))
			}
		}
	}
}
