package voxel

// MeshOutput holds the vertex arrays produced by expanding packed quads.
// UVs and MaterialIds are only populated by ExpandQuadsWithUVs.
type MeshOutput struct {
	Positions   []float32
	Normals     []float32
	Indices     []uint32
	UVs         []float32
	MaterialIds []MaterialId
}

// NewMeshOutput returns a MeshOutput with capacity pre-reserved for
// totalQuads worth of positions, normals and indices. UVs and MaterialIds
// are left nil.
func NewMeshOutput(totalQuads int) *MeshOutput {
	return &MeshOutput{
		Positions: make([]float32, 0, totalQuads*4*3),
		Normals:   make([]float32, 0, totalQuads*4*3),
		Indices:   make([]uint32, 0, totalQuads*6),
	}
}

// VertexCount returns the number of vertices emitted so far.
func (m *MeshOutput) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles emitted so far.
func (m *MeshOutput) TriangleCount() int {
	return len(m.Indices) / 3
}

// HasUVs reports whether UV coordinates were generated for this output.
func (m *MeshOutput) HasUVs() bool {
	return len(m.UVs) > 0
}

// HasMaterialIds reports whether per-vertex material ids were generated.
func (m *MeshOutput) HasMaterialIds() bool {
	return len(m.MaterialIds) > 0
}

// ExpandQuads expands packed quads (one slice per face direction) into
// vertex arrays without UVs or material ids.
func ExpandQuads(packedQuads [6][]uint64, voxelSize float32, origin [3]float32) *MeshOutput {
	total := 0
	for _, q := range packedQuads {
		total += len(q)
	}
	output := NewMeshOutput(total)

	for face, quads := range packedQuads {
		normal := FaceNormals[face]
		for _, quad := range quads {
			x, y, z, w, h, _ := UnpackQuad(quad)
			emitQuadBasic(face, x, y, z, w, h, normal, voxelSize, origin, output)
		}
	}

	return output
}

// ExpandQuadsWithUVs expands packed quads into vertex arrays including UV
// coordinates (tiled to quad dimensions) and per-vertex material ids.
func ExpandQuadsWithUVs(packedQuads [6][]uint64, voxelSize float32, origin [3]float32) *MeshOutput {
	total := 0
	for _, q := range packedQuads {
		total += len(q)
	}
	output := NewMeshOutput(total)
	output.UVs = make([]float32, 0, total*4*2)
	output.MaterialIds = make([]MaterialId, 0, total*4)

	for face, quads := range packedQuads {
		normal := FaceNormals[face]
		for _, quad := range quads {
			x, y, z, w, h, material := UnpackQuad(quad)
			emitQuadWithUVs(face, x, y, z, w, h, material, normal, voxelSize, origin, output)
		}
	}

	return output
}

func emitQuadBasic(face int, x, y, z, width, height uint32, normal [3]float32, voxelSize float32, origin [3]float32, output *MeshOutput) {
	baseVertex := uint32(len(output.Positions) / 3)

	bx := origin[0] + float32(x)*voxelSize
	by := origin[1] + float32(y)*voxelSize
	bz := origin[2] + float32(z)*voxelSize
	w := float32(width) * voxelSize
	h := float32(height) * voxelSize

	corners := computeQuadCorners(face, bx, by, bz, w, h, voxelSize)

	for _, corner := range corners {
		output.Positions = append(output.Positions, corner[0], corner[1], corner[2])
		output.Normals = append(output.Normals, normal[0], normal[1], normal[2])
	}

	output.Indices = append(output.Indices,
		baseVertex, baseVertex+1, baseVertex+2,
		baseVertex, baseVertex+2, baseVertex+3,
	)
}

func emitQuadWithUVs(face int, x, y, z, width, height uint32, material MaterialId, normal [3]float32, voxelSize float32, origin [3]float32, output *MeshOutput) {
	baseVertex := uint32(len(output.Positions) / 3)

	bx := origin[0] + float32(x)*voxelSize
	by := origin[1] + float32(y)*voxelSize
	bz := origin[2] + float32(z)*voxelSize
	w := float32(width) * voxelSize
	h := float32(height) * voxelSize

	uTiles := float32(width)
	vTiles := float32(height)

	corners, uvs := computeQuadCornersWithUVs(face, bx, by, bz, w, h, voxelSize, uTiles, vTiles)

	for i := 0; i < 4; i++ {
		output.Positions = append(output.Positions, corners[i][0], corners[i][1], corners[i][2])
		output.Normals = append(output.Normals, normal[0], normal[1], normal[2])
		output.UVs = append(output.UVs, uvs[i][0], uvs[i][1])
		output.MaterialIds = append(output.MaterialIds, material)
	}

	output.Indices = append(output.Indices,
		baseVertex, baseVertex+1, baseVertex+2,
		baseVertex, baseVertex+2, baseVertex+3,
	)
}

// computeQuadCorners returns the 4 world-space corners of a quad in the
// winding order expected by the fixed [0,1,2, 0,2,3] CCW triangle indices.
func computeQuadCorners(face int, bx, by, bz, w, h, voxelSize float32) [4][3]float32 {
	switch face {
	case FacePosY:
		return [4][3]float32{
			{bx, by + voxelSize, bz},
			{bx, by + voxelSize, bz + h},
			{bx + w, by + voxelSize, bz + h},
			{bx + w, by + voxelSize, bz},
		}
	case FaceNegY:
		return [4][3]float32{
			{bx, by, bz},
			{bx + w, by, bz},
			{bx + w, by, bz + h},
			{bx, by, bz + h},
		}
	case FacePosX:
		return [4][3]float32{
			{bx + voxelSize, by, bz},
			{bx + voxelSize, by + w, bz},
			{bx + voxelSize, by + w, bz + h},
			{bx + voxelSize, by, bz + h},
		}
	case FaceNegX:
		return [4][3]float32{
			{bx, by, bz},
			{bx, by, bz + h},
			{bx, by + w, bz + h},
			{bx, by + w, bz},
		}
	case FacePosZ:
		return [4][3]float32{
			{bx, by, bz + voxelSize},
			{bx + w, by, bz + voxelSize},
			{bx + w, by + h, bz + voxelSize},
			{bx, by + h, bz + voxelSize},
		}
	case FaceNegZ:
		return [4][3]float32{
			{bx, by, bz},
			{bx, by + h, bz},
			{bx + w, by + h, bz},
			{bx + w, by, bz},
		}
	default:
		panic("voxel: invalid face direction")
	}
}

// computeQuadCornersWithUVs returns corners plus UVs tiled to (uTiles, vTiles).
func computeQuadCornersWithUVs(face int, bx, by, bz, w, h, voxelSize, uTiles, vTiles float32) ([4][3]float32, [4][2]float32) {
	corners := computeQuadCorners(face, bx, by, bz, w, h, voxelSize)

	var uvs [4][2]float32
	switch face {
	case FacePosY:
		uvs = [4][2]float32{{0, 0}, {0, vTiles}, {uTiles, vTiles}, {uTiles, 0}}
	case FaceNegY:
		uvs = [4][2]float32{{0, 0}, {uTiles, 0}, {uTiles, vTiles}, {0, vTiles}}
	case FacePosX:
		uvs = [4][2]float32{{0, 0}, {0, vTiles}, {uTiles, vTiles}, {uTiles, 0}}
	case FaceNegX:
		uvs = [4][2]float32{{0, 0}, {uTiles, 0}, {uTiles, vTiles}, {0, vTiles}}
	case FacePosZ:
		uvs = [4][2]float32{{0, 0}, {uTiles, 0}, {uTiles, vTiles}, {0, vTiles}}
	case FaceNegZ:
		uvs = [4][2]float32{{0, 0}, {0, vTiles}, {uTiles, vTiles}, {uTiles, 0}}
	default:
		panic("voxel: invalid face direction")
	}

	return corners, uvs
}
