package terrain

import "github.com/go-gl/mathgl/mgl32"

// buildIndices emits two triangles per grid cell with a consistent winding:
// (topLeft, bottomLeft, topRight) and (topRight, bottomLeft, bottomRight).
func buildIndices(width, depth int) []uint32 {
	indices := make([]uint32, 0, (width-1)*(depth-1)*6)
	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(x + z*width)
			topRight := uint32(x + 1 + z*width)
			bottomLeft := uint32(x + (z+1)*width)
			bottomRight := uint32(x + 1 + (z+1)*width)
			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return indices
}

// computeNormals accumulates each triangle's unit face normal on its three
// vertices, then renormalizes per vertex. out must be len(vertices).
func computeNormals(vertices []mgl32.Vec3, indices []uint32, out []mgl32.Vec3) {
	for i := range out {
		out[i] = mgl32.Vec3{}
	}
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0]
		face := vertices[i1].Sub(v0).Cross(vertices[i2].Sub(v0))
		if face.Len() == 0 {
			continue
		}
		face = face.Normalize()
		out[i0] = out[i0].Add(face)
		out[i1] = out[i1].Add(face)
		out[i2] = out[i2].Add(face)
	}
	for i, n := range out {
		if n.Len() > 0 {
			out[i] = n.Normalize()
		}
	}
}
