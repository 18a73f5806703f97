package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NoTerrain marks a heightmap column with no usable sample.
const NoTerrain = float32(math.MaxFloat32)

// Heightmap resamples the grid to resolution columns using nearest-index
// mapping and returns the minimum height over all rows of each sampled column.
// A non-positive resolution yields a single NoTerrain entry; a resolution of
// one samples column zero.
func (t *Terrain) Heightmap(resolution int) []float32 {
	if resolution <= 0 {
		return []float32{NoTerrain}
	}
	out := make([]float32, resolution)
	if resolution == 1 {
		out[0] = t.heights.ColumnMin(0)
		return out
	}
	step := float32(t.width-1) / float32(resolution-1)
	for i := range out {
		x := int(float32(i) * step)
		if x >= t.width {
			x = t.width - 1
		}
		out[i] = t.heights.ColumnMin(x)
	}
	return out
}

// HeightAtNormalized returns the skyline height under a normalized horizontal
// position, sampling a heightmap of the given resolution.
func (t *Terrain) HeightAtNormalized(x float32, resolution int) float32 {
	hm := t.Heightmap(resolution)
	idx := int(mgl32.Clamp(x, 0, 1) * float32(len(hm)-1))
	return hm[idx]
}

// Deform raises (add) or lowers the grid around world X coordinate xWorld.
// Every row is affected. Columns within radius of the centre column receive
// intensity scaled by 1 - distance/radius; heights never drop below zero.
// Vertex heights and normals are refreshed afterwards. It reports whether any
// column was in range.
func (t *Terrain) Deform(xWorld, radius, intensity float32, add bool) bool {
	if radius <= 0 {
		return false
	}
	centre := int(xWorld / ScaleX)
	r := int(radius)
	amount := intensity
	if !add {
		amount = -intensity
	}

	touched := false
	cells := t.heights.Cells()
	for i := centre - r; i <= centre+r; i++ {
		if i < 0 || i >= t.width {
			continue
		}
		distance := float32(math.Abs(float64(i - centre)))
		if distance > radius {
			continue
		}
		effect := 1 - distance/radius
		touched = true
		for z := 0; z < t.depth; z++ {
			idx := t.heights.Index(i, z)
			h := cells[idx] + amount*effect
			if h < 0 {
				h = 0
			}
			cells[idx] = h
		}
	}
	if !touched || len(t.vertices) != len(cells) {
		return touched
	}
	for i, h := range cells {
		t.vertices[i][1] = h
	}
	computeNormals(t.vertices, t.indices, t.normals)
	return true
}
