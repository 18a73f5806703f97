// Package terrain builds noise-driven height fields, their triangle meshes and
// the decimated skyline profiles used for collision and label occlusion.
package terrain

import (
	"errors"
	"fmt"

	"nightsky/internal/core"
	"nightsky/internal/noise"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid spacing applied to vertex positions.
const (
	ScaleX = 2
	ScaleZ = 5

	// SampleScale is the noise-space distance between neighbouring grid cells.
	SampleScale = 0.015
)

// ErrDimensions is returned for grids smaller than 2x2.
var ErrDimensions = errors.New("terrain: width and depth must be at least 2")

// HeightParams maps raw noise onto heights and colors.
type HeightParams struct {
	Base float32
	Min  float32
	Max  float32

	Low  mgl32.Vec3
	High mgl32.Vec3
}

// Terrain owns a height grid and the mesh derived from it.
type Terrain struct {
	width, depth int
	heights      *core.FloatGrid
	params       HeightParams

	vertices []mgl32.Vec3
	normals  []mgl32.Vec3
	colors   []mgl32.Vec3
	indices  []uint32

	generation int
}

// New allocates a flat terrain of width x depth cells.
func New(width, depth int) (*Terrain, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, depth)
	}
	t := &Terrain{
		width:   width,
		depth:   depth,
		heights: core.NewFloatGrid(width, depth),
	}
	t.indices = buildIndices(width, depth)
	return t, nil
}

// Generate samples src over the whole grid and rebuilds positions, colors and
// normals. The result depends only on src and p.
func (t *Terrain) Generate(src noise.Sampler, p HeightParams) {
	t.params = p
	span := p.Max - p.Min
	for z := 0; z < t.depth; z++ {
		for x := 0; x < t.width; x++ {
			n := float32(src.Sample(float64(x)*SampleScale, float64(z)*SampleScale))
			normalized := (n + 1) / 2
			t.heights.Set(x, z, p.Base+p.Min+normalized*span)
		}
	}

	count := t.width * t.depth
	if cap(t.vertices) < count {
		t.vertices = make([]mgl32.Vec3, count)
		t.colors = make([]mgl32.Vec3, count)
		t.normals = make([]mgl32.Vec3, count)
	}
	t.vertices = t.vertices[:count]
	t.colors = t.colors[:count]
	t.normals = t.normals[:count]

	cells := t.heights.Cells()
	for z := 0; z < t.depth; z++ {
		for x := 0; x < t.width; x++ {
			i := t.heights.Index(x, z)
			y := cells[i]
			t.vertices[i] = mgl32.Vec3{float32(x) * ScaleX, y, float32(z) * ScaleZ}
			t.colors[i] = heightColor(y, p)
		}
	}
	computeNormals(t.vertices, t.indices, t.normals)
	t.generation++
}

// heightColor blends Low toward High by the height's position in [Min, Max].
func heightColor(y float32, p HeightParams) mgl32.Vec3 {
	span := p.Max - p.Min
	var f float32
	if span != 0 {
		f = mgl32.Clamp((y-(p.Base+p.Min))/span, 0, 1)
	}
	return p.Low.Mul(1 - f).Add(p.High.Mul(f))
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Depth returns the number of rows.
func (t *Terrain) Depth() int { return t.depth }

// Heights exposes the raw height grid.
func (t *Terrain) Heights() []float32 { return t.heights.Cells() }

// HeightAt returns the stored height at (x, z).
func (t *Terrain) HeightAt(x, z int) float32 { return t.heights.At(x, z) }

// Vertices returns the mesh positions, one per grid cell.
func (t *Terrain) Vertices() []mgl32.Vec3 { return t.vertices }

// Normals returns the smoothed per-vertex normals.
func (t *Terrain) Normals() []mgl32.Vec3 { return t.normals }

// Colors returns the per-vertex colors.
func (t *Terrain) Colors() []mgl32.Vec3 { return t.colors }

// Indices returns the triangle list.
func (t *Terrain) Indices() []uint32 { return t.indices }

// Params returns the height mapping used by the last Generate.
func (t *Terrain) Params() HeightParams { return t.params }

// Generation counts completed Generate calls.
func (t *Terrain) Generation() int { return t.generation }
