package core

import "math"

// FloatGrid stores a 2D grid of float32 samples in row-major order. Rows run
// along Z (depth) and columns along X (width).
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, z).
func (g *FloatGrid) Index(x, z int) int { return z*g.W + x }

// At returns the sample at (x, z).
func (g *FloatGrid) At(x, z int) float32 { return g.data[z*g.W+x] }

// Set stores v at (x, z).
func (g *FloatGrid) Set(x, z int, v float32) { g.data[z*g.W+x] = v }

// ColumnMin returns the smallest sample in column x across all rows, or
// math.MaxFloat32 when x is out of range.
func (g *FloatGrid) ColumnMin(x int) float32 {
	min := float32(math.MaxFloat32)
	if x < 0 || x >= g.W {
		return min
	}
	for z := 0; z < g.H; z++ {
		if v := g.data[z*g.W+x]; v < min {
			min = v
		}
	}
	return min
}
