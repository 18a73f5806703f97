package physics

import (
	"fmt"
	"math"

	"nightsky/internal/logging"
)

// DefaultResolution is the number of skyline samples in a terrain boundary.
const DefaultResolution = 50

// HeightProfiler yields a decimated skyline, as terrain.Terrain does.
type HeightProfiler interface {
	Heightmap(resolution int) []float32
}

// Boundary keeps exactly one static chain in sync with a terrain.
type Boundary struct {
	world      *World
	resolution int
	floor      float32
	chain      *ChainHandle
	log        logging.Logger
}

// NewBoundary returns a builder sampling resolution columns. Heights that are
// missing, negative or above floor are replaced by floor.
func NewBoundary(w *World, resolution int, floor float32, log logging.Logger) *Boundary {
	if resolution <= 1 {
		resolution = DefaultResolution
	}
	return &Boundary{world: w, resolution: resolution, floor: floor, log: logging.OrNoop(log)}
}

// ProfilePoints converts a skyline into physics-space points. Column i lands
// at x = i*2/PixelsPerMeter.
func ProfilePoints(heights []float32, floor float32) []Point {
	points := make([]Point, len(heights))
	for i, y := range heights {
		if y == math.MaxFloat32 || y < 0 || y > floor {
			y = floor
		}
		points[i] = Point{
			X: float64(i) * 2 / PixelsPerMeter,
			Y: float64(y) / PixelsPerMeter,
		}
	}
	return points
}

// Rebuild samples src and swaps in a freshly created chain. The previous chain
// is removed only after the new one exists.
func (b *Boundary) Rebuild(src HeightProfiler) (*ChainHandle, error) {
	points := ProfilePoints(src.Heightmap(b.resolution), b.floor)
	chain, err := b.world.CreateStaticChain(points)
	if err != nil {
		return nil, fmt.Errorf("rebuild terrain boundary: %w", err)
	}
	if b.chain != nil {
		b.world.DestroyChain(b.chain)
	}
	b.chain = chain
	b.log.Debug("terrain boundary rebuilt", logging.Int("points", len(points)))
	return chain, nil
}

// Chain returns the current chain, or nil before the first Rebuild.
func (b *Boundary) Chain() *ChainHandle { return b.chain }
