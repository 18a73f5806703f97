package ui

import (
	"image/color"
	"math"

	"nightsky/internal/physics"
)

type screenPoint struct {
	X, Y float64
}

// boundaryScreenPoints maps physics-space chain vertices into window pixels.
// Physics y grows upward from the window floor.
func boundaryScreenPoints(points []physics.Point, screenH int) []screenPoint {
	out := make([]screenPoint, len(points))
	for i, p := range points {
		out[i] = screenPoint{
			X: p.X * physics.PixelsPerMeter,
			Y: float64(screenH) - p.Y*physics.PixelsPerMeter,
		}
	}
	return out
}

// skylineScreenPoints samples sky, which takes a normalized x, every step
// pixels across width. Columns without terrain come back as nil entries.
func skylineScreenPoints(sky func(x float32) (float32, bool), width, screenH, step int) []*screenPoint {
	if step <= 0 {
		step = 1
	}
	var out []*screenPoint
	if width <= 0 {
		return out
	}
	for x := 0; x < width; x += step {
		h, ok := sky(float32(x) / float32(width))
		if !ok {
			out = append(out, nil)
			continue
		}
		out = append(out, &screenPoint{X: float64(x), Y: float64(screenH) - float64(h)})
	}
	return out
}

// heightColor tints a crest by its height as a fraction of the window.
func heightColor(y float64, screenH int) color.RGBA {
	if screenH <= 0 {
		return interpolateColor(0)
	}
	return interpolateColor(1 - y/float64(screenH))
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
