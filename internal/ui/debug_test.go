package ui

import (
	"testing"

	"nightsky/internal/physics"
)

func TestBoundaryScreenPointsFlipsY(t *testing.T) {
	pts := boundaryScreenPoints([]physics.Point{{X: 0, Y: 0}, {X: 0.5, Y: 2}}, 400)
	if pts[0] != (screenPoint{X: 0, Y: 400}) {
		t.Fatalf("origin = %+v", pts[0])
	}
	if pts[1] != (screenPoint{X: 50, Y: 200}) {
		t.Fatalf("second = %+v", pts[1])
	}
}

func TestSkylineScreenPointsBreaksOnMissingTerrain(t *testing.T) {
	sky := func(x float32) (float32, bool) {
		if x >= 0.5 && x < 0.75 {
			return 0, false
		}
		return 100, true
	}
	pts := skylineScreenPoints(sky, 40, 300, 10)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	if pts[2] != nil {
		t.Fatalf("column 20 should be a gap, got %+v", *pts[2])
	}
	if pts[0] == nil || pts[0].Y != 200 {
		t.Fatalf("column 0 = %+v", pts[0])
	}
}

func TestHeightColorBrightensWithHeight(t *testing.T) {
	low := heightColor(300, 300)
	high := heightColor(0, 300)
	if low.A >= high.A || low.G >= high.G {
		t.Fatalf("low %v should be dimmer than high %v", low, high)
	}
	if got := clamp01(-2); got != 0 {
		t.Fatalf("clamp01(-2) = %v", got)
	}
}
