package celestial

import (
	"nightsky/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// Pixel offsets between an object and its caption.
const (
	labelOffset       = 20
	closeLabelOffset  = 30
	constellationGray = 0.5
)

// HeightQuery answers skyline lookups against the distant terrain. x is a
// normalized horizontal position; ok is false when no terrain is there.
type HeightQuery interface {
	SkylineAt(x float32) (height float32, ok bool)
}

// Label is one caption in window pixels with y growing upward.
type Label struct {
	Text   string
	X, Y   float32
	Color  mgl32.Vec3
	Native bool
}

// Labels builds the captions enabled by the toggles. skyline may be nil, in
// which case the alien planet is never hidden.
func (m *Manager) Labels(starAlpha float32, skyline HeightQuery) []Label {
	if starAlpha <= 0 {
		return nil
	}
	native := m.toggles.NativeNames
	var out []Label
	at := func(p mgl32.Vec2, dy float32) (float32, float32) {
		return p.X() * core.WindowWidth, p.Y()*core.WindowHeight + dy
	}

	if m.toggles.ConstellationNames {
		gray := mgl32.Vec3{constellationGray, constellationGray, constellationGray}
		for _, c := range m.constellations {
			center, ok := c.Centroid(m.stars)
			if !ok {
				continue
			}
			x, y := at(center, labelOffset)
			out = append(out, Label{Text: c.Name, X: x, Y: y, Color: gray, Native: native})
		}
	}

	if m.toggles.PlanetNames {
		for _, p := range m.planets {
			x, y := at(p.Pos, labelOffset)
			out = append(out, Label{Text: p.Name, X: x, Y: y, Color: p.Color.Mul(0.5 * 0.8), Native: native})
		}
	}

	if m.toggles.SatelliteNames {
		for _, sat := range m.sched.Satellites() {
			x, y := at(sat.Pos, labelOffset)
			out = append(out, Label{Text: sat.Name, X: x, Y: y, Color: sat.TextColor.Mul(0.5), Native: native})
		}
		for _, train := range m.sched.Trains() {
			if len(train.Positions) == 0 {
				continue
			}
			x, y := at(train.Positions[0], labelOffset)
			out = append(out, Label{Text: FleetLabel(m.scene), X: x, Y: y, Color: mgl32.Vec3{0.4, 0.4, 0}, Native: native})
		}
	}

	if m.toggles.PlanetNames {
		for _, c := range m.close {
			if c.Kind != AlienPlanet {
				continue
			}
			x, y := at(c.Pos, closeLabelOffset)
			if skyline != nil {
				if h, ok := skyline.SkylineAt(c.Pos.X()); ok && y < h {
					continue
				}
			}
			out = append(out, Label{Text: c.Name, X: x, Y: y, Color: c.Tint, Native: native})
		}
	}
	return out
}
