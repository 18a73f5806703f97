package celestial

import "github.com/go-gl/mathgl/mgl32"

// PointVertex is one point sprite in normalized sky coordinates.
type PointVertex struct {
	X, Y       float32
	Brightness float32
	Size       float32
	R, G, B    float32
}

// LineVertex is one end of an exhaust segment.
type LineVertex struct {
	X, Y    float32
	Alpha   float32
	R, G, B float32
}

var (
	white         = mgl32.Vec3{1, 1, 1}
	dimWhite      = mgl32.Vec3{0.5, 0.5, 0.5}
	flagshipColor = mgl32.Vec3{1, 1, 0}
	trainTrail    = mgl32.Vec3{1, 1, 0}
)

const shootingStarSize = 2.25

func point(p mgl32.Vec2, brightness, size float32, c mgl32.Vec3) PointVertex {
	return PointVertex{X: p.X(), Y: p.Y(), Brightness: brightness, Size: size, R: c.X(), G: c.Y(), B: c.Z()}
}

// Points returns the point buffer for the current frame in draw order: stars,
// planets, satellites, train members, shooting stars. Brightness is scaled by
// starAlpha; nothing is returned when the night sky is invisible.
func (m *Manager) Points(starAlpha float32) []PointVertex {
	if starAlpha <= 0 {
		return nil
	}
	out := make([]PointVertex, 0, len(m.stars)+len(m.planets)+16)
	for i, s := range m.stars {
		out = append(out, point(s.Pos, s.Brightness*starAlpha, StarSize(i), white))
	}
	for _, p := range m.planets {
		out = append(out, point(p.Pos, p.Brightness*starAlpha, p.Size, p.Color))
	}
	for _, sat := range m.sched.Satellites() {
		c := dimWhite
		if sat.Flagship {
			c = flagshipColor
		}
		out = append(out, point(sat.Pos, sat.Brightness*starAlpha, sat.Size, c))
	}
	for _, train := range m.sched.Trains() {
		for _, pos := range train.Positions {
			out = append(out, point(pos, train.Brightness*starAlpha, train.Size, dimWhite))
		}
	}
	for _, s := range m.sched.ShootingStars() {
		out = append(out, point(s.Pos, s.Brightness*starAlpha, shootingStarSize, white))
	}
	return out
}

// Lines returns exhaust segments as vertex pairs. Satellites blend their
// text color into the trail; train trails are yellow. Only the alien scene
// produces trails.
func (m *Manager) Lines(starAlpha float32) []LineVertex {
	if starAlpha <= 0 || !m.scene.IsAlien() {
		return nil
	}
	var out []LineVertex
	add := func(segs []ExhaustSegment, c mgl32.Vec3) {
		for _, s := range segs {
			out = append(out,
				LineVertex{X: s.Start.X(), Y: s.Start.Y(), Alpha: s.Alpha, R: c.X(), G: c.Y(), B: c.Z()},
				LineVertex{X: s.End.X(), Y: s.End.Y(), Alpha: s.Alpha, R: c.X(), G: c.Y(), B: c.Z()},
			)
		}
	}
	for _, sat := range m.sched.Satellites() {
		add(sat.Trail(), sat.TextColor.Add(white).Mul(0.5))
	}
	for _, train := range m.sched.Trains() {
		for i := range train.Positions {
			add(train.Trail(i), trainTrail)
		}
	}
	return out
}
