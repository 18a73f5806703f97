package celestial

import (
	"math"

	pcore "nightsky/pkg/core"

	"github.com/go-gl/mathgl/mgl32"
)

// Star field constants. Indices [0, ForegroundStars) are the spaced
// foreground stars; the background stars follow them.
const (
	ForegroundStars   = 50
	BackgroundStars   = 100
	MinStarDistance   = 0.1
	candidateAttempts = 30

	horizonY    = 0.3
	horizonKeep = 0.02

	ForegroundStarSize = 4
	BackgroundStarSize = 3

	// refillDarts bounds the uniform dart throwing used when the active
	// list empties before the foreground is full.
	refillDarts = 10000
	scanStep    = 0.01
)

// Star is a fixed point of light in normalized sky coordinates.
type Star struct {
	Pos        mgl32.Vec2
	Brightness float32
}

// Constellation names a group of star indices.
type Constellation struct {
	Name        string
	StarIndices []int
}

// StarSize returns the point size for the star at index i.
func StarSize(i int) float32 {
	if i < ForegroundStars {
		return ForegroundStarSize
	}
	return BackgroundStarSize
}

// GenerateStars places ForegroundStars spaced stars by Poisson-disc sampling
// seeded at the centre of the sky, then appends BackgroundStars uniform ones.
// Both sets thin out below the horizon band.
func GenerateStars(rng *pcore.RNG) []Star {
	points := poissonPoints(rng)
	stars := make([]Star, 0, ForegroundStars+BackgroundStars)
	for _, p := range points {
		stars = append(stars, Star{Pos: p, Brightness: 0.4 + rng.Float32()*0.3 + p.Y()*0.2})
	}
	for added := 0; added < BackgroundStars; {
		p := mgl32.Vec2{rng.Float32(), rng.Float32()}
		if p.Y() < horizonY && rng.Float32() > horizonKeep {
			continue
		}
		stars = append(stars, Star{Pos: p, Brightness: 0.2 + rng.Float32()*0.1})
		added++
	}
	return stars
}

func poissonPoints(rng *pcore.RNG) []mgl32.Vec2 {
	seed := mgl32.Vec2{0.5, 0.5}
	points := []mgl32.Vec2{seed}
	active := []mgl32.Vec2{seed}

	for len(active) > 0 && len(points) < ForegroundStars {
		idx := rng.IntN(len(active))
		center := active[idx]
		placed := false
		for i := 0; i < candidateAttempts && len(points) < ForegroundStars; i++ {
			angle := rng.Float32() * 2 * math.Pi
			radius := rng.Range(MinStarDistance, 2*MinStarDistance)
			p := center.Add(mgl32.Vec2{
				float32(math.Cos(float64(angle))),
				float32(math.Sin(float64(angle))),
			}.Mul(radius))
			if !acceptCandidate(rng, p) || tooClose(points, p) {
				continue
			}
			points = append(points, p)
			active = append(active, p)
			placed = true
		}
		if !placed {
			active = append(active[:idx], active[idx+1:]...)
		}
	}

	for darts := 0; len(points) < ForegroundStars && darts < refillDarts; darts++ {
		p := mgl32.Vec2{rng.Float32(), rng.Float32()}
		if acceptCandidate(rng, p) && !tooClose(points, p) {
			points = append(points, p)
		}
	}
	if len(points) < ForegroundStars {
		points = scanFill(points)
	}
	return points
}

// acceptCandidate applies the horizon thinning, the y² density falloff and
// the unit-square bounds.
func acceptCandidate(rng *pcore.RNG, p mgl32.Vec2) bool {
	if p.Y() < horizonY && rng.Float32() > horizonKeep {
		return false
	}
	if rng.Float32() > p.Y()*p.Y() {
		return false
	}
	return p.X() >= 0 && p.X() <= 1 && p.Y() >= 0 && p.Y() <= 1
}

func tooClose(points []mgl32.Vec2, p mgl32.Vec2) bool {
	for _, q := range points {
		if p.Sub(q).Len() < MinStarDistance {
			return true
		}
	}
	return false
}

// scanFill tops the foreground up from a top-down lattice scan that keeps the
// spacing but ignores the density rules.
func scanFill(points []mgl32.Vec2) []mgl32.Vec2 {
	for y := float32(1); y >= 0 && len(points) < ForegroundStars; y -= scanStep {
		for x := float32(0); x <= 1 && len(points) < ForegroundStars; x += scanStep {
			p := mgl32.Vec2{x, y}
			if !tooClose(points, p) {
				points = append(points, p)
			}
		}
	}
	return points
}

// ApplyLayout overwrites consecutive stars with the layout's placements and
// returns the resulting constellations and planets. Placements that would run
// past the star slice are dropped along with their indices.
func ApplyLayout(stars []Star, l Layout) ([]Constellation, []Planet) {
	next := 0
	constellations := make([]Constellation, 0, len(l.Constellations))
	for _, cl := range l.Constellations {
		c := Constellation{Name: cl.Name}
		for _, placement := range cl.Stars {
			if next >= len(stars) {
				break
			}
			stars[next] = Star{Pos: placement.Pos, Brightness: placement.Brightness}
			c.StarIndices = append(c.StarIndices, next)
			next++
		}
		constellations = append(constellations, c)
	}
	planets := append([]Planet(nil), l.Planets...)
	return constellations, planets
}

// Centroid returns the mean position of the constellation's stars.
func (c Constellation) Centroid(stars []Star) (mgl32.Vec2, bool) {
	var sum mgl32.Vec2
	n := 0
	for _, idx := range c.StarIndices {
		if idx < 0 || idx >= len(stars) {
			continue
		}
		sum = sum.Add(stars[idx].Pos)
		n++
	}
	if n == 0 {
		return mgl32.Vec2{}, false
	}
	return sum.Mul(1 / float32(n)), true
}
