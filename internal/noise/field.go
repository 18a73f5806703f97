// Package noise provides the seeded coherent noise sampled by terrain
// generation.
package noise

import (
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Kind selects the noise backend.
type Kind string

const (
	Perlin  Kind = "perlin"
	Simplex Kind = "simplex"
)

// ParseKind maps a name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Perlin, "":
		return Perlin, nil
	case Simplex:
		return Simplex, nil
	}
	return Perlin, fmt.Errorf("unknown noise kind %q", s)
}

// Params holds the fractal shaping controls.
type Params struct {
	Frequency   float64
	Persistence float64
	Lacunarity  float64
	Octaves     int
	Seed        int64
}

// Sampler produces a value in [-1, 1] for any (x, z).
type Sampler interface {
	Sample(x, z float64) float64
}

// Field is a configurable fractal noise source.
type Field struct {
	kind   Kind
	params Params

	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

// NewField returns a field of the given kind configured with p.
func NewField(kind Kind, p Params) *Field {
	f := &Field{kind: kind}
	f.Configure(p)
	return f
}

// Configure rebuilds the underlying generator. Octaves below one are treated
// as one, and non-positive persistence or lacunarity fall back to 0.5 and 2.
func (f *Field) Configure(p Params) {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Persistence <= 0 {
		p.Persistence = 0.5
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	f.params = p
	switch f.kind {
	case Simplex:
		f.simplex = opensimplex.New(p.Seed)
		f.perlin = nil
	default:
		f.kind = Perlin
		// go-perlin divides each octave's contribution by alpha^i and scales
		// the coordinates by beta^i.
		f.perlin = perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed)
		f.simplex = nil
	}
}

// Params returns the active configuration.
func (f *Field) Params() Params { return f.params }

// Kind reports the backend in use.
func (f *Field) Kind() Kind { return f.kind }

// Sample returns the fractal noise value at (x, z), clamped to [-1, 1].
func (f *Field) Sample(x, z float64) float64 {
	x *= f.params.Frequency
	z *= f.params.Frequency
	var v float64
	if f.kind == Simplex {
		v = f.fbm(x, z)
	} else {
		v = f.perlin.Noise2D(x, z)
	}
	return clamp(v)
}

// fbm layers simplex octaves and normalizes by the summed amplitude.
func (f *Field) fbm(x, z float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := 1.0
	for i := 0; i < f.params.Octaves; i++ {
		total += f.simplex.Eval2(x*freq, z*freq) * amplitude
		maxVal += amplitude
		amplitude *= f.params.Persistence
		freq *= f.params.Lacunarity
	}
	return total / maxVal
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
