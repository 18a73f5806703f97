package terrain

import (
	"errors"
	"math"
	"slices"
	"testing"

	"nightsky/internal/noise"

	"github.com/go-gl/mathgl/mgl32"
)

type waveSampler struct{}

func (waveSampler) Sample(x, z float64) float64 {
	return math.Sin(x*7) * math.Cos(z*5)
}

func testParams() HeightParams {
	return HeightParams{
		Base: 0,
		Min:  100,
		Max:  200,
		Low:  mgl32.Vec3{0.5, 0.35, 0.15},
		High: mgl32.Vec3{0.2, 0.5, 0.2},
	}
}

func newGenerated(t *testing.T, w, d int, src noise.Sampler) *Terrain {
	t.Helper()
	tr, err := New(w, d)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, d, err)
	}
	tr.Generate(src, testParams())
	return tr
}

func TestNewRejectsDegenerateGrid(t *testing.T) {
	if _, err := New(1, 10); !errors.Is(err, ErrDimensions) {
		t.Fatalf("New(1,10) err = %v, want ErrDimensions", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := noise.Params{Frequency: 0.6, Persistence: 0.45, Lacunarity: 1.669, Octaves: 8, Seed: 7}
	a := newGenerated(t, 48, 12, noise.NewField(noise.Perlin, p))
	b := newGenerated(t, 48, 12, noise.NewField(noise.Perlin, p))

	if !slices.Equal(a.Heights(), b.Heights()) {
		t.Fatal("Generate with the same seed produced different heights")
	}
	if !slices.Equal(a.Vertices(), b.Vertices()) {
		t.Fatal("Generate with the same seed produced different vertices")
	}

	// Regenerating in place must also be stable.
	before := append([]float32(nil), a.Heights()...)
	a.Generate(noise.NewField(noise.Perlin, p), testParams())
	if !slices.Equal(before, a.Heights()) {
		t.Fatal("regeneration with the same seed changed heights")
	}
	if a.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", a.Generation())
	}
}

func TestGenerateHeightsWithinRangeAndColored(t *testing.T) {
	tr := newGenerated(t, 40, 10, waveSampler{})
	p := testParams()
	for i, h := range tr.Heights() {
		if h < p.Base+p.Min || h > p.Base+p.Max {
			t.Fatalf("height[%d] = %v outside [%v,%v]", i, h, p.Min, p.Max)
		}
	}
	v := tr.Vertices()
	if v[1][0] != ScaleX || v[tr.Width()][2] != ScaleZ {
		t.Fatalf("unexpected vertex spacing: %v %v", v[1], v[tr.Width()])
	}
	// A vertex at Min height takes the low color exactly.
	if got := heightColor(p.Min, p); !got.ApproxEqual(p.Low) {
		t.Fatalf("color at min = %v, want %v", got, p.Low)
	}
	if got := heightColor(p.Max, p); !got.ApproxEqual(p.High) {
		t.Fatalf("color at max = %v, want %v", got, p.High)
	}
}

func TestHeightColorEndpointsAreExact(t *testing.T) {
	p := HeightParams{
		Min:  10,
		Max:  110,
		Low:  mgl32.Vec3{0.5, 0.35, 0.15},
		High: mgl32.Vec3{0.2, 0.5, 0.2},
	}
	if got := heightColor(p.Min, p); got != p.Low {
		t.Fatalf("color at min = %v, want exactly %v", got, p.Low)
	}
	if got := heightColor(p.Max, p); got != p.High {
		t.Fatalf("color at max = %v, want exactly %v", got, p.High)
	}
	if got := heightColor(p.Max+50, p); got != p.High {
		t.Fatalf("color above max = %v, want clamp to %v", got, p.High)
	}
}

func TestIndicesWinding(t *testing.T) {
	tr, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{0, 3, 1, 1, 3, 4, 1, 4, 2, 2, 4, 5}
	if !slices.Equal(tr.Indices(), want) {
		t.Fatalf("indices = %v, want %v", tr.Indices(), want)
	}
}

func TestNormalsFlatGridPointUp(t *testing.T) {
	tr, err := New(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	tr.Generate(constSampler(0), testParams())
	for i, n := range tr.Normals() {
		if math.Abs(float64(n.Len())-1) > 1e-5 {
			t.Fatalf("normal[%d] = %v not unit length", i, n)
		}
		// The winding yields +Y facing normals for a flat grid.
		if n[1] < 0.999 {
			t.Fatalf("normal[%d] = %v, want +Y", i, n)
		}
	}
}

type constSampler float64

func (c constSampler) Sample(float64, float64) float64 { return float64(c) }

func TestHeightmapLengthAndSentinels(t *testing.T) {
	tr := newGenerated(t, 30, 5, waveSampler{})
	for _, res := range []int{1, 2, 7, 30, 50} {
		if got := len(tr.Heightmap(res)); got != res {
			t.Fatalf("len(Heightmap(%d)) = %d", res, got)
		}
	}
	for _, res := range []int{0, -3} {
		hm := tr.Heightmap(res)
		if len(hm) != 1 || hm[0] != NoTerrain {
			t.Fatalf("Heightmap(%d) = %v, want [NoTerrain]", res, hm)
		}
	}
}

func TestHeightmapFullResolutionIsColumnMinimum(t *testing.T) {
	tr := newGenerated(t, 25, 8, waveSampler{})
	hm := tr.Heightmap(tr.Width())
	for x := 0; x < tr.Width(); x++ {
		want := float32(math.MaxFloat32)
		for z := 0; z < tr.Depth(); z++ {
			if h := tr.HeightAt(x, z); h < want {
				want = h
			}
		}
		if math.Abs(float64(hm[x]-want)) > 1e-4 {
			t.Fatalf("heightmap[%d] = %v, want column min %v", x, hm[x], want)
		}
	}
}

func TestDeformRaisesCentreAndLeavesFarColumns(t *testing.T) {
	tr := newGenerated(t, 120, 6, waveSampler{})
	before := append([]float32(nil), tr.Heights()...)

	if !tr.Deform(100, 20, 5, true) {
		t.Fatal("Deform reported no columns in range")
	}

	centre := 50
	for z := 0; z < tr.Depth(); z++ {
		idx := z*tr.Width() + centre
		if tr.Heights()[idx] <= before[idx] {
			t.Fatalf("row %d centre height %v not above %v", z, tr.Heights()[idx], before[idx])
		}
		if tr.Vertices()[idx][1] != tr.Heights()[idx] {
			t.Fatalf("vertex Y not refreshed at row %d", z)
		}
		for x := 0; x < tr.Width(); x++ {
			if x >= centre-20 && x <= centre+20 {
				continue
			}
			i := z*tr.Width() + x
			if tr.Heights()[i] != before[i] {
				t.Fatalf("column %d outside radius changed: %v -> %v", x, before[i], tr.Heights()[i])
			}
		}
	}
}

func TestDeformRemoveClampsAtZero(t *testing.T) {
	tr, err := New(20, 3)
	if err != nil {
		t.Fatal(err)
	}
	tr.Generate(constSampler(-1), HeightParams{Min: 1, Max: 2})
	tr.Deform(20, 4, 50, false)
	for z := 0; z < tr.Depth(); z++ {
		if h := tr.HeightAt(10, z); h != 0 {
			t.Fatalf("height at centre row %d = %v, want 0", z, h)
		}
	}
	if tr.Deform(20, 0, 5, true) {
		t.Fatal("zero radius must be a no-op")
	}
}
