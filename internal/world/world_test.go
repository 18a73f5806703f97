package world

import (
	"errors"
	"testing"

	"nightsky/internal/celestial"
	"nightsky/internal/core"
	"nightsky/internal/observability"
	"nightsky/internal/physics"
	"nightsky/internal/terrain"
	pcore "nightsky/pkg/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func smallConfig(extra map[string]string) Config {
	m := map[string]string{
		"terrain_width": "64",
		"bottom_depth":  "8",
		"distant_depth": "6",
		"seed":          "11",
	}
	for k, v := range extra {
		m[k] = v
	}
	return FromMap(m)
}

func newTestWorld(t *testing.T, extra map[string]string) (*World, *observability.SkyCollector) {
	t.Helper()
	metrics, err := observability.NewSkyCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewSkyCollector: %v", err)
	}
	cfg := smallConfig(extra)
	w, err := New(cfg, pcore.NewRNG(cfg.Seed), nil, metrics)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, metrics
}

func TestNewBuildsEveryTier(t *testing.T) {
	w, metrics := newTestWorld(t, nil)
	if w.Bottom().Generation() != 1 || w.Distant().Generation() != 1 {
		t.Fatalf("generations = %d/%d, want 1/1", w.Bottom().Generation(), w.Distant().Generation())
	}
	if w.Bottom().Depth() != 8 || w.Distant().Depth() != 6 {
		t.Fatal("tier depths not taken from the config")
	}
	chain := w.Boundary().Chain()
	if got := len(chain.Points()); got != physics.DefaultResolution {
		t.Fatalf("boundary has %d points, want %d", got, physics.DefaultResolution)
	}
	if got := w.Physics().ShapeCount(); got != physics.DefaultResolution-1 {
		t.Fatalf("physics space holds %d shapes, want %d", got, physics.DefaultResolution-1)
	}
	if got := testutil.ToFloat64(metrics.Regenerations.WithLabelValues("bottom")); got != 1 {
		t.Fatalf("bottom regenerations = %v, want 1", got)
	}
	if got := len(w.Celestial().Stars()); got != celestial.ForegroundStars+celestial.BackgroundStars {
		t.Fatalf("%d stars", got)
	}
}

func TestNewRejectsDegenerateTerrain(t *testing.T) {
	cfg := smallConfig(nil)
	cfg.BottomDepth = 1
	if _, err := New(cfg, nil, nil, nil); !errors.Is(err, terrain.ErrDimensions) {
		t.Fatalf("New with depth 1: err = %v, want ErrDimensions", err)
	}
}

func TestRegenerationWaitsForUpdate(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	oldChain := w.Boundary().Chain()
	oldSeed, _ := w.Seed(core.Bottom)

	w.TriggerRegeneration(core.Bottom)
	if w.Bottom().Generation() != 1 {
		t.Fatal("regeneration ran before Update")
	}
	w.Update(0.016)
	if w.Bottom().Generation() != 2 {
		t.Fatalf("bottom generation = %d after Update, want 2", w.Bottom().Generation())
	}
	if w.Distant().Generation() != 1 {
		t.Fatal("distant tier regenerated without a trigger")
	}
	if seed, _ := w.Seed(core.Bottom); seed == oldSeed {
		t.Fatal("regeneration reused the previous noise seed")
	}
	if w.Boundary().Chain() == oldChain {
		t.Fatal("boundary chain was not replaced")
	}
	if got := w.Physics().ShapeCount(); got != physics.DefaultResolution-1 {
		t.Fatalf("stale chain left in the space: %d shapes", got)
	}

	w.Update(0.016)
	if w.Bottom().Generation() != 2 {
		t.Fatal("pending flag was not cleared")
	}
}

func TestSetSceneResetsAndRegenerates(t *testing.T) {
	w, metrics := newTestWorld(t, nil)
	if w.SetScene(core.Summer) {
		t.Fatal("switching to the active scene should be a no-op")
	}
	if !w.SetScene(core.Alien) {
		t.Fatal("SetScene(alien) reported no change")
	}
	if w.Palette() != PaletteFor(core.Alien) || w.Celestial().Scene() != core.Alien {
		t.Fatal("scene switch did not reach the palette and the celestial manager")
	}
	w.Update(0.016)
	if w.Bottom().Generation() != 2 || w.Distant().Generation() != 2 {
		t.Fatalf("generations = %d/%d, want 2/2", w.Bottom().Generation(), w.Distant().Generation())
	}
	if got := testutil.ToFloat64(metrics.SceneResets.WithLabelValues("alien")); got != 1 {
		t.Fatalf("alien scene resets = %v, want 1", got)
	}
	p := w.Palette()
	for i, c := range w.Bottom().Colors() {
		for k := 0; k < 3; k++ {
			lo, hi := p.Low[k], p.High[k]
			if lo > hi {
				lo, hi = hi, lo
			}
			if c[k] < lo-1e-5 || c[k] > hi+1e-5 {
				t.Fatalf("vertex %d color %v outside the alien palette", i, c)
			}
		}
	}
}

func TestLeavingNightClearsTransientsOnNextUpdate(t *testing.T) {
	w, metrics := newTestWorld(t, map[string]string{"time": "night"})
	for i := 0; i < 70; i++ {
		w.Update(0.016)
	}
	if w.Sky().Current() != core.Night || w.StarAlpha() != 1 {
		t.Fatalf("night not committed: current %v alpha %v", w.Sky().Current(), w.StarAlpha())
	}
	if len(w.Celestial().Satellites()) == 0 {
		t.Fatal("setup: no satellite at night")
	}

	w.SetTimeOfDay(core.Dawn)
	w.Update(0.016)
	c := w.Celestial()
	if len(c.Satellites()) != 0 || len(c.Trains()) != 0 || len(c.ShootingStars()) != 0 {
		t.Fatal("transients survived the first update after leaving the night")
	}
	if w.StarAlpha() != 0 {
		t.Fatalf("star alpha = %v during the fade from night", w.StarAlpha())
	}
	if w.Sky().Current() != core.Night {
		t.Fatal("sky committed dawn before the transition finished")
	}
	if got := testutil.ToFloat64(metrics.Transitions.WithLabelValues("dawn")); got != 1 {
		t.Fatalf("dawn transitions = %v, want 1", got)
	}
}

func TestDeformRebuildsBoundary(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	before := w.Bottom().HeightAt(10, 3)
	far := w.Bottom().HeightAt(40, 3)
	oldChain := w.Boundary().Chain()

	if !w.Deform(20, 5, 5, true) {
		t.Fatal("Deform reported no columns touched")
	}
	if got := w.Bottom().HeightAt(10, 3); got <= before {
		t.Fatalf("height at the centre column = %v, want above %v", got, before)
	}
	if got := w.Bottom().HeightAt(40, 3); got != far {
		t.Fatalf("column outside the radius changed: %v -> %v", far, got)
	}
	if w.Boundary().Chain() == oldChain {
		t.Fatal("deform did not rebuild the boundary")
	}

	if !w.DeformAtScreen(core.WindowWidth/2, false) {
		t.Fatal("DeformAtScreen missed the terrain")
	}
	if w.Deform(20, 0, 5, true) {
		t.Fatal("zero radius should not deform")
	}
}

func TestSkylineFollowsDistantTier(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	d := w.Distant()
	want := d.HeightAtNormalized(0.5, d.Depth()-1)
	got, ok := w.SkylineAt(0.5)
	if !ok || got != want {
		t.Fatalf("SkylineAt(0.5) = %v, %v; want %v", got, ok, want)
	}
	if !w.SetFloatParameter("distant_y_offset", 40) {
		t.Fatal("y offset rejected")
	}
	if got, _ := w.SkylineAt(0.5); got != want+40 {
		t.Fatalf("SkylineAt with offset = %v, want %v", got, want+40)
	}
}

func TestParameterSnapshotAndSetters(t *testing.T) {
	w, _ := newTestWorld(t, map[string]string{"scene": "winter"})
	snap := w.Parameters()
	if p, ok := snap.Lookup("scene"); !ok || p.Value != "Winter" {
		t.Fatalf("scene parameter = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("bottom_octaves"); !ok || p.Value != "8" {
		t.Fatalf("bottom_octaves = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("distant_lacunarity"); !ok || p.Value != "2" {
		t.Fatalf("distant_lacunarity = %+v, %v", p, ok)
	}

	if !w.SetIntParameter("bottom_octaves", 4) {
		t.Fatal("octaves rejected")
	}
	if w.SetIntParameter("bottom_octaves", 0) || w.SetIntParameter("bottom_depth", 10) {
		t.Fatal("invalid integer update accepted")
	}
	if !w.SetFloatParameter("distant_persistence", 0.6) {
		t.Fatal("persistence rejected")
	}
	if w.SetFloatParameter("distant_min", -1) || w.SetFloatParameter("sky_speed", 1) {
		t.Fatal("invalid float update accepted")
	}
	w.Update(0.016)
	if w.Config().Bottom.Octaves != 4 || w.Bottom().Generation() != 2 || w.Distant().Generation() != 2 {
		t.Fatal("parameter changes did not regenerate their tiers")
	}
	for _, ctrl := range w.ParameterControls() {
		if _, ok := w.Parameters().Lookup(ctrl.Key); !ok {
			t.Fatalf("control %s has no snapshot value", ctrl.Key)
		}
	}

	w.ResetNoiseParams(core.Bottom)
	if w.Config().Bottom != DefaultBottomParams() {
		t.Fatal("ResetNoiseParams did not restore the defaults")
	}
}

func TestWorldIsAHeightQuery(t *testing.T) {
	w, _ := newTestWorld(t, map[string]string{"scene": "alien", "time": "night"})
	var q celestial.HeightQuery = w
	if _, ok := q.SkylineAt(0.3); !ok {
		t.Fatal("distant skyline missing")
	}
	w.Celestial().TogglePlanetNames()
	for i := 0; i < 70; i++ {
		w.Update(0.016)
	}
	if w.Labels() == nil {
		t.Fatal("no labels at night with planet names on")
	}
}
