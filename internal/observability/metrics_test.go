package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSkyCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSkyCollector(reg)
	if err != nil {
		t.Fatalf("NewSkyCollector: %v", err)
	}

	c.SpawnRecorded("satellite")
	c.SpawnRecorded("satellite")
	c.PoolExhaustedRecorded("train")
	c.SetActive("shooting_star", 3)
	c.TerrainRegenerated("bottom")
	c.TransitionStarted("night")
	c.SceneReset("alien")

	if got := testutil.ToFloat64(c.Spawns.WithLabelValues("satellite")); got != 2 {
		t.Fatalf("celestial_spawns_total{satellite} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.PoolExhausted.WithLabelValues("train")); got != 1 {
		t.Fatalf("celestial_pool_exhausted_total{train} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Active.WithLabelValues("shooting_star")); got != 3 {
		t.Fatalf("celestial_active{shooting_star} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.Regenerations.WithLabelValues("bottom")); got != 1 {
		t.Fatalf("terrain_regenerations_total{bottom} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Transitions.WithLabelValues("night")); got != 1 {
		t.Fatalf("sky_transitions_total{night} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.SceneResets.WithLabelValues("alien")); got != 1 {
		t.Fatalf("scene_resets_total{alien} = %v, want 1", got)
	}
}

func TestSkyCollectorReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSkyCollector(reg)
	if err != nil {
		t.Fatalf("first NewSkyCollector: %v", err)
	}
	second, err := NewSkyCollector(reg)
	if err != nil {
		t.Fatalf("second NewSkyCollector: %v", err)
	}
	second.SpawnRecorded("train")
	if got := testutil.ToFloat64(first.Spawns.WithLabelValues("train")); got != 1 {
		t.Fatalf("shared counter = %v, want 1", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *SkyCollector
	c.SpawnRecorded("satellite")
	c.SetActive("train", 1)
	c.TerrainRegenerated("distant")
	if c.Gatherer() != prometheus.DefaultGatherer {
		t.Fatal("nil collector should fall back to the default gatherer")
	}
}

func TestCounterTotals(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSkyCollector(reg)
	if err != nil {
		t.Fatalf("NewSkyCollector: %v", err)
	}
	c.SpawnRecorded("satellite")
	c.SpawnRecorded("shooting_star")
	c.SpawnRecorded("shooting_star")

	totals, err := CounterTotals(c.Gatherer(), "celestial_spawns_total", "kind")
	if err != nil {
		t.Fatalf("CounterTotals: %v", err)
	}
	if totals["satellite"] != 1 || totals["shooting_star"] != 2 {
		t.Fatalf("totals = %v", totals)
	}

	if _, err := CounterTotals(c.Gatherer(), "celestial_active", "kind"); err != nil {
		t.Fatalf("absent gauge family should not error: %v", err)
	}
}
