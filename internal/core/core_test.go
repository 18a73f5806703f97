package core

import (
	"math"
	"testing"
	"time"
)

func TestFloatGridColumnMin(t *testing.T) {
	g := NewFloatGrid(3, 2)
	g.Set(1, 0, 5)
	g.Set(1, 1, 2)
	g.Set(0, 0, -1)
	if got := g.ColumnMin(1); got != 2 {
		t.Fatalf("ColumnMin(1) = %v, want 2", got)
	}
	if got := g.ColumnMin(0); got != -1 {
		t.Fatalf("ColumnMin(0) = %v, want -1", got)
	}
	if got := g.ColumnMin(3); got != math.MaxFloat32 {
		t.Fatalf("out-of-range column = %v", got)
	}
}

func TestFrameClockCapsDelta(t *testing.T) {
	now := time.Unix(100, 0)
	clock := NewFrameClock(0)
	clock.now = func() time.Time { return now }
	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("first tick = %v, want 0", dt)
	}
	now = now.Add(16 * time.Millisecond)
	if dt := clock.Tick(); math.Abs(float64(dt)-0.016) > 1e-6 {
		t.Fatalf("tick = %v, want 0.016", dt)
	}
	now = now.Add(3 * time.Second)
	if dt := clock.Tick(); dt != MaxFrameDelta {
		t.Fatalf("stalled tick = %v, want %v", dt, MaxFrameDelta)
	}
}

func TestParseNames(t *testing.T) {
	for in, want := range map[string]TimeOfDay{"dawn": Dawn, "MID_DAY": MidDay, "mid-day": MidDay, " Night ": Night} {
		got, err := ParseTimeOfDay(in)
		if err != nil || got != want {
			t.Fatalf("ParseTimeOfDay(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTimeOfDay("noon"); err == nil {
		t.Fatal("noon should not parse")
	}
	if s, err := ParseScene("Alien"); err != nil || !s.IsAlien() || s.Title() != "Alien" {
		t.Fatalf("ParseScene(Alien) = %v, %v", s, err)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
