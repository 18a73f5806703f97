package world

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nightsky/internal/celestial"
	"nightsky/internal/core"
	"nightsky/internal/logging"

	"golang.org/x/sync/errgroup"
)

// NightResult summarises one simulated night.
type NightResult struct {
	Seed    int64
	Seconds float32

	Spawns        map[string]int
	PoolExhausted map[string]int

	// Names lists every satellite name that appeared, in spawn order.
	Names []string
	// FirstSatellite is the simulated time of the first satellite spawn, or
	// -1 when none appeared.
	FirstSatellite float32

	PeakSatellites int
	PeakTrains     int
}

// nightRecorder counts scheduler events for one world and forwards them to
// the shared metrics.
type nightRecorder struct {
	Metrics
	spawns    map[string]int
	exhausted map[string]int
}

func (r *nightRecorder) SpawnRecorded(kind string) {
	r.spawns[kind]++
	r.Metrics.SpawnRecorded(kind)
}

func (r *nightRecorder) PoolExhaustedRecorded(kind string) {
	r.exhausted[kind]++
	r.Metrics.PoolExhaustedRecorded(kind)
}

// RunNight builds a world from cfg with its time set to night and steps it
// for seconds of simulated time at dt.
func RunNight(cfg Config, seconds, dt float32, metrics Metrics) (NightResult, error) {
	if dt <= 0 {
		dt = 0.016
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	cfg.TimeOfDay = core.Night
	rec := &nightRecorder{Metrics: metrics, spawns: map[string]int{}, exhausted: map[string]int{}}
	w, err := New(cfg, nil, logging.Noop(), rec)
	if err != nil {
		return NightResult{}, err
	}

	res := NightResult{Seed: cfg.Seed, FirstSatellite: -1}
	seen := map[*celestial.Satellite]bool{}
	for w.TotalTime() < seconds {
		w.Update(dt)
		c := w.Celestial()
		for _, sat := range c.Satellites() {
			if seen[sat] {
				continue
			}
			seen[sat] = true
			res.Names = append(res.Names, sat.Name)
			if res.FirstSatellite < 0 {
				res.FirstSatellite = w.TotalTime()
			}
		}
		res.PeakSatellites = max(res.PeakSatellites, len(c.Satellites()))
		res.PeakTrains = max(res.PeakTrains, len(c.Trains()))
	}
	res.Seconds = w.TotalTime()
	res.Spawns = rec.spawns
	res.PoolExhausted = rec.exhausted
	return res, nil
}

// SweepNights runs one night per seed on at most workers goroutines and
// returns the results ordered by seed. The first failure cancels the rest.
func SweepNights(ctx context.Context, base Config, seeds []int64, seconds, dt float32, workers int, metrics Metrics) ([]NightResult, error) {
	if workers <= 0 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	results := make([]NightResult, 0, len(seeds))
	for _, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Seed = seed
			res, err := RunNight(cfg, seconds, dt, metrics)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	return results, nil
}
