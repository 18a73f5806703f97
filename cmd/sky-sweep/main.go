package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"

	"nightsky/internal/app"
	"nightsky/internal/celestial"
	"nightsky/internal/logging"
	"nightsky/internal/observability"
	"nightsky/internal/world"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	seedStart := flag.Int64("seed", 1337, "first seed of the sweep")
	count := flag.Int("count", 8, "number of consecutive seeds to simulate")
	seconds := flag.Float64("seconds", 300, "simulated night length per seed")
	dt := flag.Float64("dt", 1.0/60, "fixed step in seconds")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel worlds")
	scene := flag.String("scene", "summer", "scene: summer, fall, winter, spring or alien")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default LOG_LEVEL)")
	var overrides app.KeyValues
	flag.Var(&overrides, "set", "world parameter override in key=value form (repeatable)")
	flag.Parse()

	log := logging.NewFromEnv(*logLevel)

	settings := overrides.Map()
	if _, ok := settings["scene"]; !ok {
		settings["scene"] = *scene
	}
	cfg := world.FromMap(settings)

	reg := prometheus.NewRegistry()
	collector, err := observability.NewSkyCollector(reg)
	if err != nil {
		log.Error("metrics registration failed", logging.Err(err))
		os.Exit(1)
	}

	seeds := make([]int64, max(*count, 0))
	for i := range seeds {
		seeds[i] = *seedStart + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("sweep started",
		logging.String("scene", cfg.Scene.String()),
		logging.Int("seeds", len(seeds)),
		logging.Float("seconds", *seconds),
		logging.Int("workers", *workers))

	results, err := world.SweepNights(ctx, cfg, seeds, float32(*seconds), float32(*dt), *workers, collector)
	if err != nil {
		log.Error("sweep failed", logging.Err(err))
		os.Exit(1)
	}

	for _, res := range results {
		first := "none"
		if res.FirstSatellite >= 0 {
			first = fmt.Sprintf("%.2fs", res.FirstSatellite)
		}
		fmt.Printf("seed %d: satellites %d, trains %d, shooting stars %d, exhausted %d, first satellite %s, peak %d/%d\n",
			res.Seed,
			res.Spawns[celestial.KindSatellite], res.Spawns[celestial.KindTrain], res.Spawns[celestial.KindShootingStar],
			sumCounts(res.PoolExhausted), first, res.PeakSatellites, res.PeakTrains)
		if len(res.Names) > 0 {
			fmt.Printf("  names: %s\n", strings.Join(res.Names, ", "))
		}
	}

	fmt.Println("\nTotals:")
	printCounter(reg, "celestial_spawns_total", "kind")
	printCounter(reg, "celestial_pool_exhausted_total", "kind")
	printCounter(reg, "terrain_regenerations_total", "tier")
}

func sumCounts(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func printCounter(g prometheus.Gatherer, name, label string) {
	totals, err := observability.CounterTotals(g, name, label)
	if err != nil {
		fmt.Printf("  %s: %v\n", name, err)
		return
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("  %s{%s=%q} %.0f\n", name, label, k, totals[k])
	}
}
