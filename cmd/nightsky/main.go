//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"

	"nightsky/internal/app"
	"nightsky/internal/core"
	"nightsky/internal/logging"
	"nightsky/internal/observability"
	"nightsky/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.NewFromEnv(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	collector, err := observability.NewSkyCollector(reg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, reg, logger)
	}

	wd, err := world.New(cfg.WorldConfig(), nil, logger, collector)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(wd, cfg, logger)

	ebiten.SetWindowTitle("nightsky - " + wd.Scene().Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(core.WindowWidth*cfg.Scale), int(core.WindowHeight*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", logging.Err(err))
	}
}
