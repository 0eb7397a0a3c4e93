//go:build ebiten

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"cgol/internal/app"
	"cgol/internal/life"
	"cgol/internal/metrics"
	"cgol/internal/pattern"
	"cgol/internal/persist"
	"cgol/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	if err := cfg.Overlay(flag.CommandLine, app.Visited(flag.CommandLine)); err != nil {
		fatal(logger, err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(logger, err)
	}
	logger = app.NewLogger(os.Stderr, cfg.Verbose)

	grid := life.New(cfg.Width, cfg.Height)
	if !pattern.Named(grid, cfg.Pattern, cfg.Seed) {
		fatal(logger, errors.Errorf("unknown pattern %q", cfg.Pattern))
	}
	ctrl := sim.New(grid, cfg.Sim(), logger)

	store, closer, err := app.OpenStore(cfg, logger)
	if err != nil {
		fatal(logger, err)
	}
	defer closer.Close()
	slots := app.WatchedSlots{Gateway: persist.NewGateway(store, logger)}

	var reloads <-chan int
	if cfg.Watch && cfg.Store == app.StoreFile {
		w, err := persist.NewWatcher(cfg.SaveDir, logger)
		if err != nil {
			fatal(logger, err)
		}
		defer w.Close()
		slots.Watcher = w
		reloads = w.Events()
	}
	ctrl.UseSlots(slots)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		ctrl.UseObserver(metrics.NewRecorder(reg))
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, logger); err != nil {
				logger.Error("metrics server stopped", slog.String("error", err.Error()))
			}
		}()
	}

	game := app.New(ctrl, cfg.Layout(), reloads, cfg.Seed)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", slog.String("error", err.Error()))
		cancel()
		closer.Close()
		os.Exit(1)
	}
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("startup failed", slog.String("error", err.Error()))
	os.Exit(1)
}
