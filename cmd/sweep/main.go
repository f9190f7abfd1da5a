// Command sweep runs the cleanup sweep directly against the database.
//
// By default it runs one pass and exits, which suits an external timer
// (cron, Kubernetes CronJob). With --loop it keeps running passes every
// SWEEP_INTERVAL, or every --interval when given.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/oggyb/waveos/internal/config"
	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/proximity"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file; env vars override it")
	loop := flag.Bool("loop", false, "keep sweeping instead of running once")
	interval := flag.Duration("interval", 0, "sweep interval when looping (default SWEEP_INTERVAL)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.InitFromConfig(cfg)
	log := logger.With("component", "sweep")

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	sweeper := proximity.NewSweeper(database, proximity.Options{
		PendingTTL: cfg.Wave.PendingTTL,
		Logger:     log,
		Metrics:    metrics.New(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	every := cfg.Wave.SweepInterval
	if flag.CommandLine.Changed("interval") {
		every = *interval
		*loop = true
	}

	if !*loop || every <= 0 {
		if _, err := sweeper.Sweep(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	log.Info("sweeping periodically", "interval", every.String())
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		// failures are logged per action; the next tick catches up
		_, _ = sweeper.Sweep(ctx)
		select {
		case <-ctx.Done():
			log.Info("sweep loop stopped")
			return
		case <-ticker.C:
		}
	}
}
