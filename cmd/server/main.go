package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/oggyb/waveos/internal/app"
	"github.com/oggyb/waveos/internal/cache"
	"github.com/oggyb/waveos/internal/config"
	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/server"
	"github.com/oggyb/waveos/internal/service/wave"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file; env vars override it")
	seed := flag.Bool("seed", false, "reset and seed demo profiles on start (development only)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}

	appCtx, err := app.New(cfg, database, redisCache, log, metrics.New())
	if err != nil {
		log.Error("failed to init app", "err", err)
		os.Exit(1)
	}

	if *seed || cfg.App.ENV == "development" {
		if _, err := db.SeedTestData(database, 10); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		wave.NewRegistrar(appCtx),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.StartGRPCServer(gctx, appCtx, registrars...) })
	g.Go(func() error { return server.StartMetricsServer(gctx, appCtx) })

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
