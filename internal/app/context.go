package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/cache"
	"github.com/oggyb/waveos/internal/config"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/proximity"
)

// AppContext holds shared dependencies (DB, Redis, Logger, the handshake core, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Core       *proximity.Core
	Sessions   *auth.SessionVerifier
	Scheduler  *auth.SchedulerCheck

	// Now is the request clock. Tests swap it together with the core's.
	Now func() time.Time
}

// Option tweaks an AppContext under construction.
type Option func(*AppContext, *proximity.Options)

// WithClock replaces time.Now for the core and the request layer.
func WithClock(now func() time.Time) Option {
	return func(a *AppContext, o *proximity.Options) {
		a.Now = now
		o.Now = now
	}
}

// New creates a new AppContext and wires the handshake core over db.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *cache.RedisCache,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...Option,
) (*AppContext, error) {
	sessions, err := auth.NewSessionVerifier(cfg.Auth.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("init sessions: %w", err)
	}

	a := &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Metrics:    m,
		Sessions:   sessions,
		Scheduler:  auth.NewSchedulerCheck(cfg.Auth.SchedulerKeyHash),
		Now:        time.Now,
	}
	coreOpts := proximity.Options{
		BeaconTTL:   cfg.Wave.BeaconTTL,
		PresenceTTL: cfg.Wave.PresenceTTL,
		ChatTTL:     cfg.Wave.ChatTTL,
		PendingTTL:  cfg.Wave.PendingTTL,
		Logger:      logger,
		Metrics:     m,
	}
	for _, opt := range opts {
		opt(a, &coreOpts)
	}
	a.Core = proximity.New(db, coreOpts)
	return a, nil
}
