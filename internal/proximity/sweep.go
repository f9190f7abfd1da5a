package proximity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

// Sweep action names, also used as metric labels.
const (
	ActionPresence = "presence"
	ActionBeacons  = "beacons"
	ActionChats    = "chats"
	ActionWaves    = "waves"
)

// SweepReport counts what one pass expired.
type SweepReport struct {
	CleanedAt          time.Time
	PresenceDeleted    int64
	BeaconsDeactivated int64
	ChatsDeactivated   int64
	WavesExpired       int64
}

// Sweeper expires presence, beacons, chats and abandoned waves.
//
// Each action is one conditional bulk statement keyed on "already expired",
// so a pass is idempotent, may overlap with another pass or with live traffic,
// and a skipped pass is simply caught up by the next one.
type Sweeper struct {
	presence *repository.PresenceRepository
	beacons  *repository.BeaconRepository
	chats    *repository.ChatRepository
	waves    *repository.WaveRepository
	cap      *privilege.Capability
	opts     *Options
	log      *slog.Logger
}

// NewSweeper builds a standalone sweeper, e.g. for the sweep command.
func NewSweeper(database *gorm.DB, opts Options) *Sweeper {
	opts.normalize()
	return &Sweeper{
		presence: repository.NewPresenceRepository(database),
		beacons:  repository.NewBeaconRepository(database),
		chats:    repository.NewChatRepository(database),
		waves:    repository.NewWaveRepository(database),
		cap:      privilege.Grant("cleanup-sweep", opts.Logger),
		opts:     &opts,
		log:      opts.Logger.With("component", "sweeper"),
	}
}

type sweepAction struct {
	name string
	run  func(ctx context.Context, now time.Time) (int64, error)
	dst  *int64
}

// Sweep runs all four actions. A failing action is logged and reported in the
// joined error but never stops the others; the report holds what did succeed.
func (s *Sweeper) Sweep(ctx context.Context) (*SweepReport, error) {
	start := time.Now()
	now := s.opts.now()
	report := &SweepReport{CleanedAt: now}
	log := logger.FromContext(ctx, s.log)

	actions := []sweepAction{
		{ActionPresence, func(ctx context.Context, now time.Time) (int64, error) {
			return s.presence.DeleteExpired(ctx, s.cap, now)
		}, &report.PresenceDeleted},
		{ActionBeacons, func(ctx context.Context, now time.Time) (int64, error) {
			return s.beacons.DeactivateExpired(ctx, s.cap, now)
		}, &report.BeaconsDeactivated},
		{ActionChats, func(ctx context.Context, now time.Time) (int64, error) {
			return s.chats.DeactivateExpired(ctx, s.cap, now)
		}, &report.ChatsDeactivated},
		{ActionWaves, func(ctx context.Context, now time.Time) (int64, error) {
			return s.waves.ExpirePendingBefore(ctx, s.cap, now.Add(-s.opts.PendingTTL))
		}, &report.WavesExpired},
	}

	var errs []error
	for _, a := range actions {
		n, err := a.run(ctx, now)
		if err != nil {
			s.opts.Metrics.SweepErrors.WithLabelValues(a.name).Inc()
			log.Error("sweep action failed", "action", a.name, "err", err)
			errs = append(errs, fmt.Errorf("sweep %s: %w", a.name, err))
			continue
		}
		*a.dst = n
		s.opts.Metrics.SweepRows.WithLabelValues(a.name).Add(float64(n))
	}
	s.opts.Metrics.SweepDuration.Observe(time.Since(start).Seconds())

	log.Info("sweep finished",
		"presence_deleted", report.PresenceDeleted,
		"beacons_deactivated", report.BeaconsDeactivated,
		"chats_deactivated", report.ChatsDeactivated,
		"waves_expired", report.WavesExpired,
		"failed_actions", len(errs),
		logger.Since(start),
	)
	return report, errors.Join(errs...)
}
