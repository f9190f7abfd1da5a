package proximity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

// signalAttempts bounds how often the read-decide-write sequence is re-run
// after losing a race (duplicate insert, lost promotion, stale wave expired).
const signalAttempts = 3

// Signal outcomes, also used as metric labels.
const (
	OutcomeCreated  = "created"
	OutcomeRepeated = "repeated"
	OutcomeMutual   = "mutual"
	OutcomeExisting = "existing"
)

// SignalResult is the wave after a signal, plus the chat when the pair is mutual
// and the chat is still open.
type SignalResult struct {
	Wave    *db.Wave
	Chat    *db.Chat
	Outcome string
}

// PublicProfile is the restricted field set disclosed after a mutual wave.
type PublicProfile struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
}

// Resolution answers "who is behind this beacon". User stays nil unless both
// sides have waved at each other.
type Resolution struct {
	Nearby bool
	User   *PublicProfile
}

// WaveCoordinator runs the wave state machine:
//
//	NONE -> PENDING -> MUTUAL
//	PENDING -> EXPIRED (after the pending window)
//
// MUTUAL is terminal for the wave; its chat expires on its own.
type WaveCoordinator struct {
	db       *gorm.DB
	waves    *repository.WaveRepository
	profiles *repository.ProfileRepository
	guard    *PrivacyGuard
	beacons  *BeaconRegistry
	presence *PresenceTracker
	chats    *ChatSessions
	cap      *privilege.Capability
	opts     *Options
	log      *slog.Logger
}

// Signal records initiatorID's interest in receiverID.
//
// Behavior:
//   - No live wave for the pair: a pending wave is created.
//   - Pending wave and the caller is its receiver: the wave becomes mutual and
//     exactly one chat is opened.
//   - Pending wave and the caller is its initiator: returned unchanged.
//   - Mutual wave: returned with its chat while that chat is open.
//
// Blocked pairs get ErrNotFound, the same answer as an unknown user.
func (c *WaveCoordinator) Signal(ctx context.Context, initiatorID, receiverID string) (*SignalResult, error) {
	if initiatorID == "" {
		return nil, ErrMissingUser
	}
	if receiverID == "" {
		return nil, ErrMissingReceiver
	}
	if initiatorID == receiverID {
		return nil, ErrSelfWave
	}
	if c.guard.IsBlocked(ctx, initiatorID, receiverID) {
		return nil, ErrNotFound
	}

	log := logger.FromContext(ctx, c.log)
	key := PairKey(initiatorID, receiverID)

	for attempt := 1; attempt <= signalAttempts; attempt++ {
		res, err := c.signalOnce(ctx, initiatorID, receiverID, key)
		if errors.Is(err, errConflict) {
			c.opts.Metrics.SignalConflicts.Inc()
			log.Debug("wave changed underneath, re-reading", "pair", key, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}
		c.opts.Metrics.Signals.WithLabelValues(res.Outcome).Inc()
		log.Debug("wave signal", "wave_id", res.Wave.ID, "outcome", res.Outcome)
		return res, nil
	}
	return nil, fmt.Errorf("signal wave: %w", errConflict)
}

func (c *WaveCoordinator) signalOnce(ctx context.Context, callerID, counterpartID, key string) (*SignalResult, error) {
	now := c.opts.now()

	wave, err := c.waves.FindLive(ctx, c.cap, key)
	if repository.IsNotFound(err) {
		return c.create(ctx, callerID, counterpartID, key, now)
	}
	if err != nil {
		return nil, fmt.Errorf("find wave: %w", err)
	}

	switch {
	case wave.Status == db.WaveStatusMutual:
		chat, err := c.chats.forMutual(ctx, wave, now)
		if err != nil {
			return nil, err
		}
		return &SignalResult{Wave: wave, Chat: chat, Outcome: OutcomeExisting}, nil

	case c.isStale(wave, now):
		// the sweep has not caught up yet; expire it here and start over
		if _, err := c.waves.ExpireIfStale(ctx, c.cap, wave.ID, now.Add(-c.opts.PendingTTL)); err != nil {
			return nil, fmt.Errorf("expire stale wave: %w", err)
		}
		return nil, errConflict

	case wave.ReceiverID == callerID:
		return c.promote(ctx, wave, now)

	default:
		return &SignalResult{Wave: wave, Outcome: OutcomeRepeated}, nil
	}
}

func (c *WaveCoordinator) isStale(wave *db.Wave, now time.Time) bool {
	return wave.Status == db.WaveStatusPending && wave.CreatedAt.Before(now.Add(-c.opts.PendingTTL))
}

func (c *WaveCoordinator) create(ctx context.Context, initiatorID, receiverID, key string, now time.Time) (*SignalResult, error) {
	live := key
	wave := &db.Wave{
		ID:          uuid.NewString(),
		InitiatorID: initiatorID,
		ReceiverID:  receiverID,
		PairKey:     key,
		LiveKey:     &live,
		Status:      db.WaveStatusPending,
		CreatedAt:   now,
	}
	if err := c.waves.Insert(ctx, c.cap, wave); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errConflict
		}
		return nil, fmt.Errorf("create wave: %w", err)
	}
	return &SignalResult{Wave: wave, Outcome: OutcomeCreated}, nil
}

// promote flips a pending wave to mutual and opens its chat in one transaction.
// The status check in the update is the compare-and-swap: only one caller can win it.
func (c *WaveCoordinator) promote(ctx context.Context, wave *db.Wave, now time.Time) (*SignalResult, error) {
	var chat *db.Chat
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		won, err := c.waves.WithTx(tx).Promote(ctx, c.cap, wave.ID, now)
		if err != nil {
			return err
		}
		if !won {
			return errConflict
		}
		chat, err = c.chats.open(ctx, tx, wave, now)
		return err
	})
	switch {
	case errors.Is(err, errConflict), repository.IsDuplicate(err):
		return nil, errConflict
	case err != nil:
		return nil, fmt.Errorf("promote wave: %w", err)
	}

	c.opts.Metrics.ChatsOpened.Inc()

	promoted := *wave
	promoted.Status = db.WaveStatusMutual
	promoted.MutualAt = &now
	logger.FromContext(ctx, c.log).Info("wave became mutual", "wave_id", wave.ID, "chat_id", chat.ID)
	return &SignalResult{Wave: &promoted, Chat: chat, Outcome: OutcomeMutual}, nil
}

// Resolve tells callerID what may be disclosed about the owner of a scanned beacon.
//
// Behavior:
//   - Unknown, inactive, expired or stale beacons: ErrNotFound.
//   - Either side blocked the other: ErrNotFound, indistinguishable from the above.
//   - No mutual wave: Nearby only, no identity.
//   - Mutual wave: Nearby plus the owner's public profile, if that profile is active.
func (c *WaveCoordinator) Resolve(ctx context.Context, callerID, token string) (*Resolution, error) {
	if callerID == "" {
		return nil, ErrMissingUser
	}
	if token == "" {
		return nil, ErrMissingBeacon
	}

	res, err := c.resolve(ctx, callerID, token)
	switch {
	case errors.Is(err, ErrNotFound):
		c.opts.Metrics.Resolutions.WithLabelValues("not_found").Inc()
	case err != nil:
	case res.User != nil:
		c.opts.Metrics.Resolutions.WithLabelValues("disclosed").Inc()
	default:
		c.opts.Metrics.Resolutions.WithLabelValues("hidden").Inc()
	}
	return res, err
}

func (c *WaveCoordinator) resolve(ctx context.Context, callerID, token string) (*Resolution, error) {
	beacon, err := c.beacons.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	targetID := beacon.UserID

	live, err := c.presence.liveOn(ctx, targetID, token)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrNotFound
	}

	if c.guard.IsBlocked(ctx, callerID, targetID) {
		return nil, ErrNotFound
	}

	mutual, err := c.isMutual(ctx, callerID, targetID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return &Resolution{Nearby: true}, nil
	}

	profile, err := c.profiles.FindPublic(ctx, c.cap, targetID)
	if repository.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &Resolution{
		Nearby: true,
		User: &PublicProfile{
			ID:          profile.ID,
			Username:    profile.Username,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
		},
	}, nil
}

func (c *WaveCoordinator) isMutual(ctx context.Context, a, b string) (bool, error) {
	if a == b {
		return false, nil
	}
	wave, err := c.waves.FindLive(ctx, c.cap, PairKey(a, b))
	if repository.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find wave: %w", err)
	}
	return wave.Status == db.WaveStatusMutual, nil
}
