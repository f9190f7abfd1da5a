package proximity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

// PresenceTracker records which beacon makes a user discoverable, and until when.
type PresenceTracker struct {
	db       *gorm.DB
	presence *repository.PresenceRepository
	beacons  *repository.BeaconRepository
	cap      *privilege.Capability
	opts     *Options
}

// Refresh extends the caller's presence on their current beacon without
// rotating it. token must be the caller's own valid beacon.
//
// The beacon is checked after the presence write, in the same transaction, so
// a rotation committed in between rolls the refresh back instead of pointing
// presence at a retired beacon.
func (t *PresenceTracker) Refresh(ctx context.Context, userID, token string) (*db.Presence, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	now := t.opts.now()

	var p *db.Presence
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = t.upsert(ctx, tx, userID, token, now); err != nil {
			return err
		}
		current, err := t.beacons.WithTx(tx).FindActiveForUser(ctx, userID, now)
		if err != nil {
			return err
		}
		if current.BeaconID != token {
			return ErrNotFound
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrNotFound), repository.IsNotFound(err):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("refresh presence: %w", err)
	}
	return p, nil
}

// upsert writes the presence row, inside tx when given.
func (t *PresenceTracker) upsert(ctx context.Context, tx *gorm.DB, userID, token string, now time.Time) (*db.Presence, error) {
	repo := t.presence
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	p := &db.Presence{
		UserID:     userID,
		BeaconID:   token,
		ExpiresAt:  now.Add(t.opts.PresenceTTL),
		LastSeenAt: now,
	}
	if err := repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// IsLive reports whether the user is currently discoverable: a presence row
// exists, has not expired, and its beacon still validates for that user.
func (t *PresenceTracker) IsLive(ctx context.Context, userID string) (bool, error) {
	_, live, err := t.liveBeacon(ctx, userID)
	return live, err
}

// liveOn reports whether the user is discoverable through this exact token.
func (t *PresenceTracker) liveOn(ctx context.Context, userID, token string) (bool, error) {
	current, live, err := t.liveBeacon(ctx, userID)
	if err != nil || !live {
		return false, err
	}
	return current == token, nil
}

func (t *PresenceTracker) liveBeacon(ctx context.Context, userID string) (string, bool, error) {
	now := t.opts.now()
	p, err := t.presence.Find(ctx, t.cap, userID)
	if repository.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load presence: %w", err)
	}
	if !p.ExpiresAt.After(now) {
		return "", false, nil
	}

	// re-validate instead of trusting the presence row
	b, err := t.beacons.FindValid(ctx, t.cap, p.BeaconID, now)
	if repository.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("validate presence beacon: %w", err)
	}
	if b.UserID != userID {
		return "", false, nil
	}
	return p.BeaconID, true, nil
}
