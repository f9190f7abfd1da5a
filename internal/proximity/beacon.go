package proximity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

// rotateAttempts bounds retries after a concurrent rotation by the same user.
const rotateAttempts = 2

// BeaconRegistry issues, rotates and validates ephemeral beacon tokens.
type BeaconRegistry struct {
	db       *gorm.DB
	beacons  *repository.BeaconRepository
	presence *PresenceTracker
	cap      *privilege.Capability
	opts     *Options
	log      *slog.Logger
}

// Rotate replaces the user's active beacon with a fresh token and points the
// user's presence at it.
//
// Deactivating the old beacons, inserting the new one and refreshing presence
// commit together, so no resolver ever sees two active beacons for one user.
// The unique active_owner index turns a concurrent rotation into a duplicate
// key error, which is retried.
func (r *BeaconRegistry) Rotate(ctx context.Context, userID string) (*db.Beacon, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	log := logger.FromContext(ctx, r.log)

	for attempt := 1; attempt <= rotateAttempts; attempt++ {
		beacon, err := r.rotateOnce(ctx, userID)
		if err == nil {
			r.opts.Metrics.BeaconRotations.Inc()
			log.Debug("beacon rotated", "user_id", userID, "expires_at", beacon.ExpiresAt)
			return beacon, nil
		}
		if !repository.IsDuplicate(err) {
			return nil, fmt.Errorf("rotate beacon: %w", err)
		}
		log.Debug("concurrent rotation, retrying", "user_id", userID, "attempt", attempt)
	}
	return nil, fmt.Errorf("rotate beacon: %w", errConflict)
}

func (r *BeaconRegistry) rotateOnce(ctx context.Context, userID string) (*db.Beacon, error) {
	token, err := newBeaconToken()
	if err != nil {
		return nil, err
	}
	now := r.opts.now()
	owner := userID
	beacon := &db.Beacon{
		ID:          uuid.NewString(),
		UserID:      userID,
		BeaconID:    token,
		IsActive:    true,
		ActiveOwner: &owner,
		ExpiresAt:   now.Add(r.opts.BeaconTTL),
		CreatedAt:   now,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		beacons := r.beacons.WithTx(tx)
		if _, err := beacons.DeactivateForUser(ctx, userID); err != nil {
			return err
		}
		if err := beacons.Insert(ctx, beacon); err != nil {
			return err
		}
		_, err := r.presence.upsert(ctx, tx, userID, token, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return beacon, nil
}

// Validate resolves a token to its beacon. A beacon is valid only while it is
// flagged active and its expiry is still in the future; the sweep flipping the
// flag may lag behind.
func (r *BeaconRegistry) Validate(ctx context.Context, token string) (*db.Beacon, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	beacon, err := r.beacons.FindValid(ctx, r.cap, token, r.opts.now())
	if repository.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("validate beacon: %w", err)
	}
	return beacon, nil
}

// Current returns the caller's own valid beacon, or ErrNotFound when the caller
// has to rotate first.
func (r *BeaconRegistry) Current(ctx context.Context, userID string) (*db.Beacon, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	beacon, err := r.beacons.FindActiveForUser(ctx, userID, r.opts.now())
	if repository.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("current beacon: %w", err)
	}
	return beacon, nil
}
