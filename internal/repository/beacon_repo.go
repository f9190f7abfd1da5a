package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
)

// BeaconRepository provides data access methods for the Beacon model.
type BeaconRepository struct {
	db *gorm.DB
}

// NewBeaconRepository creates a new repository bound to the given DB connection.
func NewBeaconRepository(database *gorm.DB) *BeaconRepository {
	return &BeaconRepository{db: database}
}

// WithTx returns a copy bound to tx.
func (r *BeaconRepository) WithTx(tx *gorm.DB) *BeaconRepository {
	return &BeaconRepository{db: tx}
}

// DeactivateForUser flags every active beacon of userID inactive and releases
// its active_owner slot. Own-scope write.
func (r *BeaconRepository) DeactivateForUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Beacon{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{"is_active": false, "active_owner": nil})
	return res.RowsAffected, res.Error
}

// Insert stores a new beacon. A second active beacon for the same user fails
// with gorm.ErrDuplicatedKey on active_owner.
func (r *BeaconRepository) Insert(ctx context.Context, b *db.Beacon) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindValid resolves a token to its beacon if it is active and not yet expired.
//
// Behavior:
//   - Both is_active and expires_at are checked; the sweep lags behind expiry.
//   - Returns gorm.ErrRecordNotFound for unknown, inactive and expired tokens alike.
//   - Reads another user's row, so it needs the service capability.
func (r *BeaconRepository) FindValid(
	ctx context.Context,
	c *privilege.Capability,
	token string,
	now time.Time,
) (*db.Beacon, error) {
	if err := checkCap(c); err != nil {
		return nil, err
	}
	var b db.Beacon
	err := r.db.WithContext(ctx).
		Where("beacon_id = ? AND is_active = ? AND expires_at > ?", token, true, now).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindActiveForUser returns the caller's own valid beacon.
func (r *BeaconRepository) FindActiveForUser(ctx context.Context, userID string, now time.Time) (*db.Beacon, error) {
	var b db.Beacon
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeactivateExpired is the sweep's bulk update for beacons past expires_at.
func (r *BeaconRepository) DeactivateExpired(ctx context.Context, c *privilege.Capability, now time.Time) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Beacon{}).
		Where("is_active = ? AND expires_at < ?", true, now).
		Updates(map[string]any{"is_active": false, "active_owner": nil})
	return res.RowsAffected, res.Error
}
