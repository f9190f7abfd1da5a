package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
)

// PresenceRepository provides data access methods for the Presence model.
type PresenceRepository struct {
	db *gorm.DB
}

func NewPresenceRepository(database *gorm.DB) *PresenceRepository {
	return &PresenceRepository{db: database}
}

func (r *PresenceRepository) WithTx(tx *gorm.DB) *PresenceRepository {
	return &PresenceRepository{db: tx}
}

// Upsert writes the single presence row of p.UserID.
//
// Behavior:
//   - If the user already has a row, beacon_id, expires_at and last_seen_at are overwritten.
//   - Otherwise a new row is inserted.
//   - user_id primary key ensures one row per user.
func (r *PresenceRepository) Upsert(ctx context.Context, p *db.Presence) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"beacon_id", "expires_at", "last_seen_at"}),
		}).
		Create(p).Error
}

// Find returns any user's presence row, expired or not.
func (r *PresenceRepository) Find(ctx context.Context, c *privilege.Capability, userID string) (*db.Presence, error) {
	if err := checkCap(c); err != nil {
		return nil, err
	}
	var p db.Presence
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteExpired removes presence rows whose expires_at has passed.
func (r *PresenceRepository) DeleteExpired(ctx context.Context, c *privilege.Capability, now time.Time) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&db.Presence{})
	return res.RowsAffected, res.Error
}
