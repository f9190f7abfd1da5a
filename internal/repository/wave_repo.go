package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
)

// WaveRepository provides data access methods for the Wave model.
// Every method touches a row owned jointly by two users, so all of them
// require the service capability.
type WaveRepository struct {
	db *gorm.DB
}

func NewWaveRepository(database *gorm.DB) *WaveRepository {
	return &WaveRepository{db: database}
}

func (r *WaveRepository) WithTx(tx *gorm.DB) *WaveRepository {
	return &WaveRepository{db: tx}
}

// FindLive returns the pending or mutual wave for a canonical pair key.
func (r *WaveRepository) FindLive(ctx context.Context, c *privilege.Capability, pairKey string) (*db.Wave, error) {
	if err := checkCap(c); err != nil {
		return nil, err
	}
	var w db.Wave
	if err := r.db.WithContext(ctx).Where("live_key = ?", pairKey).Take(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// Insert creates a wave. When another live wave already holds the pair key the
// unique index rejects it with gorm.ErrDuplicatedKey.
func (r *WaveRepository) Insert(ctx context.Context, c *privilege.Capability, w *db.Wave) error {
	if err := checkCap(c); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(w).Error
}

// Promote moves a wave from pending to mutual.
//
// Behavior:
//   - Conditional update: only a row still in "pending" is changed.
//   - Returns false when the row was already promoted or expired by someone else.
func (r *WaveRepository) Promote(ctx context.Context, c *privilege.Capability, id string, at time.Time) (bool, error) {
	if err := checkCap(c); err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("id = ? AND status = ?", id, db.WaveStatusPending).
		Updates(map[string]any{"status": db.WaveStatusMutual, "mutual_at": at})
	return res.RowsAffected == 1, res.Error
}

// ExpireIfStale expires a single pending wave created before cutoff.
// Returns false if the row is no longer pending or is still fresh.
func (r *WaveRepository) ExpireIfStale(ctx context.Context, c *privilege.Capability, id string, cutoff time.Time) (bool, error) {
	if err := checkCap(c); err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("id = ? AND status = ? AND created_at < ?", id, db.WaveStatusPending, cutoff).
		Updates(expiredWave())
	return res.RowsAffected == 1, res.Error
}

// ExpirePendingBefore is the sweep's bulk update for abandoned waves.
func (r *WaveRepository) ExpirePendingBefore(ctx context.Context, c *privilege.Capability, cutoff time.Time) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("status = ? AND created_at < ?", db.WaveStatusPending, cutoff).
		Updates(expiredWave())
	return res.RowsAffected, res.Error
}

// ExpirePendingForPair withdraws a pending wave between two users, used when one blocks the other.
func (r *WaveRepository) ExpirePendingForPair(ctx context.Context, c *privilege.Capability, pairKey string) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("pair_key = ? AND status = ?", pairKey, db.WaveStatusPending).
		Updates(expiredWave())
	return res.RowsAffected, res.Error
}

// expiredWave releases live_key so the pair can wave again later.
func expiredWave() map[string]any {
	return map[string]any{"status": db.WaveStatusExpired, "live_key": nil}
}
