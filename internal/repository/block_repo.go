package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
)

// BlockRepository provides data access methods for the Block model.
type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

func (r *BlockRepository) WithTx(tx *gorm.DB) *BlockRepository {
	return &BlockRepository{db: tx}
}

// Exists reports whether either user has blocked the other.
// Reads the counterpart's rows too, hence the capability.
func (r *BlockRepository) Exists(ctx context.Context, c *privilege.Capability, a, b string) (bool, error) {
	if err := checkCap(c); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// Create records blocker -> blocked. Repeating it is a no-op.
func (r *BlockRepository) Create(ctx context.Context, blockerID, blockedID string) error {
	block := db.Block{
		ID:        uuid.NewString(),
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&block).Error
}

// Delete removes the caller's own block on blockedID.
func (r *BlockRepository) Delete(ctx context.Context, blockerID, blockedID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&db.Block{})
	return res.RowsAffected, res.Error
}
