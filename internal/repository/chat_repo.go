package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/utils/pagination"
)

// ChatRepository provides data access methods for the Chat model.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{db: database}
}

func (r *ChatRepository) WithTx(tx *gorm.DB) *ChatRepository {
	return &ChatRepository{db: tx}
}

// Create inserts a chat owned by two users. The unique wave_id index rejects a
// second chat for the same wave with gorm.ErrDuplicatedKey.
func (r *ChatRepository) Create(ctx context.Context, c *privilege.Capability, chat *db.Chat) error {
	if err := checkCap(c); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(chat).Error
}

// FindByWave returns the chat spawned by a wave, active or not.
func (r *ChatRepository) FindByWave(ctx context.Context, c *privilege.Capability, waveID string) (*db.Chat, error) {
	if err := checkCap(c); err != nil {
		return nil, err
	}
	var chat db.Chat
	if err := r.db.WithContext(ctx).Where("wave_id = ?", waveID).Take(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListActive returns the caller's active, unexpired chats.
//
// Behavior:
//   - Only chats where the caller is user1 or user2.
//   - Ordered by started_at DESC, id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListActive(ctx, "u-42", time.Now(), nil, 20)
func (r *ChatRepository) ListActive(
	ctx context.Context,
	userID string,
	now time.Time,
	paginationToken *string,
	limit int,
) ([]db.Chat, *string, error) {
	if limit <= 0 {
		return nil, nil, ErrInvalidLimit
	}
	var chats []db.Chat

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Chat{}).
		Where("(user1_id = ? OR user2_id = ?)", userID, userID).
		Where("is_active = ? AND expires_at > ?", true, now).
		Order("started_at DESC, id DESC").
		Limit(limit + 1)

	// apply cursor
	if cursor.ID != "" && cursor.UnixMilli > 0 {
		ts := time.UnixMilli(cursor.UnixMilli).UTC()
		query = query.Where(
			"(started_at < ? OR (started_at = ? AND id < ?))",
			ts, ts, cursor.ID,
		)
	}

	if err := query.Find(&chats).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(chats) > limit {
		last := chats[limit-1]
		token, err := pagination.Encode(pagination.Cursor{
			ID:        last.ID,
			UnixMilli: last.StartedAt.UnixMilli(),
		})
		if err != nil {
			return nil, nil, err
		}
		nextToken = &token
		chats = chats[:limit]
	}

	return chats, nextToken, nil
}

// DeactivateExpired is the sweep's bulk update for chats past expires_at.
func (r *ChatRepository) DeactivateExpired(ctx context.Context, c *privilege.Capability, now time.Time) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Chat{}).
		Where("is_active = ? AND expires_at < ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// DeactivateForPair closes any active chat between two users.
func (r *ChatRepository) DeactivateForPair(ctx context.Context, c *privilege.Capability, a, b string) (int64, error) {
	if err := checkCap(c); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Model(&db.Chat{}).
		Where("is_active = ?", true).
		Where("((user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?))", a, b, b, a).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
