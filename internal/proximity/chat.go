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
	"github.com/oggyb/waveos/internal/utils/pagination"
)

// ChatSessions manages the time-boxed channels unlocked by mutual waves.
// There is no public create path: chats only come from WaveCoordinator.
type ChatSessions struct {
	db    *gorm.DB
	chats *repository.ChatRepository
	cap   *privilege.Capability
	opts  *Options
	log   *slog.Logger
}

// open creates the chat for a wave that just became mutual. Runs inside the
// promotion transaction when tx is set; callers count it once committed.
func (s *ChatSessions) open(ctx context.Context, tx *gorm.DB, wave *db.Wave, now time.Time) (*db.Chat, error) {
	repo := s.chats
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	chat := &db.Chat{
		ID:        uuid.NewString(),
		WaveID:    wave.ID,
		User1ID:   wave.InitiatorID,
		User2ID:   wave.ReceiverID,
		StartedAt: now,
		ExpiresAt: now.Add(s.opts.ChatTTL),
		IsActive:  true,
	}
	if err := repo.Create(ctx, s.cap, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// forMutual returns the open chat of a mutual wave.
//
// A mutual wave whose chat already ran out yields no chat. A mutual wave with
// no chat row at all is a broken invariant: it is logged and the chat is
// recreated.
func (s *ChatSessions) forMutual(ctx context.Context, wave *db.Wave, now time.Time) (*db.Chat, error) {
	chat, err := s.chats.FindByWave(ctx, s.cap, wave.ID)
	if err == nil {
		return openOrNil(chat, now), nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("load chat: %w", err)
	}

	logger.FromContext(ctx, s.log).Error("mutual wave has no chat, recreating", "wave_id", wave.ID)
	s.opts.Metrics.ChatsRepaired.Inc()

	chat, err = s.open(ctx, nil, wave, now)
	if repository.IsDuplicate(err) {
		// repaired concurrently by the other party
		chat, err = s.chats.FindByWave(ctx, s.cap, wave.ID)
		if err != nil {
			return nil, fmt.Errorf("reload chat: %w", err)
		}
		return openOrNil(chat, now), nil
	}
	if err != nil {
		return nil, fmt.Errorf("repair chat: %w", err)
	}
	s.opts.Metrics.ChatsOpened.Inc()
	return chat, nil
}

func openOrNil(chat *db.Chat, now time.Time) *db.Chat {
	if chat.IsActive && chat.ExpiresAt.After(now) {
		return chat
	}
	return nil
}

// ForWave returns the wave's chat while it is still open.
func (s *ChatSessions) ForWave(ctx context.Context, waveID string) (*db.Chat, error) {
	chat, err := s.chats.FindByWave(ctx, s.cap, waveID)
	if repository.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load chat: %w", err)
	}
	if openOrNil(chat, s.opts.now()) == nil {
		return nil, ErrNotFound
	}
	return chat, nil
}

// ListActive pages through the caller's open chats, newest first.
func (s *ChatSessions) ListActive(ctx context.Context, userID string, token *string, limit int) ([]db.Chat, *string, error) {
	if userID == "" {
		return nil, nil, ErrMissingUser
	}
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: page size must be positive", ErrInvalidArgument)
	}
	chats, next, err := s.chats.ListActive(ctx, userID, s.opts.now(), token, limit)
	if errors.Is(err, pagination.ErrInvalidToken) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, next, nil
}
