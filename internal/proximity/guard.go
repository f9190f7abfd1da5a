package proximity

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

// PrivacyGuard decides whether two users may be matched or disclosed to each other.
type PrivacyGuard struct {
	db      *gorm.DB
	blocks  *repository.BlockRepository
	waves   *repository.WaveRepository
	chats   *repository.ChatRepository
	cap     *privilege.Capability
	log     *slog.Logger
	metrics *metrics.Metrics
}

// IsBlocked reports whether either user has blocked the other.
//
// It fails closed: when the lookup itself errors the pair is treated as
// blocked, so a store outage can only hide users, never reveal them.
func (g *PrivacyGuard) IsBlocked(ctx context.Context, a, b string) bool {
	blocked, err := g.blocks.Exists(ctx, g.cap, a, b)
	if err != nil {
		g.metrics.GuardFailures.Inc()
		logger.FromContext(ctx, g.log).Error("block lookup failed, denying", "err", err)
		return true
	}
	return blocked
}

// Block records that blocker no longer wants any contact with blocked. A
// pending wave between them is withdrawn and any open chat is closed.
// Blocking twice is a no-op.
func (g *PrivacyGuard) Block(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" || blockedID == "" {
		return ErrMissingUser
	}
	if blockerID == blockedID {
		return ErrSelfBlock
	}

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := g.blocks.WithTx(tx).Create(ctx, blockerID, blockedID); err != nil {
			return err
		}
		if _, err := g.waves.WithTx(tx).ExpirePendingForPair(ctx, g.cap, PairKey(blockerID, blockedID)); err != nil {
			return err
		}
		_, err := g.chats.WithTx(tx).DeactivateForPair(ctx, g.cap, blockerID, blockedID)
		return err
	})
	if err != nil {
		return fmt.Errorf("block user: %w", err)
	}
	logger.FromContext(ctx, g.log).Info("user blocked", "blocker_id", blockerID)
	return nil
}

// Unblock removes the caller's own block. It never touches a block placed by the other side.
func (g *PrivacyGuard) Unblock(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" || blockedID == "" {
		return ErrMissingUser
	}
	if _, err := g.blocks.Delete(ctx, blockerID, blockedID); err != nil {
		return fmt.Errorf("unblock user: %w", err)
	}
	return nil
}
