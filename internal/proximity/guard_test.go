package proximity_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/proximity"
)

func TestGuard_BlockIsSymmetric(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ids := h.addProfiles(t, "alice", "bob", "carol")
	a, b, c := ids[0], ids[1], ids[2]

	assert.False(t, h.core.Guard.IsBlocked(ctx, a, b))

	require.NoError(t, h.core.Guard.Block(ctx, a, b))
	assert.True(t, h.core.Guard.IsBlocked(ctx, a, b))
	assert.True(t, h.core.Guard.IsBlocked(ctx, b, a))
	assert.False(t, h.core.Guard.IsBlocked(ctx, a, c))

	// blocking twice is a no-op
	require.NoError(t, h.core.Guard.Block(ctx, a, b))
	var n int64
	require.NoError(t, h.db.Model(&db.Block{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// both directions are refused with the unknown-user answer
	_, err := h.core.Waves.Signal(ctx, a, b)
	assert.ErrorIs(t, err, proximity.ErrNotFound)
	_, err = h.core.Waves.Signal(ctx, b, a)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	// only the blocker can lift it
	require.NoError(t, h.core.Guard.Unblock(ctx, b, a))
	assert.True(t, h.core.Guard.IsBlocked(ctx, a, b))
	require.NoError(t, h.core.Guard.Unblock(ctx, a, b))
	assert.False(t, h.core.Guard.IsBlocked(ctx, a, b))

	res, err := h.core.Waves.Signal(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, proximity.OutcomeCreated, res.Outcome)
}

func TestGuard_BlockValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	assert.ErrorIs(t, h.core.Guard.Block(ctx, a, a), proximity.ErrSelfBlock)
	assert.ErrorIs(t, h.core.Guard.Block(ctx, a, ""), proximity.ErrMissingUser)
	assert.ErrorIs(t, h.core.Guard.Unblock(ctx, "", a), proximity.ErrMissingUser)
}

func TestGuard_BlockWithdrawsWaveAndChat(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ids := h.addProfiles(t, "alice", "bob", "carol")
	a, b, c := ids[0], ids[1], ids[2]

	// pending a -> b, mutual a <-> c
	pending, err := h.core.Waves.Signal(ctx, a, b)
	require.NoError(t, err)
	_, err = h.core.Waves.Signal(ctx, a, c)
	require.NoError(t, err)
	mutual, err := h.core.Waves.Signal(ctx, c, a)
	require.NoError(t, err)
	require.NotNil(t, mutual.Chat)

	require.NoError(t, h.core.Guard.Block(ctx, b, a))
	require.NoError(t, h.core.Guard.Block(ctx, c, a))

	var w db.Wave
	require.NoError(t, h.db.Where("id = ?", pending.Wave.ID).Take(&w).Error)
	assert.Equal(t, db.WaveStatusExpired, w.Status)
	assert.Nil(t, w.LiveKey)

	_, err = h.core.Chats.ForWave(ctx, mutual.Wave.ID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	chats, _, err := h.core.Chats.ListActive(ctx, a, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestGuard_FailsClosed(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ids := h.addProfiles(t, "alice", "bob")
	a, b := ids[0], ids[1]

	beaconB, err := h.core.Beacons.Rotate(ctx, b)
	require.NoError(t, err)

	require.NoError(t, h.db.Migrator().DropTable(&db.Block{}))

	assert.True(t, h.core.Guard.IsBlocked(ctx, a, b))

	_, err = h.core.Waves.Signal(ctx, a, b)
	assert.ErrorIs(t, err, proximity.ErrNotFound)
	_, err = h.core.Waves.Resolve(ctx, a, beaconB.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	assert.Equal(t, float64(3), testutil.ToFloat64(h.metrics.GuardFailures))
	assert.Empty(t, h.wavesForPair(t, a, b))
}
