package proximity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/proximity"
)

func TestChats_ListActivePagination(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ids := h.addProfiles(t, "alice", "bob", "carol", "dave")
	a := ids[0]

	var opened []*db.Chat
	for _, other := range ids[1:] {
		_, err := h.core.Waves.Signal(ctx, other, a)
		require.NoError(t, err)
		res, err := h.core.Waves.Signal(ctx, a, other)
		require.NoError(t, err)
		require.NotNil(t, res.Chat)
		opened = append(opened, res.Chat)
		h.clock.Advance(time.Second)
	}

	page, next, err := h.core.Chats.ListActive(ctx, a, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.Equal(t, opened[2].ID, page[0].ID, "newest first")
	assert.Equal(t, opened[1].ID, page[1].ID)

	page, next, err = h.core.Chats.ListActive(ctx, a, next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Nil(t, next)
	assert.Equal(t, opened[0].ID, page[0].ID)

	// the counterpart sees only the chat it belongs to
	page, _, err = h.core.Chats.ListActive(ctx, ids[1], nil, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, opened[0].ID, page[0].ID)

	// expired chats drop out before the sweep flips them
	h.clock.Advance(5*time.Minute - 2500*time.Millisecond)
	page, _, err = h.core.Chats.ListActive(ctx, a, nil, 10)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestChats_ListActiveBadInput(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	bad := "%%%not-a-cursor"
	_, _, err := h.core.Chats.ListActive(ctx, a, &bad, 10)
	assert.ErrorIs(t, err, proximity.ErrInvalidArgument)

	_, _, err = h.core.Chats.ListActive(ctx, "", nil, 10)
	assert.ErrorIs(t, err, proximity.ErrMissingUser)

	// with a chat present, an empty page must not index past the result
	b := h.addProfiles(t, "bob")[0]
	_, err = h.core.Waves.Signal(ctx, a, b)
	require.NoError(t, err)
	res, err := h.core.Waves.Signal(ctx, b, a)
	require.NoError(t, err)
	require.NotNil(t, res.Chat)

	for _, limit := range []int{0, -1} {
		chats, next, err := h.core.Chats.ListActive(ctx, a, nil, limit)
		assert.ErrorIs(t, err, proximity.ErrInvalidArgument, "limit %d", limit)
		assert.Nil(t, chats)
		assert.Nil(t, next)
	}
}
