package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oggyb/waveos/internal/auth"
)

func TestSessionVerifier_RoundTrip(t *testing.T) {
	v, err := auth.NewSessionVerifier("s3cret")
	require.NoError(t, err)

	now := time.Now()
	token := v.Issue("user-1", now.Add(time.Hour))

	userID, err := v.Verify(token, now)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionVerifier_Rejects(t *testing.T) {
	v, err := auth.NewSessionVerifier("s3cret")
	require.NoError(t, err)
	other, err := auth.NewSessionVerifier("other")
	require.NoError(t, err)

	now := time.Now()
	good := v.Issue("user-1", now.Add(time.Hour))

	_, err = v.Verify(v.Issue("user-1", now.Add(-time.Second)), now)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)

	_, err = v.Verify(other.Issue("user-1", now.Add(time.Hour)), now)
	assert.ErrorIs(t, err, auth.ErrTokenSignature)

	// swap the subject but keep the signature
	forged := "user-2" + good[strings.Index(good, "."):]
	_, err = v.Verify(forged, now)
	assert.ErrorIs(t, err, auth.ErrTokenSignature)

	for _, bad := range []string{"", "user-1", "user-1.abc.00", "user-1.123.zz", ".1.00"} {
		_, err = v.Verify(bad, now)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated, bad)
	}

	_, err = auth.NewSessionVerifier("  ")
	assert.Error(t, err)
}

func TestSchedulerCheck(t *testing.T) {
	hash, err := auth.HashSchedulerKey("cron-key", bcrypt.MinCost)
	require.NoError(t, err)

	check := auth.NewSchedulerCheck(hash)
	assert.NoError(t, check.Verify("cron-key"))
	assert.ErrorIs(t, check.Verify("wrong"), auth.ErrUnauthenticated)
	assert.ErrorIs(t, check.Verify(""), auth.ErrUnauthenticated)

	disabled := auth.NewSchedulerCheck("")
	assert.ErrorIs(t, disabled.Verify("cron-key"), auth.ErrUnauthenticated)
}

func TestIdentityContext(t *testing.T) {
	_, err := auth.UserFromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	ctx := auth.NewContext(context.Background(), auth.Identity{UserID: "u"})
	userID, err := auth.UserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u", userID)

	sched := auth.NewContext(context.Background(), auth.Identity{Scheduler: true})
	_, err = auth.UserFromContext(sched)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
