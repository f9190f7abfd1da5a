package proximity_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/proximity"
)

var tokenPattern = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestRotate_IssuesSingleActiveBeacon(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	b1, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)
	assert.Regexp(t, tokenPattern, b1.BeaconID)
	assert.Equal(t, h.clock.Now().Add(time.Hour), b1.ExpiresAt)

	var p db.Presence
	require.NoError(t, h.db.Where("user_id = ?", a).Take(&p).Error)
	assert.Equal(t, b1.BeaconID, p.BeaconID)
	assert.True(t, p.ExpiresAt.Equal(h.clock.Now().Add(15*time.Minute)))

	// rotate again before presence expires
	h.clock.Advance(5 * time.Minute)
	b2, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)
	assert.NotEqual(t, b1.BeaconID, b2.BeaconID)

	active := h.activeBeacons(t, a)
	require.Len(t, active, 1)
	assert.Equal(t, b2.BeaconID, active[0].BeaconID)

	// history is kept, only flagged inactive
	var total int64
	require.NoError(t, h.db.Model(&db.Beacon{}).Where("user_id = ?", a).Count(&total).Error)
	assert.Equal(t, int64(2), total)

	require.NoError(t, h.db.Where("user_id = ?", a).Take(&p).Error)
	assert.Equal(t, b2.BeaconID, p.BeaconID)

	_, err = h.core.Beacons.Validate(ctx, b1.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)
	_, err = h.core.Beacons.Validate(ctx, b2.BeaconID)
	assert.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(h.metrics.BeaconRotations))
}

func TestRotate_ConcurrentSameUser(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	const callers = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := h.core.Beacons.Rotate(ctx, a)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	active := h.activeBeacons(t, a)
	require.Len(t, active, 1)

	var p db.Presence
	require.NoError(t, h.db.Where("user_id = ?", a).Take(&p).Error)
	assert.Equal(t, active[0].BeaconID, p.BeaconID)
}

func TestValidate_ExpiredBeforeSweep(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	b, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)

	h.clock.Advance(time.Hour + time.Second)
	_, err = h.core.Beacons.Validate(ctx, b.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	// still flagged active: the sweep has not run
	assert.Len(t, h.activeBeacons(t, a), 1)

	_, err = h.core.Beacons.Validate(ctx, "")
	assert.ErrorIs(t, err, proximity.ErrNotFound)
	_, err = h.core.Beacons.Validate(ctx, "DEADBEEFDEADBEEFDEADBEEFDEADBEEF")
	assert.ErrorIs(t, err, proximity.ErrNotFound)
}

func TestRotate_RequiresUser(t *testing.T) {
	h := newHarness(t)
	_, err := h.core.Beacons.Rotate(context.Background(), "")
	assert.ErrorIs(t, err, proximity.ErrInvalidArgument)
}

func TestPresence_RefreshAndLiveness(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ids := h.addProfiles(t, "alice", "bob")
	a, b := ids[0], ids[1]

	live, err := h.core.Presence.IsLive(ctx, a)
	require.NoError(t, err)
	assert.False(t, live, "no presence yet")

	beacon, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)

	live, err = h.core.Presence.IsLive(ctx, a)
	require.NoError(t, err)
	assert.True(t, live)

	// heartbeat extends presence without rotating
	h.clock.Advance(10 * time.Minute)
	p, err := h.core.Presence.Refresh(ctx, a, beacon.BeaconID)
	require.NoError(t, err)
	assert.True(t, p.ExpiresAt.Equal(h.clock.Now().Add(15*time.Minute)))

	h.clock.Advance(10 * time.Minute)
	live, err = h.core.Presence.IsLive(ctx, a)
	require.NoError(t, err)
	assert.True(t, live, "refreshed presence outlives the original 15 minutes")

	current, err := h.core.Beacons.Current(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, beacon.BeaconID, current.BeaconID)

	// refreshing with someone else's or a stale token is refused
	other, err := h.core.Beacons.Rotate(ctx, b)
	require.NoError(t, err)
	_, err = h.core.Presence.Refresh(ctx, a, other.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	// presence lapses
	h.clock.Advance(16 * time.Minute)
	live, err = h.core.Presence.IsLive(ctx, a)
	require.NoError(t, err)
	assert.False(t, live)

	// beacon itself lapses: presence cannot be refreshed anymore
	h.clock.Advance(time.Hour)
	_, err = h.core.Presence.Refresh(ctx, a, beacon.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)
	_, err = h.core.Beacons.Current(ctx, a)
	assert.ErrorIs(t, err, proximity.ErrNotFound)
}

// A rotation landing between the heartbeat's beacon check and its presence
// write must not leave presence on the retired beacon.
func TestPresence_RefreshRacingRotation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	old, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)
	before := h.presenceOf(t, a)

	var once sync.Once
	require.NoError(t, h.db.Callback().Create().Before("gorm:create").Register("test:retire_beacon", func(tx *gorm.DB) {
		if tx.Statement.Table != "presence" {
			return
		}
		once.Do(func() {
			_ = tx.Session(&gorm.Session{NewDB: true}).Model(&db.Beacon{}).
				Where("user_id = ? AND is_active = ?", a, true).
				Updates(map[string]any{"is_active": false, "active_owner": nil}).Error
		})
	}))

	h.clock.Advance(5 * time.Minute)
	_, err = h.core.Presence.Refresh(ctx, a, old.BeaconID)
	assert.ErrorIs(t, err, proximity.ErrNotFound)

	after := h.presenceOf(t, a)
	assert.Equal(t, old.BeaconID, after.BeaconID)
	assert.True(t, before.ExpiresAt.Equal(after.ExpiresAt), "refresh was rolled back")
}

func TestPresence_StaleBeaconIsNotLive(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.addProfiles(t, "alice")[0]

	b, err := h.core.Beacons.Rotate(ctx, a)
	require.NoError(t, err)

	// presence still unexpired but its beacon was deactivated out of band
	require.NoError(t, h.db.Model(&db.Beacon{}).Where("beacon_id = ?", b.BeaconID).
		Updates(map[string]any{"is_active": false, "active_owner": nil}).Error)

	live, err := h.core.Presence.IsLive(ctx, a)
	require.NoError(t, err)
	assert.False(t, live)
}
