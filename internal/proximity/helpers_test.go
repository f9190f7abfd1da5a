package proximity_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/proximity"
)

// fakeClock is a settable clock shared by the core under test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	db      *gorm.DB
	core    *proximity.Core
	clock   *fakeClock
	metrics *metrics.Metrics
}

// openTestDB spins up an isolated in-memory SQLite database with the full schema.
// A single connection serializes statements the way a real store would
// serialize conflicting writes, while still interleaving concurrent requests
// between statements.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db.All()...))
	return database
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	database := openTestDB(t)
	clock := newFakeClock()
	m := metrics.New()
	core := proximity.New(database, proximity.Options{
		Now:     clock.Now,
		Logger:  logger.Discard(),
		Metrics: m,
	})
	return &harness{db: database, core: core, clock: clock, metrics: m}
}

// addProfiles inserts active profiles and returns their ids.
func (h *harness) addProfiles(t *testing.T, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		p := db.Profile{
			ID:          uuid.NewString(),
			Username:    name,
			DisplayName: "Display " + name,
			AvatarURL:   "https://example.com/" + name + ".png",
			Bio:         "private bio of " + name,
			IsActive:    true,
		}
		require.NoError(t, h.db.Create(&p).Error)
		ids = append(ids, p.ID)
	}
	return ids
}

func (h *harness) activeBeacons(t *testing.T, userID string) []db.Beacon {
	t.Helper()
	var beacons []db.Beacon
	require.NoError(t, h.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&beacons).Error)
	return beacons
}

func (h *harness) wavesForPair(t *testing.T, a, b string) []db.Wave {
	t.Helper()
	var waves []db.Wave
	require.NoError(t, h.db.Where("pair_key = ?", proximity.PairKey(a, b)).Find(&waves).Error)
	return waves
}

func (h *harness) presenceOf(t *testing.T, userID string) db.Presence {
	t.Helper()
	var p db.Presence
	require.NoError(t, h.db.Where("user_id = ?", userID).Take(&p).Error)
	return p
}

func (h *harness) chatCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Model(&db.Chat{}).Count(&n).Error)
	return n
}
