package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, _ := database.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func svcCap() *privilege.Capability {
	return privilege.Grant("repository-test", nil)
}

func ptr(s string) *string { return &s }

func TestCrossUserReadsNeedCapability(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)

	_, err := repository.NewBeaconRepository(dbase).FindValid(ctx, nil, "X", t0)
	assert.ErrorIs(t, err, privilege.ErrDenied)
	_, err = repository.NewPresenceRepository(dbase).Find(ctx, nil, "u1")
	assert.ErrorIs(t, err, privilege.ErrDenied)
	_, err = repository.NewWaveRepository(dbase).FindLive(ctx, nil, "a:b")
	assert.ErrorIs(t, err, privilege.ErrDenied)
	_, err = repository.NewBlockRepository(dbase).Exists(ctx, nil, "a", "b")
	assert.ErrorIs(t, err, privilege.ErrDenied)
	_, err = repository.NewProfileRepository(dbase).FindPublic(ctx, &privilege.Capability{}, "a")
	assert.ErrorIs(t, err, privilege.ErrDenied)
	_, err = repository.NewChatRepository(dbase).DeactivateExpired(ctx, nil, t0)
	assert.ErrorIs(t, err, privilege.ErrDenied)
}

func TestBeacon_OneActivePerUser(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewBeaconRepository(dbase)
	c := svcCap()

	first := &db.Beacon{ID: uuid.NewString(), UserID: "u1", BeaconID: "AAAA", IsActive: true, ActiveOwner: ptr("u1"), ExpiresAt: t0.Add(time.Hour)}
	require.NoError(t, repo.Insert(ctx, first))

	second := &db.Beacon{ID: uuid.NewString(), UserID: "u1", BeaconID: "BBBB", IsActive: true, ActiveOwner: ptr("u1"), ExpiresAt: t0.Add(time.Hour)}
	err := repo.Insert(ctx, second)
	assert.True(t, repository.IsDuplicate(err), "got %v", err)

	n, err := repo.DeactivateForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, repo.Insert(ctx, second))

	_, err = repo.FindValid(ctx, c, "AAAA", t0)
	assert.True(t, repository.IsNotFound(err))
	b, err := repo.FindValid(ctx, c, "BBBB", t0)
	require.NoError(t, err)
	assert.Equal(t, "u1", b.UserID)

	// expired by time even though still flagged active
	_, err = repo.FindValid(ctx, c, "BBBB", t0.Add(time.Hour))
	assert.True(t, repository.IsNotFound(err))

	n, err = repo.DeactivateExpired(ctx, c, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = repo.FindActiveForUser(ctx, "u1", t0)
	assert.True(t, repository.IsNotFound(err))
}

func TestPresence_UpsertAndDeleteExpired(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPresenceRepository(dbase)
	c := svcCap()

	require.NoError(t, repo.Upsert(ctx, &db.Presence{UserID: "u1", BeaconID: "AAAA", ExpiresAt: t0.Add(time.Minute), LastSeenAt: t0}))
	require.NoError(t, repo.Upsert(ctx, &db.Presence{UserID: "u1", BeaconID: "BBBB", ExpiresAt: t0.Add(15 * time.Minute), LastSeenAt: t0}))

	p, err := repo.Find(ctx, c, "u1")
	require.NoError(t, err)
	assert.Equal(t, "BBBB", p.BeaconID)

	var count int64
	require.NoError(t, dbase.Model(&db.Presence{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	n, err := repo.DeleteExpired(ctx, c, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = repo.DeleteExpired(ctx, c, t0.Add(16*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestWave_LiveKeyAndPromotion(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewWaveRepository(dbase)
	c := svcCap()

	w := &db.Wave{ID: "w1", InitiatorID: "a", ReceiverID: "b", PairKey: "a:b", LiveKey: ptr("a:b"), Status: db.WaveStatusPending, CreatedAt: t0}
	require.NoError(t, repo.Insert(ctx, c, w))

	dup := &db.Wave{ID: "w2", InitiatorID: "b", ReceiverID: "a", PairKey: "a:b", LiveKey: ptr("a:b"), Status: db.WaveStatusPending, CreatedAt: t0}
	assert.True(t, repository.IsDuplicate(repo.Insert(ctx, c, dup)))

	won, err := repo.Promote(ctx, c, "w1", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, won)
	won, err = repo.Promote(ctx, c, "w1", t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, won, "second promotion loses")

	live, err := repo.FindLive(ctx, c, "a:b")
	require.NoError(t, err)
	assert.Equal(t, db.WaveStatusMutual, live.Status)
	require.NotNil(t, live.MutualAt)

	// mutual waves are never expired by the pending sweeps
	n, err := repo.ExpirePendingBefore(ctx, c, t0.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWave_ExpiryReleasesPair(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewWaveRepository(dbase)
	c := svcCap()

	require.NoError(t, repo.Insert(ctx, c, &db.Wave{ID: "w1", InitiatorID: "a", ReceiverID: "b", PairKey: "a:b", LiveKey: ptr("a:b"), Status: db.WaveStatusPending, CreatedAt: t0}))

	ok, err := repo.ExpireIfStale(ctx, c, "w1", t0)
	require.NoError(t, err)
	assert.False(t, ok, "not older than cutoff")

	ok, err = repo.ExpireIfStale(ctx, c, "w1", t0.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindLive(ctx, c, "a:b")
	assert.True(t, repository.IsNotFound(err))

	require.NoError(t, repo.Insert(ctx, c, &db.Wave{ID: "w2", InitiatorID: "b", ReceiverID: "a", PairKey: "a:b", LiveKey: ptr("a:b"), Status: db.WaveStatusPending, CreatedAt: t0}))
	n, err := repo.ExpirePendingForPair(ctx, c, "a:b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBlock_SymmetricAndIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewBlockRepository(dbase)
	c := svcCap()

	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Create(ctx, "a", "b"))

	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}} {
		blocked, err := repo.Exists(ctx, c, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, blocked)
	}
	blocked, err := repo.Exists(ctx, c, "a", "c")
	require.NoError(t, err)
	assert.False(t, blocked)

	n, err := repo.Delete(ctx, "b", "a")
	require.NoError(t, err)
	assert.Zero(t, n, "only the blocker's own row can be removed")
	n, err = repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProfile_FindPublicOmitsPrivateFields(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)
	c := svcCap()

	require.NoError(t, dbase.Create(&db.Profile{ID: "p1", Username: "alice", DisplayName: "Alice", AvatarURL: "a.png", Bio: "private", IsActive: true}).Error)
	require.NoError(t, dbase.Create(&db.Profile{ID: "p2", Username: "bob", IsActive: true}).Error)
	require.NoError(t, dbase.Model(&db.Profile{}).Where("id = ?", "p2").Update("is_active", false).Error)

	p, err := repo.FindPublic(ctx, c, "p1")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "a.png", p.AvatarURL)
	assert.Empty(t, p.Bio)

	_, err = repo.FindPublic(ctx, c, "p2")
	assert.True(t, repository.IsNotFound(err))
}

func TestChat_ListActiveAndPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewChatRepository(dbase)
	c := svcCap()

	for i := 0; i < 3; i++ {
		start := t0.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, c, &db.Chat{
			ID: fmt.Sprintf("c%d", i), WaveID: fmt.Sprintf("w%d", i),
			User1ID: "a", User2ID: fmt.Sprintf("u%d", i),
			StartedAt: start, ExpiresAt: start.Add(5 * time.Minute), IsActive: true,
		}))
	}
	dupe := &db.Chat{ID: "c9", WaveID: "w0", User1ID: "a", User2ID: "u0", StartedAt: t0, ExpiresAt: t0, IsActive: true}
	assert.True(t, repository.IsDuplicate(repo.Create(ctx, c, dupe)), "one chat per wave")

	chats, next, err := repo.ListActive(ctx, "a", t0, nil, 2)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "c2", chats[0].ID)
	assert.Equal(t, "c1", chats[1].ID)
	require.NotNil(t, next)

	chats, next, err = repo.ListActive(ctx, "a", t0, next, 2)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "c0", chats[0].ID)
	assert.Nil(t, next)

	_, _, err = repo.ListActive(ctx, "a", t0, nil, 0)
	assert.ErrorIs(t, err, repository.ErrInvalidLimit)

	n, err := repo.DeactivateForPair(ctx, c, "u1", "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeactivateExpired(ctx, c, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	chats, _, err = repo.ListActive(ctx, "a", t0, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, chats)
}
