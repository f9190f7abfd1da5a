package db

import (
	"time"
)

// Wave statuses as stored in waves.status.
const (
	WaveStatusPending = "pending"
	WaveStatusMutual  = "mutual"
	WaveStatusExpired = "expired"
)

// Profile is the identity collaborator's user row. This service only reads it,
// and only ever discloses the public projection.
type Profile struct {
	ID          string `gorm:"primaryKey;size:36"`
	Username    string `gorm:"uniqueIndex;size:64;not null"`
	DisplayName string `gorm:"size:128"`
	AvatarURL   string `gorm:"size:512"`
	Bio         string `gorm:"size:1024"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Beacon is one ephemeral token issued to a user.
//
// Rows are never deleted by rotation; old tokens are only flagged inactive.
//
// Indexes:
//   - uniq beacon_id: the opaque token scanned by nearby devices.
//   - uniq active_owner: equals user_id while active and NULL otherwise,
//     so storage rejects a second active beacon for the same user.
//   - idx_beacons_active_expiry(is_active, expires_at): sweep scan.
type Beacon struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserID      string    `gorm:"size:36;not null;index"`
	BeaconID    string    `gorm:"uniqueIndex;size:32;not null"`
	IsActive    bool      `gorm:"not null;index:idx_beacons_active_expiry,priority:1"`
	ActiveOwner *string   `gorm:"uniqueIndex;size:36"`
	ExpiresAt   time.Time `gorm:"not null;index:idx_beacons_active_expiry,priority:2"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Presence says "this user is discoverable through this beacon until ExpiresAt".
// One row per user.
type Presence struct {
	UserID     string    `gorm:"primaryKey;size:36"`
	BeaconID   string    `gorm:"size:32;not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	LastSeenAt time.Time `gorm:"not null"`
}

func (Presence) TableName() string { return "presence" }

// Wave is one user's interest in another.
//
// PairKey is the canonical unordered pair (lower id first). LiveKey carries the
// same value while the wave is pending or mutual and is cleared on expiry; its
// unique index keeps a single live wave per pair.
type Wave struct {
	ID          string     `gorm:"primaryKey;size:36"`
	InitiatorID string     `gorm:"size:36;not null;index"`
	ReceiverID  string     `gorm:"size:36;not null;index"`
	PairKey     string     `gorm:"size:80;not null;index"`
	LiveKey     *string    `gorm:"uniqueIndex;size:80"`
	Status      string     `gorm:"size:16;not null;index:idx_waves_status_created,priority:1"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_waves_status_created,priority:2"`
	MutualAt    *time.Time
}

// Chat is the time-boxed channel unlocked by a mutual wave. A wave spawns at most one.
type Chat struct {
	ID        string    `gorm:"primaryKey;size:36"`
	WaveID    string    `gorm:"uniqueIndex;size:36;not null"`
	User1ID   string    `gorm:"size:36;not null;index"`
	User2ID   string    `gorm:"size:36;not null;index"`
	StartedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_chats_active_expiry,priority:2"`
	IsActive  bool      `gorm:"not null;index:idx_chats_active_expiry,priority:1"`
}

// Block suppresses all matching and disclosure between two users, in both directions.
type Block struct {
	ID        string    `gorm:"primaryKey;size:36"`
	BlockerID string    `gorm:"size:36;not null;uniqueIndex:uniq_blocks_pair,priority:1"`
	BlockedID string    `gorm:"size:36;not null;uniqueIndex:uniq_blocks_pair,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{&Profile{}, &Beacon{}, &Presence{}, &Wave{}, &Chat{}, &Block{}}
}
