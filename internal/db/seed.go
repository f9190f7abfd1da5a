package db

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedNamespace keeps seeded profile ids stable across runs.
var seedNamespace = uuid.MustParse("6f1c2a52-4c1e-4f55-9d0e-2b7f51c1a9e4")

// SeedProfileID returns the deterministic id of the n-th seeded profile.
func SeedProfileID(n int) string {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("user%d", n))).String()
}

// SeedTestData resets the handshake tables and populates demo profiles.
//
// Behavior:
//  1. Clears beacons, presence, waves, chats, blocks and profiles.
//  2. Creates `users` active profiles (user1..userN) with stable ids.
//  3. Marks the last profile inactive so disclosure of inactive profiles can be tried.
//  4. Adds one block: user1 blocks user2.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB, users int) ([]Profile, error) {
	if users < 3 {
		users = 3
	}

	// --- Fresh start ---
	for _, table := range []string{"chats", "waves", "presence", "beacons", "blocks", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	profiles := make([]Profile, 0, users)
	for i := 1; i <= users; i++ {
		profiles = append(profiles, Profile{
			ID:          SeedProfileID(i),
			Username:    fmt.Sprintf("user%d", i),
			DisplayName: fmt.Sprintf("User %d", i),
			AvatarURL:   fmt.Sprintf("https://avatars.example.com/user%d.png", i),
			Bio:         "seeded profile",
			IsActive:    true,
		})
	}
	if err := db.Create(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to seed profiles: %w", err)
	}

	last := profiles[len(profiles)-1]
	if err := db.Model(&Profile{}).Where("id = ?", last.ID).Update("is_active", false).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate %s: %w", last.Username, err)
	}
	profiles[len(profiles)-1].IsActive = false
	log.Printf("Seeded %d profiles.", len(profiles))

	block := Block{ID: uuid.NewString(), BlockerID: profiles[0].ID, BlockedID: profiles[1].ID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&block).Error; err != nil {
		return nil, fmt.Errorf("failed to seed block: %w", err)
	}

	return profiles, nil
}
