package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/privilege"
)

// publicProfileColumns is the only field set ever disclosed to another user.
var publicProfileColumns = []string{"id", "username", "display_name", "avatar_url"}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// FindPublic loads the public columns of an active profile. Inactive and
// missing profiles both yield gorm.ErrRecordNotFound.
func (r *ProfileRepository) FindPublic(ctx context.Context, c *privilege.Capability, id string) (*db.Profile, error) {
	if err := checkCap(c); err != nil {
		return nil, err
	}
	var p db.Profile
	err := r.db.WithContext(ctx).
		Select(publicProfileColumns).
		Where("id = ? AND is_active = ?", id, true).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
