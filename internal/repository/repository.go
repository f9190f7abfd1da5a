package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/privilege"
)

// ErrInvalidLimit is returned by paginated queries asked for an empty page.
var ErrInvalidLimit = errors.New("page size must be positive")

// IsNotFound reports whether err is gorm's "no rows" error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation.
// Requires gorm.Config.TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func checkCap(c *privilege.Capability) error {
	return c.Check()
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
