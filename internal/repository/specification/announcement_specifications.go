package specification

import (
	"time"

	"gorm.io/gorm"
)

// Unexpired keeps announcements whose expiry is unset or in the future.
type Unexpired struct {
	Now time.Time
}

func (s Unexpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at IS NULL OR expires_at > ?", s.Now)
}

// PinnedFirst orders pinned announcements ahead of the rest, newest first
// within each group.
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_pinned DESC, created_at DESC")
}
