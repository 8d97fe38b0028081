package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisibleTo scopes content to what a non-admin caller may read: published
// and approved items, plus the caller's own items in any state. Pass
// uuid.Nil for anonymous access.
type VisibleTo struct {
	ViewerId uuid.UUID
}

func (s VisibleTo) Apply(db *gorm.DB) *gorm.DB {
	if s.ViewerId == uuid.Nil {
		return db.Where("status = ? AND is_approved = ?", "published", true)
	}
	return db.Where("(status = ? AND is_approved = ?) OR author_id = ?",
		"published", true, s.ViewerId)
}

// PublicOnly scopes to published and approved content regardless of caller.
type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND is_approved = ?", "published", true)
}

// PendingApproval scopes to items awaiting moderation.
type PendingApproval struct{}

func (s PendingApproval) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_approved = ? AND status <> ?", false, "archived")
}

// SearchText matches the async-maintained search column.
type SearchText struct {
	Query string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("search_text ILIKE ?", "%"+s.Query+"%")
}
