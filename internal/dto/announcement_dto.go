package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title          string     `json:"title" validate:"required,min=3,max=255"`
	Content        string     `json:"content" validate:"required"`
	Audience       string     `json:"audience" validate:"required,oneof=all students teachers specific"`
	TargetBranches []string   `json:"target_branches" validate:"omitempty,dive,min=1"`
	TargetYears    []int      `json:"target_years" validate:"omitempty,dive,min=1,max=6"`
	IsPinned       bool       `json:"is_pinned"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type UpdateAnnouncementRequest struct {
	Id             uuid.UUID
	Title          string     `json:"title" validate:"omitempty,min=3,max=255"`
	Content        string     `json:"content"`
	Audience       string     `json:"audience" validate:"omitempty,oneof=all students teachers specific"`
	TargetBranches []string   `json:"target_branches"`
	TargetYears    []int      `json:"target_years"`
	IsPinned       *bool      `json:"is_pinned"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type AnnouncementListRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type AnnouncementResponse struct {
	Id         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorId   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`

	Audience       string   `json:"audience"`
	TargetBranches []string `json:"target_branches,omitempty"`
	TargetYears    []int    `json:"target_years,omitempty"`

	IsPinned  bool       `json:"is_pinned"`
	Priority  string     `json:"priority"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsRead    bool       `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
