package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContentRequest struct {
	Title       string   `json:"title" form:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" form:"description"`
	Type        string   `json:"type" form:"type" validate:"required,oneof=notes syllabus videos pyqs"`
	Subject     string   `json:"subject" form:"subject" validate:"required"`
	Branch      string   `json:"branch" form:"branch"`
	Semester    int      `json:"semester" form:"semester" validate:"omitempty,min=1,max=12"`
	Tags        []string `json:"tags" form:"tags"`
	VideoURL    string   `json:"video_url" form:"video_url" validate:"omitempty,url"`
}

type UpdateContentRequest struct {
	Id          uuid.UUID
	Title       string   `json:"title" validate:"omitempty,min=3,max=255"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Branch      string   `json:"branch"`
	Semester    int      `json:"semester" validate:"omitempty,min=1,max=12"`
	Tags        []string `json:"tags"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type ContentListRequest struct {
	Page    int    `query:"page"`
	Limit   int    `query:"limit"`
	Type    string `query:"type"`
	Subject string `query:"subject"`
	Branch  string `query:"branch"`
	Search  string `query:"search"`
}

type ContentResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Branch      string    `json:"branch,omitempty"`
	Semester    int       `json:"semester,omitempty"`
	Tags        []string  `json:"tags,omitempty"`

	AuthorId   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`

	FileName string `json:"file_name,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	VideoURL string `json:"video_url,omitempty"`

	Views      int    `json:"views"`
	Downloads  int    `json:"downloads"`
	Likes      int    `json:"likes"`
	Liked      bool   `json:"liked"`
	Bookmarked bool   `json:"bookmarked"`
	Status     string `json:"status"`
	IsApproved bool   `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentListResponse struct {
	Items []ContentResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}

type ToggleResponse struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

// StoredFile carries the result of a validated multipart upload from the
// controller into the service layer.
type StoredFile struct {
	Path     string
	Name     string
	Size     int64
	MimeType string
}

// IndexContentMessage asks the indexer worker to rebuild search_text.
type IndexContentMessage struct {
	ContentId uuid.UUID `json:"content_id"`
}
