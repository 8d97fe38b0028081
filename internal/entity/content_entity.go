package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ContentType string
type ContentStatus string

const (
	ContentTypeNotes    ContentType = "notes"
	ContentTypeSyllabus ContentType = "syllabus"
	ContentTypeVideos   ContentType = "videos"
	ContentTypePyqs     ContentType = "pyqs"

	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

type Content struct {
	Id          uuid.UUID
	Title       string
	Description string
	Type        ContentType
	Subject     string
	Branch      string
	Semester    *int
	Tags        []string
	AuthorId    uuid.UUID

	// Exactly one of the stored-file reference or the video URL is populated,
	// depending on Type. Enforced by ValidateSource.
	FilePath *string
	FileName *string
	FileSize *int64
	MimeType *string
	VideoURL *string

	Views      int
	Downloads  int
	Status     ContentStatus
	IsApproved bool

	SearchText string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateSource checks the type/source invariant: videos carry an external
// URL and no stored file, every other type carries a stored file and no URL.
func (c *Content) ValidateSource() error {
	hasFile := c.FilePath != nil && *c.FilePath != ""
	hasURL := c.VideoURL != nil && *c.VideoURL != ""

	if c.Type == ContentTypeVideos {
		if !hasURL {
			return fmt.Errorf("video content requires a video URL")
		}
		if hasFile {
			return fmt.Errorf("video content cannot carry an uploaded file")
		}
		return nil
	}

	if !hasFile {
		return fmt.Errorf("%s content requires an uploaded file", c.Type)
	}
	if hasURL {
		return fmt.Errorf("%s content cannot carry a video URL", c.Type)
	}
	return nil
}

// VisibleTo implements the read-time moderation rule: non-owner, non-admin
// callers only see published and approved items; owner and admin see all
// states. Anonymous callers pass uuid.Nil and a non-admin role.
func (c *Content) VisibleTo(viewerRole UserRole, viewerId uuid.UUID) bool {
	if viewerRole == UserRoleAdmin {
		return true
	}
	if viewerId != uuid.Nil && viewerId == c.AuthorId {
		return true
	}
	return c.Status == ContentStatusPublished && c.IsApproved
}

func ValidContentType(t string) bool {
	switch ContentType(t) {
	case ContentTypeNotes, ContentTypeSyllabus, ContentTypeVideos, ContentTypePyqs:
		return true
	}
	return false
}
