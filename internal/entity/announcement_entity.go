package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnnouncementAudience string
type AnnouncementPriority string

const (
	AudienceAll      AnnouncementAudience = "all"
	AudienceStudents AnnouncementAudience = "students"
	AudienceTeachers AnnouncementAudience = "teachers"
	AudienceSpecific AnnouncementAudience = "specific"

	PriorityLow    AnnouncementPriority = "low"
	PriorityNormal AnnouncementPriority = "normal"
	PriorityHigh   AnnouncementPriority = "high"
)

type Announcement struct {
	Id       uuid.UUID
	Title    string
	Content  string
	AuthorId uuid.UUID

	Audience       AnnouncementAudience
	TargetBranches []string
	TargetYears    []int

	IsPinned  bool
	Priority  AnnouncementPriority
	ExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type AnnouncementRead struct {
	AnnouncementId uuid.UUID
	UserId         uuid.UUID
	ReadAt         time.Time
}

// Expired reports whether the announcement has passed its optional expiry.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

// TargetedAt decides whether a user falls inside the announcement's audience.
// Admins see everything. For "specific", an empty branch or year list means
// that dimension is unconstrained.
func (a *Announcement) TargetedAt(u *User, now time.Time) bool {
	if a.Expired(now) {
		return false
	}
	if u.Role == UserRoleAdmin {
		return true
	}

	switch a.Audience {
	case AudienceAll:
		return true
	case AudienceStudents:
		return u.Role == UserRoleStudent
	case AudienceTeachers:
		return u.Role == UserRoleTeacher
	case AudienceSpecific:
		if u.Role != UserRoleStudent {
			return false
		}
		if len(a.TargetBranches) > 0 {
			if u.Branch == nil || !containsString(a.TargetBranches, *u.Branch) {
				return false
			}
		}
		if len(a.TargetYears) > 0 {
			if u.Year == nil || !containsInt(a.TargetYears, *u.Year) {
				return false
			}
		}
		return true
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
