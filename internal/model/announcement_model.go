package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Announcement struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Content  string    `gorm:"type:text;not null"`
	AuthorId uuid.UUID `gorm:"type:uuid;not null"`

	Audience       string                      `gorm:"type:varchar(20);not null;default:'all';index"`
	TargetBranches datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TargetYears    datatypes.JSONSlice[int]    `gorm:"type:jsonb"`

	IsPinned  bool       `gorm:"default:false"`
	Priority  string     `gorm:"type:varchar(10);default:'normal'"`
	ExpiresAt *time.Time `gorm:"index"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type AnnouncementRead struct {
	AnnouncementId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadAt         time.Time `gorm:"autoCreateTime"`
}

func (AnnouncementRead) TableName() string {
	return "announcement_reads"
}
