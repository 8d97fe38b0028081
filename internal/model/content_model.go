package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Content struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Subject     string    `gorm:"type:varchar(100);index"`
	Branch      string    `gorm:"type:varchar(100);index"`
	Semester    *int
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	AuthorId uuid.UUID `gorm:"type:uuid;not null;index"`
	Author   User      `gorm:"foreignKey:AuthorId"`

	FilePath *string `gorm:"type:text"`
	FileName *string `gorm:"type:varchar(255)"`
	FileSize *int64
	MimeType *string `gorm:"type:varchar(100)"`
	VideoURL *string `gorm:"type:text"`

	Views      int    `gorm:"default:0"`
	Downloads  int    `gorm:"default:0"`
	Status     string `gorm:"type:varchar(20);not null;default:'published';index"`
	IsApproved bool   `gorm:"default:false;index"`

	// Rebuilt asynchronously by the indexer after create/update.
	SearchText string `gorm:"type:text"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Content) TableName() string {
	return "contents"
}

type ContentLike struct {
	ContentId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContentLike) TableName() string {
	return "content_likes"
}

type ContentBookmark struct {
	ContentId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContentBookmark) TableName() string {
	return "content_bookmarks"
}
