package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'student';index"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	AvatarURL    *string   `gorm:"type:text"`

	// Student fields
	Branch   *string `gorm:"type:varchar(100);index"`
	Year     *int
	Semester *int
	RollNo   *string `gorm:"type:varchar(50);uniqueIndex"`

	// Teacher fields
	Department  *string `gorm:"type:varchar(100)"`
	Designation *string `gorm:"type:varchar(100)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
