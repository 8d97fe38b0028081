package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	LastMessageContent  *string `gorm:"type:text"`
	LastMessageSenderId *uuid.UUID `gorm:"type:uuid"`
	LastMessageAt       *time.Time `gorm:"index"`

	Participants []ChatParticipant `gorm:"foreignKey:ChatId"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Chat) TableName() string {
	return "chats"
}

type ChatParticipant struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId   uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_participants_chat_user,priority:1"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_participants_chat_user,priority:2;index"`
	Role     string    `gorm:"type:varchar(20);not null"`
	IsActive bool      `gorm:"default:true"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
	LeftAt   *time.Time
}

func (ChatParticipant) TableName() string {
	return "chat_participants"
}

type ChatMessage struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId   uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_chat_created,priority:1"`
	SenderId uuid.UUID `gorm:"type:uuid;not null"`
	Content  string    `gorm:"type:text"`

	FilePath *string `gorm:"type:text"`
	FileName *string `gorm:"type:varchar(255)"`
	MimeType *string `gorm:"type:varchar(100)"`

	ReadBy []MessageRead `gorm:"foreignKey:MessageId"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_chat_messages_chat_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

type MessageRead struct {
	MessageId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadAt    time.Time `gorm:"autoCreateTime"`
}

func (MessageRead) TableName() string {
	return "message_reads"
}
