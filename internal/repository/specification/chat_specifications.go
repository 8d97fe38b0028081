package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantOf scopes chats to those the user is an active member of.
type ParticipantOf struct {
	UserId uuid.UUID
}

func (s ParticipantOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"id IN (SELECT chat_id FROM chat_participants WHERE user_id = ? AND is_active = ?)",
		s.UserId, true,
	)
}

// ByChatId filters message-shaped tables by chat reference.
type ByChatId struct {
	ChatId uuid.UUID
}

func (s ByChatId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatId)
}
