package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChatType string

const (
	ChatTypeStudentStudent ChatType = "student-student"
	ChatTypeStudentTeacher ChatType = "student-teacher"
)

type Chat struct {
	Id        uuid.UUID
	Title     string
	Type      ChatType
	CreatedBy uuid.UUID

	// Denormalized projection of the newest message for list views.
	LastMessageContent  *string
	LastMessageSenderId *uuid.UUID
	LastMessageAt       *time.Time

	Participants []*ChatParticipant

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatParticipant is a soft-flagged membership row. Removal flips IsActive
// instead of deleting, so message attribution survives.
type ChatParticipant struct {
	Id       uuid.UUID
	ChatId   uuid.UUID
	UserId   uuid.UUID
	Role     UserRole
	IsActive bool
	JoinedAt time.Time
	LeftAt   *time.Time
}

type ChatMessage struct {
	Id       uuid.UUID
	ChatId   uuid.UUID
	SenderId uuid.UUID
	Content  string

	FilePath *string
	FileName *string
	MimeType *string

	ReadBy []*MessageRead

	CreatedAt time.Time
}

type MessageRead struct {
	MessageId uuid.UUID
	UserId    uuid.UUID
	ReadAt    time.Time
}

// ActiveParticipants returns the members whose soft flag is still set.
func (c *Chat) ActiveParticipants() []*ChatParticipant {
	var active []*ChatParticipant
	for _, p := range c.Participants {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// ActiveParticipantIDs returns the user ids of active members, used for
// realtime fan-out targeting.
func (c *Chat) ActiveParticipantIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, p := range c.Participants {
		if p.IsActive {
			ids = append(ids, p.UserId)
		}
	}
	return ids
}

func (c *Chat) Participant(userId uuid.UUID) *ChatParticipant {
	for _, p := range c.Participants {
		if p.UserId == userId {
			return p
		}
	}
	return nil
}

func (c *Chat) IsActiveParticipant(userId uuid.UUID) bool {
	p := c.Participant(userId)
	return p != nil && p.IsActive
}

// ValidateComposition enforces the role mix a chat type allows: a
// student-teacher chat needs at least one active student and one active
// teacher; a student-student chat holds students only.
func ValidateComposition(chatType ChatType, participants []*ChatParticipant) error {
	students, teachers := 0, 0
	for _, p := range participants {
		if !p.IsActive {
			continue
		}
		switch p.Role {
		case UserRoleStudent:
			students++
		case UserRoleTeacher:
			teachers++
		case UserRoleAdmin:
			return fmt.Errorf("admins cannot participate in chats")
		}
	}

	switch chatType {
	case ChatTypeStudentStudent:
		if teachers > 0 {
			return fmt.Errorf("student-student chat cannot include teachers")
		}
		if students < 2 {
			return fmt.Errorf("student-student chat requires at least two students")
		}
	case ChatTypeStudentTeacher:
		if students < 1 || teachers < 1 {
			return fmt.Errorf("student-teacher chat requires at least one student and one teacher")
		}
	default:
		return fmt.Errorf("unknown chat type: %s", chatType)
	}
	return nil
}
