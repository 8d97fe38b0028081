package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	Title          string      `json:"title" validate:"required,min=1,max=255"`
	Type           string      `json:"type" validate:"required,oneof=student-student student-teacher"`
	ParticipantIds []uuid.UUID `json:"participant_ids" validate:"required,min=1"`
}

type ChatResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	CreatedBy uuid.UUID `json:"created_by"`

	LastMessage   string     `json:"last_message,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	UnreadCount   int        `json:"unread_count"`

	Participants []ChatParticipantResponse `json:"participants"`

	CreatedAt time.Time `json:"created_at"`
}

type ChatParticipantResponse struct {
	UserId   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
	JoinedAt time.Time `json:"joined_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" form:"content" validate:"required_without=HasFile,max=5000"`
	// Set by the controller when a chatFile part is present, so a file-only
	// message passes validation.
	HasFile bool `json:"-" form:"-"`
}

type MessageResponse struct {
	Id       uuid.UUID `json:"id"`
	ChatId   uuid.UUID `json:"chat_id"`
	SenderId uuid.UUID `json:"sender_id"`
	Content  string    `json:"content"`

	FileName string `json:"file_name,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
	MimeType string `json:"mime_type,omitempty"`

	ReadBy []uuid.UUID `json:"read_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type MessageListRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type MessageListResponse struct {
	Items []MessageResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}

type AddParticipantRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
}
