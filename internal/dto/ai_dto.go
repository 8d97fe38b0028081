package dto

import (
	"time"

	"github.com/google/uuid"
)

type AiChatRequest struct {
	Message   string     `json:"message" validate:"required"`
	ContentId *uuid.UUID `json:"content_id,omitempty"`
	Context   string     `json:"context,omitempty" validate:"max=2000"`
}

type AiChatResponse struct {
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	TokensUsed int       `json:"tokens_used,omitempty"`
}

type AiHistoryRequest struct {
	Limit int `query:"limit"`
}

// AiExchange is one (question, answer) pair from the in-memory history,
// newest pair first.
type AiExchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}
