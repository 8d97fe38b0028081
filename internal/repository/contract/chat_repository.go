package contract

import (
	"context"

	"github.com/google/uuid"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/repository/specification"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateLastMessage(ctx context.Context, chatId uuid.UUID, msg *entity.ChatMessage) error

	// Participants: removal flips the soft flag, never deletes.
	AddParticipant(ctx context.Context, p *entity.ChatParticipant) error
	DeactivateParticipant(ctx context.Context, chatId, userId uuid.UUID) error
	ReactivateParticipant(ctx context.Context, chatId, userId uuid.UUID) error
	FindParticipant(ctx context.Context, chatId, userId uuid.UUID) (*entity.ChatParticipant, error)

	// Messages
	CreateMessage(ctx context.Context, msg *entity.ChatMessage) error
	FindMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	CountMessages(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountUnread(ctx context.Context, chatId, userId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, chatId, userId uuid.UUID) error
}
