package contract

import (
	"context"

	"github.com/google/uuid"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/repository/specification"
)

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	Update(ctx context.Context, content *entity.Content) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Content, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Content, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementDownloads(ctx context.Context, id uuid.UUID) error
	SetApproval(ctx context.Context, id uuid.UUID, status string, approved bool) error
	UpdateSearchText(ctx context.Context, id uuid.UUID, text string) error

	// Likes / bookmarks
	IsLiked(ctx context.Context, contentId, userId uuid.UUID) (bool, error)
	AddLike(ctx context.Context, contentId, userId uuid.UUID) error
	RemoveLike(ctx context.Context, contentId, userId uuid.UUID) error
	CountLikes(ctx context.Context, contentId uuid.UUID) (int64, error)

	IsBookmarked(ctx context.Context, contentId, userId uuid.UUID) (bool, error)
	AddBookmark(ctx context.Context, contentId, userId uuid.UUID) error
	RemoveBookmark(ctx context.Context, contentId, userId uuid.UUID) error
	FindBookmarked(ctx context.Context, userId uuid.UUID, specs ...specification.Specification) ([]*entity.Content, error)
}
