package contract

import (
	"context"

	"github.com/google/uuid"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/repository/specification"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *entity.Announcement) error
	Update(ctx context.Context, a *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Announcement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Announcement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	MarkRead(ctx context.Context, announcementId, userId uuid.UUID) error
	ReadIds(ctx context.Context, userId uuid.UUID, announcementIds []uuid.UUID) (map[uuid.UUID]bool, error)
}
