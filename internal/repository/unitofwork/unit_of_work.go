package unitofwork

import (
	"context"

	"acadmix-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContentRepository() contract.ContentRepository
	ChatRepository() contract.ChatRepository
	AnnouncementRepository() contract.AnnouncementRepository
}
