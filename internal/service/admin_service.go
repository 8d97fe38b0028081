package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/pkg/logger"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
	"acadmix-be/pkg/events"
	pktNats "acadmix-be/pkg/nats"
)

type IAdminService interface {
	ListUsers(ctx context.Context, req *dto.AdminUserListRequest) (*dto.AdminUserListResponse, error)
	UpdateUserStatus(ctx context.Context, req *dto.UpdateUserStatusRequest) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	PendingContent(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentListResponse, error)
	ApproveContent(ctx context.Context, id uuid.UUID) error
	RejectContent(ctx context.Context, req *dto.RejectContentRequest) error

	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	Logs(ctx context.Context, req *dto.AdminLogListRequest) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         log,
		eventPublisher: eventPublisher,
	}
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.AdminUserListRequest) (*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if req.Search != "" {
		specs = append(specs, specification.SearchUsers{Query: req.Search})
	}
	if req.Role != "" {
		specs = append(specs, specification.ByRole{Role: req.Role})
	}
	if req.Status != "" {
		specs = append(specs, specification.Filter("status", req.Status))
	}

	total, err := uow.UserRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(req.Page, req.Limit)
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *ToUserResponse(u))
	}

	return &dto.AdminUserListResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, req *dto.UpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return apperr.Forbidden("Admin accounts cannot be blocked")
	}

	if err := uow.UserRepository().UpdateStatus(ctx, req.Id, req.Status); err != nil {
		return err
	}

	s.logger.Info("admin", "User status changed", map[string]interface{}{
		"user_id": req.Id.String(),
		"status":  req.Status,
		"reason":  req.Reason,
	})
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return apperr.Forbidden("Admin accounts cannot be deleted")
	}
	return uow.UserRepository().Delete(ctx, id)
}

func (s *adminService) PendingContent(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.PendingApproval{}}
	if req.Type != "" {
		specs = append(specs, specification.Filter("type", req.Type))
	}

	total, err := uow.ContentRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(req.Page, req.Limit)
	specs = append(specs,
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	contents, err := uow.ContentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContentResponse, 0, len(contents))
	for _, c := range contents {
		items = append(items, dto.ContentResponse{
			Id:          c.Id,
			Title:       c.Title,
			Description: c.Description,
			Type:        string(c.Type),
			Subject:     c.Subject,
			Branch:      c.Branch,
			AuthorId:    c.AuthorId,
			Status:      string(c.Status),
			IsApproved:  c.IsApproved,
			CreatedAt:   c.CreatedAt,
		})
	}

	return &dto.ContentListResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *adminService) ApproveContent(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if content == nil {
		return apperr.NotFound("Content not found")
	}
	if content.IsApproved && content.Status == entity.ContentStatusPublished {
		return apperr.Conflict("Content is already approved")
	}

	if err := uow.ContentRepository().SetApproval(ctx, id, string(entity.ContentStatusPublished), true); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New("CONTENT_APPROVED", map[string]interface{}{
			"content_id": id.String(),
			"title":      content.Title,
			"user_id":    content.AuthorId.String(),
		}))
	}
	return nil
}

func (s *adminService) RejectContent(ctx context.Context, req *dto.RejectContentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if content == nil {
		return apperr.NotFound("Content not found")
	}
	if content.Status == entity.ContentStatusArchived {
		return apperr.Conflict("Content is already rejected")
	}

	if err := uow.ContentRepository().SetApproval(ctx, req.Id, string(entity.ContentStatusArchived), false); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New("CONTENT_REJECTED", map[string]interface{}{
			"content_id": req.Id.String(),
			"title":      content.Title,
			"user_id":    content.AuthorId.String(),
			"reason":     req.Reason,
		}))
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats := &dto.AdminStatsResponse{}
	var err error

	if stats.TotalUsers, err = uow.UserRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = uow.UserRepository().Count(ctx, specification.ByRole{Role: string(entity.UserRoleStudent)}); err != nil {
		return nil, err
	}
	if stats.TotalTeachers, err = uow.UserRepository().Count(ctx, specification.ByRole{Role: string(entity.UserRoleTeacher)}); err != nil {
		return nil, err
	}
	if stats.BlockedUsers, err = uow.UserRepository().Count(ctx, specification.Filter("status", string(entity.UserStatusBlocked))); err != nil {
		return nil, err
	}
	if stats.TotalContent, err = uow.ContentRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingContent, err = uow.ContentRepository().Count(ctx, specification.PendingApproval{}); err != nil {
		return nil, err
	}
	if stats.TotalChats, err = uow.ChatRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMessages, err = uow.ChatRepository().CountMessages(ctx); err != nil {
		return nil, err
	}
	if stats.Announcements, err = uow.AnnouncementRepository().Count(ctx); err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7).Unix()
	if stats.RegistrationsNew, err = uow.UserRepository().CountSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *adminService) Logs(ctx context.Context, req *dto.AdminLogListRequest) ([]logger.LogEntry, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	return s.logger.GetLogs(req.Level, limit, (page-1)*limit)
}
