package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
	"acadmix-be/pkg/events"
	pktNats "acadmix-be/pkg/nats"
)

type IAnnouncementService interface {
	Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, error)
	MarkRead(ctx context.Context, userId, announcementId uuid.UUID) error
}

type announcementService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAnnouncementService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IAnnouncementService {
	return &announcementService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *announcementService) Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority := entity.PriorityNormal
	if req.Priority != "" {
		priority = entity.AnnouncementPriority(req.Priority)
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		return nil, apperr.BadRequest("Expiry must be in the future")
	}

	a := &entity.Announcement{
		Id:             uuid.New(),
		Title:          req.Title,
		Content:        req.Content,
		AuthorId:       authorId,
		Audience:       entity.AnnouncementAudience(req.Audience),
		TargetBranches: req.TargetBranches,
		TargetYears:    req.TargetYears,
		IsPinned:       req.IsPinned,
		Priority:       priority,
		ExpiresAt:      req.ExpiresAt,
	}
	if a.Audience != entity.AudienceSpecific {
		a.TargetBranches = nil
		a.TargetYears = nil
	}

	if err := uow.AnnouncementRepository().Create(ctx, a); err != nil {
		return nil, err
	}

	// The notification worker resolves the audience and pushes per-user, so
	// the realtime path respects targeting without a broadcast here.
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New("ANNOUNCEMENT_CREATED", map[string]interface{}{
			"announcement_id": a.Id.String(),
			"title":           a.Title,
			"audience":        string(a.Audience),
			"branches":        a.TargetBranches,
			"years":           a.TargetYears,
			"entity_type":     "announcement",
			"entity_id":       a.Id.String(),
		}))
	}

	return s.toResponse(ctx, uow, a), nil
}

func (s *announcementService) Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	a, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Announcement not found")
	}

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.Content != "" {
		a.Content = req.Content
	}
	if req.Audience != "" {
		a.Audience = entity.AnnouncementAudience(req.Audience)
	}
	if req.TargetBranches != nil {
		a.TargetBranches = req.TargetBranches
	}
	if req.TargetYears != nil {
		a.TargetYears = req.TargetYears
	}
	if req.IsPinned != nil {
		a.IsPinned = *req.IsPinned
	}
	if req.Priority != "" {
		a.Priority = entity.AnnouncementPriority(req.Priority)
	}
	if req.ExpiresAt != nil {
		a.ExpiresAt = req.ExpiresAt
	}
	if a.Audience != entity.AudienceSpecific {
		a.TargetBranches = nil
		a.TargetYears = nil
	}

	if err := uow.AnnouncementRepository().Update(ctx, a); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, a), nil
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	a, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if a == nil {
		return apperr.NotFound("Announcement not found")
	}
	return uow.AnnouncementRepository().Delete(ctx, id)
}

func (s *announcementService) List(ctx context.Context, userId uuid.UUID, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	now := time.Now()
	all, err := uow.AnnouncementRepository().FindAll(ctx,
		specification.Unexpired{Now: now},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}

	// Audience targeting depends on the viewer's branch and year, so scoping
	// happens here rather than in SQL.
	var visible []*entity.Announcement
	for _, a := range all {
		if a.TargetedAt(user, now) {
			visible = append(visible, a)
		}
	}

	page, limit := normalizePage(req.Page, req.Limit)
	start := (page - 1) * limit
	if start > len(visible) {
		start = len(visible)
	}
	end := start + limit
	if end > len(visible) {
		end = len(visible)
	}
	visible = visible[start:end]

	ids := make([]uuid.UUID, 0, len(visible))
	for _, a := range visible {
		ids = append(ids, a.Id)
	}
	read := map[uuid.UUID]bool{}
	if len(ids) > 0 {
		if m, err := uow.AnnouncementRepository().ReadIds(ctx, userId, ids); err == nil {
			read = m
		}
	}

	out := make([]dto.AnnouncementResponse, 0, len(visible))
	for _, a := range visible {
		resp := s.toResponse(ctx, uow, a)
		resp.IsRead = read[a.Id]
		out = append(out, *resp)
	}
	return out, nil
}

func (s *announcementService) MarkRead(ctx context.Context, userId, announcementId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	a, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: announcementId})
	if err != nil {
		return err
	}
	if a == nil {
		return apperr.NotFound("Announcement not found")
	}
	return uow.AnnouncementRepository().MarkRead(ctx, announcementId, userId)
}

func (s *announcementService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, a *entity.Announcement) *dto.AnnouncementResponse {
	resp := &dto.AnnouncementResponse{
		Id:             a.Id,
		Title:          a.Title,
		Content:        a.Content,
		AuthorId:       a.AuthorId,
		Audience:       string(a.Audience),
		TargetBranches: a.TargetBranches,
		TargetYears:    a.TargetYears,
		IsPinned:       a.IsPinned,
		Priority:       string(a.Priority),
		ExpiresAt:      a.ExpiresAt,
		CreatedAt:      a.CreatedAt,
	}
	if author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: a.AuthorId}); err == nil && author != nil {
		resp.AuthorName = author.FullName
	}
	return resp
}
