package service

import (
	"context"
	"encoding/json"
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

type IContentService interface {
	Create(ctx context.Context, authorId uuid.UUID, role string, req *dto.CreateContentRequest, file *dto.StoredFile) (*dto.ContentResponse, error)
	List(ctx context.Context, viewerId uuid.UUID, role string, req *dto.ContentListRequest) (*dto.ContentListResponse, error)
	Get(ctx context.Context, viewerId uuid.UUID, role string, id uuid.UUID) (*dto.ContentResponse, error)
	Update(ctx context.Context, callerId uuid.UUID, role string, req *dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(ctx context.Context, callerId uuid.UUID, role string, id uuid.UUID) error
	Download(ctx context.Context, viewerId uuid.UUID, role string, id uuid.UUID) (*entity.Content, error)
	ToggleLike(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ToggleResponse, error)
	ToggleBookmark(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ToggleResponse, error)
	Bookmarks(ctx context.Context, userId uuid.UUID) ([]dto.ContentResponse, error)
}

type contentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IContentService {
	return &contentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *contentService) Create(ctx context.Context, authorId uuid.UUID, role string, req *dto.CreateContentRequest, file *dto.StoredFile) (*dto.ContentResponse, error) {
	if role != string(entity.UserRoleTeacher) && role != string(entity.UserRoleAdmin) {
		return nil, apperr.Forbidden("Only teachers can upload content")
	}
	if !entity.ValidContentType(req.Type) {
		return nil, apperr.BadRequest("Unknown content type")
	}

	content := &entity.Content{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.ContentType(req.Type),
		Subject:     req.Subject,
		Branch:      req.Branch,
		Tags:        req.Tags,
		AuthorId:    authorId,
		// Staff uploads go live immediately; moderation runs on later edits.
		Status:     entity.ContentStatusPublished,
		IsApproved: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if req.Semester != 0 {
		content.Semester = &req.Semester
	}
	if file != nil {
		content.FilePath = &file.Path
		content.FileName = &file.Name
		content.FileSize = &file.Size
		content.MimeType = &file.MimeType
	}
	if req.VideoURL != "" {
		content.VideoURL = &req.VideoURL
	}
	if err := content.ValidateSource(); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContentRepository().Create(ctx, content); err != nil {
		return nil, err
	}

	s.requestIndexing(ctx, content.Id)
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New("CONTENT_UPLOADED", map[string]interface{}{
			"content_id": content.Id.String(),
			"title":      content.Title,
			"subject":    content.Subject,
			"branch":     content.Branch,
			"author_id":  authorId.String(),
		}))
	}

	return s.toResponse(ctx, uow, content, authorId), nil
}

func (s *contentService) List(ctx context.Context, viewerId uuid.UUID, role string, req *dto.ContentListRequest) (*dto.ContentListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, limit := normalizePage(req.Page, req.Limit)

	filters := s.listFilters(viewerId, role, req)
	total, err := uow.ContentRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	items, err := uow.ContentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ContentListResponse{
		Items: make([]dto.ContentResponse, len(items)),
		Page:  page,
		Limit: limit,
		Total: total,
	}
	for i, c := range items {
		res.Items[i] = *s.toResponse(ctx, uow, c, viewerId)
	}
	return res, nil
}

func (s *contentService) listFilters(viewerId uuid.UUID, role string, req *dto.ContentListRequest) []specification.Specification {
	var specs []specification.Specification
	if role != string(entity.UserRoleAdmin) {
		specs = append(specs, specification.VisibleTo{ViewerId: viewerId})
	}
	if req.Type != "" {
		specs = append(specs, specification.Filter("type", req.Type))
	}
	if req.Subject != "" {
		specs = append(specs, specification.Filter("subject", req.Subject))
	}
	if req.Branch != "" {
		specs = append(specs, specification.Filter("branch", req.Branch))
	}
	if req.Search != "" {
		specs = append(specs, specification.SearchText{Query: req.Search})
	}
	return specs
}

func (s *contentService) Get(ctx context.Context, viewerId uuid.UUID, role string, id uuid.UUID) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := s.visibleContent(ctx, uow, viewerId, role, id)
	if err != nil {
		return nil, err
	}

	_ = uow.ContentRepository().IncrementViews(ctx, id)
	content.Views++

	return s.toResponse(ctx, uow, content, viewerId), nil
}

func (s *contentService) Update(ctx context.Context, callerId uuid.UUID, role string, req *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperr.NotFound("Content not found")
	}
	isAdmin := role == string(entity.UserRoleAdmin)
	if !isAdmin && content.AuthorId != callerId {
		return nil, apperr.Forbidden("Only the author can edit this content")
	}

	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if req.Subject != "" {
		content.Subject = req.Subject
	}
	if req.Branch != "" {
		content.Branch = req.Branch
	}
	if req.Semester != 0 {
		content.Semester = &req.Semester
	}
	if req.Tags != nil {
		content.Tags = req.Tags
	}
	if req.VideoURL != "" {
		content.VideoURL = &req.VideoURL
	}
	if req.Status != "" {
		content.Status = entity.ContentStatus(req.Status)
	}
	if err := content.ValidateSource(); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	// Author edits re-enter moderation; admin edits keep approval.
	if !isAdmin {
		content.IsApproved = false
	}
	content.UpdatedAt = time.Now()

	if err := uow.ContentRepository().Update(ctx, content); err != nil {
		return nil, err
	}

	s.requestIndexing(ctx, content.Id)
	return s.toResponse(ctx, uow, content, callerId), nil
}

func (s *contentService) Delete(ctx context.Context, callerId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if content == nil {
		return apperr.NotFound("Content not found")
	}
	if role != string(entity.UserRoleAdmin) && content.AuthorId != callerId {
		return apperr.Forbidden("Only the author can delete this content")
	}

	return uow.ContentRepository().Delete(ctx, id)
}

func (s *contentService) Download(ctx context.Context, viewerId uuid.UUID, role string, id uuid.UUID) (*entity.Content, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := s.visibleContent(ctx, uow, viewerId, role, id)
	if err != nil {
		return nil, err
	}
	if content.FilePath == nil || *content.FilePath == "" {
		return nil, apperr.BadRequest("This content has no downloadable file")
	}

	_ = uow.ContentRepository().IncrementDownloads(ctx, id)
	return content, nil
}

func (s *contentService) ToggleLike(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ToggleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.visibleContent(ctx, uow, userId, role, id); err != nil {
		return nil, err
	}

	repo := uow.ContentRepository()
	liked, err := repo.IsLiked(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	// Unguarded toggle: two racing requests may both read the same state.
	if liked {
		err = repo.RemoveLike(ctx, id, userId)
	} else {
		err = repo.AddLike(ctx, id, userId)
	}
	if err != nil {
		return nil, err
	}

	count, err := repo.CountLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleResponse{Active: !liked, Count: int(count)}, nil
}

func (s *contentService) ToggleBookmark(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ToggleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.visibleContent(ctx, uow, userId, role, id); err != nil {
		return nil, err
	}

	repo := uow.ContentRepository()
	bookmarked, err := repo.IsBookmarked(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if bookmarked {
		err = repo.RemoveBookmark(ctx, id, userId)
	} else {
		err = repo.AddBookmark(ctx, id, userId)
	}
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResponse{Active: !bookmarked}, nil
}

func (s *contentService) Bookmarks(ctx context.Context, userId uuid.UUID) ([]dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ContentRepository().FindBookmarked(ctx, userId, specification.PublicOnly{})
	if err != nil {
		return nil, err
	}

	res := make([]dto.ContentResponse, len(items))
	for i, c := range items {
		res[i] = *s.toResponse(ctx, uow, c, userId)
	}
	return res, nil
}

// visibleContent loads a content item and applies the read-time moderation
// rule; invisible items are masked as not found.
func (s *contentService) visibleContent(ctx context.Context, uow unitofwork.UnitOfWork, viewerId uuid.UUID, role string, id uuid.UUID) (*entity.Content, error) {
	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if content == nil || !content.VisibleTo(entity.UserRole(role), viewerId) {
		return nil, apperr.NotFound("Content not found")
	}
	return content, nil
}

func (s *contentService) requestIndexing(ctx context.Context, contentId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.IndexContentMessage{ContentId: contentId})
	if err != nil {
		return
	}
	_ = s.publisherService.Publish(ctx, payload)
}

func (s *contentService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.Content, viewerId uuid.UUID) *dto.ContentResponse {
	res := &dto.ContentResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		Subject:     c.Subject,
		Branch:      c.Branch,
		Tags:        c.Tags,
		AuthorId:    c.AuthorId,
		Views:       c.Views,
		Downloads:   c.Downloads,
		Status:      string(c.Status),
		IsApproved:  c.IsApproved,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Semester != nil {
		res.Semester = *c.Semester
	}
	if c.FileName != nil {
		res.FileName = *c.FileName
	}
	if c.FileSize != nil {
		res.FileSize = *c.FileSize
	}
	if c.MimeType != nil {
		res.MimeType = *c.MimeType
	}
	if c.VideoURL != nil {
		res.VideoURL = *c.VideoURL
	}

	if author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: c.AuthorId}); err == nil && author != nil {
		res.AuthorName = author.FullName
	}
	if count, err := uow.ContentRepository().CountLikes(ctx, c.Id); err == nil {
		res.Likes = int(count)
	}
	if viewerId != uuid.Nil {
		if liked, err := uow.ContentRepository().IsLiked(ctx, c.Id, viewerId); err == nil {
			res.Liked = liked
		}
		if bookmarked, err := uow.ContentRepository().IsBookmarked(ctx, c.Id, viewerId); err == nil {
			res.Bookmarked = bookmarked
		}
	}
	return res
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
