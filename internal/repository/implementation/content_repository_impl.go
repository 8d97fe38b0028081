package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/mapper"
	"acadmix-be/internal/model"
	"acadmix-be/internal/repository/contract"
	"acadmix-be/internal/repository/specification"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, content *entity.Content) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) Update(ctx context.Context, content *entity.Content) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{}).Error
}

func (r *ContentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Content, error) {
	var m model.Content
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ContentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Content, error) {
	var models []*model.Content
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ContentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Content{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContentRepositoryImpl) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *ContentRepositoryImpl) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
}

func (r *ContentRepositoryImpl) SetApproval(ctx context.Context, id uuid.UUID, status string, approved bool) error {
	result := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"is_approved": approved,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("content not found")
	}
	return nil
}

func (r *ContentRepositoryImpl) UpdateSearchText(ctx context.Context, id uuid.UUID, text string) error {
	return r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", id).
		UpdateColumn("search_text", text).Error
}

// Likes

func (r *ContentRepositoryImpl) IsLiked(ctx context.Context, contentId, userId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContentLike{}).
		Where("content_id = ? AND user_id = ?", contentId, userId).
		Count(&count).Error
	return count > 0, err
}

func (r *ContentRepositoryImpl) AddLike(ctx context.Context, contentId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&model.ContentLike{
		ContentId: contentId,
		UserId:    userId,
	}).Error
}

func (r *ContentRepositoryImpl) RemoveLike(ctx context.Context, contentId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentId, userId).
		Delete(&model.ContentLike{}).Error
}

func (r *ContentRepositoryImpl) CountLikes(ctx context.Context, contentId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContentLike{}).
		Where("content_id = ?", contentId).
		Count(&count).Error
	return count, err
}

// Bookmarks

func (r *ContentRepositoryImpl) IsBookmarked(ctx context.Context, contentId, userId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContentBookmark{}).
		Where("content_id = ? AND user_id = ?", contentId, userId).
		Count(&count).Error
	return count > 0, err
}

func (r *ContentRepositoryImpl) AddBookmark(ctx context.Context, contentId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&model.ContentBookmark{
		ContentId: contentId,
		UserId:    userId,
	}).Error
}

func (r *ContentRepositoryImpl) RemoveBookmark(ctx context.Context, contentId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentId, userId).
		Delete(&model.ContentBookmark{}).Error
}

func (r *ContentRepositoryImpl) FindBookmarked(ctx context.Context, userId uuid.UUID, specs ...specification.Specification) ([]*entity.Content, error) {
	var models []*model.Content
	query := r.db.WithContext(ctx).
		Joins("JOIN content_bookmarks ON content_bookmarks.content_id = contents.id").
		Where("content_bookmarks.user_id = ?", userId).
		Order("content_bookmarks.created_at DESC")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
