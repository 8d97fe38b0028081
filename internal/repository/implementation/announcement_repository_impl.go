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

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnnouncementMapper
}

func NewAnnouncementRepository(db *gorm.DB) contract.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnnouncementMapper(),
	}
}

func (r *AnnouncementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *entity.Announcement) error {
	m := r.mapper.ToModel(a)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*a = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, a *entity.Announcement) error {
	m := r.mapper.ToModel(a)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*a = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Announcement{}).Error
}

func (r *AnnouncementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Announcement, error) {
	var m model.Announcement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnnouncementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Announcement, error) {
	var models []*model.Announcement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnnouncementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Announcement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead is idempotent: re-reading an announcement keeps the first receipt.
func (r *AnnouncementRepositoryImpl) MarkRead(ctx context.Context, announcementId, userId uuid.UUID) error {
	err := r.db.WithContext(ctx).Create(&model.AnnouncementRead{
		AnnouncementId: announcementId,
		UserId:         userId,
	}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *AnnouncementRepositoryImpl) ReadIds(ctx context.Context, userId uuid.UUID, announcementIds []uuid.UUID) (map[uuid.UUID]bool, error) {
	read := make(map[uuid.UUID]bool, len(announcementIds))
	if len(announcementIds) == 0 {
		return read, nil
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.AnnouncementRead{}).
		Where("user_id = ? AND announcement_id IN ?", userId, announcementIds).
		Pluck("announcement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		read[id] = true
	}
	return read, nil
}
