package mapper

import (
	"gorm.io/datatypes"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/model"
)

type AnnouncementMapper struct{}

func NewAnnouncementMapper() *AnnouncementMapper {
	return &AnnouncementMapper{}
}

func (m *AnnouncementMapper) ToEntity(a *model.Announcement) *entity.Announcement {
	if a == nil {
		return nil
	}
	return &entity.Announcement{
		Id:             a.Id,
		Title:          a.Title,
		Content:        a.Content,
		AuthorId:       a.AuthorId,
		Audience:       entity.AnnouncementAudience(a.Audience),
		TargetBranches: []string(a.TargetBranches),
		TargetYears:    []int(a.TargetYears),
		IsPinned:       a.IsPinned,
		Priority:       entity.AnnouncementPriority(a.Priority),
		ExpiresAt:      a.ExpiresAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (m *AnnouncementMapper) ToModel(a *entity.Announcement) *model.Announcement {
	if a == nil {
		return nil
	}
	return &model.Announcement{
		Id:             a.Id,
		Title:          a.Title,
		Content:        a.Content,
		AuthorId:       a.AuthorId,
		Audience:       string(a.Audience),
		TargetBranches: datatypes.JSONSlice[string](a.TargetBranches),
		TargetYears:    datatypes.JSONSlice[int](a.TargetYears),
		IsPinned:       a.IsPinned,
		Priority:       string(a.Priority),
		ExpiresAt:      a.ExpiresAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (m *AnnouncementMapper) ToEntities(items []*model.Announcement) []*entity.Announcement {
	entities := make([]*entity.Announcement, len(items))
	for i, a := range items {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
