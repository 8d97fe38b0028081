package mapper

import (
	"gorm.io/datatypes"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToEntity(c *model.Content) *entity.Content {
	if c == nil {
		return nil
	}
	return &entity.Content{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Type:        entity.ContentType(c.Type),
		Subject:     c.Subject,
		Branch:      c.Branch,
		Semester:    c.Semester,
		Tags:        []string(c.Tags),
		AuthorId:    c.AuthorId,
		FilePath:    c.FilePath,
		FileName:    c.FileName,
		FileSize:    c.FileSize,
		MimeType:    c.MimeType,
		VideoURL:    c.VideoURL,
		Views:       c.Views,
		Downloads:   c.Downloads,
		Status:      entity.ContentStatus(c.Status),
		IsApproved:  c.IsApproved,
		SearchText:  c.SearchText,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ContentMapper) ToModel(c *entity.Content) *model.Content {
	if c == nil {
		return nil
	}
	return &model.Content{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		Subject:     c.Subject,
		Branch:      c.Branch,
		Semester:    c.Semester,
		Tags:        datatypes.JSONSlice[string](c.Tags),
		AuthorId:    c.AuthorId,
		FilePath:    c.FilePath,
		FileName:    c.FileName,
		FileSize:    c.FileSize,
		MimeType:    c.MimeType,
		VideoURL:    c.VideoURL,
		Views:       c.Views,
		Downloads:   c.Downloads,
		Status:      string(c.Status),
		IsApproved:  c.IsApproved,
		SearchText:  c.SearchText,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ContentMapper) ToEntities(contents []*model.Content) []*entity.Content {
	entities := make([]*entity.Content, len(contents))
	for i, c := range contents {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
