package mapper

import (
	"acadmix-be/internal/entity"
	"acadmix-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	participants := make([]*entity.ChatParticipant, len(c.Participants))
	for i := range c.Participants {
		participants[i] = m.ParticipantToEntity(&c.Participants[i])
	}
	return &entity.Chat{
		Id:                  c.Id,
		Title:               c.Title,
		Type:                entity.ChatType(c.Type),
		CreatedBy:           c.CreatedBy,
		LastMessageContent:  c.LastMessageContent,
		LastMessageSenderId: c.LastMessageSenderId,
		LastMessageAt:       c.LastMessageAt,
		Participants:        participants,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	participants := make([]model.ChatParticipant, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = *m.ParticipantToModel(p)
	}
	return &model.Chat{
		Id:                  c.Id,
		Title:               c.Title,
		Type:                string(c.Type),
		CreatedBy:           c.CreatedBy,
		LastMessageContent:  c.LastMessageContent,
		LastMessageSenderId: c.LastMessageSenderId,
		LastMessageAt:       c.LastMessageAt,
		Participants:        participants,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ChatMapper) ToEntities(chats []*model.Chat) []*entity.Chat {
	entities := make([]*entity.Chat, len(chats))
	for i, c := range chats {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ChatMapper) ParticipantToEntity(p *model.ChatParticipant) *entity.ChatParticipant {
	if p == nil {
		return nil
	}
	return &entity.ChatParticipant{
		Id:       p.Id,
		ChatId:   p.ChatId,
		UserId:   p.UserId,
		Role:     entity.UserRole(p.Role),
		IsActive: p.IsActive,
		JoinedAt: p.JoinedAt,
		LeftAt:   p.LeftAt,
	}
}

func (m *ChatMapper) ParticipantToModel(p *entity.ChatParticipant) *model.ChatParticipant {
	if p == nil {
		return nil
	}
	return &model.ChatParticipant{
		Id:       p.Id,
		ChatId:   p.ChatId,
		UserId:   p.UserId,
		Role:     string(p.Role),
		IsActive: p.IsActive,
		JoinedAt: p.JoinedAt,
		LeftAt:   p.LeftAt,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	reads := make([]*entity.MessageRead, len(msg.ReadBy))
	for i, r := range msg.ReadBy {
		reads[i] = &entity.MessageRead{
			MessageId: r.MessageId,
			UserId:    r.UserId,
			ReadAt:    r.ReadAt,
		}
	}
	return &entity.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		SenderId:  msg.SenderId,
		Content:   msg.Content,
		FilePath:  msg.FilePath,
		FileName:  msg.FileName,
		MimeType:  msg.MimeType,
		ReadBy:    reads,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		SenderId:  msg.SenderId,
		Content:   msg.Content,
		FilePath:  msg.FilePath,
		FileName:  msg.FileName,
		MimeType:  msg.MimeType,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
