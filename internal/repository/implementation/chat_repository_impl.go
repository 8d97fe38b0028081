package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acadmix-be/internal/entity"
	"acadmix-be/internal/mapper"
	"acadmix-be/internal/model"
	"acadmix-be/internal/repository/contract"
	"acadmix-be/internal/repository/specification"
)

type ChatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	return &ChatRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatRepositoryImpl) Create(ctx context.Context, chat *entity.Chat) error {
	m := r.mapper.ToModel(chat)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chat = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Chat{}).Error
}

func (r *ChatRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	var m model.Chat
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Participants"), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ChatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	var models []*model.Chat
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Participants"), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ChatRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Chat{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatRepositoryImpl) UpdateLastMessage(ctx context.Context, chatId uuid.UUID, msg *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Model(&model.Chat{}).
		Where("id = ?", chatId).
		Updates(map[string]interface{}{
			"last_message_content":   msg.Content,
			"last_message_sender_id": msg.SenderId,
			"last_message_at":        msg.CreatedAt,
		}).Error
}

// Participants

func (r *ChatRepositoryImpl) AddParticipant(ctx context.Context, p *entity.ChatParticipant) error {
	m := r.mapper.ParticipantToModel(p)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*p = *r.mapper.ParticipantToEntity(m)
	return nil
}

func (r *ChatRepositoryImpl) DeactivateParticipant(ctx context.Context, chatId, userId uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ? AND is_active = ?", chatId, userId, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"left_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("participant not found")
	}
	return nil
}

func (r *ChatRepositoryImpl) ReactivateParticipant(ctx context.Context, chatId, userId uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatId, userId).
		Updates(map[string]interface{}{
			"is_active": true,
			"left_at":   nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("participant not found")
	}
	return nil
}

func (r *ChatRepositoryImpl) FindParticipant(ctx context.Context, chatId, userId uuid.UUID) (*entity.ChatParticipant, error) {
	var m model.ChatParticipant
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParticipantToEntity(&m), nil
}

// Messages

func (r *ChatRepositoryImpl) CreateMessage(ctx context.Context, msg *entity.ChatMessage) error {
	m := r.mapper.MessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *ChatRepositoryImpl) FindMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("ReadBy"), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *ChatRepositoryImpl) CountMessages(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatRepositoryImpl) CountUnread(ctx context.Context, chatId, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("chat_id = ? AND sender_id <> ?", chatId, userId).
		Where("id NOT IN (SELECT message_id FROM message_reads WHERE user_id = ?)", userId).
		Count(&count).Error
	return count, err
}

// MarkRead inserts read receipts for every unread message in the chat.
func (r *ChatRepositoryImpl) MarkRead(ctx context.Context, chatId, userId uuid.UUID) error {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("chat_id = ? AND sender_id <> ?", chatId, userId).
		Where("id NOT IN (SELECT message_id FROM message_reads WHERE user_id = ?)", userId).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	reads := make([]model.MessageRead, len(ids))
	now := time.Now()
	for i, id := range ids {
		reads[i] = model.MessageRead{MessageId: id, UserId: userId, ReadAt: now}
	}
	return r.db.WithContext(ctx).CreateInBatches(reads, 500).Error
}
