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
	"acadmix-be/internal/websocket"
)

type IChatService interface {
	Create(ctx context.Context, creatorId uuid.UUID, role string, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.ChatResponse, error)
	Messages(ctx context.Context, userId, chatId uuid.UUID, req *dto.MessageListRequest) (*dto.MessageListResponse, error)
	SendMessage(ctx context.Context, senderId, chatId uuid.UUID, req *dto.SendMessageRequest, file *dto.StoredFile) (*dto.MessageResponse, error)
	AddParticipant(ctx context.Context, callerId, chatId uuid.UUID, req *dto.AddParticipantRequest) error
	RemoveParticipant(ctx context.Context, callerId uuid.UUID, callerRole string, chatId, userId uuid.UUID) error
	Delete(ctx context.Context, callerId uuid.UUID, callerRole string, chatId uuid.UUID) error
	MarkRead(ctx context.Context, userId, chatId uuid.UUID) error

	// ActiveParticipantIDs satisfies websocket.ParticipantResolver so the hub
	// can target typing relays.
	ActiveParticipantIDs(ctx context.Context, chatId uuid.UUID) ([]uuid.UUID, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	hub        *websocket.Hub
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, hub *websocket.Hub) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		hub:        hub,
	}
}

func (s *chatService) Create(ctx context.Context, creatorId uuid.UUID, role string, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if role == string(entity.UserRoleAdmin) {
		return nil, apperr.Forbidden("Admins cannot participate in chats")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Creator is always a member; dedupe against the requested list.
	memberIds := []uuid.UUID{creatorId}
	for _, id := range req.ParticipantIds {
		if id != creatorId {
			memberIds = append(memberIds, id)
		}
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: memberIds})
	if err != nil {
		return nil, err
	}
	if len(users) != len(memberIds) {
		return nil, apperr.BadRequest("One or more participants do not exist")
	}

	now := time.Now()
	participants := make([]*entity.ChatParticipant, 0, len(users))
	for _, u := range users {
		if u.Status != entity.UserStatusActive {
			return nil, apperr.BadRequest("Cannot add a blocked user to a chat")
		}
		participants = append(participants, &entity.ChatParticipant{
			Id:       uuid.New(),
			UserId:   u.Id,
			Role:     u.Role,
			IsActive: true,
			JoinedAt: now,
		})
	}

	chatType := entity.ChatType(req.Type)
	if err := entity.ValidateComposition(chatType, participants); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	chat := &entity.Chat{
		Id:           uuid.New(),
		Title:        req.Title,
		Type:         chatType,
		CreatedBy:    creatorId,
		Participants: participants,
	}
	for _, p := range chat.Participants {
		p.ChatId = chat.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	resp := s.toChatResponse(ctx, chat, creatorId)

	s.hub.SendToUsers(chat.ActiveParticipantIDs(), websocket.ChatEvent{
		Type:   "new-chat",
		ChatId: &chat.Id,
		Data:   resp,
	})

	return resp, nil
}

func (s *chatService) List(ctx context.Context, userId uuid.UUID) ([]dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.ParticipantOf{UserId: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		out = append(out, *s.toChatResponse(ctx, chat, userId))
	}
	return out, nil
}

func (s *chatService) Messages(ctx context.Context, userId, chatId uuid.UUID, req *dto.MessageListRequest) (*dto.MessageListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.memberChat(ctx, uow, chatId, userId); err != nil {
		return nil, err
	}

	page, limit := normalizePage(req.Page, req.Limit)

	total, err := uow.ChatRepository().CountMessages(ctx, specification.ByChatId{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatRepository().FindMessages(ctx,
		specification.ByChatId{ChatId: chatId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, *toMessageResponse(m))
	}

	return &dto.MessageListResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, senderId, chatId uuid.UUID, req *dto.SendMessageRequest, file *dto.StoredFile) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.memberChat(ctx, uow, chatId, senderId)
	if err != nil {
		return nil, err
	}

	msg := &entity.ChatMessage{
		Id:       uuid.New(),
		ChatId:   chatId,
		SenderId: senderId,
		Content:  req.Content,
	}
	if file != nil {
		msg.FilePath = &file.Path
		msg.FileName = &file.Name
		msg.MimeType = &file.MimeType
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatRepository().CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := uow.ChatRepository().UpdateLastMessage(ctx, chatId, msg); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	resp := toMessageResponse(msg)

	s.hub.SendToUsers(chat.ActiveParticipantIDs(), websocket.ChatEvent{
		Type:   "new-message",
		ChatId: &chatId,
		Data:   resp,
	})

	return resp, nil
}

func (s *chatService) AddParticipant(ctx context.Context, callerId, chatId uuid.UUID, req *dto.AddParticipantRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.memberChat(ctx, uow, chatId, callerId)
	if err != nil {
		return err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if user.Status != entity.UserStatusActive {
		return apperr.BadRequest("Cannot add a blocked user to a chat")
	}

	existing := chat.Participant(req.UserId)
	if existing != nil && existing.IsActive {
		return apperr.Conflict("User is already a participant")
	}

	candidate := &entity.ChatParticipant{
		Id:       uuid.New(),
		ChatId:   chatId,
		UserId:   user.Id,
		Role:     user.Role,
		IsActive: true,
		JoinedAt: time.Now(),
	}
	proposed := append(chat.ActiveParticipants(), candidate)
	if err := entity.ValidateComposition(chat.Type, proposed); err != nil {
		return apperr.BadRequest(err.Error())
	}

	if existing != nil {
		// Previously removed member rejoining: flip the soft flag back.
		if err := uow.ChatRepository().ReactivateParticipant(ctx, chatId, req.UserId); err != nil {
			return err
		}
	} else {
		if err := uow.ChatRepository().AddParticipant(ctx, candidate); err != nil {
			return err
		}
	}

	s.hub.SendJSON(req.UserId, websocket.ChatEvent{
		Type:   "added-to-chat",
		ChatId: &chatId,
		Data:   s.toChatResponse(ctx, chat, req.UserId),
	})

	return nil
}

func (s *chatService) RemoveParticipant(ctx context.Context, callerId uuid.UUID, callerRole string, chatId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
	if err != nil {
		return err
	}
	if chat == nil {
		return apperr.NotFound("Chat not found")
	}

	// Leaving is always allowed; removing someone else takes creator or admin.
	if callerId != userId && callerId != chat.CreatedBy && callerRole != string(entity.UserRoleAdmin) {
		return apperr.Forbidden("Only the chat creator can remove participants")
	}

	target := chat.Participant(userId)
	if target == nil || !target.IsActive {
		return apperr.NotFound("Participant not found")
	}

	var remaining []*entity.ChatParticipant
	for _, p := range chat.ActiveParticipants() {
		if p.UserId != userId {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) > 0 {
		if err := entity.ValidateComposition(chat.Type, remaining); err != nil {
			return apperr.BadRequest(err.Error())
		}
	}

	if err := uow.ChatRepository().DeactivateParticipant(ctx, chatId, userId); err != nil {
		return err
	}

	s.hub.SendJSON(userId, websocket.ChatEvent{
		Type:   "removed-from-chat",
		ChatId: &chatId,
	})

	return nil
}

func (s *chatService) Delete(ctx context.Context, callerId uuid.UUID, callerRole string, chatId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
	if err != nil {
		return err
	}
	if chat == nil {
		return apperr.NotFound("Chat not found")
	}
	if callerId != chat.CreatedBy && callerRole != string(entity.UserRoleAdmin) {
		return apperr.Forbidden("Only the chat creator can delete the chat")
	}

	recipients := chat.ActiveParticipantIDs()

	if err := uow.ChatRepository().Delete(ctx, chatId); err != nil {
		return err
	}

	s.hub.SendToUsers(recipients, websocket.ChatEvent{
		Type:   "chat-deleted",
		ChatId: &chatId,
	})

	return nil
}

func (s *chatService) MarkRead(ctx context.Context, userId, chatId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.memberChat(ctx, uow, chatId, userId); err != nil {
		return err
	}
	return uow.ChatRepository().MarkRead(ctx, chatId, userId)
}

func (s *chatService) ActiveParticipantIDs(ctx context.Context, chatId uuid.UUID) ([]uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperr.NotFound("Chat not found")
	}
	return chat.ActiveParticipantIDs(), nil
}

// memberChat loads the chat and verifies the user is an active participant.
// Non-members get 404, not 403, to avoid confirming the chat exists.
func (s *chatService) memberChat(ctx context.Context, uow unitofwork.UnitOfWork, chatId, userId uuid.UUID) (*entity.Chat, error) {
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
	if err != nil {
		return nil, err
	}
	if chat == nil || !chat.IsActiveParticipant(userId) {
		return nil, apperr.NotFound("Chat not found")
	}
	return chat, nil
}

func (s *chatService) toChatResponse(ctx context.Context, chat *entity.Chat, viewerId uuid.UUID) *dto.ChatResponse {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp := &dto.ChatResponse{
		Id:        chat.Id,
		Title:     chat.Title,
		Type:      string(chat.Type),
		CreatedBy: chat.CreatedBy,
		CreatedAt: chat.CreatedAt,
	}
	if chat.LastMessageContent != nil {
		resp.LastMessage = *chat.LastMessageContent
	}
	resp.LastMessageAt = chat.LastMessageAt

	if unread, err := uow.ChatRepository().CountUnread(ctx, chat.Id, viewerId); err == nil {
		resp.UnreadCount = int(unread)
	}

	var memberIds []uuid.UUID
	for _, p := range chat.Participants {
		memberIds = append(memberIds, p.UserId)
	}
	names := map[uuid.UUID]string{}
	if len(memberIds) > 0 {
		if users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: memberIds}); err == nil {
			for _, u := range users {
				names[u.Id] = u.FullName
			}
		}
	}

	for _, p := range chat.Participants {
		resp.Participants = append(resp.Participants, dto.ChatParticipantResponse{
			UserId:   p.UserId,
			FullName: names[p.UserId],
			Role:     string(p.Role),
			IsActive: p.IsActive,
			JoinedAt: p.JoinedAt,
		})
	}

	return resp
}

func toMessageResponse(m *entity.ChatMessage) *dto.MessageResponse {
	resp := &dto.MessageResponse{
		Id:        m.Id,
		ChatId:    m.ChatId,
		SenderId:  m.SenderId,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.FileName != nil {
		resp.FileName = *m.FileName
	}
	if m.FilePath != nil {
		resp.FileURL = "/" + *m.FilePath
	}
	if m.MimeType != nil {
		resp.MimeType = *m.MimeType
	}
	for _, r := range m.ReadBy {
		resp.ReadBy = append(resp.ReadBy, r.UserId)
	}
	return resp
}
