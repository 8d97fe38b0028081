package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"acadmix-be/internal/config"
	"acadmix-be/internal/constant"
	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/repository/memory"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
	"acadmix-be/pkg/llm"
	"acadmix-be/pkg/promptfilter"
)

type IAiChatService interface {
	Chat(ctx context.Context, userId uuid.UUID, role string, req *dto.AiChatRequest) (*dto.AiChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]dto.AiExchange, error)
	ClearHistory(ctx context.Context, userId uuid.UUID) error
}

type aiChatService struct {
	uowFactory    unitofwork.RepositoryFactory
	conversations *memory.ConversationRepository
	provider      llm.LLMProvider
	filter        *promptfilter.Filter
	cfg           config.AIConfig
}

func NewAiChatService(
	uowFactory unitofwork.RepositoryFactory,
	conversations *memory.ConversationRepository,
	provider llm.LLMProvider,
	filter *promptfilter.Filter,
	cfg config.AIConfig,
) IAiChatService {
	return &aiChatService{
		uowFactory:    uowFactory,
		conversations: conversations,
		provider:      provider,
		filter:        filter,
		cfg:           cfg,
	}
}

func (s *aiChatService) Chat(ctx context.Context, userId uuid.UUID, role string, req *dto.AiChatRequest) (*dto.AiChatResponse, error) {
	contentContext, err := s.resolveContentContext(ctx, userId, role, req.ContentId)
	if err != nil {
		return nil, err
	}

	// Only a resolved content record relaxes the filter. Caller-supplied
	// free-text context is forwarded to the model below but never skips
	// scoring, otherwise any prompt could ride in on an arbitrary string.
	hasContext := contentContext != ""
	verdict := s.filter.Check(req.Message, hasContext)
	if !verdict.Accepted {
		return nil, apperr.InvalidPrompt(promptfilter.RejectionMessage)
	}

	// Trim before the call so the window sent upstream is bounded even when a
	// previous request crashed between trim and append.
	history := s.conversations.Trim(userId, s.cfg.HistorySize)

	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.TutorSystemPromptV1,
	})
	if contentContext != "" {
		messages = append(messages, llm.Message{
			Role:    constant.ChatMessageRoleSystem,
			Content: "Study material context:\n" + contentContext,
		})
	}
	if c := strings.TrimSpace(req.Context); c != "" {
		messages = append(messages, llm.Message{
			Role:    constant.ChatMessageRoleSystem,
			Content: "Additional context from the student:\n" + c,
		})
	}
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: verdict.CleanedMessage,
	})

	completion, err := s.provider.Chat(ctx, messages,
		llm.WithModel(s.cfg.Model),
		llm.WithMaxTokens(s.cfg.MaxTokens),
	)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrQuotaExceeded):
			return nil, apperr.ServiceUnavailable("The AI assistant is temporarily unavailable")
		case errors.Is(err, llm.ErrRateLimited):
			return nil, apperr.RateLimit("Too many questions right now, slow down a little")
		default:
			return nil, apperr.ServiceUnavailable(constant.TryAgainMessage)
		}
	}

	now := time.Now()
	// Appended only after a successful completion: failed calls leave no
	// half-written exchange in the window.
	s.conversations.Append(userId,
		memory.Turn{Role: constant.ChatMessageRoleUser, Content: verdict.CleanedMessage, At: now},
		memory.Turn{Role: constant.ChatMessageRoleAssistant, Content: completion.Content, At: now},
	)

	return &dto.AiChatResponse{
		Message:    completion.Content,
		Timestamp:  now,
		TokensUsed: completion.TokensUsed,
	}, nil
}

func (s *aiChatService) History(ctx context.Context, userId uuid.UUID, limit int) ([]dto.AiExchange, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	pairs := s.conversations.RecentPairs(userId, limit)
	out := make([]dto.AiExchange, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.AiExchange{
			Question: p.Question,
			Answer:   p.Answer,
			AskedAt:  p.AskedAt,
		})
	}
	return out, nil
}

func (s *aiChatService) ClearHistory(ctx context.Context, userId uuid.UUID) error {
	s.conversations.Clear(userId)
	return nil
}

// resolveContentContext turns an optional content reference into a context
// block for the system prompt. Content the user cannot see reads as absent.
func (s *aiChatService) resolveContentContext(ctx context.Context, userId uuid.UUID, role string, contentId *uuid.UUID) (string, error) {
	if contentId == nil {
		return "", nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: *contentId})
	if err != nil {
		return "", err
	}
	if content == nil || !content.VisibleTo(entity.UserRole(role), userId) {
		return "", apperr.NotFound("Content not found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\nType: %s\nSubject: %s\nBranch: %s\n", content.Title, content.Type, content.Subject, content.Branch)
	if content.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", content.Description)
	}
	if len(content.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(content.Tags, ", "))
	}
	return b.String(), nil
}
