package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"acadmix-be/internal/config"
	"acadmix-be/internal/constant"
	"acadmix-be/internal/dto"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/repository/memory"
	"acadmix-be/pkg/llm"
	"acadmix-be/pkg/promptfilter"
)

type fakeProvider struct {
	history []llm.Message
	reply   string
	tokens  int
	err     error
	calls   int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Completion, error) {
	f.calls++
	f.history = history
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Content: f.reply, TokensUsed: f.tokens}, nil
}

func newTestAiService(provider llm.LLMProvider) (IAiChatService, *memory.ConversationRepository) {
	conversations := memory.NewConversationRepository()
	svc := NewAiChatService(nil, conversations, provider, promptfilter.New(), config.AIConfig{
		Model:       "test-model",
		MaxTokens:   200,
		HistorySize: 10,
	})
	return svc, conversations
}

func TestChatAnswersAcademicQuestion(t *testing.T) {
	provider := &fakeProvider{reply: "Start by factoring the quadratic.", tokens: 42}
	svc, conversations := newTestAiService(provider)
	userId := uuid.New()

	res, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{
		Message: "How do I solve this quadratic equation?",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Message != provider.reply {
		t.Errorf("Message = %q, want %q", res.Message, provider.reply)
	}
	if res.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", res.TokensUsed)
	}

	if len(provider.history) == 0 {
		t.Fatal("provider received no messages")
	}
	first := provider.history[0]
	if first.Role != constant.ChatMessageRoleSystem || first.Content != constant.TutorSystemPromptV1 {
		t.Errorf("first message should be the tutor system prompt, got role=%q", first.Role)
	}
	last := provider.history[len(provider.history)-1]
	if last.Role != constant.ChatMessageRoleUser {
		t.Errorf("last message role = %q, want user", last.Role)
	}

	turns := conversations.Turns(userId)
	if len(turns) != 2 {
		t.Fatalf("stored turns = %d, want 2", len(turns))
	}
	if turns[1].Role != constant.ChatMessageRoleAssistant || turns[1].Content != provider.reply {
		t.Errorf("assistant turn not recorded: %+v", turns[1])
	}
}

func TestChatRejectsOffTopicWithoutCallingProvider(t *testing.T) {
	provider := &fakeProvider{reply: "should never be used"}
	svc, conversations := newTestAiService(provider)
	userId := uuid.New()

	_, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{
		Message: "what's the weather like today",
	})
	if err == nil {
		t.Fatal("expected rejection error")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Type != "invalid_prompt" {
		t.Errorf("error = %v, want invalid_prompt", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for rejected prompt", provider.calls)
	}
	if turns := conversations.Turns(userId); len(turns) != 0 {
		t.Errorf("rejected prompt stored %d turns", len(turns))
	}
}

func TestChatFreeTextContextDoesNotRelaxFilter(t *testing.T) {
	provider := &fakeProvider{reply: "should never be used"}
	svc, _ := newTestAiService(provider)
	userId := uuid.New()

	_, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{
		Message: "tell me a joke",
		Context: "anything at all",
	})
	if err == nil {
		t.Fatal("expected rejection error")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Type != "invalid_prompt" {
		t.Errorf("error = %v, want invalid_prompt", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for off-topic prompt with pasted context", provider.calls)
	}
}

func TestChatMapsProviderFailures(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		wantType    string
	}{
		{"quota exhausted", llm.ErrQuotaExceeded, "service_unavailable"},
		{"rate limited", llm.ErrRateLimited, "rate_limit"},
		{"generic failure", errors.New("connection reset"), "service_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: tt.providerErr}
			svc, conversations := newTestAiService(provider)
			userId := uuid.New()

			_, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{
				Message: "Explain the concept of eigenvalues",
			})
			if err == nil {
				t.Fatal("expected error")
			}
			var appErr *apperr.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("error = %v, want *apperr.Error", err)
			}
			if appErr.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", appErr.Type, tt.wantType)
			}
			if turns := conversations.Turns(userId); len(turns) != 0 {
				t.Errorf("failed call stored %d turns", len(turns))
			}
		})
	}
}

func TestChatSendsBoundedHistory(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, _ := newTestAiService(provider)
	userId := uuid.New()

	for i := 0; i < 12; i++ {
		if _, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{
			Message: "Explain the concept of limits in calculus",
		}); err != nil {
			t.Fatalf("Chat() #%d error = %v", i, err)
		}
	}

	// system prompt + at most HistorySize prior turns + the new user turn
	if got, max := len(provider.history), 1+10+1; got > max {
		t.Errorf("provider received %d messages, want at most %d", got, max)
	}
}

func TestHistoryReturnsNewestPairsFirst(t *testing.T) {
	provider := &fakeProvider{reply: "answer"}
	svc, _ := newTestAiService(provider)
	userId := uuid.New()

	questions := []string{
		"Explain the concept of recursion",
		"What is the difference between stack and heap?",
		"How do I solve this integral problem?",
	}
	for _, q := range questions {
		if _, err := svc.Chat(context.Background(), userId, "student", &dto.AiChatRequest{Message: q}); err != nil {
			t.Fatalf("Chat(%q) error = %v", q, err)
		}
	}

	pairs, err := svc.History(context.Background(), userId, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("History() returned %d pairs, want 3", len(pairs))
	}
	if pairs[0].Question != questions[2] {
		t.Errorf("newest pair = %q, want %q", pairs[0].Question, questions[2])
	}
	if pairs[2].Question != questions[0] {
		t.Errorf("oldest pair = %q, want %q", pairs[2].Question, questions[0])
	}

	if err := svc.ClearHistory(context.Background(), userId); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	pairs, _ = svc.History(context.Background(), userId, 10)
	if len(pairs) != 0 {
		t.Errorf("history after clear has %d pairs", len(pairs))
	}
}
