package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"acadmix-be/pkg/llm"
)

func TestChatReturnsCompletion(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "A derivative measures rate of change."}}],
			"usage": {"total_tokens": 42}
		}`))
	}))
	defer server.Close()

	p := NewProvider("test-key", server.URL, "test-model")
	completion, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a tutor."},
		{Role: "user", Content: "What is a derivative?"},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if completion.Content != "A derivative measures rate of change." {
		t.Errorf("unexpected content %q", completion.Content)
	}
	if completion.TokensUsed != 42 {
		t.Errorf("expected 42 tokens, got %d", completion.TokensUsed)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("expected model override, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(gotReq.Messages))
	}
}

func TestChatClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "payment required means quota",
			status:  http.StatusPaymentRequired,
			body:    `{"error": {"message": "billing hard limit"}}`,
			wantErr: llm.ErrQuotaExceeded,
		},
		{
			name:    "429 with insufficient_quota means quota",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "quota", "code": "insufficient_quota"}}`,
			wantErr: llm.ErrQuotaExceeded,
		},
		{
			name:    "plain 429 means rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "slow down"}}`,
			wantErr: llm.ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewProvider("k", server.URL, "m")
			_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestChatGenericUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	p := NewProvider("k", server.URL, "m")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, llm.ErrQuotaExceeded) || errors.Is(err, llm.ErrRateLimited) {
		t.Errorf("expected generic error, got typed %v", err)
	}
}
