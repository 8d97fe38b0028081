package websocket

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"acadmix-be/internal/pkg/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type staticResolver struct {
	ids []uuid.UUID
}

func (r staticResolver) ActiveParticipantIDs(ctx context.Context, chatId uuid.UUID) ([]uuid.UUID, error) {
	return r.ids, nil
}

// attach registers a connection for userID directly, bypassing the run loop.
func attach(h *Hub, userID uuid.UUID) *Client {
	c := &Client{Hub: h, UserID: userID, Send: make(chan []byte, 4)}
	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], c)
	h.mu.Unlock()
	return c
}

func TestRelayTypingReachesOtherMembers(t *testing.T) {
	sender := uuid.New()
	peer := uuid.New()
	chatId := uuid.New()

	h := NewHub(nil, noopLogger{})
	h.SetParticipantResolver(staticResolver{ids: []uuid.UUID{sender, peer}})
	senderConn := attach(h, sender)
	peerConn := attach(h, peer)

	h.relayTyping(sender, ChatEvent{Type: "typing", ChatId: &chatId})

	select {
	case raw := <-peerConn.Send:
		var event ChatEvent
		assert.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "typing", event.Type)
	default:
		t.Fatal("peer received no typing event")
	}

	select {
	case <-senderConn.Send:
		t.Fatal("typing event echoed back to the sender")
	default:
	}
}

func TestRelayTypingDropsNonMemberSender(t *testing.T) {
	memberA := uuid.New()
	memberB := uuid.New()
	outsider := uuid.New()
	chatId := uuid.New()

	h := NewHub(nil, noopLogger{})
	h.SetParticipantResolver(staticResolver{ids: []uuid.UUID{memberA, memberB}})
	aConn := attach(h, memberA)
	bConn := attach(h, memberB)

	h.relayTyping(outsider, ChatEvent{Type: "typing", ChatId: &chatId})

	assert.Empty(t, aConn.Send, "non-member signal must not reach chat members")
	assert.Empty(t, bConn.Send, "non-member signal must not reach chat members")
}
