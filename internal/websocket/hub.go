package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"acadmix-be/internal/model"
	"acadmix-be/internal/pkg/logger"
)

// ChatEvent is the wire shape for every realtime push: chat events, typing
// relays, notifications, announcement fan-out.
type ChatEvent struct {
	Type   string      `json:"type"`
	ChatId *uuid.UUID  `json:"chat_id,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// ParticipantResolver answers which users should receive a chat-scoped event.
// Set after construction to break the service → hub → service cycle.
type ParticipantResolver interface {
	ActiveParticipantIDs(ctx context.Context, chatId uuid.UUID) ([]uuid.UUID, error)
}

type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Resolves typing relays arriving on client connections.
	resolver   ParticipantResolver
	resolverMu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

// SetParticipantResolver wires the chat lookup in after both sides exist.
func (h *Hub) SetParticipantResolver(r ParticipantResolver) {
	h.resolverMu.Lock()
	h.resolver = r
	h.resolverMu.Unlock()
}

func (h *Hub) participantResolver() ParticipantResolver {
	h.resolverMu.RLock()
	defer h.resolverMu.RUnlock()
	return h.resolver
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendJSON delivers an event to one user's connections, on this instance and
// via the cluster channel on any other. Fire-and-forget: a slow client is
// dropped, never waited on.
func (h *Hub) SendJSON(userID uuid.UUID, event ChatEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}
	h.sendRaw(userID, data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": userID.String(),
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send pushes a persisted notification to one user. Satisfies the
// notification worker's delivery interface.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	h.SendJSON(userID, ChatEvent{Type: "notification", Data: notification})
}

// SendToUsers fans one event out to a set of users.
func (h *Hub) SendToUsers(userIDs []uuid.UUID, event ChatEvent) {
	for _, id := range userIDs {
		h.SendJSON(id, event)
	}
}

// BroadcastJSON sends an event to ALL connected clients.
func (h *Hub) BroadcastJSON(event ChatEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
	h.mu.RUnlock()

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": "*", // Wildcard for broadcast
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) sendRaw(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
			close(client.Send)
			h.unregister <- client
		}
	}
}

// relayTyping forwards an ephemeral typing/stop-typing signal to the other
// active participants of the chat. Never persisted.
func (h *Hub) relayTyping(sender uuid.UUID, event ChatEvent) {
	if event.ChatId == nil {
		return
	}
	resolver := h.participantResolver()
	if resolver == nil {
		return
	}

	ids, err := resolver.ActiveParticipantIDs(context.Background(), *event.ChatId)
	if err != nil {
		h.logger.Warn("Hub", "Typing relay lookup failed", map[string]interface{}{
			"chat_id": event.ChatId,
			"error":   err.Error(),
		})
		return
	}

	// Only members may signal into a chat; a socket naming a foreign chat id
	// is dropped silently.
	member := false
	for _, id := range ids {
		if id == sender {
			member = true
			break
		}
	}
	if !member {
		return
	}

	event.Data = map[string]interface{}{"user_id": sender}
	for _, id := range ids {
		if id == sender {
			continue
		}
		h.SendJSON(id, event)
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "cluster_events"; each message names its
	// target user (or "*") and instances deliver to local connections only.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						close(client.Send)
						h.unregister <- client
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.sendRaw(uid, payload.Message)
	}
}
