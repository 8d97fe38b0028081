package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Turn is a single conversation entry, either the user's question or the
// assistant's answer.
type Turn struct {
	Role    string
	Content string
	At      time.Time
}

// Pair is one resolved (question, answer) exchange.
type Pair struct {
	Question string
	Answer   string
	AskedAt  time.Time
}

// ConversationRepository keeps per-user AI conversation history in process
// memory only. History is lost on restart and is not shared across
// instances; clients should treat it as a convenience window, not a record.
type ConversationRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewConversationRepository() *ConversationRepository {
	// Entries never expire on their own; Trim bounds the size and Clear
	// drops a user's history explicitly.
	c := cache.New(cache.NoExpiration, 0)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Turns(userId uuid.UUID) []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.turnsLocked(userId)
}

func (r *ConversationRepository) turnsLocked(userId uuid.UUID) []Turn {
	if x, found := r.cache.Get(userId.String()); found {
		return x.([]Turn)
	}
	return nil
}

// Trim keeps only the most recent max entries for the user.
func (r *ConversationRepository) Trim(userId uuid.UUID, max int) []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := r.turnsLocked(userId)
	if len(turns) > max {
		turns = turns[len(turns)-max:]
		r.cache.Set(userId.String(), turns, cache.NoExpiration)
	}
	return turns
}

// Append adds turns to the end of the user's history.
func (r *ConversationRepository) Append(userId uuid.UUID, turns ...Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.turnsLocked(userId)
	updated := make([]Turn, 0, len(existing)+len(turns))
	updated = append(updated, existing...)
	updated = append(updated, turns...)
	r.cache.Set(userId.String(), updated, cache.NoExpiration)
}

// RecentPairs walks the history newest-first and pairs each assistant turn
// with the user turn immediately before it, returning at most max pairs.
// Dangling turns without a counterpart are skipped.
func (r *ConversationRepository) RecentPairs(userId uuid.UUID, max int) []Pair {
	r.mu.Lock()
	turns := r.turnsLocked(userId)
	r.mu.Unlock()

	var pairs []Pair
	for i := len(turns) - 1; i > 0 && len(pairs) < max; i-- {
		if turns[i].Role == "assistant" && turns[i-1].Role == "user" {
			pairs = append(pairs, Pair{
				Question: turns[i-1].Content,
				Answer:   turns[i].Content,
				AskedAt:  turns[i-1].At,
			})
			i--
		}
	}
	return pairs
}

func (r *ConversationRepository) Clear(userId uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(userId.String())
}
