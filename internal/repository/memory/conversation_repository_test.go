package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func exchange(r *ConversationRepository, userId uuid.UUID, n int) {
	at := time.Now()
	r.Append(userId,
		Turn{Role: "user", Content: fmt.Sprintf("question %d", n), At: at},
		Turn{Role: "assistant", Content: fmt.Sprintf("answer %d", n), At: at},
	)
}

func TestTrimBoundsHistory(t *testing.T) {
	r := NewConversationRepository()
	userId := uuid.New()

	for i := 1; i <= 8; i++ {
		r.Trim(userId, 10)
		exchange(r, userId, i)
	}

	// 8 exchanges appended; the last trim ran before the final append, so the
	// window briefly holds 12 entries until the next call trims it back.
	turns := r.Turns(userId)
	if len(turns) != 12 {
		t.Fatalf("expected 12 turns, got %d", len(turns))
	}

	trimmed := r.Trim(userId, 10)
	if len(trimmed) != 10 {
		t.Fatalf("expected 10 turns after trim, got %d", len(trimmed))
	}
	if trimmed[0].Content != "question 4" {
		t.Errorf("expected oldest kept turn to be question 4, got %q", trimmed[0].Content)
	}
}

func TestRecentPairsNewestFirst(t *testing.T) {
	r := NewConversationRepository()
	userId := uuid.New()

	for i := 1; i <= 6; i++ {
		exchange(r, userId, i)
	}

	pairs := r.RecentPairs(userId, 5)
	if len(pairs) != 5 {
		t.Fatalf("expected 5 pairs, got %d", len(pairs))
	}
	if pairs[0].Question != "question 6" || pairs[0].Answer != "answer 6" {
		t.Errorf("expected newest pair first, got %q / %q", pairs[0].Question, pairs[0].Answer)
	}
	if pairs[4].Question != "question 2" {
		t.Errorf("expected oldest returned pair to be question 2, got %q", pairs[4].Question)
	}
}

func TestRecentPairsSkipsDanglingTurn(t *testing.T) {
	r := NewConversationRepository()
	userId := uuid.New()

	exchange(r, userId, 1)
	r.Append(userId, Turn{Role: "user", Content: "unanswered", At: time.Now()})

	pairs := r.RecentPairs(userId, 5)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Question != "question 1" {
		t.Errorf("expected question 1, got %q", pairs[0].Question)
	}
}

func TestClearDropsHistory(t *testing.T) {
	r := NewConversationRepository()
	userId := uuid.New()
	other := uuid.New()

	exchange(r, userId, 1)
	exchange(r, other, 1)

	r.Clear(userId)

	if turns := r.Turns(userId); len(turns) != 0 {
		t.Errorf("expected cleared history, got %d turns", len(turns))
	}
	if turns := r.Turns(other); len(turns) != 2 {
		t.Errorf("expected other user's history untouched, got %d turns", len(turns))
	}
}

func TestHistoriesAreIsolatedPerUser(t *testing.T) {
	r := NewConversationRepository()
	a := uuid.New()
	b := uuid.New()

	exchange(r, a, 1)

	if turns := r.Turns(b); len(turns) != 0 {
		t.Errorf("expected empty history for other user, got %d turns", len(turns))
	}
}
