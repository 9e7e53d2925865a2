package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/x-maues/rag-flarista/internal/models"
)

func exchange(n int) []models.Message {
	return []models.Message{
		{Role: models.RoleUser, Content: fmt.Sprintf("question %d", n)},
		{Role: models.RoleAssistant, Content: fmt.Sprintf("answer %d", n)},
	}
}

func TestGetOrCreate_FreshID(t *testing.T) {
	store := NewStore()

	id1, history := store.GetOrCreate("")
	if id1 == "" {
		t.Fatal("expected a minted id for empty input")
	}
	if len(history) != 0 {
		t.Errorf("fresh session has %d messages", len(history))
	}

	id2, _ := store.GetOrCreate("unknown-id")
	if id2 == "unknown-id" {
		t.Error("unknown id must not be adopted")
	}
	if id1 == id2 {
		t.Error("two fresh sessions share an id")
	}
}

func TestGetOrCreate_ReusesExisting(t *testing.T) {
	store := NewStore()

	id, _ := store.GetOrCreate("")
	store.Append(id, exchange(1)...)

	got, history := store.GetOrCreate(id)
	if got != id {
		t.Errorf("id changed on reuse: %s vs %s", got, id)
	}
	if len(history) != 2 {
		t.Fatalf("got %d messages, want 2", len(history))
	}
	if history[0].Content != "question 1" || history[1].Content != "answer 1" {
		t.Errorf("history = %+v", history)
	}
}

func TestGetOrCreate_ReturnsCopy(t *testing.T) {
	store := NewStore()
	id, _ := store.GetOrCreate("")
	store.Append(id, exchange(1)...)

	_, history := store.GetOrCreate(id)
	history[0].Content = "mutated"

	_, fresh := store.GetOrCreate(id)
	if fresh[0].Content != "question 1" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestAppend_CapDropsOldest(t *testing.T) {
	store := NewStore()
	id, _ := store.GetOrCreate("")

	const exchanges = 13
	for i := 1; i <= exchanges; i++ {
		store.Append(id, exchange(i)...)
	}

	_, history := store.GetOrCreate(id)
	if len(history) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(history), MaxHistory)
	}
	// last 10 exchanges are 4..13
	if history[0].Content != "question 4" {
		t.Errorf("oldest retained message = %q, want question 4", history[0].Content)
	}
	if history[len(history)-1].Content != "answer 13" {
		t.Errorf("newest message = %q, want answer 13", history[len(history)-1].Content)
	}
}

func TestReset(t *testing.T) {
	store := NewStore()

	if store.Reset("never-seen") {
		t.Error("reset of unknown id reported success")
	}

	id, _ := store.GetOrCreate("")
	store.Append(id, exchange(1)...)

	if !store.Reset(id) {
		t.Fatal("reset of known id failed")
	}
	got, history := store.GetOrCreate(id)
	if got != id {
		t.Error("id no longer resolvable after reset")
	}
	if len(history) != 0 {
		t.Errorf("history not cleared: %d messages", len(history))
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	id, _ := store.GetOrCreate("")
	store.Append(id, exchange(1)...)

	store.Clear()

	got, _ := store.GetOrCreate(id)
	if got == id {
		t.Error("session survived Clear")
	}
}

func TestAppend_ConcurrentSameSession(t *testing.T) {
	store := NewStore()
	id, _ := store.GetOrCreate("")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(id, exchange(n)...)
		}(i)
	}
	wg.Wait()

	_, history := store.GetOrCreate(id)
	if len(history) != MaxHistory {
		t.Errorf("history length = %d, want %d", len(history), MaxHistory)
	}
}
