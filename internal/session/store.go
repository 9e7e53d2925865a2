// Package session keeps per-session conversation history in process memory.
// Nothing survives a restart; shutdown clears the store explicitly.
package session

import (
	"sync"

	"github.com/x-maues/rag-flarista/internal/helper"
	"github.com/x-maues/rag-flarista/internal/models"
)

// MaxHistory caps stored messages per session at 10 exchanges.
const MaxHistory = 20

// Store maps session ids to bounded message histories. One mutex guards the
// whole map; contention per chat turn is a few map and slice operations.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]models.Message
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]models.Message)}
}

// GetOrCreate resolves id to an existing session, or mints a fresh one when
// id is empty or unknown. The returned history is a copy; mutations go
// through Append.
func (s *Store) GetOrCreate(id string) (string, []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if history, ok := s.sessions[id]; ok {
			return id, append([]models.Message(nil), history...)
		}
	}

	fresh := helper.GenerateUUID()
	s.sessions[fresh] = nil
	return fresh, nil
}

// Append adds messages to a session's history, dropping the oldest messages
// once the cap is exceeded.
func (s *Store) Append(id string, msgs ...models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], msgs...)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	s.sessions[id] = history
}

// Reset clears a session's history, keeping the id resolvable. It reports
// whether the id existed.
func (s *Store) Reset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	s.sessions[id] = nil
	return true
}

// Clear discards every session. Called at shutdown.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string][]models.Message)
}
