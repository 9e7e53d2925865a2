// Package chat orchestrates one conversation turn: resolve the session,
// pick an answer source, invoke it, persist the exchange, respond.
package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/x-maues/rag-flarista/internal/models"
	"github.com/x-maues/rag-flarista/internal/rag"
	"github.com/x-maues/rag-flarista/internal/session"
)

// Request is one incoming chat turn.
type Request struct {
	Messages  []models.Message
	Prompt    string
	SessionID string
}

// Response carries the answer and the session id the client should reuse.
type Response struct {
	Answer    string
	SessionID string
}

// Service wires the answer sources to the session store. retrieval is nil
// when the index build failed at startup; that disables the retrieval path
// for the process lifetime.
type Service struct {
	retrieval rag.Source
	general   rag.Source
	sessions  *session.Store
	logger    zerolog.Logger
}

func NewService(retrieval, general rag.Source, sessions *session.Store, logger zerolog.Logger) *Service {
	return &Service{retrieval: retrieval, general: general, sessions: sessions, logger: logger}
}

// RAGAvailable reports whether the retrieval path was built at startup.
func (s *Service) RAGAvailable() bool {
	return s.retrieval != nil
}

// Converse runs one orchestrated turn. On any source failure the session
// history is left untouched and the error is returned for the transport
// layer to map.
func (s *Service) Converse(ctx context.Context, req Request) (Response, error) {
	id, history := s.sessions.GetOrCreate(req.SessionID)

	var answer string
	var err error
	if s.retrieval != nil && strings.TrimSpace(req.Prompt) != "" {
		s.logger.Debug().Str("session", id).Msg("answering via retrieval")
		answer, err = s.retrieval.Answer(ctx, req.Prompt, nil)
	} else {
		if len(history) == 0 {
			history = req.Messages
		}
		s.logger.Debug().Str("session", id).Msg("answering via general chat")
		answer, err = s.general.Answer(ctx, req.Prompt, history)
	}
	if err != nil {
		return Response{}, err
	}

	s.sessions.Append(id,
		models.Message{Role: models.RoleUser, Content: req.Prompt},
		models.Message{Role: models.RoleAssistant, Content: answer},
	)
	return Response{Answer: answer, SessionID: id}, nil
}

// Reset clears a session's history, reporting whether the id was known.
func (s *Service) Reset(id string) bool {
	return s.sessions.Reset(id)
}

// Shutdown releases all session state.
func (s *Service) Shutdown() {
	s.sessions.Clear()
}
