package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/x-maues/rag-flarista/internal/chat"
	"github.com/x-maues/rag-flarista/internal/llmservice"
	"github.com/x-maues/rag-flarista/internal/models"
)

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Messages  []models.Message `json:"messages"`
	Prompt    string           `json:"prompt"`
	SessionID string           `json:"sessionId"`
}

// ChatResponse is the POST /api/chat reply.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// ResetRequest is the POST /api/reset body.
type ResetRequest struct {
	SessionID string `json:"sessionId"`
}

// ResetResponse reports the reset outcome. An unknown session is a soft
// error, not an HTTP failure.
type ResetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChatHandler handles the chat and reset endpoints.
type ChatHandler struct {
	svc    Converser
	logger zerolog.Logger
}

func NewChatHandler(svc Converser, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, logger: logger}
}

func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.converse)
	mux.HandleFunc("POST /api/reset", h.reset)
}

func (h *ChatHandler) converse(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	resp, err := h.svc.Converse(r.Context(), chat.Request{
		Messages:  req.Messages,
		Prompt:    req.Prompt,
		SessionID: req.SessionID,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("session", req.SessionID).Msg("chat request failed")
		writeError(w, http.StatusInternalServerError, "provider_error", userFacingMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: resp.Answer, SessionID: resp.SessionID})
}

func (h *ChatHandler) reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if h.svc.Reset(req.SessionID) {
		h.logger.Info().Str("session", req.SessionID).Msg("session reset")
		writeJSON(w, http.StatusOK, ResetResponse{
			Status:  "success",
			Message: fmt.Sprintf("Session %s reset successfully", req.SessionID),
		})
		return
	}
	writeJSON(w, http.StatusOK, ResetResponse{Status: "error", Message: "Session not found"})
}

// userFacingMessage maps provider failures to stable, provider-agnostic
// messages. Only the unsupported-model case gets a more specific one.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, llmservice.ErrModelNotSupported):
		return "The specified language model is not available."
	case errors.Is(err, llmservice.ErrTimeout):
		return "The assistant took too long to respond. Please try again."
	default:
		return "The assistant is temporarily unavailable. Please try again."
	}
}
