// Package rag holds the two answer sources the orchestrator chooses
// between: retrieval-grounded generation over the semantic index, and
// general chat conditioned on conversation history.
package rag

import (
	"context"

	"github.com/x-maues/rag-flarista/internal/models"
)

// Source answers a single question. Implementations decide what context
// (retrieved chunks, conversation history) the generation request carries.
type Source interface {
	Answer(ctx context.Context, question string, history []models.Message) (string, error)
}
