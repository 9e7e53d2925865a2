package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/embeddings"

	"github.com/x-maues/rag-flarista/internal/models"
)

// NewEmbedder wraps a provider client (anything exposing CreateEmbedding,
// such as the googleai model) in a langchaingo embedder.
func NewEmbedder(client embeddings.EmbedderClient) (*embeddings.EmbedderImpl, error) {
	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return embedder, nil
}

// EmbedChunks embeds every chunk in one bounded provider call. The returned
// vectors are positionally aligned with chunks.
func EmbedChunks(ctx context.Context, embedder embeddings.Embedder, chunks []models.Chunk, timeout time.Duration) ([][]float32, error) {
	if len(chunks) == 0 {
		return nil, nil
	}
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	vectors, err := embedder.EmbedDocuments(callCtx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: got %d vectors for %d chunks", len(vectors), len(chunks))
	}
	return vectors, nil
}

// EmbedQuery embeds a single query string with a bounded timeout.
func EmbedQuery(ctx context.Context, embedder embeddings.Embedder, text string, timeout time.Duration) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	vector, err := embedder.EmbedQuery(callCtx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return vector, nil
}
