package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/x-maues/rag-flarista/internal/models"
)

type stubEmbedder struct {
	vectors [][]float32
	err     error
	texts   []string
}

func (s *stubEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	s.texts = texts
	return s.vectors, s.err
}

func (s *stubEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	s.texts = []string{text}
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[0], nil
}

func TestEmbedChunks_Aligned(t *testing.T) {
	stub := &stubEmbedder{vectors: [][]float32{{1, 0}, {0, 1}}}
	chunks := []models.Chunk{
		{Text: "first", SourcePath: "a.md"},
		{Text: "second", SourcePath: "a.md", SequenceIndex: 1},
	}

	vectors, err := EmbedChunks(context.Background(), stub, chunks, time.Second)
	if err != nil {
		t.Fatalf("EmbedChunks() error = %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if len(stub.texts) != 2 || stub.texts[0] != "first" || stub.texts[1] != "second" {
		t.Errorf("texts sent to provider = %v", stub.texts)
	}
}

func TestEmbedChunks_Empty(t *testing.T) {
	stub := &stubEmbedder{}
	vectors, err := EmbedChunks(context.Background(), stub, nil, time.Second)
	if err != nil {
		t.Fatalf("EmbedChunks() error = %v", err)
	}
	if vectors != nil {
		t.Errorf("expected nil vectors for empty input, got %v", vectors)
	}
	if stub.texts != nil {
		t.Error("provider should not be called for an empty chunk set")
	}
}

func TestEmbedChunks_CountMismatch(t *testing.T) {
	stub := &stubEmbedder{vectors: [][]float32{{1, 0}}}
	chunks := []models.Chunk{{Text: "first"}, {Text: "second"}}

	if _, err := EmbedChunks(context.Background(), stub, chunks, time.Second); err == nil {
		t.Error("expected error when vector count differs from chunk count")
	}
}

func TestEmbedChunks_ProviderFailure(t *testing.T) {
	stub := &stubEmbedder{err: errors.New("quota exceeded")}

	if _, err := EmbedChunks(context.Background(), stub, []models.Chunk{{Text: "x"}}, time.Second); err == nil {
		t.Error("expected provider error to surface")
	}
}

func TestEmbedQuery(t *testing.T) {
	stub := &stubEmbedder{vectors: [][]float32{{0.5, 0.5}}}

	vector, err := EmbedQuery(context.Background(), stub, "what is FTSO?", time.Second)
	if err != nil {
		t.Fatalf("EmbedQuery() error = %v", err)
	}
	if len(vector) != 2 {
		t.Errorf("vector length = %d, want 2", len(vector))
	}
	if len(stub.texts) != 1 || stub.texts[0] != "what is FTSO?" {
		t.Errorf("query text = %v", stub.texts)
	}
}
