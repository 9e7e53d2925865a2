// Package chromemdb holds the semantic index: an in-memory chromem-go
// collection built once at startup from the chunked corpus. Nothing is
// persisted; a restart rebuilds the index from the docs directory.
package chromemdb

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"

	"github.com/x-maues/rag-flarista/internal/embedding"
	"github.com/x-maues/rag-flarista/internal/models"
)

const collectionName = "docs"

// Index answers nearest-neighbor queries over the embedded corpus.
type Index struct {
	collection *chromem.Collection
	embedder   embeddings.Embedder
	timeout    time.Duration
}

// Build embeds every chunk and inserts it into a fresh in-memory collection.
// An empty chunk set or a failed embedding pass fails the whole build; the
// caller disables retrieval for the process lifetime rather than retrying.
func Build(ctx context.Context, embedder embeddings.Embedder, chunks []models.Chunk, timeout time.Duration) (*Index, error) {
	if len(chunks) == 0 {
		return nil, errors.New("no chunks to index")
	}

	vectors, err := embedding.EmbedChunks(ctx, embedder, chunks, timeout)
	if err != nil {
		return nil, err
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("%s-%d", chunk.SourcePath, chunk.SequenceIndex),
			Content: chunk.Text,
			Metadata: map[string]string{
				"source":   chunk.SourcePath,
				"sequence": strconv.Itoa(chunk.SequenceIndex),
			},
			Embedding: vectors[i],
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("adding documents to index: %w", err)
	}

	return &Index{collection: collection, embedder: embedder, timeout: timeout}, nil
}

// Query returns up to k chunks ranked by similarity to text, most similar
// first. k is clamped to the collection size.
func (ix *Index) Query(ctx context.Context, text string, k int) ([]models.Chunk, error) {
	if count := ix.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	queryVec, err := embedding.EmbedQuery(ctx, ix.embedder, text, ix.timeout)
	if err != nil {
		return nil, err
	}

	results, err := ix.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: queryVec,
		NResults:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	chunks := make([]models.Chunk, len(results))
	for i, result := range results {
		seq, _ := strconv.Atoi(result.Metadata["sequence"])
		chunks[i] = models.Chunk{
			Text:          result.Content,
			SourcePath:    result.Metadata["source"],
			SequenceIndex: seq,
		}
	}
	return chunks, nil
}

// Size reports how many chunks the index holds.
func (ix *Index) Size() int {
	return ix.collection.Count()
}
