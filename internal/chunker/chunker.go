// Package chunker splits raw documents into overlapping fixed-size windows
// sized for embedding.
package chunker

import (
	"fmt"

	"github.com/x-maues/rag-flarista/internal/models"
)

// Validate checks the window configuration. Window size must exceed the
// overlap so the window always advances; a violation is a configuration
// error, not something to recover from at runtime.
func Validate(windowSize, overlapSize int) error {
	if overlapSize < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", overlapSize)
	}
	if windowSize <= overlapSize {
		return fmt.Errorf("chunk size %d must exceed chunk overlap %d", windowSize, overlapSize)
	}
	return nil
}

// Split slices every document into windows of up to windowSize runes,
// with consecutive windows from the same document sharing overlapSize runes.
// Chunk boundaries are a pure function of the text and the configuration,
// so re-splitting the same input yields identical chunks.
func Split(docs []models.RawDocument, windowSize, overlapSize int) []models.Chunk {
	var chunks []models.Chunk
	for _, doc := range docs {
		chunks = append(chunks, splitDocument(doc, windowSize, overlapSize)...)
	}
	return chunks
}

func splitDocument(doc models.RawDocument, windowSize, overlapSize int) []models.Chunk {
	text := []rune(doc.Text)
	if len(text) == 0 {
		return nil
	}

	step := windowSize - overlapSize
	var out []models.Chunk
	for start, seq := 0, 0; start < len(text); start, seq = start+step, seq+1 {
		end := min(start+windowSize, len(text))
		out = append(out, models.Chunk{
			Text:          string(text[start:end]),
			SourcePath:    doc.SourcePath,
			SequenceIndex: seq,
		})
		if end == len(text) {
			break
		}
	}
	return out
}
