package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/x-maues/rag-flarista/internal/chromemdb"
	"github.com/x-maues/rag-flarista/internal/llmservice"
	"github.com/x-maues/rag-flarista/internal/models"
)

// Retrieval answers by retrieving the top-k most relevant chunks and
// prompting the model with them. Each call is independent of prior turns;
// history is deliberately ignored on this path.
type Retrieval struct {
	index *chromemdb.Index
	llm   *llmservice.Client
	topK  int
}

func NewRetrieval(index *chromemdb.Index, llm *llmservice.Client, topK int) *Retrieval {
	return &Retrieval{index: index, llm: llm, topK: topK}
}

func (r *Retrieval) Answer(ctx context.Context, question string, _ []models.Message) (string, error) {
	chunks, err := r.index.Query(ctx, question, r.topK)
	if err != nil {
		return "", err
	}

	var contextBlock strings.Builder
	for _, chunk := range chunks {
		contextBlock.WriteString(chunk.Text)
		contextBlock.WriteString("\n\n")
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, models.FlareSystemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman,
			fmt.Sprintf(models.RetrievalPromptTemplate, contextBlock.String(), question)),
	}
	return r.llm.Generate(ctx, messages)
}
