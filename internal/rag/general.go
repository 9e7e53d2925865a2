package rag

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/x-maues/rag-flarista/internal/llmservice"
	"github.com/x-maues/rag-flarista/internal/models"
)

// General answers without retrieval, conditioning the model on the rendered
// conversation transcript instead.
type General struct {
	llm *llmservice.Client
}

func NewGeneral(llm *llmservice.Client) *General {
	return &General{llm: llm}
}

func (g *General) Answer(ctx context.Context, question string, history []models.Message) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, models.FlareSystemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman,
			fmt.Sprintf(models.GeneralPromptTemplate, models.RenderHistory(history), question)),
	}
	return g.llm.Generate(ctx, messages)
}
