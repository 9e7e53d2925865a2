// Package llmservice is the generation-provider boundary. All provider
// responses are normalized to plain text here, and provider failures are
// mapped to the typed errors the rest of the system branches on.
package llmservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var (
	// ErrModelNotSupported marks the distinguished "model not found /
	// unsupported" provider failure.
	ErrModelNotSupported = errors.New("model not supported")

	// ErrTimeout marks a provider call that exceeded its deadline.
	ErrTimeout = errors.New("provider call timed out")
)

// Generator is the slice of llms.Model the client needs.
type Generator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// NewGoogleAI builds the Gemini client shared by generation and embeddings.
func NewGoogleAI(ctx context.Context, apiKey, defaultModel, embeddingModel string) (*googleai.GoogleAI, error) {
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(defaultModel),
		googleai.WithDefaultEmbeddingModel(embeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing googleai client: %w", err)
	}
	return client, nil
}

// Client runs generation requests against one named model with a fixed
// temperature and a bounded per-call timeout.
type Client struct {
	model       Generator
	name        string
	temperature float64
	timeout     time.Duration
}

func NewClient(model Generator, name string, temperature float64, timeout time.Duration) *Client {
	return &Client{model: model, name: name, temperature: temperature, timeout: timeout}
}

// Generate invokes the model and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, messages []llms.MessageContent) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(callCtx, messages,
		llms.WithModel(c.name),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return "", mapProviderError(c.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model %s returned no candidates", c.name)
	}
	return resp.Choices[0].Content, nil
}

func mapProviderError(model string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("model %s: %w", model, ErrTimeout)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not found") || strings.Contains(msg, "not supported") {
		return fmt.Errorf("model %s: %w (%v)", model, ErrModelNotSupported, err)
	}
	return fmt.Errorf("model %s: %w", model, err)
}
