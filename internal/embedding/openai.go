// ABOUTME: OpenAI embedding backend using text-embedding-3-small
// ABOUTME: Retries transient API failures with exponential backoff
package embedding

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dapoerjuna/juna/internal/util"
)

// Expected embedding dimension for OpenAI text-embedding-3-small
const openAIDimension = 1536

// OpenAIEmbedder generates embeddings through the OpenAI API.
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
}

// OpenAIConfig holds configuration for the OpenAI embedder.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// NewOpenAIEmbedder creates an OpenAI-backed embedder.
func NewOpenAIEmbedder(cfg OpenAIConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	model := openai.EmbeddingModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.SmallEmbedding3
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(cfg.APIKey),
		model:      model,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		timeout:    cfg.Timeout,
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (e *OpenAIEmbedder) Name() string { return "openai" }

// Prepare is a no-op: the embedding model is fixed, not corpus-fitted.
func (e *OpenAIEmbedder) Prepare(corpus []string) error { return nil }

// Dimension returns the fixed OpenAI embedding dimension.
func (e *OpenAIEmbedder) Dimension() int { return openAIDimension }

// Embed generates an embedding vector for the given text.
func (e *OpenAIEmbedder) Embed(text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(e.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)

		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: e.model,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", e.maxRetries+1, lastErr)
}
