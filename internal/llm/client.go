// ABOUTME: Generation backend client over the OpenAI chat completion API
// ABOUTME: Surfaces quota exhaustion distinctly so the caller can apply its retry policy
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

// completionTemperature keeps replies grounded rather than creative.
const completionTemperature = 0.3

// ErrQuotaExhausted marks a rate/quota failure from the backend. The
// turn router waits a fixed delay and retries exactly once on this
// condition; all other failures propagate immediately.
var ErrQuotaExhausted = errors.New("generation backend quota exhausted")

// IsQuotaExhausted reports whether err is a quota-exhaustion condition.
func IsQuotaExhausted(err error) bool {
	return errors.Is(err, ErrQuotaExhausted)
}

// ClientConfig holds configuration for the generation client.
type ClientConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client generates completions for assembled prompts.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a generation client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Generate sends one prompt and returns the single text completion.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: completionTemperature,
	})
	if err != nil {
		if isRateLimited(err) {
			return "", fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// isRateLimited detects the API's HTTP 429 response.
func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
