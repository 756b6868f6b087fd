// ABOUTME: Tests for the generation client
// ABOUTME: Covers construction defaults and quota-exhaustion classification
package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Error("empty API key should fail")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(ClientConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.model != DefaultChatModel {
		t.Errorf("model = %q, want %q", c.model, DefaultChatModel)
	}
	if c.timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", c.timeout)
	}
}

func TestNewClient_ExplicitSettings(t *testing.T) {
	c, err := NewClient(ClientConfig{APIKey: "sk-test", Model: "gpt-4o", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", c.model)
	}
	if c.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", c.timeout)
	}
}

func TestIsQuotaExhausted(t *testing.T) {
	if !IsQuotaExhausted(ErrQuotaExhausted) {
		t.Error("sentinel itself should match")
	}
	wrapped := fmt.Errorf("%w: rate limited", ErrQuotaExhausted)
	if !IsQuotaExhausted(wrapped) {
		t.Error("wrapped sentinel should match")
	}
	if IsQuotaExhausted(errors.New("connection refused")) {
		t.Error("unrelated error should not match")
	}
	if IsQuotaExhausted(nil) {
		t.Error("nil should not match")
	}
}

func TestIsRateLimited(t *testing.T) {
	tooMany := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}
	if !isRateLimited(tooMany) {
		t.Error("429 API error should be rate limited")
	}
	if !isRateLimited(fmt.Errorf("request failed: %w", tooMany)) {
		t.Error("wrapped 429 API error should be rate limited")
	}
	if isRateLimited(&openai.APIError{HTTPStatusCode: http.StatusInternalServerError}) {
		t.Error("500 API error is not rate limited")
	}
	if isRateLimited(errors.New("timeout")) {
		t.Error("plain error is not rate limited")
	}
}
