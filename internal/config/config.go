// ABOUTME: Centralized configuration for the DapoerJuna assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Embedding backend names.
const (
	BackendOpenAI = "openai"
	BackendTFIDF  = "tfidf"
)

// Config holds all configuration for the assistant
type Config struct {
	// Data settings
	CSVPath  string
	IndexDir string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int

	// Embedding backend: "openai" or "tfidf"
	EmbeddingBackend string

	// Dialogue settings
	TopK            int
	MaxSteps        int
	QuotaRetryDelay time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CSVPath:          getEnv("JUNA_CSV_PATH", "database/df_resep_cleaned.csv"),
		IndexDir:         getEnv("JUNA_INDEX_DIR", "database/recipes_index"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		ChatModel:        getEnv("JUNA_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:   getEnv("JUNA_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:          getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:       getEnvInt("OPENAI_MAX_RETRIES", 3),
		EmbeddingBackend: getEnv("JUNA_EMBEDDING_BACKEND", BackendTFIDF),
		TopK:             getEnvInt("JUNA_TOP_K", 4),
		MaxSteps:         getEnvInt("JUNA_MAX_STEPS", 6),
		QuotaRetryDelay:  getEnvDuration("JUNA_QUOTA_RETRY_DELAY", 12*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.EmbeddingBackend != BackendOpenAI && c.EmbeddingBackend != BackendTFIDF {
		return fmt.Errorf("JUNA_EMBEDDING_BACKEND must be %q or %q, got %q",
			BackendOpenAI, BackendTFIDF, c.EmbeddingBackend)
	}
	if c.EmbeddingBackend == BackendOpenAI && c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai embedding backend")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("JUNA_TOP_K must be positive, got %d", c.TopK)
	}
	if c.MaxSteps <= 0 || c.MaxSteps > 100 {
		return fmt.Errorf("JUNA_MAX_STEPS must be 1-100, got %d", c.MaxSteps)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
