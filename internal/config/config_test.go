// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Covers defaults, overrides, and validation bounds
package config

import (
	"testing"
	"time"
)

func clearJunaEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JUNA_CSV_PATH", "JUNA_INDEX_DIR", "JUNA_CHAT_MODEL",
		"JUNA_EMBEDDING_MODEL", "JUNA_EMBEDDING_BACKEND",
		"JUNA_TOP_K", "JUNA_MAX_STEPS", "JUNA_QUOTA_RETRY_DELAY",
		"OPENAI_API_KEY", "OPENAI_TIMEOUT", "OPENAI_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearJunaEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CSVPath != "database/df_resep_cleaned.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.IndexDir != "database/recipes_index" {
		t.Errorf("IndexDir = %q", cfg.IndexDir)
	}
	if cfg.EmbeddingBackend != BackendTFIDF {
		t.Errorf("EmbeddingBackend = %q, want %q", cfg.EmbeddingBackend, BackendTFIDF)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.TopK != 4 {
		t.Errorf("TopK = %d, want 4", cfg.TopK)
	}
	if cfg.MaxSteps != 6 {
		t.Errorf("MaxSteps = %d, want 6", cfg.MaxSteps)
	}
	if cfg.QuotaRetryDelay != 12*time.Second {
		t.Errorf("QuotaRetryDelay = %v, want 12s", cfg.QuotaRetryDelay)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearJunaEnv(t)
	t.Setenv("JUNA_CSV_PATH", "/data/resep.csv")
	t.Setenv("JUNA_TOP_K", "8")
	t.Setenv("JUNA_QUOTA_RETRY_DELAY", "500ms")
	t.Setenv("JUNA_EMBEDDING_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CSVPath != "/data/resep.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.TopK != 8 {
		t.Errorf("TopK = %d, want 8", cfg.TopK)
	}
	if cfg.QuotaRetryDelay != 500*time.Millisecond {
		t.Errorf("QuotaRetryDelay = %v, want 500ms", cfg.QuotaRetryDelay)
	}
	if cfg.EmbeddingBackend != BackendOpenAI {
		t.Errorf("EmbeddingBackend = %q, want openai", cfg.EmbeddingBackend)
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	clearJunaEnv(t)
	t.Setenv("JUNA_TOP_K", "banyak")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TopK != 4 {
		t.Errorf("TopK = %d, want default 4", cfg.TopK)
	}
}

func TestLoad_UnknownBackendFails(t *testing.T) {
	clearJunaEnv(t)
	t.Setenv("JUNA_EMBEDDING_BACKEND", "word2vec")

	if _, err := Load(); err == nil {
		t.Error("unknown embedding backend should fail validation")
	}
}

func TestLoad_OpenAIBackendRequiresKey(t *testing.T) {
	clearJunaEnv(t)
	t.Setenv("JUNA_EMBEDDING_BACKEND", "openai")

	if _, err := Load(); err == nil {
		t.Error("openai backend without OPENAI_API_KEY should fail")
	}
}

func TestValidate_Bounds(t *testing.T) {
	base := func() *Config {
		return &Config{
			EmbeddingBackend: BackendTFIDF,
			TopK:             4,
			MaxSteps:         6,
			MaxRetries:       3,
		}
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config failed: %v", err)
	}

	cfg = base()
	cfg.TopK = 0
	if err := cfg.Validate(); err == nil {
		t.Error("TopK=0 should fail")
	}

	cfg = base()
	cfg.MaxSteps = 0
	if err := cfg.Validate(); err == nil {
		t.Error("MaxSteps=0 should fail")
	}

	cfg = base()
	cfg.MaxSteps = 101
	if err := cfg.Validate(); err == nil {
		t.Error("MaxSteps=101 should fail")
	}

	cfg = base()
	cfg.MaxRetries = 11
	if err := cfg.Validate(); err == nil {
		t.Error("MaxRetries=11 should fail")
	}
}
