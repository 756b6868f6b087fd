// ABOUTME: Shared setup and helper functions for CLI commands
// ABOUTME: Builds the store, embedder, and index from configuration
package commands

import (
	"fmt"
	"log"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/dapoerjuna/juna/internal/embedding"
	"github.com/dapoerjuna/juna/internal/index"
	"github.com/dapoerjuna/juna/internal/store"
)

// loadStore loads the recipe table named by the configuration. A
// malformed or missing table is fatal here, at startup, never per-turn.
func loadStore(cfg *config.Config) (*store.Store, error) {
	recipes, err := store.Load(cfg.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	if verbose {
		log.Printf("Loaded %d recipes from %s", recipes.Len(), cfg.CSVPath)
	}
	return recipes, nil
}

// buildEmbedder selects the embedding backend from configuration.
func buildEmbedder(cfg *config.Config) (embedding.Embedder, error) {
	switch cfg.EmbeddingBackend {
	case config.BackendOpenAI:
		return embedding.NewOpenAIEmbedder(embedding.OpenAIConfig{
			APIKey:     cfg.OpenAIKey,
			Model:      cfg.EmbeddingModel,
			MaxRetries: cfg.MaxRetries,
			Timeout:    cfg.Timeout,
		})
	case config.BackendTFIDF:
		return embedding.NewTFIDFEmbedder(), nil
	default:
		return nil, fmt.Errorf("unknown embedding backend %q", cfg.EmbeddingBackend)
	}
}

// openIndex builds or loads the persisted vector index over the store's
// block corpus.
func openIndex(cfg *config.Config, recipes *store.Store) (*index.Index, error) {
	emb, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	records := recipes.Records()
	corpus := make([]index.CorpusItem, len(records))
	blocks := recipes.Blocks()
	for i := range records {
		corpus[i] = index.CorpusItem{Block: blocks[i], Loves: records[i].Loves}
	}

	idx, err := index.Build(cfg.IndexDir, emb, corpus)
	if err != nil {
		return nil, fmt.Errorf("opening vector index: %w", err)
	}
	if verbose {
		log.Printf("Vector index ready: %d entries in %s", idx.Len(), idx.Dir())
	}
	return idx, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// firstLine returns the first line of a block, for compact listings
func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
