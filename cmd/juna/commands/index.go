// ABOUTME: CLI command to build or rebuild the persisted vector index
// ABOUTME: First-time build embeds the whole corpus; re-runs load from disk
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/joho/godotenv"
)

var indexRebuild bool

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the recipe vector index",
		Long: `Build the recipe vector index.

Embeds every recipe block and persists the index directory. When the
directory already exists and is non-empty the persisted index is loaded
instead; pass --rebuild to discard it and embed from scratch.

The first-time build is compute-heavy and meant to run once per
deployment, not per query.`,
		Args: cobra.NoArgs,
		RunE: runIndex,
		Example: `  # Build (or load) the index
  juna index

  # Discard the persisted index and embed again
  juna index --rebuild`,
	}

	cmd.Flags().BoolVar(&indexRebuild, "rebuild", false, "Discard the persisted index and rebuild")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	recipes, err := loadStore(cfg)
	if err != nil {
		return err
	}

	if indexRebuild {
		if err := os.RemoveAll(cfg.IndexDir); err != nil {
			return fmt.Errorf("removing persisted index: %w", err)
		}
	}

	idx, err := openIndex(cfg, recipes)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Index ready: %d entries in %s\n", idx.Len(), idx.Dir())
	}
	return nil
}
