// ABOUTME: CLI command to query the recipe vector index directly
// ABOUTME: Prints ranked recipe hits with similarity scores and loves
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/joho/godotenv"
)

var searchLimit int

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipes by free text",
		Long: `Search recipes by free text.

Queries the persisted vector index and prints the most similar recipe
blocks, ranked by cosine similarity.

Examples:
  juna search "ayam geprek kriuk"
  juna search --limit 10 "sayur untuk diet vegan"
  juna search --format json "soto"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 4, "Maximum results to return")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	recipes, err := loadStore(cfg)
	if err != nil {
		return err
	}

	idx, err := openIndex(cfg, recipes)
	if err != nil {
		return err
	}

	query := args[0]
	results, err := idx.Search(query, searchLimit)
	if err != nil {
		return fmt.Errorf("searching recipes: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No recipes found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tLOVES\tRECIPE\n")
	fmt.Fprintf(w, "-----\t-----\t------\n")
	for _, res := range results {
		fmt.Fprintf(w, "%.3f\t%d\t%s\n", res.Score, res.Loves, truncate(firstLine(res.Block), 60))
	}
	return w.Flush()
}
