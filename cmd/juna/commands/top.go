// ABOUTME: CLI command listing the most loved recipes
// ABOUTME: Global popularity ranking, independent of retrieval
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/joho/godotenv"
)

var topLimit int

// NewTopCmd creates the top command
func NewTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most loved recipes",
		Long: `Show the most loved recipes.

Ranks the entire recipe table by loves descending. This bypasses the
vector index entirely.

Examples:
  juna top
  juna top --limit 10
  juna top --format json`,
		Args: cobra.NoArgs,
		RunE: runTop,
	}

	cmd.Flags().IntVar(&topLimit, "limit", 5, "Number of recipes to show")

	return cmd
}

func runTop(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(topLimit, "limit"); err != nil {
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

	top := recipes.MostLoved(topLimit)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(top, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "LOVES\tCATEGORY\tDIFFICULTY\tTITLE\n")
	fmt.Fprintf(w, "-----\t--------\t----------\t-----\n")
	for _, rec := range top {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", rec.Loves, rec.Category, rec.Difficulty, truncate(rec.Title, 50))
	}
	return w.Flush()
}
