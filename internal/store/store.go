// ABOUTME: Recipe Store loads the recipe table once and serves immutable records
// ABOUTME: Normalizes column headers and derives the diet and meal-weight facets
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dapoerjuna/juna/internal/models"
)

// requiredColumns are the post-normalization columns the table must have.
// A missing column is a fatal configuration error at load time.
var requiredColumns = []string{
	"title", "category", "ingredients", "steps",
	"total_ingredients", "loves", "difficulty",
}

// Store is the normalized, read-only view of all recipes.
type Store struct {
	records []models.RecipeRecord
}

// Load reads the recipe CSV from path. The store is immutable once built.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recipe table: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("loading recipe table %s: %w", path, err)
	}
	return s, nil
}

// LoadFromReader reads the recipe table from r.
func LoadFromReader(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.RecipeRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return &Store{records: records}, nil
}

// mapColumns normalizes header names and resolves required column indexes.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}

	// Legacy name from the source dataset.
	if idx, ok := cols["difficulty_level"]; ok {
		cols["difficulty"] = idx
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// normalizeColumn trims, lowercases, and replaces spaces with underscores.
func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func parseRow(row []string, cols map[string]int) (models.RecipeRecord, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	total, err := strconv.Atoi(strings.TrimSpace(field("total_ingredients")))
	if err != nil {
		return models.RecipeRecord{}, fmt.Errorf("total_ingredients: %w", err)
	}
	loves, err := strconv.Atoi(strings.TrimSpace(field("loves")))
	if err != nil {
		return models.RecipeRecord{}, fmt.Errorf("loves: %w", err)
	}

	rec := models.RecipeRecord{
		Title:            field("title"),
		Category:         field("category"),
		Ingredients:      field("ingredients"),
		Steps:            field("steps"),
		TotalIngredients: total,
		Loves:            loves,
		Difficulty:       field("difficulty"),
	}
	return rec.WithFacets(), nil
}

// Records returns all records in source order. Callers must not modify
// the returned slice.
func (s *Store) Records() []models.RecipeRecord {
	return s.records
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	return len(s.records)
}

// Blocks renders every record into its canonical block, in source order.
// This is the retrieval corpus.
func (s *Store) Blocks() []string {
	blocks := make([]string, len(s.records))
	for i, rec := range s.records {
		blocks[i] = models.FormatBlock(rec)
	}
	return blocks
}

// MostLoved returns the n most loved recipes across the whole store,
// sorted by loves descending. Ties keep source order.
func (s *Store) MostLoved(n int) []models.RecipeRecord {
	top := make([]models.RecipeRecord, len(s.records))
	copy(top, s.records)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Loves > top[j].Loves
	})

	if n > len(top) {
		n = len(top)
	}
	return top[:n]
}
