// ABOUTME: Canonical text-block serialization of a RecipeRecord
// ABOUTME: Blocks are the unit indexed by the retriever and returned by tools
package models

import (
	"fmt"
	"strings"
)

// BlockSeparator joins and splits recipe blocks. This is a format
// constraint on the corpus: no recipe field may contain the separator
// itself, or block boundaries become ambiguous.
const BlockSeparator = "\n\n"

// Field labels inside a block. Matching on these labels is what the
// filter functions rely on, so they are fixed.
const (
	labelIngredients = "Bahan:"
	labelCategory    = "kategori:"
)

// FormatBlock renders a record into its canonical block form. The field
// order and Indonesian labels are fixed; output is deterministic.
func FormatBlock(r RecipeRecord) string {
	return fmt.Sprintf(
		"Judul: %s  (Loved: %d)\n"+
			"Kategori: %s\n"+
			"Diet: %s\n"+
			"Difficulty: %s\n"+
			"Bahan: %s\n"+
			"Berat: %s\n"+
			"Loves: %d\n"+
			"Langkah:\n%s",
		r.Title, r.Loves, r.Category, r.Diet, r.Difficulty,
		r.Ingredients, r.MealWeight, r.Loves, r.Steps,
	)
}

// SplitBlocks splits joined block text into its non-empty blocks,
// preserving order.
func SplitBlocks(joined string) []string {
	parts := strings.Split(joined, BlockSeparator)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

// JoinBlocks joins blocks with the canonical separator.
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, BlockSeparator)
}

// BlockIngredients extracts the raw ingredients string from a block's
// "Bahan:" line. Returns false when the block has no such line.
func BlockIngredients(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, labelIngredients) {
			return strings.TrimSpace(strings.TrimPrefix(line, labelIngredients)), true
		}
	}
	return "", false
}

// BlockCategory extracts the category value from a block's "Kategori:"
// line, lowercased. Returns false when the block has no such line.
func BlockCategory(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, labelCategory) {
			return strings.TrimSpace(strings.TrimPrefix(lower, labelCategory)), true
		}
	}
	return "", false
}

// IngredientSet parses a comma-separated ingredient list into a set of
// trimmed, lowercased items. Empty items are dropped.
func IngredientSet(csv string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(strings.ToLower(item))
		if item != "" {
			set[item] = struct{}{}
		}
	}
	return set
}
