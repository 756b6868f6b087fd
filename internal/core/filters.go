// ABOUTME: Filter algebra over serialized recipe blocks
// ABOUTME: Pure, order-preserving, case-insensitive; misses yield empty strings
package core

import (
	"strings"

	"github.com/dapoerjuna/juna/internal/models"
)

// FilterByCategory keeps blocks whose category line equals category,
// case-insensitive.
func FilterByCategory(recipes, category string) string {
	want := strings.TrimSpace(strings.ToLower(category))
	return keepBlocks(recipes, func(block string) bool {
		got, ok := models.BlockCategory(block)
		return ok && got == want
	})
}

// FilterByWeight keeps blocks containing the first whitespace-delimited
// token of mealWeight anywhere in their text. The loose substring test is
// intentional: it tolerates phrasing like "ringan saja".
func FilterByWeight(recipes, mealWeight string) string {
	fields := strings.Fields(strings.ToLower(mealWeight))
	if len(fields) == 0 {
		return ""
	}
	key := fields[0]
	return keepBlocks(recipes, func(block string) bool {
		return strings.Contains(strings.ToLower(block), key)
	})
}

// FilterByDifficulty keeps blocks containing difficulty anywhere in
// their text, case-insensitive.
func FilterByDifficulty(recipes, difficulty string) string {
	key := strings.ToLower(difficulty)
	if key == "" {
		return ""
	}
	return keepBlocks(recipes, func(block string) bool {
		return strings.Contains(strings.ToLower(block), key)
	})
}

// FilterByIngredients keeps blocks whose "Bahan:" ingredient set is a
// superset of the wanted comma-separated set. Comparison is trimmed and
// lowercased per item.
func FilterByIngredients(ingredients, recipes string) string {
	want := models.IngredientSet(ingredients)
	if len(want) == 0 {
		return ""
	}
	return keepBlocks(recipes, func(block string) bool {
		raw, ok := models.BlockIngredients(block)
		if !ok {
			return false
		}
		have := models.IngredientSet(raw)
		for item := range want {
			if _, ok := have[item]; !ok {
				return false
			}
		}
		return true
	})
}

// RecipeDetails selects one block. An all-digits selection is a 1-based
// ordinal into the block sequence (out of range selects nothing); any
// other selection is a case-insensitive substring matched against each
// block, first match wins. Returns "" on no match, never an error.
func RecipeDetails(selection, recipes string) string {
	blocks := models.SplitBlocks(recipes)
	sel := strings.TrimSpace(strings.ToLower(selection))
	if sel == "" {
		return ""
	}

	if isDigits(sel) {
		idx := 0
		for _, c := range sel {
			idx = idx*10 + int(c-'0')
		}
		if idx >= 1 && idx <= len(blocks) {
			return blocks[idx-1]
		}
		return ""
	}

	for _, block := range blocks {
		if strings.Contains(strings.ToLower(block), sel) {
			return block
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// keepBlocks applies a predicate over each block, preserving relative
// order of the survivors.
func keepBlocks(recipes string, keep func(string) bool) string {
	var out []string
	for _, block := range strings.Split(recipes, models.BlockSeparator) {
		if keep(block) {
			out = append(out, block)
		}
	}
	return models.JoinBlocks(out)
}
