// ABOUTME: RecipeRecord is one immutable row of the recipe table
// ABOUTME: Derives the diet and meal-weight facets from the raw columns
package models

// Difficulty levels as they appear in the source table.
const (
	DifficultyEasy   = "Mudah"
	DifficultyMedium = "Sedang"
	DifficultyHard   = "Cukup Rumit"
)

// Diet facet values.
const (
	DietVegan    = "vegan"
	DietNonVegan = "non vegan"
)

// Meal-weight facet values. A recipe is "ringan" (light) when it needs
// at most MealWeightThreshold ingredients, "berat" (heavy) otherwise.
const (
	MealWeightLight = "ringan"
	MealWeightHeavy = "berat"

	MealWeightThreshold = 8
)

// nonVeganCategories is the fixed set of categories that mark a recipe
// as non vegan.
var nonVeganCategories = map[string]struct{}{
	"ayam":    {},
	"kambing": {},
	"sapi":    {},
	"ikan":    {},
	"udang":   {},
	"telur":   {},
}

// RecipeRecord represents a single recipe. Records are created once at
// load time and never mutated afterwards.
type RecipeRecord struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Ingredients      string `json:"ingredients"`
	Steps            string `json:"steps"`
	TotalIngredients int    `json:"total_ingredients"`
	Loves            int    `json:"loves"`
	Difficulty       string `json:"difficulty"`
	Diet             string `json:"diet"`
	MealWeight       string `json:"meal_weight"`
}

// DeriveDiet returns the diet facet for a category.
func DeriveDiet(category string) string {
	if _, ok := nonVeganCategories[category]; ok {
		return DietNonVegan
	}
	return DietVegan
}

// DeriveMealWeight returns the meal-weight facet for an ingredient count.
func DeriveMealWeight(totalIngredients int) string {
	if totalIngredients <= MealWeightThreshold {
		return MealWeightLight
	}
	return MealWeightHeavy
}

// WithFacets returns a copy of the record with Diet and MealWeight
// recomputed from Category and TotalIngredients.
func (r RecipeRecord) WithFacets() RecipeRecord {
	r.Diet = DeriveDiet(r.Category)
	r.MealWeight = DeriveMealWeight(r.TotalIngredients)
	return r
}
