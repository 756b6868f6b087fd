// ABOUTME: Tests for recipe table loading and the popularity ranking
// ABOUTME: Covers header normalization, fatal schema errors, and facets
package store

import (
	"strings"
	"testing"

	"github.com/dapoerjuna/juna/internal/models"
)

const sampleCSV = `Title,Category,Ingredients,Steps,Total Ingredients,Loves,Difficulty Level
Ayam Geprek,ayam,"ayam, tepung, cabai",Goreng lalu geprek.,3,120,Mudah
Sayur Asem,sayur,"asam jawa, jagung, kacang panjang, labu siam, melinjo, daun melinjo, lengkuas, gula, garam, air",Rebus semua bahan.,10,80,Sedang
Rendang Sapi,sapi,"sapi, santan, cabai",Masak lama sekali.,3,200,Cukup Rumit
Tempe Goreng,tempe,"tempe, garam, minyak",Goreng tempe.,3,200,Mudah
`

func loadSample(t *testing.T) *Store {
	t.Helper()
	s, err := LoadFromReader(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	return s
}

func TestLoad_NormalizesHeaders(t *testing.T) {
	s := loadSample(t)

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}

	rec := s.Records()[0]
	if rec.Title != "Ayam Geprek" {
		t.Errorf("Title = %q, want %q", rec.Title, "Ayam Geprek")
	}
	// "Difficulty Level" is the legacy column name.
	if rec.Difficulty != models.DifficultyEasy {
		t.Errorf("Difficulty = %q, want %q", rec.Difficulty, models.DifficultyEasy)
	}
	if rec.TotalIngredients != 3 {
		t.Errorf("TotalIngredients = %d, want 3", rec.TotalIngredients)
	}
}

func TestLoad_DerivesFacets(t *testing.T) {
	s := loadSample(t)

	tests := []struct {
		idx        int
		diet       string
		mealWeight string
	}{
		{0, models.DietNonVegan, models.MealWeightLight},
		{1, models.DietVegan, models.MealWeightHeavy},
		{2, models.DietNonVegan, models.MealWeightLight},
		{3, models.DietVegan, models.MealWeightLight},
	}

	for _, tt := range tests {
		rec := s.Records()[tt.idx]
		if rec.Diet != tt.diet {
			t.Errorf("record %d Diet = %q, want %q", tt.idx, rec.Diet, tt.diet)
		}
		if rec.MealWeight != tt.mealWeight {
			t.Errorf("record %d MealWeight = %q, want %q", tt.idx, rec.MealWeight, tt.mealWeight)
		}
	}
}

func TestLoad_MissingColumnIsFatal(t *testing.T) {
	csv := "title,category,ingredients,steps,loves,difficulty\na,b,c,d,1,Mudah\n"
	_, err := LoadFromReader(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing total_ingredients column")
	}
	if !strings.Contains(err.Error(), "total_ingredients") {
		t.Errorf("error should name the missing column, got %v", err)
	}
}

func TestLoad_MalformedIntegerIsFatal(t *testing.T) {
	csv := "title,category,ingredients,steps,total_ingredients,loves,difficulty\na,b,c,d,banyak,1,Mudah\n"
	_, err := LoadFromReader(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for non-numeric total_ingredients")
	}
}

func TestMostLoved_SortsDescending(t *testing.T) {
	s := loadSample(t)

	top := s.MostLoved(3)
	if len(top) != 3 {
		t.Fatalf("MostLoved(3) returned %d records", len(top))
	}

	for i := 1; i < len(top); i++ {
		if top[i-1].Loves < top[i].Loves {
			t.Errorf("loves not descending at %d: %d < %d", i, top[i-1].Loves, top[i].Loves)
		}
	}
}

func TestMostLoved_TiesKeepSourceOrder(t *testing.T) {
	s := loadSample(t)

	// Rendang Sapi and Tempe Goreng tie at 200; Rendang comes first in
	// the source.
	top := s.MostLoved(2)
	if top[0].Title != "Rendang Sapi" {
		t.Errorf("top[0] = %q, want %q", top[0].Title, "Rendang Sapi")
	}
	if top[1].Title != "Tempe Goreng" {
		t.Errorf("top[1] = %q, want %q", top[1].Title, "Tempe Goreng")
	}
}

func TestMostLoved_ClampsToCorpusSize(t *testing.T) {
	s := loadSample(t)
	if got := len(s.MostLoved(100)); got != 4 {
		t.Errorf("MostLoved(100) returned %d records, want 4", got)
	}
}

func TestMostLoved_DoesNotMutateStore(t *testing.T) {
	s := loadSample(t)
	before := s.Records()[0].Title
	_ = s.MostLoved(4)
	if s.Records()[0].Title != before {
		t.Error("MostLoved must not reorder the store")
	}
}

func TestBlocks_MatchRecords(t *testing.T) {
	s := loadSample(t)
	blocks := s.Blocks()
	if len(blocks) != s.Len() {
		t.Fatalf("Blocks() returned %d blocks, want %d", len(blocks), s.Len())
	}
	if blocks[0] != models.FormatBlock(s.Records()[0]) {
		t.Error("blocks should be the canonical serialization, in source order")
	}
}
