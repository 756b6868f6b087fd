// ABOUTME: Tests for route classification and attitude extraction
// ABOUTME: Persona token must co-occur with a mood keyword for att_change
package core

import (
	"testing"

	"github.com/dapoerjuna/juna/internal/models"
)

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		message string
		want    models.Route
	}{
		{"juna ubah sikap jadi galak", models.RouteAttitudeChange},
		{"Juna, random mood dong", models.RouteAttitudeChange},
		{"juna jadi mean ya", models.RouteAttitudeChange},
		{"resep ayam apa yang enak", models.RouteAnswer},
		// Mood keyword without the persona token stays on the answer path.
		{"aku lagi galak banget hari ini", models.RouteAnswer},
		// Persona token without a mood keyword is a question.
		{"juna, resep soto yang mudah apa", models.RouteAnswer},
		{"", models.RouteAnswer},
	}

	for _, tt := range tests {
		if got := ClassifyRoute(tt.message); got != tt.want {
			t.Errorf("ClassifyRoute(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractAttitude_FirstMatchWins(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"juna ubah sikap jadi galak", "galak"},
		{"jadi baik atau galak terserah", "baik"},
		{"RANDOM saja juna", "random"},
		{"juna jadi mean", "mean"},
		// No token present defaults to baik.
		{"juna ubah sikap dong", "baik"},
		{"", "baik"},
	}

	for _, tt := range tests {
		if got := ExtractAttitude(tt.message); got != tt.want {
			t.Errorf("ExtractAttitude(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractAttitude_WordBoundary(t *testing.T) {
	// "kebaikan" must not match the "baik" token.
	if got := ExtractAttitude("terima kasih atas kebaikanmu, galak saja"); got != "galak" {
		t.Errorf("ExtractAttitude = %q, want %q", got, "galak")
	}
}
