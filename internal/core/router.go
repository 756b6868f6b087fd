// ABOUTME: Per-turn route classification and attitude extraction
// ABOUTME: Explicit keyword heuristics, kept exact for reproducibility
package core

import (
	"regexp"
	"strings"

	"github.com/dapoerjuna/juna/internal/models"
)

// personaToken must co-occur with a mood keyword for the attitude-change
// route. Mood mentions without the persona name take the answer path.
const personaToken = "juna"

// moodKeywords denote attitude or mood intent.
var moodKeywords = []string{"mean", "galak", "random", "sikap"}

// attitudePattern extracts the first attitude token from a message.
var attitudePattern = regexp.MustCompile(`\b(baik|galak|mean|random)\b`)

// ClassifyRoute decides whether a message is an attitude-change command
// or a question. This is a keyword heuristic, not semantic
// classification; false positives and negatives are accepted.
func ClassifyRoute(message string) models.Route {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, personaToken) {
		return models.RouteAnswer
	}
	for _, kw := range moodKeywords {
		if strings.Contains(lower, kw) {
			return models.RouteAttitudeChange
		}
	}
	return models.RouteAnswer
}

// ExtractAttitude returns the first attitude token found in the message,
// or "baik" when none is present.
func ExtractAttitude(message string) string {
	match := attitudePattern.FindStringSubmatch(strings.ToLower(message))
	if match == nil {
		return models.AttitudeKind
	}
	return match[1]
}
