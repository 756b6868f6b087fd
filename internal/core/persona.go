// ABOUTME: Chef Juna persona styling and fixed system instructions
// ABOUTME: Resolves the attitude enum into a prompt preamble
package core

import (
	"math/rand/v2"

	"github.com/dapoerjuna/juna/internal/models"
)

// Persona prompt strings. Kept in Indonesian: they are part of the wire
// format toward the generation backend, not UI copy.
const (
	StyleStern    = "Kamu menjawab seperti Gordon Ramsay: tegas, sinis, namun tetap sopan."
	StyleFriendly = "Kamu menjawab ramah, antusias, dan suportif."

	SystemBase = "Kamu adalah chef virtual bernama Juna yang ahli resep masakan Indonesia.\n" +
		"Gunakan hanya data dari KONTEKS RESEP yang diberikan.\n" +
		"Jika perlu menggunakan tool, gunakan hanya tool yang disediakan.\n" +
		"Format pemanggilan tool:\n" +
		"<tool>CALL_nama_tool {\"arg1\": \"value1\"}</tool>\n"

	// FallbackErrorMessage is the only technical failure users ever see.
	FallbackErrorMessage = "Maaf, terjadi kesalahan."
)

// StyleFor resolves an attitude into its prompt preamble. "random" is
// resolved to one of the two concrete styles independently on every call,
// never persisted.
func StyleFor(attitude string) string {
	if attitude == models.AttitudeRandom {
		if rand.IntN(2) == 0 {
			attitude = models.AttitudeKind
		} else {
			attitude = models.AttitudeStern
		}
	}
	if attitude == models.AttitudeStern || attitude == models.AttitudeMean {
		return StyleStern
	}
	return StyleFriendly
}
