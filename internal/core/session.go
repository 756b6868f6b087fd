// ABOUTME: Session state shared across one conversation
// ABOUTME: Holds attitude, last-retrieval blob, and the long-term memory sink
package core

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dapoerjuna/juna/internal/models"
)

// Memory is the long-term conversation memory. Implementations append
// exchanges and render the full prior history for prompt assembly.
type Memory interface {
	Remember(role, content string) error
	History() (string, error)
}

// Session is the per-conversation mutable state. The turn-level caller
// enforces single-writer discipline: no concurrent turns within one
// session.
type Session struct {
	// Attitude is the persona attitude for this session.
	Attitude string

	// LastRecipes caches the raw block text of the most recent retrieval
	// reply. It is the implicit input to filter and detail tools that
	// take no explicit recipe list. Written only by the answer path.
	LastRecipes string

	Memory Memory
}

// NewSession creates a session with the given attitude and memory sink.
func NewSession(attitude string, memory Memory) *Session {
	if attitude == "" {
		attitude = models.AttitudeKind
	}
	return &Session{Attitude: attitude, Memory: memory}
}

// BufferMemory is an in-process Memory holding turns in order.
type BufferMemory struct {
	mu    sync.Mutex
	turns []models.Turn
}

// NewBufferMemory creates an empty in-process memory.
func NewBufferMemory() *BufferMemory {
	return &BufferMemory{}
}

// Remember appends one exchange to the buffer.
func (m *BufferMemory) Remember(role, content string) error {
	turn, err := models.NewTurn(role, content)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, *turn)
	return nil
}

// History renders the buffered turns, one "role: content" line each,
// oldest first.
func (m *BufferMemory) History() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.turns))
	for i, turn := range m.turns {
		lines[i] = fmt.Sprintf("%s: %s", turn.Role, turn.Content)
	}
	return strings.Join(lines, "\n"), nil
}
