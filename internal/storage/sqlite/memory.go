// ABOUTME: Conversation memory persistence over SQLite
// ABOUTME: Appends exchanges and renders history for prompt assembly
package sqlite

import (
	"fmt"
	"strings"

	"github.com/dapoerjuna/juna/internal/models"
)

// MemoryStore persists conversation turns for one session. It satisfies
// the core.Memory interface.
type MemoryStore struct {
	db        *DB
	sessionID string
}

// NewMemoryStore creates a memory store scoped to sessionID.
func NewMemoryStore(db *DB, sessionID string) (*MemoryStore, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("session ID cannot be empty")
	}
	return &MemoryStore{db: db, sessionID: sessionID}, nil
}

// Remember appends one exchange to long-term memory.
func (s *MemoryStore) Remember(role, content string) error {
	turn, err := models.NewTurn(role, content)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO turns (id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, turn.TurnID, s.sessionID, turn.Role, turn.Content, turn.Timestamp)
	if err != nil {
		return fmt.Errorf("saving turn: %w", err)
	}
	return nil
}

// History renders the full prior conversation, one "role: content" line
// per message, oldest first.
func (s *MemoryStore) History() (string, error) {
	rows, err := s.db.Query(`
		SELECT role, content
		FROM turns
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC
	`, s.sessionID)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lines []string
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, content))
	}
	return strings.Join(lines, "\n"), rows.Err()
}

// Turns returns all remembered turns for the session, oldest first.
func (s *MemoryStore) Turns() ([]models.Turn, error) {
	rows, err := s.db.Query(`
		SELECT id, role, content, created_at
		FROM turns
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC
	`, s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var turns []models.Turn
	for rows.Next() {
		var turn models.Turn
		if err := rows.Scan(&turn.TurnID, &turn.Role, &turn.Content, &turn.Timestamp); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}
