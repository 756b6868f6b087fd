// ABOUTME: Turn represents one stored exchange in long-term memory
// ABOUTME: Role is "user" or "ai", matching the conversation buffer format
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Memory roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// Turn is a single remembered message.
type Turn struct {
	TurnID    string    `json:"turn_id"`
	Timestamp time.Time `json:"timestamp"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
}

// NewTurn creates a Turn with validation.
func NewTurn(role, content string) (*Turn, error) {
	if role != RoleUser && role != RoleAI {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content cannot be empty")
	}
	return &Turn{
		TurnID:    generateTurnID(),
		Timestamp: time.Now().UTC(),
		Role:      role,
		Content:   content,
	}, nil
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
