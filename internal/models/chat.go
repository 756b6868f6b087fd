// ABOUTME: ChatState carries one dialogue turn through the router
// ABOUTME: Defines route and attitude enums for the state machine
package models

// Route is the router's per-turn decision.
type Route string

const (
	// RouteAttitudeChange - the turn is an attitude-change command
	RouteAttitudeChange Route = "att_change"

	// RouteAnswer - the turn is a question answered from retrieved context
	RouteAnswer Route = "answer"
)

// Attitude values for the persona. AttitudeRandom resolves to one of the
// two concrete attitudes at style-selection time and is never persisted
// as the resolved value.
const (
	AttitudeKind   = "baik"
	AttitudeStern  = "galak"
	AttitudeMean   = "mean"
	AttitudeRandom = "random"
)

// ChatState is the working state of a single turn. Messages hold the
// conversation so far, newest last.
type ChatState struct {
	Messages []string `json:"messages"`
	Steps    int      `json:"steps"`
	Docs     string   `json:"docs"`
	Route    Route    `json:"route,omitempty"`
	Err      string   `json:"error,omitempty"`
	Attitude string   `json:"attitude"`
}

// LastMessage returns the newest message, or "" when there is none.
func (s *ChatState) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}
