// ABOUTME: Turn router and dialogue state machine for Chef Juna
// ABOUTME: One pass per turn: retrieve, route, then attitude-set or answer
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dapoerjuna/juna/internal/llm"
	"github.com/dapoerjuna/juna/internal/models"
)

// State machine nodes. A turn is a single pass; the step budget bounds
// worst-case work when tool-call loops are layered on top.
const (
	nodeRetrieve = "retrieve"
	nodeRoute    = "route"
	nodeAttSet   = "att_set"
	nodeAnswer   = "answer"
	nodeError    = "error"
	nodeEnd      = "end"
)

// DefaultMaxSteps bounds the number of node transitions per turn.
const DefaultMaxSteps = 6

// toolCloseTag marks the end of tool-call markup in a reply. Everything
// up to the last occurrence is stripped from the visible reply.
const toolCloseTag = "</tool>"

// stepsMarker in a reply signals it carries recipe blocks worth caching
// as the last-retrieval blob.
const stepsMarker = "Langkah:"

// Retriever answers similarity queries over the recipe corpus.
type Retriever interface {
	Query(text string, k int) ([]string, error)
}

// Generator is the opaque text-completion backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Agent runs dialogue turns against a session.
type Agent struct {
	retriever  Retriever
	generator  Generator
	topK       int
	maxSteps   int
	retryDelay time.Duration
}

// Config holds agent knobs.
type Config struct {
	TopK       int           // retrieval depth, default 4
	MaxSteps   int           // node-transition budget per turn
	RetryDelay time.Duration // fixed wait before the single quota retry
}

// NewAgent creates an agent over the given retriever and generator.
func NewAgent(retriever Retriever, generator Generator, cfg Config) *Agent {
	if cfg.TopK <= 0 {
		cfg.TopK = 4
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 12 * time.Second
	}
	return &Agent{
		retriever:  retriever,
		generator:  generator,
		topK:       cfg.TopK,
		maxSteps:   cfg.MaxSteps,
		retryDelay: cfg.RetryDelay,
	}
}

// RunTurn executes one full turn for userMessage and returns the
// externally visible reply with tool-call markup stripped. Failures past
// the retry policy surface as the fallback apology, never as a raw error
// message.
func (a *Agent) RunTurn(ctx context.Context, sess *Session, userMessage string) (string, error) {
	if err := sess.Memory.Remember(models.RoleUser, userMessage); err != nil {
		return "", fmt.Errorf("remembering user message: %w", err)
	}

	state := &models.ChatState{
		Messages: []string{userMessage},
		Attitude: sess.Attitude,
	}

	node := nodeRetrieve
	for node != nodeEnd {
		if state.Steps >= a.maxSteps {
			state.Err = "step budget exhausted"
			node = nodeError
		}
		state.Steps++

		switch node {
		case nodeRetrieve:
			node = a.retrieveNode(state)
		case nodeRoute:
			node = a.routeNode(state)
		case nodeAttSet:
			node = a.attSetNode(state, sess)
		case nodeAnswer:
			node = a.answerNode(ctx, state, sess)
		case nodeError:
			node = a.errorNode(state, sess)
		default:
			return "", fmt.Errorf("unknown node %q", node)
		}
	}

	reply := stripToolMarkup(state.LastMessage())
	if strings.Contains(reply, stepsMarker) {
		sess.LastRecipes = reply
	}
	return reply, nil
}

// retrieveNode queries the index with the raw latest user message and
// replaces any previous working context.
func (a *Agent) retrieveNode(state *models.ChatState) string {
	blocks, err := a.retriever.Query(state.LastMessage(), a.topK)
	if err != nil {
		state.Err = fmt.Sprintf("retrieval unavailable: %v", err)
		return nodeError
	}
	// An empty result is "no relevant context", not an error.
	state.Docs = models.JoinBlocks(blocks)
	return nodeRoute
}

func (a *Agent) routeNode(state *models.ChatState) string {
	state.Route = ClassifyRoute(state.LastMessage())
	if state.Route == models.RouteAttitudeChange {
		return nodeAttSet
	}
	return nodeAnswer
}

// attSetNode changes the persona attitude without touching the LLM. The
// underlying question, if any, is not answered in the same turn.
func (a *Agent) attSetNode(state *models.ChatState, sess *Session) string {
	att := ExtractAttitude(state.LastMessage())
	sess.Attitude = att
	state.Attitude = att

	msg := fmt.Sprintf("Sikap Juna di-set ke '%s'.", att)
	state.Messages = append(state.Messages, msg)
	if err := sess.Memory.Remember(models.RoleAI, msg); err != nil {
		state.Err = err.Error()
		return nodeError
	}
	return nodeEnd
}

// answerNode assembles the persona prompt and invokes the generation
// backend, retrying exactly once after a fixed delay on quota
// exhaustion.
func (a *Agent) answerNode(ctx context.Context, state *models.ChatState, sess *Session) string {
	hist, err := sess.Memory.History()
	if err != nil {
		state.Err = err.Error()
		return nodeError
	}

	question := state.LastMessage()
	prompt := StyleFor(state.Attitude) + "\n" +
		SystemBase +
		"\n\nRiwayat:\n" + hist + "\n" +
		"\nKONTEKS RESEP:\n" + state.Docs + "\n\n" +
		"Pertanyaan:\n" + question + "\n\n" +
		"Jawaban ringkas dalam Bahasa Indonesia:"

	ans, err := a.generate(ctx, prompt)
	if err != nil {
		state.Err = err.Error()
		return nodeError
	}

	state.Messages = append(state.Messages, strings.TrimSpace(ans))
	if err := sess.Memory.Remember(models.RoleAI, strings.TrimSpace(ans)); err != nil {
		state.Err = err.Error()
		return nodeError
	}
	return nodeEnd
}

// generate invokes the backend, waiting retryDelay and retrying exactly
// once when the first call fails on quota exhaustion. All other failures
// propagate immediately.
func (a *Agent) generate(ctx context.Context, prompt string) (string, error) {
	ans, err := a.generator.Generate(ctx, prompt)
	if err == nil {
		return ans, nil
	}
	if !llm.IsQuotaExhausted(err) {
		return "", err
	}
	time.Sleep(a.retryDelay)
	return a.generator.Generate(ctx, prompt)
}

// errorNode emits the fallback apology and terminates the turn. The
// technical cause stays in state.Err and never reaches the user.
func (a *Agent) errorNode(state *models.ChatState, sess *Session) string {
	msg := FallbackErrorMessage
	state.Messages = append(state.Messages, msg)
	_ = sess.Memory.Remember(models.RoleAI, msg)
	return nodeEnd
}

// stripToolMarkup removes everything up to and including the last
// tool-call close tag.
func stripToolMarkup(reply string) string {
	if i := strings.LastIndex(reply, toolCloseTag); i >= 0 {
		reply = reply[i+len(toolCloseTag):]
	}
	return strings.TrimSpace(reply)
}
