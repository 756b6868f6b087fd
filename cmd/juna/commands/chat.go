// ABOUTME: Interactive chat REPL with the Chef Juna persona
// ABOUTME: Runs one dialogue turn per input line against the retrieval index
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/dapoerjuna/juna/internal/core"
	"github.com/dapoerjuna/juna/internal/llm"
	"github.com/dapoerjuna/juna/internal/models"
	"github.com/dapoerjuna/juna/internal/storage/sqlite"
	"github.com/joho/godotenv"
)

var (
	chatMood    string
	chatSession string
)

// moodNames maps the CLI mood flag onto attitude values.
var moodNames = map[string]string{
	"baik":   models.AttitudeKind,
	"galak":  models.AttitudeStern,
	"random": models.AttitudeRandom,
}

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with Chef Juna",
		Long: `Chat with Chef Juna.

Starts an interactive loop: every input line runs one dialogue turn
(retrieve context, route, answer or change attitude). Conversation
history persists in the local memory database per session.

Examples:
  juna chat
  juna chat --mood galak
  juna chat --session dapur-besar`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	cmd.Flags().StringVar(&chatMood, "mood", "baik", "Chef Juna mood: baik, galak, or random")
	cmd.Flags().StringVar(&chatSession, "session", "", "Session ID for conversation memory (default: new session)")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	attitude, ok := moodNames[strings.ToLower(chatMood)]
	if !ok {
		return fmt.Errorf("unknown mood %q: want baik, galak, or random", chatMood)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	recipes, err := loadStore(cfg)
	if err != nil {
		return err
	}

	idx, err := openIndex(cfg, recipes)
	if err != nil {
		return err
	}

	generator, err := llm.NewClient(llm.ClientConfig{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.ChatModel,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("initializing generation backend: %w", err)
	}

	db, err := sqlite.Open(sqlite.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("opening memory database: %w", err)
	}
	defer func() { _ = db.Close() }()

	sessionID := chatSession
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	memory, err := sqlite.NewMemoryStore(db, sessionID)
	if err != nil {
		return err
	}

	sess := core.NewSession(attitude, memory)
	agent := core.NewAgent(idx, generator, core.Config{
		TopK:       cfg.TopK,
		MaxSteps:   cfg.MaxSteps,
		RetryDelay: cfg.QuotaRetryDelay,
	})

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintln(out, "DapoerJuna - Masakan Indonesia Gak Perlu Ribet")
		fmt.Fprintln(out, "Mau masak apa hari ini? (ketik 'keluar' untuk berhenti)")
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "keluar" || line == "exit" {
			break
		}

		reply, err := agent.RunTurn(cmd.Context(), sess, line)
		if err != nil {
			return fmt.Errorf("running turn: %w", err)
		}
		fmt.Fprintf(out, "Chef Juna: %s\n", reply)
	}
	return scanner.Err()
}
