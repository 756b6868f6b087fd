// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes the recipe tool surface to LLM agents via stdio
package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dapoerjuna/juna/internal/config"
	"github.com/dapoerjuna/juna/internal/core"
	junamcp "github.com/dapoerjuna/juna/internal/mcp"
	"github.com/dapoerjuna/juna/internal/models"
	"github.com/dapoerjuna/juna/internal/tools"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the recipe tool surface as an MCP (Model Context Protocol) server
over stdio: retrieval, facet filters, popularity ranking, detail
selection, and attitude control, callable by name.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  juna mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "dapoerjuna": {
  #       "command": "juna",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
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

	// One session per server process. Tool calls share its attitude and
	// last-retrieval state.
	sess := core.NewSession(models.AttitudeKind, core.NewBufferMemory())

	registry, err := tools.NewRegistry(recipes, idx, sess)
	if err != nil {
		return fmt.Errorf("building tool registry: %w", err)
	}

	server := mcpserver.NewMCPServer(
		"DapoerJuna Recipe Tools",
		versionInfo.Version,
	)
	junamcp.RegisterTools(server, registry)

	if !quiet {
		log.Printf("DapoerJuna MCP server starting on stdio with %d tools...", len(registry.Names()))
	}
	return mcpserver.ServeStdio(server)
}
