// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point for index, search, top, chat, and mcp subcommands
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  █████╗ ██████╗  ██████╗ ███████╗██████╗      ██╗██╗   ██╗███╗   ██╗ █████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔════╝██╔══██╗     ██║██║   ██║████╗  ██║██╔══██╗
██║  ██║███████║██████╔╝██║   ██║█████╗  ██████╔╝     ██║██║   ██║██╔██╗ ██║███████║
██║  ██║██╔══██║██╔═══╝ ██║   ██║██╔══╝  ██╔══██╗██   ██║██║   ██║██║╚██╗██║██╔══██║
██████╔╝██║  ██║██║     ╚██████╔╝███████╗██║  ██║╚█████╔╝╚██████╔╝██║ ╚████║██║  ██║
╚═════╝ ╚═╝  ╚═╝╚═╝      ╚═════╝ ╚══════╝╚═╝  ╚═╝ ╚════╝  ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "juna",
		Short: "Chef Juna: conversational retrieval over Indonesian recipes",
		Long: banner + `
DapoerJuna is a retrieval assistant over a fixed Indonesian recipe
corpus. Free-text queries are answered from a persisted vector index,
narrowed by structured facet filters, and voiced by the Chef Juna
persona.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")

	cmd.AddCommand(
		NewIndexCmd(),
		NewSearchCmd(),
		NewTopCmd(),
		NewChatCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
