// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Handles verbose/quiet modes and output format selection
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████╗ ███╗   ██╗██╗██████╗  ██████╗ ███╗   ███╗ █████╗ ███╗   ██╗████████╗███████╗
██╔═══██╗████╗  ██║██║██╔══██╗██╔═══██╗████╗ ████║██╔══██╗████╗  ██║╚══██╔══╝██╔════╝
██║   ██║██╔██╗ ██║██║██████╔╝██║   ██║██╔████╔██║███████║██╔██╗ ██║   ██║   █████╗
██║   ██║██║╚██╗██║██║██╔══██╗██║   ██║██║╚██╔╝██║██╔══██║██║╚██╗██║   ██║   ██╔══╝
╚██████╔╝██║ ╚████║██║██║  ██║╚██████╔╝██║ ╚═╝ ██║██║  ██║██║ ╚████║   ██║   ███████╗
 ╚═════╝ ╚═╝  ╚═══╝╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝
`

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oniromante",
		Short: "Mystical dream journal with AI interpretation",
		Long: banner + `
Oniromante is a dream journal that analyzes, illustrates and archives
your dreams. Records live in a local Charm-backed store that syncs
across devices; interpretation, imagery and daily insights come from
an AI dream mentor.

Data stays on your machine. Set OPENAI_API_KEY to enable the
interpretive features.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewDreamCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewShareCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewInsightsCmd())
	cmd.AddCommand(NewSymbolCmd())
	cmd.AddCommand(NewNightCmd())
	cmd.AddCommand(NewLucidCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewOracleCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
