// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes the dream journal to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/oniromante/oniromante/internal/cache"
	"github.com/oniromante/oniromante/internal/mcp"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs Oniromante as an MCP (Model Context Protocol) server, exposing
the dream journal over stdio: recording dreams, statistics, daily
insights, symbol lookups and lucid training.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  oniromante mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "oniromante": {
  #       "command": "oniromante",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := cmdLogger()

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Oniromante Dream Journal",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, s, gen, cache.New(s), log)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Oniromante MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		if err := backend.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing storage")
		}
		return nil

	case err := <-serverErr:
		_ = backend.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
