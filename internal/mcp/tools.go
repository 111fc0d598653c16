// ABOUTME: MCP tool definitions and registration for the dream journal
// ABOUTME: Declares JSON input schemas for the five journal tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/cache"
	"github.com/oniromante/oniromante/internal/store"
)

// RegisterTools registers all journal tools with the MCP server.
func RegisterTools(server *mcpserver.MCPServer, s *store.Store, gen ai.Generator, policy *cache.Policy, log zerolog.Logger) *Handlers {
	handlers := NewHandlers(s, gen, policy, log)

	// 1. record_dream - run a dream report through the full pipeline
	server.AddTool(mcp.Tool{
		Name:        "record_dream",
		Description: "Record a dream report. The text is analyzed, illustrated and saved to the journal; the saved entry is returned.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The raw dream report, in the dreamer's own words",
				},
				"style": map[string]interface{}{
					"type":        "string",
					"description": "Art style for the illustration: surreal, fantasy, watercolor, cyberpunk, minimalist or oil (default: surreal)",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.RecordDream)

	// 2. dream_stats - aggregate view over the whole journal
	server.AddTool(mcp.Tool{
		Name:        "dream_stats",
		Description: "Get aggregate statistics over the dream journal: totals, nightmare and weekly counts, top symbols and emotions, and the wrapped summary when available.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DreamStats)

	// 3. daily_insights - day-cached mystical content
	server.AddTool(mcp.Tool{
		Name:        "daily_insights",
		Description: "Get today's daily insights (motivation, lucky number and color, word of the day). Generated once per calendar day and reused afterwards.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DailyInsights)

	// 4. lookup_symbol - dream symbol encyclopedia
	server.AddTool(mcp.Tool{
		Name:        "lookup_symbol",
		Description: "Look up the dream symbolism of a term: its general, psychological, spiritual and cultural meanings plus practical advice.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"term": map[string]interface{}{
					"type":        "string",
					"description": "The symbol to look up, e.g. 'Água' or 'Queda'",
				},
			},
			Required: []string{"term"},
		},
	}, handlers.LookupSymbol)

	// 5. lucid_progress - today's lucid dreaming training record
	server.AddTool(mcp.Tool{
		Name:        "lucid_progress",
		Description: "Read or update today's lucid dreaming training progress. With no arguments, returns the current record; reality_check increments the counter, meditated and journaled mark the practices done.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"reality_check": map[string]interface{}{
					"type":        "boolean",
					"description": "Record one reality check performed now",
				},
				"meditated": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark today's meditation as done",
				},
				"journaled": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark today's journaling as done",
				},
			},
		},
	}, handlers.LucidProgress)

	return handlers
}
