// ABOUTME: MCP tool handler implementations for the dream journal
// ABOUTME: Each handler reports failures as tool errors, never protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/cache"
	"github.com/oniromante/oniromante/internal/journal"
	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/stats"
	"github.com/oniromante/oniromante/internal/store"
)

// Handlers holds the handler functions for all journal tools.
type Handlers struct {
	store  *store.Store
	gen    ai.Generator
	policy *cache.Policy
	log    zerolog.Logger
	now    func() time.Time
}

// NewHandlers wires the tool handlers over the journal services.
func NewHandlers(s *store.Store, gen ai.Generator, policy *cache.Policy, log zerolog.Logger) *Handlers {
	return &Handlers{
		store:  s,
		gen:    gen,
		policy: policy,
		log:    log,
		now:    time.Now,
	}
}

func toolJSON(value interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RecordDream handles the record_dream tool.
func (h *Handlers) RecordDream(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	mgr := journal.NewManager(h.gen, h.store, h.log)
	if styleArg := request.GetString("style", ""); styleArg != "" {
		if err := mgr.SetStyle(models.ArtStyle(styleArg)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	if err := mgr.Submit(ctx, text); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record dream: %v", err)), nil
	}

	entry, err := mgr.Commit()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save dream: %v", err)), nil
	}

	return toolJSON(entry)
}

// DreamStats handles the dream_stats tool.
func (h *Handlers) DreamStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(stats.ComputeStats(h.store.ListDreams(), h.now()))
}

// DailyInsights handles the daily_insights tool.
func (h *Handlers) DailyInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fetch, err := h.policy.ShouldFetch(cache.KindDailyInsights)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !fetch {
		return toolJSON(h.policy.CachedInsights())
	}

	insights, err := h.gen.GenerateDailyInsights(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate insights: %v", err)), nil
	}
	if err := h.policy.RecordFetched(cache.KindDailyInsights, insights); err != nil {
		h.log.Warn().Err(err).Msg("failed to cache daily insights")
	}
	return toolJSON(insights)
}

// LookupSymbol handles the lookup_symbol tool.
func (h *Handlers) LookupSymbol(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError("term argument is required and must be a string"), nil
	}

	def, err := h.gen.LookupSymbol(ctx, term)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("symbol lookup failed: %v", err)), nil
	}
	return toolJSON(def)
}

// LucidProgress handles the lucid_progress tool.
func (h *Handlers) LucidProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := models.Today(h.now())
	progress := h.store.GetLucid(today)

	changed := false
	if request.GetBool("reality_check", false) {
		progress.AddRealityCheck()
		changed = true
	}
	if request.GetBool("meditated", false) {
		progress.DidMeditate = true
		changed = true
	}
	if request.GetBool("journaled", false) {
		progress.DidJournal = true
		changed = true
	}

	if changed {
		if err := h.store.PutLucid(progress); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save progress: %v", err)), nil
		}
	}

	return toolJSON(progress)
}
