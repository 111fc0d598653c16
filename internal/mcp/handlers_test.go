// ABOUTME: Tests for the MCP tool handlers
// ABOUTME: Exercises handlers directly with scripted generator responses
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/cache"
	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/store"
)

type scriptedGenerator struct {
	insights      *models.DailyInsights
	insightsCalls int
	analyzeResult *models.AnalysisResult
	symbol        *models.SymbolDefinition
}

func (g *scriptedGenerator) GenerateDailyInsights(ctx context.Context) (*models.DailyInsights, error) {
	g.insightsCalls++
	if g.insights == nil {
		return nil, errors.New("not scripted")
	}
	return g.insights, nil
}

func (g *scriptedGenerator) AnalyzeDream(ctx context.Context, rawText string) (*models.AnalysisResult, error) {
	if g.analyzeResult == nil {
		return nil, errors.New("not scripted")
	}
	return g.analyzeResult, nil
}

func (g *scriptedGenerator) GenerateDreamImage(ctx context.Context, summary string, style models.ArtStyle) (string, error) {
	return "data:image/png;base64,AAAA", nil
}

func (g *scriptedGenerator) LookupSymbol(ctx context.Context, term string) (*models.SymbolDefinition, error) {
	if g.symbol == nil {
		return nil, errors.New("not scripted")
	}
	return g.symbol, nil
}

func (g *scriptedGenerator) GenerateNightEnergy(ctx context.Context, mood string) (*models.NightEnergy, error) {
	return nil, errors.New("not scripted")
}

func (g *scriptedGenerator) NewChatSession(status *models.UserStatus) ai.ChatSession {
	return nil
}

func newTestHandlers(gen *scriptedGenerator) (*Handlers, *store.Store) {
	s := store.New(store.NewMemoryKV())
	clock := func() time.Time {
		return time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	}
	h := NewHandlers(s, gen, cache.New(s, cache.WithClock(clock)), zerolog.Nop())
	h.now = clock
	return h, s
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestRecordDreamSavesEntry(t *testing.T) {
	gen := &scriptedGenerator{
		analyzeResult: &models.AnalysisResult{Title: "Voo sobre o Oceano", Summary: "voando sobre o mar"},
	}
	h, s := newTestHandlers(gen)

	result, err := h.RecordDream(context.Background(), callRequest(map[string]any{
		"text":  "Sonhei que voava sobre o oceano",
		"style": "fantasy",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var entry models.DreamEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &entry))
	assert.Equal(t, "Voo sobre o Oceano", entry.Title)
	assert.Equal(t, models.StyleFantasy, entry.ImageStyle)

	require.Len(t, s.ListDreams(), 1)
}

func TestRecordDreamMissingText(t *testing.T) {
	h, _ := newTestHandlers(&scriptedGenerator{})

	result, err := h.RecordDream(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestRecordDreamUnknownStyle(t *testing.T) {
	h, s := newTestHandlers(&scriptedGenerator{})

	result, err := h.RecordDream(context.Background(), callRequest(map[string]any{
		"text":  "um sonho",
		"style": "claymation",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, s.ListDreams())
}

func TestDailyInsightsCachedPerDay(t *testing.T) {
	gen := &scriptedGenerator{
		insights: &models.DailyInsights{Motivation: "Confie nos sinais", LuckyNumber: 7},
	}
	h, _ := newTestHandlers(gen)

	first, err := h.DailyInsights(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, first.IsError)
	assert.Equal(t, 1, gen.insightsCalls)

	second, err := h.DailyInsights(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, second.IsError)
	assert.Equal(t, 1, gen.insightsCalls, "second call must reuse the cached insights")
	assert.Equal(t, resultText(t, first), resultText(t, second))
}

func TestLookupSymbol(t *testing.T) {
	gen := &scriptedGenerator{
		symbol: &models.SymbolDefinition{Name: "Água", Meaning: "emoções profundas"},
	}
	h, _ := newTestHandlers(gen)

	result, err := h.LookupSymbol(context.Background(), callRequest(map[string]any{"term": "Água"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var def models.SymbolDefinition
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &def))
	assert.Equal(t, "Água", def.Name)
}

func TestLucidProgressReadAndUpdate(t *testing.T) {
	h, s := newTestHandlers(&scriptedGenerator{})

	result, err := h.LucidProgress(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var progress models.LucidProgress
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &progress))
	assert.Zero(t, progress.RealityChecks)

	result, err = h.LucidProgress(context.Background(), callRequest(map[string]any{
		"reality_check": true,
		"meditated":     true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	saved := s.GetLucid("2026-08-27")
	assert.Equal(t, 1, saved.RealityChecks)
	assert.True(t, saved.DidMeditate)
	assert.False(t, saved.DidJournal)
}

func TestDreamStatsOverCollection(t *testing.T) {
	h, s := newTestHandlers(&scriptedGenerator{})

	require.NoError(t, s.SaveDream(&models.DreamEntry{
		ID: "d1", Date: "2026-08-26", Symbols: []string{"Água"}, IsNightmare: true,
	}))

	result, err := h.DreamStats(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `"totalDreams":1`)
	assert.Contains(t, text, `"nightmareCount":1`)
}
