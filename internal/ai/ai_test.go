// ABOUTME: Tests for the generative boundary helpers
// ABOUTME: Error taxonomy, prompt shapes and chat session seeding
package ai

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/oniromante/oniromante/internal/config"
	"github.com/oniromante/oniromante/internal/models"
)

func TestErrorTaxonomy(t *testing.T) {
	transport := &TransportError{Err: errors.New("connection refused")}
	decode := &DecodeError{Err: errors.New("unexpected end of JSON input")}

	if !IsTransport(transport) {
		t.Error("IsTransport should match a TransportError")
	}
	if IsTransport(decode) {
		t.Error("IsTransport should not match a DecodeError")
	}
	if !IsDecode(decode) {
		t.Error("IsDecode should match a DecodeError")
	}
	if IsDecode(transport) {
		t.Error("IsDecode should not match a TransportError")
	}

	wrapped := fmt.Errorf("generation failed after 4 attempts: %w", transport)
	if !IsTransport(wrapped) {
		t.Error("IsTransport should see through fmt.Errorf wrapping")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	cfg := &config.Config{}
	if _, err := NewClient(cfg); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestStylePromptsCoverAllStyles(t *testing.T) {
	for _, style := range models.ArtStyles {
		if _, ok := stylePrompts[style]; !ok {
			t.Errorf("no image prompt prefix for style %q", style)
		}
	}
}

func TestImagePromptFallsBackToSurreal(t *testing.T) {
	got := imagePrompt("um farol no deserto", models.ArtStyle("unknown"))
	if !strings.Contains(got, stylePrompts[models.StyleSurreal]) {
		t.Errorf("unknown style should fall back to surreal, got %q", got)
	}
	if !strings.Contains(got, "um farol no deserto") {
		t.Errorf("prompt should carry the summary, got %q", got)
	}
}

func TestPromptShapesDeclareFields(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		fields []string
	}{
		{"insights", insightsPrompt(), []string{"motivation", "luckyNumber", "luckyColor", "wordOfDay", "wordMeaning"}},
		{"dream", dreamPrompt("sonhei com o mar"), []string{"title", "summary", "symbols", "isNightmare", "emotionsList", "dailyTheme"}},
		{"symbol", symbolPrompt("Água"), []string{"meaning", "psychological", "spiritual", "advice"}},
		{"night", nightPrompt("ansioso"), []string{"message", "breathing", "intention", "theme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, field := range tt.fields {
				if !strings.Contains(tt.prompt, field) {
					t.Errorf("prompt missing field %q", field)
				}
			}
		})
	}
}

func TestDreamPromptEmbedsRawText(t *testing.T) {
	raw := "Sonhei que voava sobre o oceano"
	if !strings.Contains(dreamPrompt(raw), raw) {
		t.Error("dream prompt should embed the raw report")
	}
}

func TestContextPrimingMessage(t *testing.T) {
	tests := []struct {
		name   string
		status *models.UserStatus
		want   string
	}{
		{"nil status", nil, ""},
		{"empty status", models.NewUserStatus("2026-08-27"), ""},
		{
			"mood only",
			&models.UserStatus{Date: "2026-08-27", Mood: models.MoodBad},
			`"bad"`,
		},
		{
			"full status",
			&models.UserStatus{Date: "2026-08-27", Mood: models.MoodGood, Sleep: models.SleepGood, SleepNotes: "acordei às 3h"},
			"acordei às 3h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contextPrimingMessage(tt.status)
			if tt.want == "" {
				if got != "" {
					t.Errorf("expected empty priming message, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("priming message %q missing %q", got, tt.want)
			}
			if !strings.Contains(got, "[Contexto do Sistema:") {
				t.Errorf("priming message should be marked as system context, got %q", got)
			}
		})
	}
}

func TestNewChatSessionSeeding(t *testing.T) {
	c := &Client{chatModel: "gpt-4o-mini"}

	plain := c.NewChatSession(nil).(*chatSession)
	if len(plain.messages) != 1 {
		t.Fatalf("session without status should hold only the persona preamble, got %d messages", len(plain.messages))
	}
	if !strings.Contains(plain.messages[0].Content, "Oniromante") {
		t.Error("persona preamble missing from seed message")
	}

	status := &models.UserStatus{Date: "2026-08-27", Mood: models.MoodNeutral}
	primed := c.NewChatSession(status).(*chatSession)
	if len(primed.messages) != 2 {
		t.Fatalf("session with status should hold preamble plus priming, got %d messages", len(primed.messages))
	}
	if !strings.Contains(primed.messages[1].Content, "neutral") {
		t.Errorf("priming message should carry the mood, got %q", primed.messages[1].Content)
	}

	if len(primed.History()) != 0 {
		t.Error("seed messages must not appear in the transcript")
	}
}
