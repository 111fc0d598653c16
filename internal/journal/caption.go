// ABOUTME: Share caption and mentor prompt rendering for saved entries
// ABOUTME: Falls back to a composed caption when analysis produced none
package journal

import (
	"fmt"

	"github.com/oniromante/oniromante/internal/models"
)

const fallbackTheme = "Mistério"

// ShareCaption returns the social caption for an entry, composing one from
// title and theme when analysis did not produce a caption.
func ShareCaption(entry *models.DreamEntry) string {
	if entry.SocialCaption != "" {
		return entry.SocialCaption
	}

	theme := fallbackTheme
	if entry.Analysis != nil && entry.Analysis.DailyTheme != "" {
		theme = entry.Analysis.DailyTheme
	}
	title := entry.Title
	if title == "" {
		title = DefaultTitle
	}

	return fmt.Sprintf("🌙 Tive um sonho: %q\n✨ Tema: %s\n🔮 Oniromante AI", title, theme)
}

// MentorPrompt opens a chat about a saved entry, asking the mentor to go
// deeper than the stored analysis.
func MentorPrompt(entry *models.DreamEntry) string {
	return fmt.Sprintf("Gostaria de conversar sobre um sonho que tive: %q. Resumo: %s. Pode me ajudar a entender mais profundamente?",
		entry.Title, entry.Summary)
}
