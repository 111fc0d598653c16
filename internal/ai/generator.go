// ABOUTME: Contract for the external generative capability
// ABOUTME: Five content shapes plus a stateful streaming chat session
package ai

import (
	"context"

	"github.com/oniromante/oniromante/internal/models"
)

// Generator is the boundary to the generative provider. Every call either
// returns a decoded value or a typed failure (TransportError, DecodeError);
// raw provider faults never cross this boundary. Responses that decode but
// carry empty fields pass through as-is; callers own semantic fallbacks.
type Generator interface {
	// GenerateDailyInsights produces the mystical daily content.
	GenerateDailyInsights(ctx context.Context) (*models.DailyInsights, error)

	// AnalyzeDream structures raw dream text into an analysis result.
	AnalyzeDream(ctx context.Context, rawText string) (*models.AnalysisResult, error)

	// GenerateDreamImage renders the dream summary in the given art style
	// and returns an inline data-URL image payload.
	GenerateDreamImage(ctx context.Context, summary string, style models.ArtStyle) (string, error)

	// LookupSymbol explains the dream symbolism of a term.
	LookupSymbol(ctx context.Context, term string) (*models.SymbolDefinition, error)

	// GenerateNightEnergy produces a pre-sleep ritual tuned to a mood.
	GenerateNightEnergy(ctx context.Context, mood string) (*models.NightEnergy, error)

	// NewChatSession opens a mentor chat seeded with the persona preamble
	// and, when the status carries any signal, one silent context-priming
	// message. Sessions are independent and not restartable.
	NewChatSession(status *models.UserStatus) ChatSession
}

// ChatSession is a stateful dream-mentor dialogue.
type ChatSession interface {
	// Send exchanges one turn and returns the full reply.
	Send(ctx context.Context, text string) (string, error)

	// SendStream exchanges one turn, yielding the reply as an ordered,
	// finite sequence of text fragments. The fragment channel closes when
	// the reply is complete; at most one error arrives on the second
	// channel. Cancelling ctx stops delivery: late fragments are dropped,
	// never applied. A returned stream cannot be restarted.
	SendStream(ctx context.Context, text string) (<-chan string, <-chan error)

	// History returns the user-visible transcript of completed turns. The
	// persona preamble and the priming message are not part of it.
	History() []models.Message
}
