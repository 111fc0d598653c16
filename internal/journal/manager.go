// ABOUTME: Entry lifecycle state machine from raw text to saved journal entry
// ABOUTME: Drafting, Analyzing, Illustrating, Reviewing, Saved with degrade paths
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/store"
)

// State is a lifecycle stage of the entry being composed.
type State string

// Saved is momentary: Commit persists the entry and immediately resets
// the manager to a fresh Drafting state.
const (
	StateDrafting     State = "drafting"
	StateAnalyzing    State = "analyzing"
	StateIllustrating State = "illustrating"
	StateReviewing    State = "reviewing"
	StateSaved        State = "saved"
)

// DefaultTitle fills an entry whose analysis produced no title.
const DefaultTitle = "Sonho Sem Título"

// ErrEmptySubmission is returned when Submit is called with blank text.
var ErrEmptySubmission = errors.New("dream text is empty")

// ErrNotReviewing is returned by operations that need a pending entry.
var ErrNotReviewing = errors.New("no entry under review")

// Manager drives one dream entry at a time from raw text to the saved
// collection. Not safe for concurrent use; it models a single journaling
// flow.
type Manager struct {
	gen   ai.Generator
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time

	state    State
	rawText  string
	result   *models.AnalysisResult
	imageURL string
	style    models.ArtStyle
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a lifecycle manager in the Drafting state.
func NewManager(gen ai.Generator, s *store.Store, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		gen:   gen,
		store: s,
		log:   log,
		now:   time.Now,
		state: StateDrafting,
		style: models.StyleSurreal,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle stage.
func (m *Manager) State() State { return m.state }

// Result returns the pending analysis, or nil before one exists.
func (m *Manager) Result() *models.AnalysisResult { return m.result }

// ImageURL returns the pending illustration payload, empty when image
// generation was skipped or degraded.
func (m *Manager) ImageURL() string { return m.imageURL }

// Style returns the art style the next illustration will use.
func (m *Manager) Style() models.ArtStyle { return m.style }

// SetStyle selects the art style for illustration. Unknown styles are
// rejected.
func (m *Manager) SetStyle(style models.ArtStyle) error {
	if !style.Valid() {
		return fmt.Errorf("unknown art style %q", style)
	}
	m.style = style
	return nil
}

// Submit takes raw dream text through analysis and illustration, ending in
// Reviewing. Blank text is a no-op error and the state does not move. An
// analysis failure resets to Drafting with nothing persisted; an
// illustration failure degrades to an entry without an image.
func (m *Manager) Submit(ctx context.Context, rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return ErrEmptySubmission
	}

	m.state = StateAnalyzing
	m.rawText = rawText
	m.log.Debug().Int("chars", len(rawText)).Msg("analyzing dream report")

	result, err := m.gen.AnalyzeDream(ctx, rawText)
	if err != nil {
		m.reset()
		return fmt.Errorf("dream analysis failed: %w", err)
	}
	m.result = result

	m.state = StateIllustrating
	m.illustrate(ctx)

	m.state = StateReviewing
	return nil
}

// illustrate renders the pending entry's image. Failure degrades: the entry
// proceeds without an illustration.
func (m *Manager) illustrate(ctx context.Context) {
	summary := m.result.Summary
	if summary == "" {
		summary = m.rawText
	}

	url, err := m.gen.GenerateDreamImage(ctx, summary, m.style)
	if err != nil {
		m.log.Warn().Err(err).Msg("illustration failed, continuing without image")
		m.imageURL = ""
		return
	}
	m.imageURL = url
}

// RegenerateImage re-renders the pending illustration in a new style. Only
// valid while Reviewing; the previous image is replaced on success and kept
// on failure.
func (m *Manager) RegenerateImage(ctx context.Context, style models.ArtStyle) error {
	if m.state != StateReviewing {
		return ErrNotReviewing
	}
	if err := m.SetStyle(style); err != nil {
		return err
	}

	summary := m.result.Summary
	if summary == "" {
		summary = m.rawText
	}

	url, err := m.gen.GenerateDreamImage(ctx, summary, m.style)
	if err != nil {
		return fmt.Errorf("image regeneration failed: %w", err)
	}
	m.imageURL = url
	return nil
}

// Commit persists the reviewed entry to the collection and returns it,
// filling defaults for whatever analysis left blank. The manager returns to
// Drafting afterwards.
func (m *Manager) Commit() (*models.DreamEntry, error) {
	if m.state != StateReviewing {
		return nil, ErrNotReviewing
	}

	now := m.now()
	entry := &models.DreamEntry{
		ID:            models.NewEntryID(now),
		Date:          now.Format(models.DateLayout),
		OriginalText:  m.rawText,
		Title:         m.result.Title,
		Summary:       m.result.Summary,
		Characters:    emptyIfNil(m.result.Characters),
		Places:        emptyIfNil(m.result.Places),
		Emotions:      emptyIfNil(m.result.Emotions),
		Symbols:       emptyIfNil(m.result.Symbols),
		Analysis:      m.result.Analysis,
		IsNightmare:   m.result.IsNightmare,
		ImageURL:      m.imageURL,
		ImageStyle:    m.style,
		SocialCaption: m.result.SocialCaption,
	}
	if entry.Title == "" {
		entry.Title = DefaultTitle
	}
	if entry.Summary == "" {
		entry.Summary = m.rawText
	}

	if err := m.store.SaveDream(entry); err != nil {
		return nil, fmt.Errorf("failed to save dream: %w", err)
	}

	m.log.Info().Str("id", entry.ID).Str("title", entry.Title).Msg("dream saved")
	m.reset()
	return entry, nil
}

// Discard drops the pending entry without persisting anything.
func (m *Manager) Discard() {
	m.reset()
}

func (m *Manager) reset() {
	m.state = StateDrafting
	m.rawText = ""
	m.result = nil
	m.imageURL = ""
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
