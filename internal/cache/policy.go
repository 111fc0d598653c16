// ABOUTME: Daily cache policy for AI-derived content reuse
// ABOUTME: Gates DailyInsights to one fetch per calendar day
package cache

import (
	"fmt"
	"time"

	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/store"
)

// Kind identifies a cacheable content kind.
type Kind string

// KindDailyInsights is the only day-cached kind. Per-entry images are never
// day-cached: they are generated once at analysis time and only regenerated
// by explicit user action, which bypasses this policy entirely.
const KindDailyInsights Kind = "daily_insights"

// Policy decides whether previously computed AI content may be reused for
// the current calendar day. The date key is derived at call time so a day
// rollover mid-session is picked up on the next call.
type Policy struct {
	store *store.Store
	now   func() time.Time
}

// Option configures a Policy.
type Option func(*Policy)

// WithClock overrides the time source (for tests).
func WithClock(now func() time.Time) Option {
	return func(p *Policy) { p.now = now }
}

// New creates a cache policy over the record store.
func New(s *store.Store, opts ...Option) *Policy {
	p := &Policy{store: s, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ShouldFetch reports whether content of the given kind must be requested
// from the provider for today.
func (p *Policy) ShouldFetch(kind Kind) (bool, error) {
	switch kind {
	case KindDailyInsights:
		today := models.Today(p.now())
		return p.store.GetInsights(today) == nil, nil
	default:
		return false, fmt.Errorf("unknown cache kind: %s", kind)
	}
}

// RecordFetched persists freshly fetched content under today's key so it is
// reused for the rest of the day, across restarts.
func (p *Policy) RecordFetched(kind Kind, value interface{}) error {
	switch kind {
	case KindDailyInsights:
		insights, ok := value.(*models.DailyInsights)
		if !ok {
			return fmt.Errorf("expected *models.DailyInsights, got %T", value)
		}
		today := models.Today(p.now())
		return p.store.PutInsights(today, insights)
	default:
		return fmt.Errorf("unknown cache kind: %s", kind)
	}
}

// CachedInsights returns today's cached insights, or nil when none exist.
func (p *Policy) CachedInsights() *models.DailyInsights {
	return p.store.GetInsights(models.Today(p.now()))
}
