// ABOUTME: Pure aggregation over the dream collection for the stats view
// ABOUTME: Frequency maps, top-5 rankings, weekly counts, wrapped summary
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/oniromante/oniromante/internal/models"
)

const (
	topN = 5

	noDataSentinel = "N/A"
	defaultTheme   = "Mistério"

	// Archetype derivation is not implemented; every wrapped summary
	// carries this fixed placeholder.
	placeholderArchetype = "O Viajante"
)

// NameCount is one ranked frequency entry.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Wrapped is the retrospective summary, populated only once the journal
// holds more than two entries.
type Wrapped struct {
	TopSymbol  string `json:"topSymbol"`
	TopEmotion string `json:"topEmotion"`
	Theme      string `json:"theme"`
	Archetype  string `json:"archetype"`
}

// Stats is the aggregate view over the full dream collection.
type Stats struct {
	TotalDreams    int         `json:"totalDreams"`
	NightmareCount int         `json:"nightmareCount"`
	ThisWeekCount  int         `json:"thisWeekCount"`
	TopSymbols     []NameCount `json:"topSymbols"`
	TopEmotions    []NameCount `json:"topEmotions"`
	Wrapped        *Wrapped    `json:"wrapped,omitempty"`
}

// counter tracks frequencies while preserving first-seen order, so rank
// ties break deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(raw string) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(n int) []NameCount {
	ranked := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		ranked = append(ranked, NameCount{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ComputeStats aggregates the dream collection. Pure and deterministic:
// same entries and today always produce the same result. Entries with
// missing or unparseable fields contribute nothing for those fields,
// never an error.
func ComputeStats(entries []models.DreamEntry, today time.Time) Stats {
	symbols := newCounter()
	emotions := newCounter()

	todayDate := truncateToDate(today)
	nightmares := 0
	weekCount := 0

	for _, entry := range entries {
		if entry.IsNightmare {
			nightmares++
		}
		if withinPastWeek(entry.Date, todayDate) {
			weekCount++
		}
		for _, s := range entry.Symbols {
			symbols.add(s)
		}
		for _, e := range entry.Emotions {
			emotions.add(e)
		}
	}

	s := Stats{
		TotalDreams:    len(entries),
		NightmareCount: nightmares,
		ThisWeekCount:  weekCount,
		TopSymbols:     symbols.top(topN),
		TopEmotions:    emotions.top(topN),
	}

	if len(entries) > 2 {
		s.Wrapped = &Wrapped{
			TopSymbol:  firstNameOr(s.TopSymbols, noDataSentinel),
			TopEmotion: firstNameOr(s.TopEmotions, noDataSentinel),
			Theme:      latestTheme(entries),
			Archetype:  placeholderArchetype,
		}
	}

	return s
}

func firstNameOr(ranked []NameCount, fallback string) string {
	if len(ranked) == 0 {
		return fallback
	}
	return ranked[0].Name
}

// latestTheme takes the daily theme of the most recent entry; the
// collection iterates newest-first.
func latestTheme(entries []models.DreamEntry) string {
	if len(entries) > 0 && entries[0].Analysis != nil && entries[0].Analysis.DailyTheme != "" {
		return entries[0].Analysis.DailyTheme
	}
	return defaultTheme
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// withinPastWeek compares calendar dates only: an entry dated exactly seven
// days before today counts, eight days does not, and future dates never do.
func withinPastWeek(entryDate string, todayDate time.Time) bool {
	parsed, err := time.Parse(models.DateLayout, entryDate)
	if err != nil {
		return false
	}
	days := int(todayDate.Sub(truncateToDate(parsed)).Hours() / 24)
	return days >= 0 && days <= 7
}
