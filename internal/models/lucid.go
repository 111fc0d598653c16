// ABOUTME: LucidProgress tracks daily lucid-dreaming practice counters
// ABOUTME: A new date key starts a fresh zero record
package models

import "fmt"

// LucidProgress is the per-day lucid training record.
type LucidProgress struct {
	Date          string `json:"date"`
	RealityChecks int    `json:"realityChecks"`
	DidMeditate   bool   `json:"didMeditate"`
	DidJournal    bool   `json:"didJournal"`
}

// NewLucidProgress returns the zeroed record for a date.
func NewLucidProgress(date string) *LucidProgress {
	return &LucidProgress{Date: date}
}

// AddRealityCheck increments the reality-check counter.
func (lp *LucidProgress) AddRealityCheck() {
	lp.RealityChecks++
}

// LucidUpdate is a partial update applied to a LucidProgress record.
type LucidUpdate struct {
	RealityChecks *int
	DidMeditate   *bool
	DidJournal    *bool
}

// Merge applies a partial update in place. Negative counter values are
// rejected so the counter stays monotonic within a day.
func (lp *LucidProgress) Merge(update LucidUpdate) error {
	if update.RealityChecks != nil {
		if *update.RealityChecks < 0 {
			return fmt.Errorf("realityChecks cannot be negative, got %d", *update.RealityChecks)
		}
		lp.RealityChecks = *update.RealityChecks
	}
	if update.DidMeditate != nil {
		lp.DidMeditate = *update.DidMeditate
	}
	if update.DidJournal != nil {
		lp.DidJournal = *update.DidJournal
	}
	return nil
}
