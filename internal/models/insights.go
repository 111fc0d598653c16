// ABOUTME: DailyInsights is the once-per-day motivational content record
// ABOUTME: Created by the AI contract, cached for the rest of the day
package models

// DailyInsights holds the mystical daily content. One per calendar day,
// never mutated after creation.
type DailyInsights struct {
	Motivation  string `json:"motivation"`
	LuckyNumber int    `json:"luckyNumber"`
	LuckyColor  string `json:"luckyColor"`
	WordOfDay   string `json:"wordOfDay"`
	WordMeaning string `json:"wordMeaning"`
}
