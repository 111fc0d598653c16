// ABOUTME: DreamEntry and DreamAnalysis models for the dream journal
// ABOUTME: Entries are immutable once saved and stored newest-first
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ArtStyle is a named visual preset passed to image generation.
type ArtStyle string

const (
	StyleFantasy    ArtStyle = "fantasy"
	StyleSurreal    ArtStyle = "surreal"
	StyleWatercolor ArtStyle = "watercolor"
	StyleCyberpunk  ArtStyle = "cyberpunk"
	StyleMinimalist ArtStyle = "minimalist"
	StyleOil        ArtStyle = "oil"
)

// ArtStyles lists all known styles in presentation order.
var ArtStyles = []ArtStyle{
	StyleSurreal,
	StyleFantasy,
	StyleWatercolor,
	StyleCyberpunk,
	StyleMinimalist,
	StyleOil,
}

// Valid reports whether the style is one of the known presets.
func (s ArtStyle) Valid() bool {
	for _, known := range ArtStyles {
		if s == known {
			return true
		}
	}
	return false
}

// Ritual is a suggested practice derived from a dream.
type Ritual struct {
	Title    string   `json:"title"`
	Steps    []string `json:"steps"`
	Duration string   `json:"duration,omitempty"` // "quick" or "deep"
}

// EmotionScore is a single emotion with its measured intensity.
type EmotionScore struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"` // 0-10
	Meaning   string `json:"meaning"`
}

// DreamAnalysis holds the interpretive layers produced for a dream.
type DreamAnalysis struct {
	Spiritual           string         `json:"spiritual"`
	Psychological       string         `json:"psychological"`
	Cultural            string         `json:"cultural"`
	Ritual              Ritual         `json:"ritual"`
	DailyTheme          string         `json:"dailyTheme"`
	EmotionalAlert      string         `json:"emotionalAlert,omitempty"`
	EmotionsList        []EmotionScore `json:"emotionsList,omitempty"`
	EmotionalBalanceTip string         `json:"emotionalBalanceTip,omitempty"`
}

// DreamEntry is one saved dream. Immutable once saved, except for deletion.
type DreamEntry struct {
	ID            string         `json:"id"`
	Date          string         `json:"date"`
	OriginalText  string         `json:"originalText,omitempty"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	Characters    []string       `json:"characters"`
	Places        []string       `json:"places"`
	Emotions      []string       `json:"emotions"`
	Symbols       []string       `json:"symbols"`
	Analysis      *DreamAnalysis `json:"analysis,omitempty"`
	IsNightmare   bool           `json:"isNightmare,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"` // inline data URL payload
	ImageStyle    ArtStyle       `json:"imageStyle,omitempty"`
	SocialCaption string         `json:"socialCaption,omitempty"`
}

// AnalysisResult is the structured output of analyzing raw dream text.
// All fields are optional; the lifecycle manager fills defaults on commit.
type AnalysisResult struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	Characters    []string       `json:"characters"`
	Places        []string       `json:"places"`
	Emotions      []string       `json:"emotions"`
	Symbols       []string       `json:"symbols"`
	IsNightmare   bool           `json:"isNightmare"`
	Analysis      *DreamAnalysis `json:"analysis"`
	SocialCaption string         `json:"socialCaption"`
}

// NewEntryID generates a creation-time-derived unique entry id.
func NewEntryID(now time.Time) string {
	return fmt.Sprintf("dream_%s_%s", now.Format("20060102_150405"), uuid.New().String()[:8])
}
