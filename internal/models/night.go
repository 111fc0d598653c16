// ABOUTME: NightEnergy and SymbolDefinition transient AI-produced content
// ABOUTME: Neither is persisted; both are generated on demand
package models

// NightTheme selects the visual ambience for the night ritual.
type NightTheme string

const (
	ThemeStars NightTheme = "stars"
	ThemeMoon  NightTheme = "moon"
	ThemeVoid  NightTheme = "void"
	ThemeCalm  NightTheme = "calm"
)

// NightEnergy is a pre-sleep ritual: message, breathing exercise and an
// intention phrase, tuned to the user's mood.
type NightEnergy struct {
	Message   string     `json:"message"`
	Breathing string     `json:"breathing"`
	Intention string     `json:"intention"`
	Theme     NightTheme `json:"theme"`
}

// SymbolDefinition is an on-demand encyclopedia entry for a dream symbol.
// Not cached across sessions.
type SymbolDefinition struct {
	Name          string `json:"name"`
	Meaning       string `json:"meaning"`
	Psychological string `json:"psychological,omitempty"`
	Spiritual     string `json:"spiritual,omitempty"`
	Cultural      string `json:"cultural,omitempty"`
	Advice        string `json:"advice,omitempty"`
}

// CommonSymbols are the suggested starting points for the encyclopedia.
var CommonSymbols = []string{"Água", "Cobra", "Queda", "Dentes", "Voar"}
