// ABOUTME: UserStatus tracks daily mood, sleep quality and sleep notes
// ABOUTME: One record per calendar day, mutated via partial merge
package models

import "time"

// DateLayout is the calendar-date key format used by all per-day records.
const DateLayout = "2006-01-02"

// Mood is the user's self-reported mood for the day.
type Mood string

const (
	MoodAmazing Mood = "amazing"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodAwful   Mood = "awful"
)

// Valid reports whether the mood is one of the known values.
func (m Mood) Valid() bool {
	switch m {
	case MoodAmazing, MoodGood, MoodNeutral, MoodBad, MoodAwful:
		return true
	}
	return false
}

// SleepQuality is the user's self-reported quality of last night's sleep.
type SleepQuality string

const (
	SleepExcellent SleepQuality = "excellent"
	SleepGood      SleepQuality = "good"
	SleepFair      SleepQuality = "fair"
	SleepPoor      SleepQuality = "poor"
	SleepTerrible  SleepQuality = "terrible"
)

// Valid reports whether the sleep quality is one of the known values.
func (s SleepQuality) Valid() bool {
	switch s {
	case SleepExcellent, SleepGood, SleepFair, SleepPoor, SleepTerrible:
		return true
	}
	return false
}

// UserStatus is the daily mood/sleep record. At most one exists per date key.
type UserStatus struct {
	Date       string       `json:"date"`
	Mood       Mood         `json:"mood,omitempty"`
	Sleep      SleepQuality `json:"sleep,omitempty"`
	SleepNotes string       `json:"sleepNotes,omitempty"`
}

// NewUserStatus returns the default status record for a date.
func NewUserStatus(date string) *UserStatus {
	return &UserStatus{Date: date}
}

// StatusUpdate is a partial update applied to a UserStatus. Nil fields are
// left untouched.
type StatusUpdate struct {
	Mood       *Mood
	Sleep      *SleepQuality
	SleepNotes *string
}

// Merge applies a partial update in place.
func (us *UserStatus) Merge(update StatusUpdate) {
	if update.Mood != nil {
		us.Mood = *update.Mood
	}
	if update.Sleep != nil {
		us.Sleep = *update.Sleep
	}
	if update.SleepNotes != nil {
		us.SleepNotes = *update.SleepNotes
	}
}

// Today returns the local calendar date key for now.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
