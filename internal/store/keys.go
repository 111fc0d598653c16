// ABOUTME: Typed key builders for the four record namespaces
// ABOUTME: Prevents ad-hoc key string collisions between record kinds
package store

// Key prefixes for the per-day record kinds. The dream collection lives
// under a single fixed key holding the whole ordered sequence.
const (
	statusPrefix   = "status:"
	insightsPrefix = "insights:"
	lucidPrefix    = "lucid:"
	dreamsKey      = "dreams"
)

// StatusKey returns the UserStatus key for a calendar date.
func StatusKey(date string) string {
	return statusPrefix + date
}

// InsightsKey returns the DailyInsights key for a calendar date.
func InsightsKey(date string) string {
	return insightsPrefix + date
}

// LucidKey returns the LucidProgress key for a calendar date.
func LucidKey(date string) string {
	return lucidPrefix + date
}

// DreamsKey returns the single-slot key of the dream entry collection.
func DreamsKey() string {
	return dreamsKey
}
