// ABOUTME: Retry backoff helper for provider API calls
// ABOUTME: Exponential delay with jitter, capped at 30 seconds
package util

import (
	"math/rand/v2"
	"time"
)

// CalculateBackoff returns the delay before the given retry attempt.
// Doubles the base each attempt and adds up to ±25% jitter.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// cap the shift so the multiplication cannot overflow
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
