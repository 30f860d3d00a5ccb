package collector

import (
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Request pacing per client kind.
const (
	// API Rate Limit: ~60 reqs/min (safe buffer)
	apiInterval = 1 * time.Second
	// Public JSON Limit: 1 req / 2 seconds (Stricter)
	publicInterval = 2 * time.Second
)

// newLimiter returns a token bucket allowing one request per interval.
// A non-positive interval disables limiting.
func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// multireddit joins forum names the way reddit expects them in one path
// segment: books+literature.
func multireddit(forums []string) string {
	return strings.Join(forums, "+")
}
