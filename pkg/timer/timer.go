package timer

import (
	"log/slog"
	"time"
)

// Track returns a function that, when executed, logs the duration.
// Usage: defer timer.Track("DeleteCandidate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		slog.Debug("operation timing", "name", name, "took", time.Since(start))
	}
}
