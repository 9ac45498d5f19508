// Package windows implements the clipboard backend for the win32 system
// clipboard. There is no primary selection on this platform; every selector
// resolves to the single global clipboard.
package windows

import "time"

// Other applications routinely hold the global clipboard lock for short
// windows, so acquisition must retry. The retry count and delay cap bound
// worst-case unavailability to about two seconds instead of hanging the
// request loop.
const (
	openAttempts     = 10
	openInitialDelay = 10 * time.Millisecond
	openMaxDelay     = 500 * time.Millisecond
)

// withRetry calls try up to openAttempts times, sleeping between attempts
// with the delay doubling from openInitialDelay and capped at openMaxDelay.
// Reports whether try eventually succeeded.
func withRetry(sleep func(time.Duration), try func() bool) bool {
	delay := openInitialDelay
	for attempt := 1; ; attempt++ {
		if try() {
			return true
		}
		if attempt == openAttempts {
			return false
		}
		sleep(delay)
		delay *= 2
		if delay > openMaxDelay {
			delay = openMaxDelay
		}
	}
}
