package windows

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		want     bool
	}{
		{"FirstTry", 0, true},
		{"OneContention", 1, true},
		{"NineContentions", 9, true},
		{"Exhausted", 10, false},
		{"NeverReleases", 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining := tt.failures
			attempts := 0
			got := withRetry(func(time.Duration) {}, func() bool {
				attempts++
				if remaining > 0 {
					remaining--
					return false
				}
				return true
			})

			if got != tt.want {
				t.Errorf("withRetry = %v, want %v", got, tt.want)
			}
			if attempts > openAttempts {
				t.Errorf("made %d attempts, cap is %d", attempts, openAttempts)
			}
		})
	}
}

func TestWithRetry_BackoffSchedule(t *testing.T) {
	var slept []time.Duration
	withRetry(
		func(d time.Duration) { slept = append(slept, d) },
		func() bool { return false },
	)

	want := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		80 * time.Millisecond,
		160 * time.Millisecond,
		320 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond,
	}
	if diff := cmp.Diff(want, slept); diff != "" {
		t.Errorf("backoff schedule mismatch (-want +got):\n%s", diff)
	}
}
