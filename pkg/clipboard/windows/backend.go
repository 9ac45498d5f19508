//go:build windows

package windows

import (
	"errors"
	"runtime"
	"time"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
	"github.com/rs/zerolog"
	sys "golang.org/x/sys/windows"
)

type Backend struct {
	// Fixed for the process lifetime, chosen from --keep-line-endings.
	convertLineEndings bool

	logger zerolog.Logger
	sleep  func(time.Duration)
}

func New(convertLineEndings bool, log zerolog.Logger) *Backend {
	return &Backend{
		convertLineEndings: convertLineEndings,
		logger:             log.With().Str("component", "windows").Logger(),
		sleep:              time.Sleep,
	}
}

func (b *Backend) Copy(_ clipboard.Dest, text string) error {
	if b.convertLineEndings {
		text = toCRLF(text)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := b.open(); err != nil {
		return err
	}
	defer procCloseClipboard.Call()

	if err := setText(text); err != nil {
		return clipboard.System(err)
	}
	return nil
}

func (b *Backend) Paste(_ clipboard.Source) (clipboard.Data, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// No text on offer is a legitimately empty clipboard, not a failure.
	if r, _, _ := procIsClipboardFormatAvailable.Call(cfUnicodeText); r == 0 {
		return clipboard.Data{}, nil
	}

	if err := b.open(); err != nil {
		return clipboard.Data{}, err
	}
	defer procCloseClipboard.Call()

	text, err := getText()
	if err != nil {
		if isEmptyError(err) {
			return clipboard.Data{}, nil
		}
		return clipboard.Data{}, clipboard.System(err)
	}

	if b.convertLineEndings {
		text = toLF(text)
	}
	return clipboard.Data{Text: text}, nil
}

func (b *Backend) Close() error { return nil }

// open acquires the global clipboard lock, retrying under contention per
// the policy in retry.go. Exhaustion surfaces as a system error rooted at
// the last lock failure.
func (b *Backend) open() error {
	var lastErr error
	ok := withRetry(b.sleep, func() bool {
		r, _, err := procOpenClipboard.Call(0)
		if r == 0 {
			lastErr = err
			return false
		}
		return true
	})
	if ok {
		return nil
	}

	b.logger.Debug().Err(lastErr).Int("attempts", openAttempts).Msg("clipboard lock exhausted")
	return clipboard.System(clipboard.Wrap("failed to open clipboard", lastErr))
}

// ERROR_INVALID_HANDLE and ERROR_NOT_FOUND are what GetClipboardData yields
// for an empty clipboard or an unavailable format; both are expected.
func isEmptyError(err error) bool {
	return errors.Is(err, sys.ERROR_INVALID_HANDLE) || errors.Is(err, sys.ERROR_NOT_FOUND)
}
