// Package core holds the declarations shared between pkg/clipboard and its
// platform backend subpackages. pkg/clipboard re-exports every name here via
// aliases; the split only exists so the platform factory in pkg/clipboard can
// import the backends without creating an import cycle.
package core

import (
	"errors"

	"github.com/rs/zerolog"
)

// Source selects which native buffer a paste reads from.
type Source int

const (
	SourceDefault Source = iota
	SourcePrimary
	SourceClipboard
)

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceClipboard:
		return "clipboard"
	default:
		return "default"
	}
}

// Dest selects which native buffer(s) a copy writes to. DestBoth writes
// sequentially to the primary selection and the clipboard; there is no
// rollback if the second store fails.
type Dest int

const (
	DestDefault Dest = iota
	DestPrimary
	DestClipboard
	DestBoth
)

func (d Dest) String() string {
	switch d {
	case DestPrimary:
		return "primary"
	case DestClipboard:
		return "clipboard"
	case DestBoth:
		return "both"
	default:
		return "default"
	}
}

// Data is the result of a paste. Mime is strictly advisory and empty when
// unknown; all transport is UTF-8 text.
type Data struct {
	Text string
	Mime string
}

// Backend is the capability contract every platform variant implements.
// Implementations own their native connection for the process lifetime.
type Backend interface {
	Copy(dest Dest, text string) error
	Paste(source Source) (Data, error)
	Close() error
}

// Options configures backend construction.
type Options struct {
	// ConvertLineEndings rewrites \n <-> \r\n on the Windows backend.
	// Ignored elsewhere.
	ConvertLineEndings bool

	Logger zerolog.Logger
}

// ErrNoDisplayServer is returned by the factory when neither a Wayland nor
// an X11 display indicator is present.
var ErrNoDisplayServer = errors.New("no display server available")

// Error is one link in a failure chain crossing the protocol boundary.
// Error() reports only this link's message; the underlying cause is exposed
// through Unwrap so callers (and the wire encoder) can walk the chain.
type Error struct {
	Msg   string
	Cause error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Cause }

// System wraps a native API failure as a generic system error, keeping err
// as the root cause.
func System(err error) error {
	return &Error{Msg: "system error", Cause: err}
}

// Wrap prepends a context message to err without flattening it into text.
func Wrap(msg string, err error) error {
	return &Error{Msg: msg, Cause: err}
}
