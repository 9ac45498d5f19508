package clipboard

import "github.com/labi-le/clipwire/pkg/clipboard/internal/core"

// ErrNoDisplayServer is returned by the factory when neither a Wayland nor
// an X11 display indicator is present.
var ErrNoDisplayServer = core.ErrNoDisplayServer

// Error is one link in a failure chain crossing the protocol boundary.
// Error() reports only this link's message; the underlying cause is exposed
// through Unwrap so callers (and the wire encoder) can walk the chain.
type Error = core.Error

// System wraps a native API failure as a generic system error, keeping err
// as the root cause.
func System(err error) error { return core.System(err) }

// Wrap prepends a context message to err without flattening it into text.
func Wrap(msg string, err error) error { return core.Wrap(msg, err) }
