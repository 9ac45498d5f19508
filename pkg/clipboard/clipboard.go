// Package clipboard abstracts the host clipboard behind a uniform
// copy/paste capability. Exactly one Backend is constructed per process,
// chosen by the platform factory in New, and kept for the process lifetime.
//
// The declarations live in the internal core package and are re-exported
// here as aliases so the platform backends under this package can share
// them without importing the factory (which would be an import cycle).
package clipboard

import "github.com/labi-le/clipwire/pkg/clipboard/internal/core"

// Source selects which native buffer a paste reads from.
type Source = core.Source

const (
	SourceDefault   = core.SourceDefault
	SourcePrimary   = core.SourcePrimary
	SourceClipboard = core.SourceClipboard
)

// Dest selects which native buffer(s) a copy writes to. DestBoth writes
// sequentially to the primary selection and the clipboard; there is no
// rollback if the second store fails.
type Dest = core.Dest

const (
	DestDefault   = core.DestDefault
	DestPrimary   = core.DestPrimary
	DestClipboard = core.DestClipboard
	DestBoth      = core.DestBoth
)

// Data is the result of a paste. Mime is strictly advisory and empty when
// unknown; all transport is UTF-8 text.
type Data = core.Data

// Backend is the capability contract every platform variant implements.
// Implementations own their native connection for the process lifetime.
type Backend = core.Backend

// Options configures backend construction.
type Options = core.Options
