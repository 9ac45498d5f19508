//go:build windows

package clipboard

import "github.com/labi-le/clipwire/pkg/clipboard/windows"

// New constructs the Windows backend unconditionally; there is no display
// server probing on this platform.
func New(opts Options) (Backend, error) {
	return windows.New(opts.ConvertLineEndings, opts.Logger), nil
}
