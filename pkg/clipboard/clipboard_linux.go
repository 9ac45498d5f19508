//go:build linux

package clipboard

import (
	"fmt"
	"os"

	"github.com/labi-le/clipwire/pkg/clipboard/wayland"
	"github.com/labi-le/clipwire/pkg/clipboard/x11"
)

// New picks the one backend this process will use. A usable Wayland display
// wins over X11; with neither present there is nothing to talk to and the
// caller must abort startup.
func New(opts Options) (Backend, error) {
	if haveEnv("WAYLAND_DISPLAY") {
		b, err := wayland.New(opts.Logger)
		if err != nil {
			return nil, fmt.Errorf("wayland backend: %w", err)
		}
		return b, nil
	}

	if haveEnv("DISPLAY") {
		b, err := x11.New(opts.Logger)
		if err != nil {
			return nil, fmt.Errorf("x11 backend: %w", err)
		}
		return b, nil
	}

	return nil, ErrNoDisplayServer
}

func haveEnv(name string) bool {
	return os.Getenv(name) != ""
}
