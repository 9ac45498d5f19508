//go:build unix

package wayland

import (
	"errors"
	"fmt"

	wl "deedles.dev/wl/client"
	"github.com/rs/zerolog"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
)

type selection int

const (
	selRegular selection = iota
	selPrimary
)

// offerState collects the MIME types a remote offer advertises.
type offerState struct {
	obj   *DataControlOffer
	mimes []string
}

func (o *offerState) Offer(mimeType string) {
	o.mimes = append(o.mimes, mimeType)
}

// session holds the bound globals and tracks the live offer per selection.
// All mutation happens on the backend's run goroutine.
type session struct {
	client   *wl.Client
	display  *wl.Display
	registry *wl.Registry
	seat     *wl.Seat
	manager  *DataControlManager
	device   *DataControlDevice
	logger   zerolog.Logger

	// Probed once at setup; selectors degrade to the regular clipboard
	// on compositors without the extension.
	primarySupported bool

	offers  [2]*offerState
	pending *offerState
}

func newSession(client *wl.Client, log zerolog.Logger) *session {
	return &session{
		client: client,
		logger: log.With().Str("component", "session").Logger(),
	}
}

func (s *session) Global(name uint32, inter string, version uint32) {
	switch inter {
	case wl.SeatInterface:
		s.seat = wl.BindSeat(s.client, s.registry, name, version)
		s.logger.Trace().Uint32("name", name).Msg("bound seat")
	case DataControlManagerInterface:
		bound := min(version, DataControlManagerVersion)
		s.manager = BindDataControlManager(s.client, s.registry, name, bound)
		s.primarySupported = bound >= 2
		s.logger.Trace().Uint32("version", bound).Msg("bound data control manager")
	}
}

func (s *session) GlobalRemove(uint32) {}

func (s *session) setup() error {
	s.display = s.client.Display()
	s.registry = s.display.GetRegistry()
	s.registry.Listener = s

	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("round trip: %w", err)
	}
	if s.manager == nil {
		return errors.New("compositor has no data control support")
	}
	if s.seat == nil {
		// Pastes report an empty clipboard; copies fail per request.
		s.logger.Warn().Msg("no seat found")
		return nil
	}

	s.device = s.manager.GetDataDevice(s.seat)
	s.device.Listener = s

	// Pull in the initial selection events sent on device binding.
	return s.client.RoundTrip()
}

func (s *session) DataOffer(id *DataControlOffer) {
	if id == nil {
		return
	}
	s.pending = &offerState{obj: id}
	id.Listener = s.pending
}

func (s *session) Selection(id *DataControlOffer) {
	s.setOffer(selRegular, id)
}

func (s *session) PrimarySelection(id *DataControlOffer) {
	s.setOffer(selPrimary, id)
}

func (s *session) Finished() {
	s.device = nil
}

func (s *session) setOffer(which selection, id *DataControlOffer) {
	if prev := s.offers[which]; prev != nil {
		prev.obj.Destroy()
	}
	if id == nil {
		s.offers[which] = nil
		return
	}
	if s.pending != nil && s.pending.obj == id {
		s.offers[which] = s.pending
		return
	}
	s.offers[which] = &offerState{obj: id}
}

// copySelections resolves a copy destination to native selections.
// Primary and Both silently degrade to the regular clipboard when the
// compositor lacks primary-selection support.
func (s *session) copySelections(dest clipboard.Dest) []selection {
	switch dest {
	case clipboard.DestPrimary:
		if s.primarySupported {
			return []selection{selPrimary}
		}
	case clipboard.DestBoth:
		if s.primarySupported {
			return []selection{selRegular, selPrimary}
		}
	}
	return []selection{selRegular}
}

func (s *session) pasteSelection(source clipboard.Source) selection {
	if source == clipboard.SourcePrimary && s.primarySupported {
		return selPrimary
	}
	return selRegular
}
