package protocol

import (
	"github.com/rs/zerolog"

	"github.com/labi-le/clipwire/internal/metadata"
	"github.com/labi-le/clipwire/pkg/clipboard"
	"github.com/labi-le/clipwire/pkg/ctxlog"
)

// Handler dispatches parsed actions against the one backend handle. It is
// stateless across requests apart from that handle.
type Handler struct {
	backend clipboard.Backend
	logger  zerolog.Logger
}

func NewHandler(backend clipboard.Backend, log zerolog.Logger) *Handler {
	return &Handler{
		backend: backend,
		logger:  log.With().Str("component", "protocol").Logger(),
	}
}

// Handle processes one request line to completion and returns the response
// for it. It never fails the process: any error becomes a failure response.
func (h *Handler) Handle(line []byte) Response {
	action, err := ParseRequest(line)
	if err != nil {
		h.logger.Debug().Err(err).Msg("bad request")
		return Failure(err)
	}

	switch act := action.(type) {
	case Query:
		return VersionResponse(metadata.Version)

	case Copy:
		log := ctxlog.Op(h.logger, "copy")
		log.Trace().
			Stringer("dest", act.Dest).
			Int("len", len(act.Data)).
			Msg("dispatch")
		if err := h.backend.Copy(act.Dest, act.Data); err != nil {
			log.Debug().Err(err).Msg("backend failure")
			return Failure(err)
		}
		return Success()

	case Paste:
		log := ctxlog.Op(h.logger, "paste")
		log.Trace().
			Stringer("source", act.Source).
			Msg("dispatch")
		data, err := h.backend.Paste(act.Source)
		if err != nil {
			log.Debug().Err(err).Msg("backend failure")
			return Failure(err)
		}
		return PasteResponse(data)
	}

	// ParseRequest only produces the three actions above.
	panic("unreachable")
}
