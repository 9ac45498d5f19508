// Package session runs the request loop: one JSON line in, one JSON line
// out, flushed after every response. Strictly sequential; a request is
// processed to completion before the next line is read.
package session

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/labi-le/clipwire/internal/protocol"
	"github.com/rs/zerolog"
)

type Session struct {
	handler *protocol.Handler
	logger  zerolog.Logger
}

func New(handler *protocol.Handler, log zerolog.Logger) *Session {
	return &Session{
		handler: handler,
		logger:  log.With().Str("component", "session").Logger(),
	}
}

// Run reads request lines from in until EOF or context cancellation.
// Request and backend failures are reported in-band and never end the loop.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := reader.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug().Msg("stdin closed")
				return nil
			}
			return err
		}

		resp := s.handler.Handle(line)
		if werr := writeResponse(writer, resp); werr != nil {
			return werr
		}

		// A final unterminated line is still a request; after answering
		// it there is nothing left to read. A broken reader still fails
		// the session once its last line is answered.
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func writeResponse(w *bufio.Writer, resp protocol.Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
