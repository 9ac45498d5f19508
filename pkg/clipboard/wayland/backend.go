//go:build unix

// Package wayland implements the clipboard backend for Wayland compositors
// speaking the data-control protocol. One connection is dialed at
// construction and pumped by a dedicated goroutine; copy and paste are
// marshalled onto that goroutine so protocol state is never shared.
package wayland

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	wl "deedles.dev/wl/client"
	"github.com/rs/zerolog"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
	"github.com/labi-le/clipwire/pkg/pipe"
)

const writeTimeout = 5 * time.Second

// All copies are text; the classic X11 names keep picky clients happy.
var offeredMimeTypes = []string{
	"text/plain;charset=utf-8",
	"text/plain",
	"TEXT",
	"STRING",
	"UTF8_STRING",
}

type Backend struct {
	logger zerolog.Logger
	client *wl.Client
	sess   *session
	ops    chan func()
}

func New(log zerolog.Logger) (*Backend, error) {
	client, err := wl.Dial()
	if err != nil {
		return nil, fmt.Errorf("wayland dial: %w", err)
	}

	logger := log.With().Str("component", "wayland").Logger()
	sess := newSession(client, logger)
	if err := sess.setup(); err != nil {
		_ = client.Close()
		return nil, err
	}

	b := &Backend{
		logger: logger,
		client: client,
		sess:   sess,
		ops:    make(chan func()),
	}
	go b.run()
	return b, nil
}

// run is the only goroutine touching protocol state: it interleaves
// connection events with copy/paste operations submitted through do.
func (b *Backend) run() {
	for {
		select {
		case op := <-b.ops:
			op()
		case ev, ok := <-b.client.Events():
			if !ok {
				return
			}
			if err := ev(); err != nil {
				b.logger.Error().Err(err).Msg("event processing error")
			}
		}
	}
}

func (b *Backend) do(fn func() error) error {
	errc := make(chan error, 1)
	b.ops <- func() { errc <- fn() }
	return <-errc
}

func (b *Backend) Copy(dest clipboard.Dest, text string) error {
	return b.do(func() error { return b.copy(dest, text) })
}

func (b *Backend) Paste(source clipboard.Source) (clipboard.Data, error) {
	var data clipboard.Data
	err := b.do(func() error {
		var err error
		data, err = b.paste(source)
		return err
	})
	return data, err
}

func (b *Backend) Close() error {
	return b.do(func() error { return b.client.Close() })
}

func (b *Backend) copy(dest clipboard.Dest, text string) error {
	if b.sess.device == nil {
		return clipboard.System(errors.New("no seat available"))
	}

	data := []byte(text)

	// A source cannot be reused across set_selection requests, so Both
	// gets one source per selection.
	for _, which := range b.sess.copySelections(dest) {
		source := b.sess.manager.CreateDataSource()
		source.Listener = &sourceListener{data: data, source: source, logger: b.logger}
		for _, m := range offeredMimeTypes {
			source.Offer(m)
		}

		switch which {
		case selPrimary:
			b.sess.device.SetPrimarySelection(source)
		default:
			b.sess.device.SetSelection(source)
		}
	}

	if err := b.client.RoundTrip(); err != nil {
		return clipboard.System(fmt.Errorf("set selection: %w", err))
	}
	return nil
}

func (b *Backend) paste(source clipboard.Source) (clipboard.Data, error) {
	// No seat and no offer both mean there is nothing to paste.
	if b.sess.device == nil {
		return clipboard.Data{}, nil
	}
	offer := b.sess.offers[b.sess.pasteSelection(source)]
	if offer == nil {
		return clipboard.Data{}, nil
	}

	mime := bestTextMime(offer.mimes)
	if mime == "" {
		b.logger.Debug().Strs("available_mimes", offer.mimes).Msg("no supported MIME type on offer")
		return clipboard.Data{}, nil
	}

	p, err := pipe.New()
	if err != nil {
		return clipboard.Data{}, clipboard.System(err)
	}

	offer.obj.Receive(mime, p.Fd())
	_ = p.Fd().Close()

	// The round trip flushes the receive request and, when we are our own
	// source, dispatches the resulting send event before we drain.
	if err := b.client.RoundTrip(); err != nil {
		_ = p.Close()
		return clipboard.Data{}, clipboard.System(fmt.Errorf("receive offer: %w", err))
	}

	raw, err := pipe.Drain(p.ReadFd().Fd())
	_ = p.Close()
	if err != nil {
		return clipboard.Data{}, clipboard.System(err)
	}

	return normalize(mime, raw), nil
}

// sourceListener serves one copied payload for as long as the compositor
// keeps the source current.
type sourceListener struct {
	data   []byte
	source *DataControlSource
	logger zerolog.Logger
}

func (s *sourceListener) Send(_ string, f *os.File) {
	go func(f *os.File) {
		defer f.Close()

		// A requestor that never reads would pin this goroutine forever.
		timer := time.AfterFunc(writeTimeout, func() { f.Close() })
		defer timer.Stop()

		var total int
		for total < len(s.data) {
			n, err := f.Write(s.data[total:])
			if n > 0 {
				total += n
			}
			if err != nil {
				if !isExpectedSocketError(err) {
					s.logger.Trace().Err(err).Int("written", total).Msg("offer write failed")
				}
				return
			}
		}
	}(f)
}

func (s *sourceListener) Cancelled() {
	if s.source != nil {
		s.source.Destroy()
	}
}

func isExpectedSocketError(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EBADF) ||
		errors.Is(err, os.ErrClosed)
}
