// Package x11 implements the clipboard backend for X11 selections over one
// xgb connection. The backend owns an invisible window; copies make that
// window the selection owner and an event-loop goroutine serves conversion
// requests for as long as the process lives.
package x11

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/rs/zerolog"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
	"github.com/labi-le/clipwire/pkg/storage"
	"github.com/labi-le/clipwire/pkg/strutil"
)

const (
	maxPropSize = 0x10000
	maxDataSize = 50 * 1024 * 1024

	// Bounded wait for the selection owner to answer a conversion.
	pasteTimeout = 100 * time.Millisecond
)

type Backend struct {
	logger zerolog.Logger
	conn   *xgb.Conn
	win    xproto.Window
	atoms  *atoms

	// Selection contents we currently own, shared with the event loop.
	owned storage.Storage[xproto.Atom, []byte]

	// SelectionNotify/PropertyNotify destined for a pending paste.
	notify chan xgb.Event
}

func New(log zerolog.Logger) (*Backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xgb connect: %w", err)
	}

	b := &Backend{
		logger: log.With().Str("component", "x11").Logger(),
		conn:   conn,
		owned:  storage.NewSyncMapStorage[xproto.Atom, []byte](),
		notify: make(chan xgb.Event, 8),
	}

	if b.atoms, err = internAtoms(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("intern atoms: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if b.win, err = xproto.NewWindowId(conn); err != nil {
		conn.Close()
		return nil, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		b.win,
		screen.Root,
		0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange},
	).Check()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create window: %w", err)
	}

	go b.eventLoop()
	return b, nil
}

// Copy stores the text under each selection in the resolved destination
// set. DestBoth writes PRIMARY then CLIPBOARD sequentially; a failing
// second store leaves the first applied.
func (b *Backend) Copy(dest clipboard.Dest, text string) error {
	data := []byte(text)

	for _, sel := range b.atoms.destAtoms(dest) {
		b.owned.Add(sel, data)

		err := xproto.SetSelectionOwnerChecked(b.conn, b.win, sel, xproto.TimeCurrentTime).Check()
		if err != nil {
			return clipboard.System(fmt.Errorf("set selection owner %s: %w", b.atoms.name(sel), err))
		}
	}
	return nil
}

// Paste converts the resolved selection to UTF8_STRING into our private
// property and waits up to pasteTimeout for the owner's reply. No owner is
// an empty clipboard; an unresponsive owner is a system error. X11 has no
// MIME negotiation here, so no MIME is ever reported.
func (b *Backend) Paste(source clipboard.Source) (clipboard.Data, error) {
	sel := b.atoms.sourceAtom(source)

	b.drainNotify()
	xproto.ConvertSelection(b.conn, b.win, sel, b.atoms.Utf8String, b.atoms.Property, xproto.TimeCurrentTime)

	deadline := time.After(pasteTimeout)
	for {
		select {
		case <-deadline:
			return clipboard.Data{}, clipboard.System(errors.New("timed out waiting for selection owner"))

		case ev := <-b.notify:
			e, ok := ev.(xproto.SelectionNotifyEvent)
			if !ok || e.Requestor != b.win || e.Selection != sel {
				continue
			}
			if e.Property == xproto.AtomNone {
				// Conversion refused: nobody owns the selection.
				return clipboard.Data{}, nil
			}

			data, err := b.readProperty(e.Property)
			if err != nil {
				return clipboard.Data{}, clipboard.System(err)
			}
			return clipboard.Data{Text: strings.ToValidUTF8(strutil.BytesToString(data), "�")}, nil
		}
	}
}

func (b *Backend) Close() error {
	b.conn.Close()
	return nil
}

func (b *Backend) eventLoop() {
	for {
		ev, err := b.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		if err != nil {
			b.logger.Debug().Err(err).Msg("x11 protocol error")
			continue
		}

		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			b.serveRequest(e)
		case xproto.SelectionClearEvent:
			b.owned.Delete(e.Selection)
		case xproto.SelectionNotifyEvent, xproto.PropertyNotifyEvent:
			select {
			case b.notify <- ev:
			default:
			}
		}
	}
}

// serveRequest answers another client's conversion request against a
// selection we own: TARGETS, TIMESTAMP, or the text itself.
func (b *Backend) serveRequest(e xproto.SelectionRequestEvent) {
	data, ok := b.owned.Get(e.Selection)

	resp := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  xproto.AtomNone,
	}

	reply := func(typ xproto.Atom, format byte, value []byte) {
		xproto.ChangeProperty(
			b.conn, xproto.PropModeReplace, e.Requestor, e.Property, typ,
			format, uint32(len(value))/(uint32(format)/8), value,
		)
		resp.Property = e.Property
	}

	if ok {
		switch e.Target {
		case b.atoms.Targets:
			targets := []xproto.Atom{b.atoms.Targets, b.atoms.Timestamp, b.atoms.Utf8String, b.atoms.String}
			buf := new(bytes.Buffer)
			_ = binary.Write(buf, binary.LittleEndian, targets)
			reply(xproto.AtomAtom, 32, buf.Bytes())

		case b.atoms.Timestamp:
			buf := new(bytes.Buffer)
			_ = binary.Write(buf, binary.LittleEndian, e.Time)
			reply(xproto.AtomInteger, 32, buf.Bytes())

		case b.atoms.Utf8String, b.atoms.String:
			reply(e.Target, 8, data)
		}
	}

	xproto.SendEvent(b.conn, false, e.Requestor, xproto.EventMaskNoEvent, string(resp.Bytes()))
}

// readProperty loads and deletes the landing property, following INCR
// transfers chunk by chunk. Non-INCR properties can still exceed one
// GetProperty window, so the read advances through BytesAfter; the server
// only deletes the property once the final window is fetched.
func (b *Backend) readProperty(prop xproto.Atom) ([]byte, error) {
	probe, err := xproto.GetProperty(b.conn, false, b.win, prop, xproto.GetPropertyTypeAny, 0, 0).Reply()
	if err != nil {
		return nil, err
	}

	if probe.Type == b.atoms.Incr {
		return b.readIncr(prop)
	}

	return collectProperty(func(offset uint32) (propertyChunk, error) {
		reply, err := xproto.GetProperty(b.conn, true, b.win, prop, xproto.GetPropertyTypeAny, offset, maxPropSize).Reply()
		if err != nil {
			return propertyChunk{}, err
		}
		return propertyChunk{value: reply.Value, bytesAfter: reply.BytesAfter}, nil
	})
}

func (b *Backend) readIncr(prop xproto.Atom) ([]byte, error) {
	// Deleting the INCR property signals the owner to start sending.
	xproto.DeleteProperty(b.conn, b.win, prop)

	var buf bytes.Buffer
	for {
		select {
		case <-time.After(pasteTimeout):
			return nil, errors.New("timed out waiting for INCR chunk")

		case ev := <-b.notify:
			e, ok := ev.(xproto.PropertyNotifyEvent)
			if !ok || e.Window != b.win || e.Atom != prop || e.State != xproto.PropertyNewValue {
				continue
			}

			reply, err := xproto.GetProperty(b.conn, true, b.win, prop, xproto.GetPropertyTypeAny, 0, maxPropSize).Reply()
			if err != nil {
				return nil, err
			}
			if len(reply.Value) == 0 {
				return buf.Bytes(), nil
			}
			if buf.Len()+len(reply.Value) > maxDataSize {
				return nil, errors.New("clipboard data exceeded limit")
			}
			buf.Write(reply.Value)
		}
	}
}

func (b *Backend) drainNotify() {
	for {
		select {
		case <-b.notify:
		default:
			return
		}
	}
}
