package protocol

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/labi-le/clipwire/internal/metadata"
	"github.com/labi-le/clipwire/pkg/clipboard"
	"github.com/labi-le/clipwire/pkg/ptr"
)

// fakeBackend records the last operation and answers from canned state.
type fakeBackend struct {
	copied   map[clipboard.Dest]string
	pasted   clipboard.Data
	copyErr  error
	pasteErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{copied: make(map[clipboard.Dest]string)}
}

func (f *fakeBackend) Copy(dest clipboard.Dest, text string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied[dest] = text
	return nil
}

func (f *fakeBackend) Paste(clipboard.Source) (clipboard.Data, error) {
	if f.pasteErr != nil {
		return clipboard.Data{}, f.pasteErr
	}
	return f.pasted, nil
}

func (f *fakeBackend) Close() error { return nil }

func newTestHandler(backend clipboard.Backend) *Handler {
	return NewHandler(backend, zerolog.Nop())
}

func TestHandle_Query(t *testing.T) {
	h := newTestHandler(newFakeBackend())

	got := h.Handle([]byte(`{"action":"query"}`))
	want := VersionResponse(metadata.Version)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestHandle_Copy(t *testing.T) {
	backend := newFakeBackend()
	h := newTestHandler(backend)

	got := h.Handle([]byte(`{"action":"copy","data":"payload","clipboard":"both"}`))
	if diff := cmp.Diff(Success(), got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if text := backend.copied[clipboard.DestBoth]; text != "payload" {
		t.Errorf("copied[both] = %q, want %q", text, "payload")
	}
}

func TestHandle_Paste(t *testing.T) {
	backend := newFakeBackend()
	backend.pasted = clipboard.Data{Text: "stored", Mime: "text/plain"}
	h := newTestHandler(backend)

	got := h.Handle([]byte(`{"action":"paste"}`))
	want := PasteResponse(clipboard.Data{Text: "stored", Mime: "text/plain"})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if text := ptr.ValueOr(got.Data, ""); text != "stored" {
		t.Errorf("data = %q, want %q", text, "stored")
	}
}

func TestHandle_BackendErrorStaysInBand(t *testing.T) {
	backend := newFakeBackend()
	backend.copyErr = clipboard.System(errors.New("no seat available"))
	h := newTestHandler(backend)

	got := h.Handle([]byte(`{"action":"copy","data":"x"}`))
	if got.Success {
		t.Fatalf("expected failure response, got %+v", got)
	}
	if got.Message != "system error" {
		t.Errorf("message = %q, want %q", got.Message, "system error")
	}
	if got.Source == nil || got.Source.Message != "no seat available" {
		t.Errorf("source = %+v, want chain rooted at the seat error", got.Source)
	}
}

func TestHandle_ParseErrorDoesNotTouchBackend(t *testing.T) {
	backend := newFakeBackend()
	h := newTestHandler(backend)

	got := h.Handle([]byte(`{"action":"copy"}`))
	if got.Success {
		t.Fatalf("expected failure response, got %+v", got)
	}
	if got.Message != "request is missing `data`" {
		t.Errorf("message = %q, want %q", got.Message, "request is missing `data`")
	}
	if len(backend.copied) != 0 {
		t.Errorf("backend was called for an invalid request: %v", backend.copied)
	}
}
