//go:build unix

package wayland

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
)

func TestCopySelections(t *testing.T) {
	tests := []struct {
		name    string
		dest    clipboard.Dest
		primary bool
		want    []selection
	}{
		{"DefaultWithPrimary", clipboard.DestDefault, true, []selection{selRegular}},
		{"ClipboardWithPrimary", clipboard.DestClipboard, true, []selection{selRegular}},
		{"PrimaryWithPrimary", clipboard.DestPrimary, true, []selection{selPrimary}},
		{"BothWithPrimary", clipboard.DestBoth, true, []selection{selRegular, selPrimary}},

		// Without compositor support every destination degrades to the
		// regular clipboard.
		{"DefaultNoPrimary", clipboard.DestDefault, false, []selection{selRegular}},
		{"ClipboardNoPrimary", clipboard.DestClipboard, false, []selection{selRegular}},
		{"PrimaryDegrades", clipboard.DestPrimary, false, []selection{selRegular}},
		{"BothDegrades", clipboard.DestBoth, false, []selection{selRegular}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{primarySupported: tt.primary}
			if diff := cmp.Diff(tt.want, s.copySelections(tt.dest)); diff != "" {
				t.Errorf("copySelections(%v) mismatch (-want +got):\n%s", tt.dest, diff)
			}
		})
	}
}

func TestPasteSelection(t *testing.T) {
	tests := []struct {
		name    string
		source  clipboard.Source
		primary bool
		want    selection
	}{
		{"DefaultWithPrimary", clipboard.SourceDefault, true, selRegular},
		{"ClipboardWithPrimary", clipboard.SourceClipboard, true, selRegular},
		{"PrimaryWithPrimary", clipboard.SourcePrimary, true, selPrimary},

		{"DefaultNoPrimary", clipboard.SourceDefault, false, selRegular},
		{"ClipboardNoPrimary", clipboard.SourceClipboard, false, selRegular},
		{"PrimaryDegrades", clipboard.SourcePrimary, false, selRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{primarySupported: tt.primary}
			if got := s.pasteSelection(tt.source); got != tt.want {
				t.Errorf("pasteSelection(%v) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}
