package wayland

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
)

func TestBestTextMime(t *testing.T) {
	tests := []struct {
		name  string
		mimes []string
		want  string
	}{
		{"Empty", nil, ""},
		{"PlainOnly", []string{"text/plain"}, "text/plain"},
		{"PrefersExactPlain", []string{"text/html", "text/plain;charset=utf-8", "text/plain"}, "text/plain"},
		{"ParameterizedPlain", []string{"text/html", "text/plain;charset=utf-8"}, "text/plain;charset=utf-8"},
		{"LegacyNames", []string{"UTF8_STRING", "STRING"}, "UTF8_STRING"},
		{"AnyTextFallback", []string{"image/png", "text/html"}, "text/html"},
		{"NoTextAtAll", []string{"image/png", "application/zip"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestTextMime(tt.mimes); got != tt.want {
				t.Errorf("bestTextMime(%v) = %q, want %q", tt.mimes, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		mime string
		raw  []byte
		want clipboard.Data
	}{
		{
			name: "PlainText",
			mime: "text/plain",
			raw:  []byte("hello"),
			want: clipboard.Data{Text: "hello", Mime: "text/plain"},
		},
		{
			name: "MozInternalDiscarded",
			mime: "text/_moz_htmlcontext",
			raw:  []byte("<html>phantom</html>"),
			want: clipboard.Data{},
		},
		{
			name: "EmptyContentDropsMime",
			mime: "text/plain",
			raw:  nil,
			want: clipboard.Data{},
		},
		{
			name: "InvalidUTF8Replaced",
			mime: "text/plain",
			raw:  []byte{'a', 0xFF, 'b'},
			want: clipboard.Data{Text: "a�b", Mime: "text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, normalize(tt.mime, tt.raw)); diff != "" {
				t.Errorf("normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
