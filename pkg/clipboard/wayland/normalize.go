package wayland

import (
	"slices"
	"strings"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
)

// Firefox advertises internal-only offer types under this prefix; their
// content must never surface as real clipboard text.
const mozInternalPrefix = "text/_moz"

// bestTextMime picks the offer MIME to receive: exact text/plain first,
// then a parameterized text/plain, then any other text flavor.
func bestTextMime(mimes []string) string {
	if slices.Contains(mimes, "text/plain") {
		return "text/plain"
	}
	for _, m := range mimes {
		if strings.HasPrefix(m, "text/plain;") {
			return m
		}
	}
	for _, m := range mimes {
		if isTextMime(m) {
			return m
		}
	}
	return ""
}

func isTextMime(m string) bool {
	switch m {
	case "TEXT", "STRING", "UTF8_STRING":
		return true
	}
	return strings.HasPrefix(m, "text/")
}

// normalize turns received offer bytes into a paste result. Internal
// browser types are discarded wholesale, empty content drops the MIME
// label, and invalid UTF-8 is replaced rather than failing the request.
func normalize(mime string, raw []byte) clipboard.Data {
	if strings.HasPrefix(mime, mozInternalPrefix) {
		return clipboard.Data{}
	}
	if len(raw) == 0 {
		return clipboard.Data{}
	}
	return clipboard.Data{
		Text: strings.ToValidUTF8(string(raw), "�"),
		Mime: mime,
	}
}
