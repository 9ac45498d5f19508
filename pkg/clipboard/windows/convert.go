package windows

import (
	"strings"
	"unicode/utf16"
)

// toCRLF rewrites \n to \r\n for the native clipboard text convention.
func toCRLF(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// toLF undoes the native convention after retrieval.
func toLF(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// encodeUTF16 produces a NUL-terminated UTF-16 buffer for CF_UNICODETEXT.
func encodeUTF16(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// decodeUTF16 decodes lossily; unpaired surrogates become U+FFFD rather
// than failing, since other applications put ill-formed text on the
// clipboard.
func decodeUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}
