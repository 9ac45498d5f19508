package windows

import "testing"

func TestLineEndings(t *testing.T) {
	tests := []struct {
		name string
		lf   string
		crlf string
	}{
		{"Empty", "", ""},
		{"NoNewlines", "hello", "hello"},
		{"Single", "a\nb", "a\r\nb"},
		{"Trailing", "a\n", "a\r\n"},
		{"Multiple", "a\nb\nc\n", "a\r\nb\r\nc\r\n"},
		{"OnlyNewline", "\n", "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toCRLF(tt.lf); got != tt.crlf {
				t.Errorf("toCRLF(%q) = %q, want %q", tt.lf, got, tt.crlf)
			}
			if got := toLF(tt.crlf); got != tt.lf {
				t.Errorf("toLF(%q) = %q, want %q", tt.crlf, got, tt.lf)
			}
		})
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"ASCII", "Hello World"},
		{"Cyrillic", "кириллица"},
		{"Emoji", "👋 🌍 🧑‍💻 🚀"},
		{"Mixed", "line one\r\nстрока два\r\n🚀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := encodeUTF16(tt.text)
			if u[len(u)-1] != 0 {
				t.Fatal("encoded buffer is not NUL-terminated")
			}
			if got := decodeUTF16(u[:len(u)-1]); got != tt.text {
				t.Errorf("round trip = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestDecodeUTF16_LossyOnUnpairedSurrogate(t *testing.T) {
	got := decodeUTF16([]uint16{'a', 0xD800, 'b'})
	if got != "a�b" {
		t.Errorf("decodeUTF16 = %q, want %q", got, "a�b")
	}
}
