package x11

import (
	"bytes"
	"errors"
)

type propertyChunk struct {
	value      []byte
	bytesAfter uint32
}

// collectProperty assembles a property by fetching windows until the server
// reports no bytes remaining. Offsets are in 32-bit units; every window
// before the last is a whole number of units, so the running offset stays
// aligned.
func collectProperty(fetch func(offset uint32) (propertyChunk, error)) ([]byte, error) {
	var buf bytes.Buffer
	for offset := uint32(0); ; {
		chunk, err := fetch(offset)
		if err != nil {
			return nil, err
		}
		if buf.Len()+len(chunk.value) > maxDataSize {
			return nil, errors.New("clipboard data exceeded limit")
		}
		buf.Write(chunk.value)

		if chunk.bytesAfter == 0 {
			return buf.Bytes(), nil
		}
		if len(chunk.value) == 0 {
			return nil, errors.New("property read made no progress")
		}
		offset += uint32(len(chunk.value) / 4)
	}
}
