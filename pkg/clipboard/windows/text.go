//go:build windows

package windows

import (
	"fmt"
	"unsafe"
)

// getText reads CF_UNICODETEXT from the open clipboard. The global handle
// stays owned by the clipboard; the bytes are copied out under GlobalLock.
func getText() (string, error) {
	hMem, _, err := procGetClipboardData.Call(cfUnicodeText)
	if hMem == 0 {
		return "", fmt.Errorf("get clipboard data: %w", err)
	}

	p, _, err := procGlobalLock.Call(hMem)
	if p == 0 {
		return "", fmt.Errorf("global lock: %w", err)
	}
	defer procGlobalUnlock.Call(hMem)

	// CF_UNICODETEXT: UTF-16LE, NUL-terminated.
	n := 0
	for *(*uint16)(unsafe.Pointer(p + uintptr(n)*2)) != 0 {
		n++
	}
	u := make([]uint16, n)
	copy(u, unsafe.Slice((*uint16)(unsafe.Pointer(p)), n))

	return decodeUTF16(u), nil
}

// setText replaces the open clipboard's content with text as
// CF_UNICODETEXT. Ownership of the allocation passes to the clipboard on a
// successful SetClipboardData.
func setText(text string) error {
	r, _, err := procEmptyClipboard.Call()
	if r == 0 {
		return fmt.Errorf("empty clipboard: %w", err)
	}

	u := encodeUTF16(text)
	size := uintptr(len(u) * 2)

	hMem, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if hMem == 0 {
		return fmt.Errorf("global alloc: %w", err)
	}

	p, _, err := procGlobalLock.Call(hMem)
	if p == 0 {
		procGlobalFree.Call(hMem)
		return fmt.Errorf("global lock: %w", err)
	}

	copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(u)), u)
	procGlobalUnlock.Call(hMem)

	if r, _, err := procSetClipboardData.Call(cfUnicodeText, hMem); r == 0 {
		procGlobalFree.Call(hMem)
		return fmt.Errorf("set clipboard data: %w", err)
	}

	return nil
}
