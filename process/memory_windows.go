//go:build windows

package process

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// ReadMemory reads size bytes from the process at addr. The handle must
// have been opened with CapMemoryRead.
func (h *Handle) ReadMemory(addr MemoryAddress, size int) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}
	if h.caps&CapMemoryRead == 0 {
		return nil, fmt.Errorf("%w: handle lacks memory read capability", ErrPermission)
	}
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	var read uintptr
	err := windows.ReadProcessMemory(h.h, uintptr(addr), &buf[0], uintptr(size), &read)
	if err != nil {
		return nil, fmt.Errorf("ReadProcessMemory pid %d: %w", h.pid, err)
	}
	if int(read) != size {
		return buf[:read], fmt.Errorf("partial read: %d of %d bytes", read, size)
	}
	return buf, nil
}

// WriteMemory writes data into the process at addr. The handle must have
// been opened with CapMemoryWrite.
func (h *Handle) WriteMemory(addr MemoryAddress, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	if h.caps&CapMemoryWrite == 0 {
		return fmt.Errorf("%w: handle lacks memory write capability", ErrPermission)
	}
	if len(data) == 0 {
		return nil
	}

	var written uintptr
	err := windows.WriteProcessMemory(h.h, uintptr(addr), &data[0], uintptr(len(data)), &written)
	if err != nil {
		return fmt.Errorf("WriteProcessMemory pid %d: %w", h.pid, err)
	}
	if int(written) != len(data) {
		return fmt.Errorf("partial write: %d of %d bytes", written, len(data))
	}
	return nil
}
