//go:build linux

package process

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ReadMemory reads size bytes from the process at addr. The handle must
// have been opened with CapMemoryRead.
//
// The read goes through the /proc mem descriptor acquired at open time, so
// it addresses the original process instance even if its id has since been
// recycled; once that process is gone the read fails.
func (h *Handle) ReadMemory(addr MemoryAddress, size int) ([]byte, error) {
	h.mu.Lock()
	closed, memfd := h.closed, h.memfd
	h.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}
	if h.caps&CapMemoryRead == 0 {
		return nil, fmt.Errorf("%w: handle lacks memory read capability", ErrPermission)
	}
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, err := unix.Pread(memfd, buf, int64(addr))
	if err != nil {
		return nil, memoryOpError("read memory", h.pid, err)
	}
	if n != size {
		return buf[:n], fmt.Errorf("partial read: %d of %d bytes", n, size)
	}
	return buf, nil
}

// WriteMemory writes data into the process at addr. The handle must have
// been opened with CapMemoryWrite.
func (h *Handle) WriteMemory(addr MemoryAddress, data []byte) error {
	h.mu.Lock()
	closed, memfd := h.closed, h.memfd
	h.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if h.caps&CapMemoryWrite == 0 {
		return fmt.Errorf("%w: handle lacks memory write capability", ErrPermission)
	}
	if len(data) == 0 {
		return nil
	}

	n, err := unix.Pwrite(memfd, data, int64(addr))
	if err != nil {
		return memoryOpError("write memory", h.pid, err)
	}
	if n != len(data) {
		return fmt.Errorf("partial write: %d of %d bytes", n, len(data))
	}
	return nil
}

func memoryOpError(op string, pid ID, err error) error {
	switch {
	case errors.Is(err, unix.ESRCH):
		return fmt.Errorf("%w: pid %d", ErrNotFound, pid)
	case errors.Is(err, unix.EPERM):
		return fmt.Errorf("%w: %s pid %d", ErrPermission, op, pid)
	default:
		return fmt.Errorf("%s pid %d: %w", op, pid, err)
	}
}
