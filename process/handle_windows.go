//go:build windows

package process

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"time"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

// Handle is a stable reference to one specific process instance. It is
// backed by a kernel process handle, so every operation performed through
// it targets the process observed at open time even after the OS recycles
// its ID.
//
// A Handle's OS resource has a single logical owner: concurrent Wait/Close
// on the same Handle from multiple goroutines must be serialized by the
// caller.
type Handle struct {
	pid   ID
	caps  Cap
	child bool

	mu     sync.Mutex
	h      windows.Handle
	closed bool
	state  *State
	log    *logger.Logger
}

// Open acquires a handle on an existing process. caps requests capabilities
// beyond plain wait/close; a capability the platform cannot grant for this
// process fails the open with ErrPermission.
//
// Opening by identity is racy by construction: if id has been recycled to a
// new process by the time the kernel honors the open, the handle refers to
// that new process. Once Open returns, the handle is pinned to one instance.
func Open(id ID, caps Cap) (*Handle, error) {
	hnd, err := windows.OpenProcess(accessFor(caps), false, uint32(id))
	if err != nil {
		switch {
		case errors.Is(err, windows.ERROR_INVALID_PARAMETER):
			return nil, fmt.Errorf("%w: pid %d", ErrNotFound, id)
		case errors.Is(err, windows.ERROR_ACCESS_DENIED):
			return nil, fmt.Errorf("%w: pid %d", ErrPermission, id)
		default:
			return nil, fmt.Errorf("OpenProcess pid %d: %w", id, err)
		}
	}
	h := &Handle{pid: id, caps: caps, h: hnd, log: handleLogger(id)}
	h.log.Infoln("Process opened")
	return h, nil
}

// accessFor maps the capability set onto the process access rights the
// handle is opened with. The capability check happens inside OpenProcess:
// asking for rights that cannot be granted fails the open. PROCESS_TERMINATE
// is part of the base set because every handle supports Kill.
func accessFor(caps Cap) uint32 {
	access := uint32(windows.SYNCHRONIZE | windows.PROCESS_QUERY_LIMITED_INFORMATION | windows.PROCESS_TERMINATE)
	if caps&CapMemoryRead != 0 {
		access |= windows.PROCESS_VM_READ
	}
	if caps&CapMemoryWrite != 0 {
		access |= windows.PROCESS_VM_WRITE | windows.PROCESS_VM_OPERATION
	}
	return access
}

func handleLogger(id ID) *logger.Logger {
	return logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", id)))
}

func notOpenLogger() *logger.Logger {
	return logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
}

// PID returns the identity observed when the handle was acquired.
func (h *Handle) PID() ID {
	return h.pid
}

// Caps returns the capabilities granted on the handle.
func (h *Handle) Caps() Cap {
	return h.caps
}

// Wait blocks until the process terminates or timeout elapses. A negative
// timeout means no deadline.
//
// On timeout it returns ErrTimeout and the logical process state is
// unspecified; the caller may issue another Wait. On any other failure it
// returns an ErrIndeterminate-wrapped error and nothing may be inferred
// about the process. On success it returns the terminal state; waiting
// again on a terminated handle idempotently re-delivers the same state.
func (h *Handle) Wait(timeout time.Duration) (State, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return State{}, ErrClosed
	}
	if h.state != nil {
		return *h.state, nil
	}

	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout.Milliseconds())
	}
	event, err := windows.WaitForSingleObject(h.h, ms)
	if err != nil {
		return State{}, fmt.Errorf("%w: WaitForSingleObject: %v", ErrIndeterminate, err)
	}
	switch event {
	case windows.WAIT_OBJECT_0:
	case windows.WAIT_TIMEOUT:
		return State{}, fmt.Errorf("%w (%v)", ErrTimeout, timeout)
	default:
		return State{}, fmt.Errorf("%w: wait returned event %#x", ErrIndeterminate, event)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(h.h, &code); err != nil {
		return State{}, fmt.Errorf("%w: GetExitCodeProcess: %v", ErrIndeterminate, err)
	}
	st := State{
		PID:     h.pid,
		Exited:  true,
		Code:    int(code),
		Success: code == 0,
	}
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(h.h, &creation, &exit, &kernel, &user); err == nil {
		st.SystemTime = filetimeDuration(kernel)
		st.UserTime = filetimeDuration(user)
	}
	h.state = &st
	h.log.Infoln("Process exited with code", st.Code)
	return st, nil
}

// filetimeDuration converts a CPU-time Filetime (a 100ns tick count, not a
// calendar time) to a Duration.
func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	return time.Duration(ticks * 100)
}

// Signal supports only SIGKILL on Windows, delivered as TerminateProcess;
// any other signal returns ErrUnsupported.
func (h *Handle) Signal(sig syscall.Signal) error {
	if sig != syscall.SIGKILL {
		return fmt.Errorf("%w: signal %d", ErrUnsupported, sig)
	}
	return h.Kill()
}

// Kill forcibly terminates the process referenced by the handle.
func (h *Handle) Kill() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	if err := windows.TerminateProcess(h.h, 1); err != nil {
		return fmt.Errorf("TerminateProcess pid %d: %w", h.pid, err)
	}
	return nil
}

// Close releases the OS resource backing the handle. It does not terminate
// the process. The resource is released exactly once; a second Close fails
// with ErrClosed.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.closed = true
	err := windows.CloseHandle(h.h)
	h.h = windows.InvalidHandle
	h.log.Infoln("Process handle closed")
	h.log = notOpenLogger()
	if err != nil {
		return fmt.Errorf("CloseHandle: %w", err)
	}
	return nil
}
