//go:build linux

package process

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/unix"
)

// Handle is a stable reference to one specific process instance. It is
// backed by a pidfd, so every operation performed through it targets the
// process observed at open time even after the kernel recycles its ID.
//
// A Handle's OS resource has a single logical owner: concurrent Wait/Close
// on the same Handle from multiple goroutines must be serialized by the
// caller.
type Handle struct {
	pid   ID
	caps  Cap
	child bool // started by us and not yet reaped

	mu     sync.Mutex
	fd     int
	memfd  int // /proc/<pid>/mem, -1 without memory caps
	closed bool
	state  *State // cached terminal state, re-delivered by later waits
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
	fd, err := unix.PidfdOpen(int(id), 0)
	if err != nil {
		switch {
		case errors.Is(err, unix.ESRCH):
			return nil, fmt.Errorf("%w: pid %d", ErrNotFound, id)
		case errors.Is(err, unix.EPERM):
			return nil, fmt.Errorf("%w: pid %d", ErrPermission, id)
		default:
			return nil, fmt.Errorf("pidfd_open pid %d: %w", id, err)
		}
	}
	memfd, err := openMemFD(id, caps)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	h := &Handle{pid: id, caps: caps, fd: fd, memfd: memfd, log: handleLogger(id)}
	h.log.Infoln("Process opened")
	return h, nil
}

// openMemFD opens /proc/<pid>/mem with the mode matching the requested
// memory capabilities, which both verifies the capability grant and pins the
// memory operations to this process instance: a procfs fd keeps addressing
// the process it was opened on even after the id is recycled. Returns -1
// when no memory capability was requested.
func openMemFD(id ID, caps Cap) (int, error) {
	if caps&(CapMemoryRead|CapMemoryWrite) == 0 {
		return -1, nil
	}
	mode := os.O_RDONLY
	if caps&CapMemoryWrite != 0 {
		mode = os.O_RDWR
	}
	fd, err := unix.Open(fmt.Sprintf("/proc/%d/mem", id), mode, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: memory access to pid %d: %v", ErrPermission, id, err)
	}
	return fd, nil
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

	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		ms := -1
		if timeout >= 0 {
			left := time.Until(deadline)
			if left < 0 {
				left = 0
			}
			ms = int(left.Milliseconds())
		}
		fds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return State{}, fmt.Errorf("%w: poll pidfd: %v", ErrIndeterminate, err)
		}
		if n == 0 {
			return State{}, fmt.Errorf("%w (%v)", ErrTimeout, timeout)
		}
		break
	}
	return h.reap()
}

// reap collects the terminal state once the pidfd reported termination.
// Reaping happens at most once per handle; the result is cached so a timed
// out or repeated wait can never double-register on the kernel wait.
func (h *Handle) reap() (State, error) {
	if !h.child {
		// Termination was observed through the pidfd, but only a parent
		// can collect the exit status of a process.
		st := State{PID: h.pid, Exited: true, Code: -1}
		h.state = &st
		h.log.Debugln("Process exited, status unavailable for non-child")
		return st, nil
	}

	var ws unix.WaitStatus
	var ru unix.Rusage
	wpid, err := unix.Wait4(int(h.pid), &ws, unix.WNOHANG, &ru)
	if err != nil {
		return State{}, fmt.Errorf("%w: wait4 pid %d: %v", ErrIndeterminate, h.pid, err)
	}
	if wpid != int(h.pid) {
		return State{}, fmt.Errorf("%w: pid %d signaled exit but is not reapable", ErrIndeterminate, h.pid)
	}

	st := State{
		PID:        h.pid,
		Exited:     true,
		SystemTime: timevalDuration(ru.Stime),
		UserTime:   timevalDuration(ru.Utime),
	}
	switch {
	case ws.Exited():
		st.Code = ws.ExitStatus()
		st.Success = st.Code == 0
	case ws.Signaled():
		st.Code = int(ws.Signal())
	}
	h.state = &st
	h.log.Infoln("Process exited with code", st.Code)
	return st, nil
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}

// Signal delivers sig through the pidfd, so it can never hit an unrelated
// process that reused the ID.
func (h *Handle) Signal(sig syscall.Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	if err := unix.PidfdSendSignal(h.fd, sig, nil, 0); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return fmt.Errorf("%w: pid %d", ErrNotFound, h.pid)
		}
		return fmt.Errorf("signal pid %d: %w", h.pid, err)
	}
	return nil
}

// Kill forcibly terminates the process. Killing and closing are orthogonal:
// a caller wanting termination should kill, then wait, then close.
func (h *Handle) Kill() error {
	return h.Signal(unix.SIGKILL)
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
	if h.memfd >= 0 {
		unix.Close(h.memfd)
		h.memfd = -1
	}
	err := unix.Close(h.fd)
	h.fd = -1
	h.log.Infoln("Process handle closed")
	h.log = notOpenLogger()
	if err != nil {
		return fmt.Errorf("close pidfd: %w", err)
	}
	return nil
}
