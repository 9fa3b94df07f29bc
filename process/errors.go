package process

import "errors"

var (
	// ErrNotFound is returned when the requested identity does not name a
	// live process.
	ErrNotFound = errors.New("process not found")

	// ErrPermission is returned when the platform refuses an operation or
	// a requested capability for the target process.
	ErrPermission = errors.New("permission denied")

	// ErrTimeout is returned by Wait when the deadline elapses before the
	// process terminates. The process state is unspecified afterwards;
	// callers may retry with another Wait.
	ErrTimeout = errors.New("wait deadline elapsed")

	// ErrUnsupported is returned when the platform cannot provide a
	// requested capability or operation at all.
	ErrUnsupported = errors.New("unsupported on this platform")

	// ErrSpawn is returned when Start could not produce a running
	// process. No partial process is left behind.
	ErrSpawn = errors.New("spawn failed")

	// ErrIndeterminate is returned when a wait failed for a reason other
	// than timeout. The true state of the process is unknown; callers
	// must not infer liveness or exit status from it.
	ErrIndeterminate = errors.New("process state indeterminate")

	// ErrClosed is returned when using a handle after Close.
	ErrClosed = errors.New("handle closed")
)
