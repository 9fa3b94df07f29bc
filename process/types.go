package process

import (
	"os"
	"time"
)

// ID is the raw, OS-assigned identifier of a process. IDs are recycled after
// the owning process terminates and is reaped; an ID alone is never enough
// to guarantee a later operation targets the originally-intended process.
type ID int

// Cap requests optional handle capabilities beyond plain wait/close.
// Requesting a capability the platform cannot grant for the target process
// is an open failure, never a silently-degraded handle.
type Cap uint32

const (
	// CapMemoryRead grants ReadMemory on the handle.
	CapMemoryRead Cap = 1 << iota

	// CapMemoryWrite grants WriteMemory on the handle.
	CapMemoryWrite
)

// MemoryAddress is an address inside another process's virtual address space.
type MemoryAddress uint64

// Description describes a process to create. It is consumed by Start and not
// retained after Start returns.
type Description struct {
	// Dir is the working directory of the new process. Empty means the
	// current working directory.
	Dir string

	// Args is the argument vector. Args[0] is the program, resolved
	// against PATH when it contains no separator. An empty Args is a
	// usage error.
	Args []string

	// Env is the full environment of the new process, each entry in
	// KEY=VALUE form. A nil Env inherits the current environment; a
	// non-nil Env replaces it entirely, with no merging.
	Env []string

	// Stdin, Stdout and Stderr are the child's standard streams. A nil
	// slot leaves the corresponding stream closed in the child (not
	// inherited, not redirected to the null device). Streams remain
	// owned by the caller and are never closed by Start.
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	// Caps are the capabilities granted on the returned handle.
	Caps Cap
}

// State is the terminal outcome of a process. It is produced only by a
// successful Wait and is immutable once produced.
type State struct {
	PID ID

	// Exited reports whether the process has terminated.
	Exited bool

	// Code is the exit code for a clean exit, or the terminating signal
	// number (exception code on Windows) for abnormal termination. It is
	// -1 when the platform could not report a status, e.g. for a process
	// that is not a child of the current one.
	Code int

	// Success reports a clean termination with exit code zero.
	Success bool

	// SystemTime and UserTime are the CPU time the process accumulated
	// in kernel and user mode.
	SystemTime time.Duration
	UserTime   time.Duration
}

// Info is the result of a selective information query. Only the fields named
// by Fields were actually obtained; callers must check Fields before
// trusting any value, before inspecting the query error. PID is always
// populated regardless of the request.
type Info struct {
	PID    ID
	Fields FieldSet

	Exe      string   // executable path
	Parent   ID       // parent process id
	Priority int      // scheduling priority
	Cmdline  string   // full command line as a single string
	Args     []string // command line argument vector
	Env      []string // environment, KEY=VALUE entries
	User     string   // owning user name
	Cwd      string   // working directory
}
