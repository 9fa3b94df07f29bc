package process

import "os"

// UnsupportedID is returned by the UID/GID accessors on platforms without a
// POSIX-style permission model. The absence of that model is a capability
// fact, not a failure.
const UnsupportedID = -1

// Current returns the identity of the running process. It always succeeds.
func Current() ID {
	return ID(os.Getpid())
}

// CurrentParent returns the identity of the parent of the running process.
// This is a best-effort value: platforms do not track a durable parent/child
// relationship, so the returned identity may belong to a process that has
// since died or been replaced.
func CurrentParent() ID {
	return ID(os.Getppid())
}
