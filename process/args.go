package process

import (
	"errors"
	"sync"
)

var (
	argsMu   sync.Mutex
	argsInit bool
	argsSnap []string
)

// InitArgs records the argument vector of the current process. It must be
// called exactly once, before any call to Args; a second call is an error.
// The snapshot is copied and immutable afterwards.
func InitArgs(argv []string) error {
	argsMu.Lock()
	defer argsMu.Unlock()
	if argsInit {
		return errors.New("process: argument snapshot already initialized")
	}
	argsSnap = make([]string, len(argv))
	copy(argsSnap, argv)
	argsInit = true
	return nil
}

// Args returns a copy of the argument snapshot recorded by InitArgs, or nil
// when InitArgs has not been called.
func Args() []string {
	argsMu.Lock()
	defer argsMu.Unlock()
	if !argsInit {
		return nil
	}
	out := make([]string, len(argsSnap))
	copy(out, argsSnap)
	return out
}
