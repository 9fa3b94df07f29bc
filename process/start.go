package process

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// startMu serializes process creation. Preparing the child's stdio may
// transiently alter handle inheritance flags process-wide, so creations
// must never overlap each other or code depending on those flags.
var startMu sync.Mutex

// Start creates a new process from desc and returns a handle to it. The
// handle's identity is observed atomically with creation, so it carries no
// reuse race.
//
// Start is not safe for use concurrently with code that depends on file
// handle inheritance flags; it serializes against other Start calls itself.
// On failure no process is left running and every resource opened along the
// way has been unwound.
func Start(desc Description) (*Handle, error) {
	if len(desc.Args) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrSpawn)
	}

	path, err := exec.LookPath(desc.Args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	env := desc.Env
	if env == nil {
		env = os.Environ()
	}

	attr := &os.ProcAttr{
		Dir: desc.Dir,
		Env: env,
		// A nil slot yields a closed descriptor in the child. The
		// streams stay owned by the caller.
		Files: []*os.File{desc.Stdin, desc.Stdout, desc.Stderr},
	}

	startMu.Lock()
	proc, err := os.StartProcess(path, desc.Args, attr)
	startMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	h, err := openChild(proc, desc.Caps)
	if err != nil {
		// Never leave a process behind on a failed start.
		proc.Kill()
		proc.Wait()
		return nil, err
	}
	return h, nil
}
