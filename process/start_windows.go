//go:build windows

package process

import (
	"fmt"
	"os"
)

// openChild acquires a kernel handle on a process we just created. The pid
// cannot be recycled before this runs because the child has not been waited
// on yet.
func openChild(proc *os.Process, caps Cap) (*Handle, error) {
	h, err := Open(ID(proc.Pid), caps)
	if err != nil {
		return nil, fmt.Errorf("%w: open child %d: %v", ErrSpawn, proc.Pid, err)
	}
	proc.Release()
	h.child = true
	h.log.Infoln("Process started")
	return h, nil
}
