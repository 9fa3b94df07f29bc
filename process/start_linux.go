//go:build linux

package process

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openChild acquires a pidfd on a process we just created. The child cannot
// be reaped before this runs, so the pidfd is guaranteed to reference it.
func openChild(proc *os.Process, caps Cap) (*Handle, error) {
	id := ID(proc.Pid)
	fd, err := unix.PidfdOpen(proc.Pid, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: pidfd_open child %d: %v", ErrSpawn, proc.Pid, err)
	}
	memfd, err := openMemFD(id, caps)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	// The handle owns the wait from here on; drop the runtime's own
	// reference so it cannot reap the child behind our back.
	proc.Release()

	h := &Handle{pid: id, caps: caps, fd: fd, memfd: memfd, child: true, log: handleLogger(id)}
	h.log.Infoln("Process started")
	return h, nil
}
