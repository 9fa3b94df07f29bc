//go:build linux

package process

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// QueryInfo gathers the requested attributes of the process named by id.
//
// Partial success is the normal case, not an error path: every requested
// field is attempted independently, and a field the platform cannot provide
// (permission denial, process exited mid-query) is simply left out of the
// populated set. A non-nil error is returned only when the whole query is
// meaningless, i.e. the identity does not name a live process; in that case
// any partial allocations have already been released and the caller must not
// call FreeInfo.
func QueryInfo(id ID, want FieldSet, alloc Allocator) (*Info, error) {
	if alloc == nil {
		alloc = Heap
	}
	proc, err := procfs.NewProc(int(id))
	if err != nil {
		return nil, classifyProcErr(id, err)
	}

	info := &Info{PID: id}

	if want.Has(FieldExe) {
		if exe, err := proc.Executable(); err == nil {
			info.Exe = alloc.String(exe)
			info.Fields = info.Fields.With(FieldExe)
		}
	}
	if want.Has(FieldParent) || want.Has(FieldPriority) {
		if stat, err := proc.Stat(); err == nil {
			if want.Has(FieldParent) {
				info.Parent = ID(stat.PPID)
				info.Fields = info.Fields.With(FieldParent)
			}
			if want.Has(FieldPriority) {
				info.Priority = stat.Priority
				info.Fields = info.Fields.With(FieldPriority)
			}
		}
	}
	if want.Has(FieldCmdline) || want.Has(FieldArgs) {
		if argv, err := proc.CmdLine(); err == nil && len(argv) > 0 {
			if want.Has(FieldCmdline) {
				info.Cmdline = alloc.String(strings.Join(argv, " "))
				info.Fields = info.Fields.With(FieldCmdline)
			}
			if want.Has(FieldArgs) {
				info.Args = alloc.StringSlice(argv)
				info.Fields = info.Fields.With(FieldArgs)
			}
		}
	}
	if want.Has(FieldEnv) {
		if env, err := proc.Environ(); err == nil {
			info.Env = alloc.StringSlice(env)
			info.Fields = info.Fields.With(FieldEnv)
		}
	}
	if want.Has(FieldUser) {
		if name, err := ownerName(id); err == nil {
			info.User = alloc.String(name)
			info.Fields = info.Fields.With(FieldUser)
		}
	}
	if want.Has(FieldCwd) {
		if cwd, err := proc.Cwd(); err == nil {
			info.Cwd = alloc.String(cwd)
			info.Fields = info.Fields.With(FieldCwd)
		}
	}

	return info, nil
}

// classifyProcErr maps a failure to reach /proc/<pid> onto the package error
// taxonomy. A pid hidden by permissions is a live process we may not
// inspect, not a missing one.
func classifyProcErr(id ID, err error) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: pid %d", ErrPermission, id)
	}
	return fmt.Errorf("%w: pid %d", ErrNotFound, id)
}

// ownerName resolves the owning user of a process from the uid of its /proc
// directory.
func ownerName(id ID) (string, error) {
	var st unix.Stat_t
	if err := unix.Stat(fmt.Sprintf("/proc/%d", id), &st); err != nil {
		return "", err
	}
	uid := strconv.FormatUint(uint64(st.Uid), 10)
	u, err := user.LookupId(uid)
	if err != nil {
		// No passwd entry; the numeric uid is still a usable name.
		return uid, nil
	}
	return u.Username, nil
}
