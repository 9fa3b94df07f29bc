//go:build windows

package process

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// QueryInfo gathers the requested attributes of the process named by id.
//
// Partial success is the normal case, not an error path: every requested
// field is attempted independently, and a field the platform cannot provide
// is simply left out of the populated set. Command line, argument vector,
// environment and working directory of other processes are not readable
// through the documented Windows API surface and are always omitted here.
// A non-nil error is returned only when id does not name a live process; in
// that case any partial allocations have already been released and the
// caller must not call FreeInfo.
func QueryInfo(id ID, want FieldSet, alloc Allocator) (*Info, error) {
	if alloc == nil {
		alloc = Heap
	}

	info := &Info{PID: id}
	found := false

	// The snapshot both proves existence and carries the parent id.
	err := eachProcessEntry(func(pe *windows.ProcessEntry32) {
		if ID(pe.ProcessID) != id {
			return
		}
		found = true
		if want.Has(FieldParent) {
			info.Parent = ID(pe.ParentProcessID)
			info.Fields = info.Fields.With(FieldParent)
		}
	})
	if err != nil {
		releaseInfo(info, alloc)
		return nil, err
	}
	if !found {
		releaseInfo(info, alloc)
		return nil, fmt.Errorf("%w: pid %d", ErrNotFound, id)
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(id))
	if err != nil {
		// The process exists but cannot be opened; the remaining
		// fields are unavailable, which is partial success.
		return info, nil
	}
	defer windows.CloseHandle(h)

	if want.Has(FieldExe) {
		if exe, err := imagePath(h); err == nil {
			info.Exe = alloc.String(exe)
			info.Fields = info.Fields.With(FieldExe)
		}
	}
	if want.Has(FieldPriority) {
		if prio, err := windows.GetPriorityClass(h); err == nil {
			info.Priority = int(prio)
			info.Fields = info.Fields.With(FieldPriority)
		}
	}
	if want.Has(FieldUser) {
		if name, err := ownerName(h); err == nil {
			info.User = alloc.String(name)
			info.Fields = info.Fields.With(FieldUser)
		}
	}

	return info, nil
}

func imagePath(h windows.Handle) (string, error) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}

// ownerName resolves the account owning the process token, as DOMAIN\name.
func ownerName(h windows.Handle) (string, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(h, windows.TOKEN_QUERY, &token); err != nil {
		return "", err
	}
	defer token.Close()

	tu, err := token.GetTokenUser()
	if err != nil {
		return "", err
	}
	account, domain, _, err := tu.User.Sid.LookupAccount("")
	if err != nil {
		return "", err
	}
	if domain == "" {
		return account, nil
	}
	return domain + `\` + account, nil
}
