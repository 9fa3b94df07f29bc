//go:build windows

package process

import (
	"errors"
	"fmt"
	"sort"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Enumerate returns the identities of the processes live at the moment of
// the call, in ascending order. The snapshot is inherently stale the instant
// it returns. The returned slice is owned by alloc and released with a
// single Free.
func Enumerate(alloc Allocator) ([]ID, error) {
	if alloc == nil {
		alloc = Heap
	}
	var ids []ID
	err := eachProcessEntry(func(pe *windows.ProcessEntry32) {
		ids = append(ids, ID(pe.ProcessID))
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return alloc.IDSlice(ids), nil
}

// eachProcessEntry walks a Toolhelp32 process snapshot.
func eachProcessEntry(fn func(*windows.ProcessEntry32)) error {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return fmt.Errorf("CreateToolhelp32Snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	if err := windows.Process32First(snap, &pe); err != nil {
		return fmt.Errorf("Process32First: %w", err)
	}
	for {
		fn(&pe)
		if err := windows.Process32Next(snap, &pe); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				return nil
			}
			return fmt.Errorf("Process32Next: %w", err)
		}
	}
}
