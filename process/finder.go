package process

import (
	"fmt"
	"path/filepath"
)

// FindByName returns the identities of all processes whose executable base
// name or first argument equals name, in ascending order. Processes that
// disappear or refuse inspection mid-scan are skipped. The returned slice
// is owned by alloc and released with a single Free.
func FindByName(name string, alloc Allocator) ([]ID, error) {
	if name == "" {
		return nil, fmt.Errorf("empty name")
	}
	if alloc == nil {
		alloc = Heap
	}

	ids, err := Enumerate(Heap)
	if err != nil {
		return nil, err
	}

	var matches []ID
	for _, id := range ids {
		info, err := QueryInfo(id, FieldExe|FieldArgs, Heap)
		if err != nil {
			continue
		}
		if nameMatches(info, name) {
			matches = append(matches, id)
		}
		FreeInfo(info, Heap)
	}
	return alloc.IDSlice(matches), nil
}

// FindAll queries want for every live process and returns the obtained
// records in ascending identity order. Processes that disappear between the
// enumeration and their query are skipped, and each surviving record carries
// whatever subset of want it could obtain. Every record must be released
// with FreeInfo on the same allocator; the containing slice belongs to the
// runtime.
func FindAll(want FieldSet, alloc Allocator) ([]*Info, error) {
	if alloc == nil {
		alloc = Heap
	}

	ids, err := Enumerate(Heap)
	if err != nil {
		return nil, err
	}

	infos := make([]*Info, 0, len(ids))
	for _, id := range ids {
		info, err := QueryInfo(id, want, alloc)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func nameMatches(info *Info, name string) bool {
	if info.Fields.Has(FieldExe) && filepath.Base(info.Exe) == name {
		return true
	}
	if info.Fields.Has(FieldArgs) && len(info.Args) > 0 {
		return filepath.Base(info.Args[0]) == name
	}
	return false
}

// OpenByName opens the lowest-identity process matching name. The match and
// the open are two separate steps, so the usual open-by-identity reuse
// window applies.
func OpenByName(name string, caps Cap) (*Handle, error) {
	matches, err := FindByName(name, Heap)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no process named %q", ErrNotFound, name)
	}
	return Open(matches[0], caps)
}
