//go:build linux

package process

import (
	"fmt"
	"sort"

	"github.com/prometheus/procfs"
)

// Enumerate returns the identities of the processes live at the moment of
// the call, in ascending order. The snapshot is inherently stale the instant
// it returns. The returned slice is owned by alloc and released with a
// single Free.
func Enumerate(alloc Allocator) ([]ID, error) {
	if alloc == nil {
		alloc = Heap
	}
	procs, err := procfs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	ids := make([]ID, 0, len(procs))
	for _, p := range procs {
		ids = append(ids, ID(p.PID))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return alloc.IDSlice(ids), nil
}
