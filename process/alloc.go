package process

import "sync"

// Allocator owns every string and slice payload handed out by the allocating
// calls of this package (QueryInfo, Enumerate, the find helpers). Payloads
// must be released exactly once through Free on the same allocator that
// produced them; FreeInfo does this for a whole Info record.
type Allocator interface {
	String(s string) string
	StringSlice(ss []string) []string
	IDSlice(ids []ID) []ID
	Free(p any)
}

type heapAllocator struct{}

// Heap is the default allocator. It hands payloads straight to the garbage
// collector; Free is a no-op.
var Heap Allocator = heapAllocator{}

func (heapAllocator) String(s string) string           { return s }
func (heapAllocator) StringSlice(ss []string) []string { return ss }
func (heapAllocator) IDSlice(ids []ID) []ID            { return ids }
func (heapAllocator) Free(any)                         {}

// Counting wraps another Allocator and tracks payloads that have been handed
// out but not yet freed. A string slice counts as one payload per element
// plus one for the slice itself, mirroring how FreeInfo releases it.
type Counting struct {
	mu          sync.Mutex
	inner       Allocator
	outstanding int
}

// NewCounting returns a Counting allocator delegating to inner, or to Heap
// when inner is nil.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Heap
	}
	return &Counting{inner: inner}
}

func (c *Counting) add(n int) {
	c.mu.Lock()
	c.outstanding += n
	c.mu.Unlock()
}

func (c *Counting) String(s string) string {
	c.add(1)
	return c.inner.String(s)
}

func (c *Counting) StringSlice(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = c.inner.String(s)
	}
	c.add(len(ss) + 1)
	return c.inner.StringSlice(out)
}

func (c *Counting) IDSlice(ids []ID) []ID {
	c.add(1)
	return c.inner.IDSlice(ids)
}

func (c *Counting) Free(p any) {
	c.add(-1)
	c.inner.Free(p)
}

// Outstanding reports the number of payloads handed out and not yet freed.
func (c *Counting) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outstanding
}
