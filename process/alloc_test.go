package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocator(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("abc", Heap.String("abc"))
	assert.Equal([]string{"a", "b"}, Heap.StringSlice([]string{"a", "b"}))
	assert.Equal([]ID{1, 2}, Heap.IDSlice([]ID{1, 2}))
	Heap.Free("abc")
}

func TestCountingAllocator(t *testing.T) {
	assert := assert.New(t)

	c := NewCounting(nil)
	assert.Equal(0, c.Outstanding())

	s := c.String("payload")
	assert.Equal(1, c.Outstanding())

	ss := c.StringSlice([]string{"a", "b", "c"})
	// one per element plus one for the slice
	assert.Equal(5, c.Outstanding())

	ids := c.IDSlice([]ID{1, 2})
	assert.Equal(6, c.Outstanding())

	c.Free(s)
	for _, e := range ss {
		c.Free(e)
	}
	c.Free(ss)
	c.Free(ids)
	assert.Equal(0, c.Outstanding())
}

func TestFreeInfoReleasesEverything(t *testing.T) {
	assert := assert.New(t)

	c := NewCounting(nil)
	info := &Info{
		PID:    42,
		Fields: FieldExe | FieldArgs | FieldEnv | FieldUser,
		Exe:    c.String("/bin/thing"),
		Args:   c.StringSlice([]string{"thing", "-v"}),
		Env:    c.StringSlice([]string{"A=1"}),
		User:   c.String("root"),
	}
	assert.Equal(7, c.Outstanding())

	FreeInfo(info, c)
	assert.Equal(0, c.Outstanding())
	assert.Equal(Info{}, *info)
}

func TestFreeInfoNil(t *testing.T) {
	// must not panic
	FreeInfo(nil, Heap)
	FreeInfo(&Info{}, nil)
}
