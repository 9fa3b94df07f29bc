//go:build linux

package process

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCapabilityGating(t *testing.T) {
	assert := assert.New(t)

	h, err := Open(Current(), 0)
	assert.NoError(err)
	defer h.Close()

	_, err = h.ReadMemory(0x1000, 8)
	assert.ErrorIs(err, ErrPermission)
	assert.ErrorIs(h.WriteMemory(0x1000, []byte{0}), ErrPermission)
}

func TestReadWriteOwnMemory(t *testing.T) {
	assert := assert.New(t)

	h, err := Open(Current(), CapMemoryRead|CapMemoryWrite)
	assert.NoError(err)
	defer h.Close()

	sentinel := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33}
	addr := MemoryAddress(uintptr(unsafe.Pointer(&sentinel[0])))

	got, err := h.ReadMemory(addr, len(sentinel))
	assert.NoError(err)
	assert.Equal(sentinel, got)

	assert.NoError(h.WriteMemory(addr, []byte{0xff, 0xee}))
	assert.Equal(byte(0xff), sentinel[0])
	assert.Equal(byte(0xee), sentinel[1])
	runtime.KeepAlive(sentinel)
}

func TestMemoryAfterProcessExit(t *testing.T) {
	assert := assert.New(t)

	h, err := Start(Description{
		Args: []string{"sleep", "10"},
		Caps: CapMemoryRead | CapMemoryWrite,
	})
	assert.NoError(err)
	defer h.Close()

	assert.NoError(h.Kill())
	st, err := h.Wait(-1)
	assert.NoError(err)
	assert.True(st.Exited)

	// The handle is pinned to the dead instance: even if the id has been
	// handed to a new process, memory operations must fail instead of
	// touching it.
	_, err = h.ReadMemory(0x1000, 8)
	assert.Error(err)
	assert.Error(h.WriteMemory(0x1000, []byte{0}))
}

func TestMemoryZeroLength(t *testing.T) {
	assert := assert.New(t)

	h, err := Open(Current(), CapMemoryRead|CapMemoryWrite)
	assert.NoError(err)
	defer h.Close()

	got, err := h.ReadMemory(0, 0)
	assert.NoError(err)
	assert.Empty(got)
	assert.NoError(h.WriteMemory(0, nil))
}

func TestMemoryAfterClose(t *testing.T) {
	assert := assert.New(t)

	h, err := Open(Current(), CapMemoryRead)
	assert.NoError(err)
	assert.NoError(h.Close())

	_, err = h.ReadMemory(0x1000, 1)
	assert.ErrorIs(err, ErrClosed)
}
