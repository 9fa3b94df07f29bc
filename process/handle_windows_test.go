//go:build windows

package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"
)

func TestAccessMaskSupportsKill(t *testing.T) {
	assert := assert.New(t)

	// TerminateProcess requires PROCESS_TERMINATE on the handle, so it
	// belongs to the base access set of every handle, memory caps or not.
	base := accessFor(0)
	assert.NotZero(base & windows.PROCESS_TERMINATE)
	assert.NotZero(base & windows.SYNCHRONIZE)
	assert.NotZero(base & windows.PROCESS_QUERY_LIMITED_INFORMATION)
	assert.Zero(base & windows.PROCESS_VM_READ)
	assert.Zero(base & windows.PROCESS_VM_WRITE)

	rw := accessFor(CapMemoryRead | CapMemoryWrite)
	assert.NotZero(rw & windows.PROCESS_TERMINATE)
	assert.NotZero(rw & windows.PROCESS_VM_READ)
	assert.NotZero(rw & windows.PROCESS_VM_WRITE)
	assert.NotZero(rw & windows.PROCESS_VM_OPERATION)
}

func TestKillTerminatesChild(t *testing.T) {
	assert := assert.New(t)

	h, err := Start(Description{Args: []string{"cmd", "/C", "ping -n 10 127.0.0.1"}})
	assert.NoError(err)
	defer h.Close()

	assert.NoError(h.Kill())

	st, err := h.Wait(-1)
	assert.NoError(err)
	assert.True(st.Exited)
	assert.False(st.Success)
	assert.Equal(1, st.Code)
}
