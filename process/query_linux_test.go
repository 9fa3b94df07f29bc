//go:build linux

package process

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCurrentInfoAllFields(t *testing.T) {
	assert := assert.New(t)

	info, err := QueryCurrentInfo(FieldAll, Heap)
	assert.NoError(err)
	assert.Equal(Current(), info.PID)

	assert.True(info.Fields.Has(FieldExe))
	exe, err := os.Executable()
	assert.NoError(err)
	assert.Equal(exe, info.Exe)

	assert.True(info.Fields.Has(FieldParent))
	assert.Equal(CurrentParent(), info.Parent)

	assert.True(info.Fields.Has(FieldCwd))
	wd, err := os.Getwd()
	assert.NoError(err)
	assert.Equal(wd, info.Cwd)

	// the environment reported is the one the process started with
	assert.True(info.Fields.Has(FieldEnv))
	assert.NotEmpty(info.Env)
	for _, kv := range info.Env {
		assert.Contains(kv, "=")
	}

	assert.True(info.Fields.Has(FieldArgs))
	assert.NotEmpty(info.Args)
	assert.True(info.Fields.Has(FieldCmdline))
	assert.NotEmpty(info.Cmdline)

	assert.True(info.Fields.Has(FieldUser))
	assert.NotEmpty(info.User)

	FreeInfo(info, Heap)
}

func TestQueryPopulatesOnlyRequestedFields(t *testing.T) {
	assert := assert.New(t)

	info, err := QueryCurrentInfo(FieldExe, Heap)
	assert.NoError(err)
	// populated set is a subset of the request
	assert.Zero(info.Fields.Without(FieldExe))
	assert.Empty(info.Env)
	assert.Empty(info.Args)
	assert.Zero(info.Parent)
	FreeInfo(info, Heap)

	info, err = QueryCurrentInfo(0, Heap)
	assert.NoError(err)
	assert.Zero(info.Fields)
	// pid is populated regardless of the request
	assert.Equal(Current(), info.PID)
	FreeInfo(info, Heap)
}

func TestQueryUnknownIdentity(t *testing.T) {
	assert := assert.New(t)

	info, err := QueryInfo(999999999, FieldAll, Heap)
	assert.ErrorIs(err, ErrNotFound)
	assert.Nil(info)
}

func TestQueryErrorClassification(t *testing.T) {
	assert := assert.New(t)

	err := classifyProcErr(7, &os.PathError{Op: "stat", Path: "/proc/7", Err: syscall.EACCES})
	assert.ErrorIs(err, ErrPermission)
	assert.NotErrorIs(err, ErrNotFound)

	err = classifyProcErr(7, &os.PathError{Op: "stat", Path: "/proc/7", Err: syscall.ENOENT})
	assert.ErrorIs(err, ErrNotFound)
}

func TestQueryFreeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	c := NewCounting(nil)
	info, err := QueryCurrentInfo(FieldAll, c)
	assert.NoError(err)
	assert.NotZero(c.Outstanding())

	FreeInfo(info, c)
	assert.Equal(0, c.Outstanding())
}

func TestEnumerateContainsCurrent(t *testing.T) {
	assert := assert.New(t)

	c := NewCounting(nil)
	ids, err := Enumerate(c)
	assert.NoError(err)
	assert.Contains(ids, Current())
	assert.Contains(ids, ID(1))
	assert.Equal(1, c.Outstanding())

	c.Free(ids)
	assert.Equal(0, c.Outstanding())
}

func TestIdentityAccessors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ID(os.Getpid()), Current())
	assert.Equal(ID(os.Getppid()), CurrentParent())
	assert.GreaterOrEqual(UID(), 0)
	assert.GreaterOrEqual(GID(), 0)
	assert.GreaterOrEqual(EUID(), 0)
	assert.GreaterOrEqual(EGID(), 0)
}
