//go:build linux

package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindByNameFindsSelf(t *testing.T) {
	assert := assert.New(t)

	exe, err := os.Executable()
	assert.NoError(err)

	c := NewCounting(nil)
	ids, err := FindByName(filepath.Base(exe), c)
	assert.NoError(err)
	assert.Contains(ids, Current())
	assert.Equal(1, c.Outstanding())
	c.Free(ids)
	assert.Equal(0, c.Outstanding())
}

func TestFindAllIncludesSelf(t *testing.T) {
	assert := assert.New(t)

	c := NewCounting(nil)
	infos, err := FindAll(FieldExe|FieldUser, c)
	assert.NoError(err)
	assert.NotEmpty(infos)

	var self *Info
	for _, info := range infos {
		if info.PID == Current() {
			self = info
		}
	}
	if assert.NotNil(self) {
		exe, err := os.Executable()
		assert.NoError(err)
		assert.True(self.Fields.Has(FieldExe))
		assert.Equal(exe, self.Exe)
	}

	for _, info := range infos {
		FreeInfo(info, c)
	}
	assert.Equal(0, c.Outstanding())
}

func TestFindByNameEmpty(t *testing.T) {
	assert := assert.New(t)

	_, err := FindByName("", Heap)
	assert.Error(err)
}

func TestOpenByNameUnknown(t *testing.T) {
	assert := assert.New(t)

	_, err := OpenByName("prockit-no-such-process", 0)
	assert.ErrorIs(err, ErrNotFound)
}

func TestOpenByNameSelf(t *testing.T) {
	assert := assert.New(t)

	exe, err := os.Executable()
	assert.NoError(err)

	h, err := OpenByName(filepath.Base(exe), 0)
	assert.NoError(err)
	assert.NoError(h.Close())
}
