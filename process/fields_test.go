package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSetOps(t *testing.T) {
	assert := assert.New(t)

	var s FieldSet
	assert.False(s.Has(FieldExe))

	s = s.With(FieldExe).With(FieldEnv)
	assert.True(s.Has(FieldExe))
	assert.True(s.Has(FieldEnv))
	assert.True(s.Has(FieldExe | FieldEnv))
	assert.False(s.Has(FieldExe | FieldCwd))

	s = s.Without(FieldExe)
	assert.False(s.Has(FieldExe))
	assert.True(s.Has(FieldEnv))
}

func TestFieldSetString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", FieldSet(0).String())
	assert.Equal("exe", FieldExe.String())
	assert.Equal("exe|env", (FieldExe | FieldEnv).String())
	assert.Equal("exe|parent|priority|cmdline|args|env|user|cwd", FieldAll.String())
}

func TestFieldAllCoversEveryField(t *testing.T) {
	assert := assert.New(t)
	for _, fn := range fieldNames {
		assert.True(FieldAll.Has(fn.f), fn.name)
	}
}
