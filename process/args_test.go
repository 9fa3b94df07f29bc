package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsSnapshot(t *testing.T) {
	assert := assert.New(t)

	// Not initialized yet in this test binary.
	assert.Nil(Args())

	argv := []string{"prog", "-x", "value"}
	assert.NoError(InitArgs(argv))

	got := Args()
	assert.Equal(argv, got)

	// The snapshot is a copy in both directions.
	argv[1] = "mutated"
	got[2] = "mutated"
	assert.Equal([]string{"prog", "-x", "value"}, Args())

	// Exactly-once discipline.
	assert.Error(InitArgs([]string{"again"}))
	assert.Equal([]string{"prog", "-x", "value"}, Args())
}
