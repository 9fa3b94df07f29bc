package hexdump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpBasic(t *testing.T) {
	assert := assert.New(t)

	out := Dump([]byte("hello\x00world"), DefaultOptions())
	assert.Equal(1, strings.Count(out, "\n"))
	assert.Contains(out, "00000000")
	assert.Contains(out, "68 65 6c 6c 6f 00 77 6f 72 6c 64")
	assert.Contains(out, "|hello.world|")
}

func TestDumpStartOffsetAndWidth(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.StartOffset = 0x7f0010
	opts.OffsetWidth = 12
	opts.BytesPerLine = 8

	out := Dump(make([]byte, 16), opts)
	assert.Contains(out, "0000007f0010")
	assert.Contains(out, "0000007f0018")
}

func TestDumpMaxLines(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.MaxLines = 2

	out := Dump(make([]byte, 64), opts)
	assert.Contains(out, "... 32 more bytes")
}

func TestDumpNoASCII(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.ShowASCII = false

	out := Dump([]byte("abc"), opts)
	assert.NotContains(out, "|")
}
