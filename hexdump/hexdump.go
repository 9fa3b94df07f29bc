// Package hexdump formats byte slices as classic offset/hex/ASCII dumps.
package hexdump

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options customizes the dump output.
type Options struct {
	// BytesPerLine is the number of bytes shown per line.
	BytesPerLine int

	// ShowASCII adds the ASCII column.
	ShowASCII bool

	// StartOffset is the address printed for the first byte.
	StartOffset uint64

	// OffsetWidth is the width of the offset column in hex digits.
	OffsetWidth int

	// Colorize enables ANSI colored output.
	Colorize bool

	// OffsetColor, HexColor and ZeroColor apply when Colorize is set.
	OffsetColor coloransi.ColorCode
	HexColor    coloransi.ColorCode
	ZeroColor   coloransi.ColorCode

	// MaxLines truncates the dump after that many lines (0 = no limit).
	MaxLines int
}

// DefaultOptions returns the options used by Dump when none are given.
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
		OffsetWidth:  8,
		OffsetColor:  coloransi.Cyan,
		HexColor:     coloransi.Green,
		ZeroColor:    coloransi.BrightBlack,
	}
}

// Dump formats data with the given options and returns the result.
func Dump(data []byte, options Options) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, data, options)
	return buffer.String()
}

// DumpToWriter writes the formatted dump of data to writer.
func DumpToWriter(writer io.Writer, data []byte, options Options) {
	if options.BytesPerLine <= 0 {
		options.BytesPerLine = 16
	}
	if options.OffsetWidth <= 0 {
		options.OffsetWidth = 8
	}

	lines := 0
	for offset := 0; offset < len(data); offset += options.BytesPerLine {
		if options.MaxLines > 0 && lines >= options.MaxLines {
			fmt.Fprintf(writer, "... %d more bytes\n", len(data)-offset)
			return
		}
		lines++

		end := offset + options.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]

		addr := fmt.Sprintf("%0*x", options.OffsetWidth, options.StartOffset+uint64(offset))
		if options.Colorize {
			addr = coloransi.Foreground(options.OffsetColor, addr)
		}
		fmt.Fprint(writer, addr, "  ")

		fmt.Fprint(writer, hexColumn(line, options))
		if options.ShowASCII {
			fmt.Fprint(writer, "  |", asciiColumn(line), "|")
		}
		fmt.Fprintln(writer)
	}
}

func hexColumn(line []byte, options Options) string {
	var sb strings.Builder
	for i := 0; i < options.BytesPerLine; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i >= len(line) {
			sb.WriteString("  ")
			continue
		}
		cell := fmt.Sprintf("%02x", line[i])
		if options.Colorize {
			color := options.HexColor
			if line[i] == 0 {
				color = options.ZeroColor
			}
			cell = coloransi.Foreground(color, cell)
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

func asciiColumn(line []byte) string {
	var sb strings.Builder
	for _, b := range line {
		r := rune(b)
		if unicode.IsPrint(r) && r < unicode.MaxASCII {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
