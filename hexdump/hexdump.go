// Package hexdump renders byte buffers as fixed-width hex lines. The plain
// form feeds graph node labels; the colored form backs terminal inspection.
package hexdump

import (
	"fmt"
	"io"
	"strings"

	"memgraph/coloransi"
)

// Options customizes hexdump output.
type Options struct {
	// BytesPerLine is the number of bytes rendered per line.
	BytesPerLine int

	// ShowASCII appends the printable-ASCII column.
	ShowASCII bool

	// ShowOffset prefixes each line with its offset.
	ShowOffset bool

	// StartOffset is added to the printed offsets (typically the base
	// address of the dumped memory).
	StartOffset uint64

	// MaxLines truncates the dump; 0 means no limit.
	MaxLines int

	// Color enables ANSI colors: cyan offsets, dimmed zero bytes.
	Color bool
}

// DefaultOptions returns the options used by the CLI inspection commands.
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
		ShowOffset:   true,
		Color:        true,
	}
}

// Plain renders data as bare hex/ASCII lines with no offsets or colors, the
// form embedded in graph node labels.
func Plain(data []byte, bytesPerLine, maxLines int) []string {
	opts := Options{BytesPerLine: bytesPerLine, ShowASCII: true, MaxLines: maxLines}
	var sb strings.Builder
	DumpToWriter(&sb, data, opts)
	out := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

// Dump renders data as a string using the given options.
func Dump(data []byte, opts Options) string {
	var sb strings.Builder
	DumpToWriter(&sb, data, opts)
	return sb.String()
}

// DumpToWriter writes the dump line by line.
func DumpToWriter(w io.Writer, data []byte, opts Options) {
	if opts.BytesPerLine <= 0 {
		opts.BytesPerLine = 16
	}

	lines := 0
	for off := 0; off < len(data); off += opts.BytesPerLine {
		if opts.MaxLines > 0 && lines >= opts.MaxLines {
			fmt.Fprintf(w, "... %d more bytes\n", len(data)-off)
			return
		}
		end := off + opts.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		formatLine(w, data[off:end], uint64(off), opts)
		lines++
	}
}

func formatLine(w io.Writer, line []byte, off uint64, opts Options) {
	if opts.ShowOffset {
		offsetStr := fmt.Sprintf("%08x", off+opts.StartOffset)
		if opts.Color {
			offsetStr = coloransi.Foreground(coloransi.Cyan, offsetStr)
		}
		fmt.Fprint(w, offsetStr, "  ")
	}

	for i := 0; i < opts.BytesPerLine; i++ {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if i >= len(line) {
			fmt.Fprint(w, "  ")
			continue
		}
		hexStr := fmt.Sprintf("%02x", line[i])
		if opts.Color && line[i] == 0 {
			hexStr = coloransi.Foreground(coloransi.BrightBlack, hexStr)
		}
		fmt.Fprint(w, hexStr)
	}

	if opts.ShowASCII {
		fmt.Fprint(w, "  ")
		for _, b := range line {
			c := "."
			if b >= 0x20 && b <= 0x7E {
				c = string(rune(b))
			}
			fmt.Fprint(w, c)
		}
	}
	fmt.Fprintln(w)
}
