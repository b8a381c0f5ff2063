// Package coloransi provides the small set of ANSI color helpers the hexdump
// terminal output uses.
package coloransi

import (
	"fmt"
	"strings"
)

// ColorCode is an ANSI foreground color code.
type ColorCode uint32

const (
	Black   ColorCode = 30
	Red     ColorCode = 31
	Green   ColorCode = 32
	Yellow  ColorCode = 33
	Blue    ColorCode = 34
	Magenta ColorCode = 35
	Cyan    ColorCode = 36
	White   ColorCode = 37

	BrightBlack ColorCode = Black + 60
)

// Foreground formats the given values with the specified foreground color.
func Foreground(fg ColorCode, v ...interface{}) string {
	args := make([]string, len(v))
	for i, arg := range v {
		args[i] = fmt.Sprint(arg)
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", fg, strings.Join(args, " "))
}
