package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger: timestamped, filtered at level, writing
// to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
