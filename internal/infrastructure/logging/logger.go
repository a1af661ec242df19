package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates the CLI logger. Debug forces debug level regardless of
// the configured level. Unknown levels fall back to info.
func NewLogger(level string, debug bool, output io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	if debug {
		lvl = hclog.Debug
	}
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "qf",
		Level:  lvl,
		Output: output,
	})
}
