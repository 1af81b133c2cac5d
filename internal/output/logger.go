/*
PURPOSE:
  Provides the diagnostic logger for echoer.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Tool output on stdout/stderr must stay exactly what the commands print.

  Implementation-discovered:
  - Logs go to stderr and are silent below warn unless ECHOER_LOG_LEVEL
    lowers the threshold.

ARCHITECTURE INTEGRATION:
  - Used by: internal/parser, internal/engine, internal/cli.
  - Configured by: internal/cli via internal/config.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Debug("message", "key", "value")
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, slog.LevelWarn)
}

// NewLogger builds a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
