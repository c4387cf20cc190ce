/*
PURPOSE:
  Provides a structured logger for the summary tool.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - The report on stdout is the product. Nothing else may be printed there.

  Implementation-discovered:
  - Diagnostics go to stderr, Warn and above by default.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog`.
  - Never log to stdout.

USAGE:
  output.Logger.Warn("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - If report tests see stray log lines, check the handler writer here.

RELATED FILES:
  - internal/output/report.go

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}
