// Package log holds the slog logger that spanreport emits through. The
// default logger writes JSON to stdout and attributes records to the frame
// on their context. Swap the backend with Set(), usually via the adapters
// package.
package log

import (
	"log/slog"
	"os"

	"github.com/tracekit/spanreport/frames"
)

// LogLevel is the log level for the default logger. Loggers built by the
// adapters package use it as well; loggers built by hand must be given it
// explicitly.
var LogLevel = new(slog.LevelVar) // Info by default

var defaultLog = slog.New(frames.NewLogHandler(
	slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: LogLevel})))

// Default returns the default logger.
func Default() *slog.Logger {
	if defaultLog == nil {
		return slog.Default()
	}
	return defaultLog
}

// Set sets the logger returned by Default(). This must be done in main()
// before any logging is done to avoid a concurrency issue.
func Set(l *slog.Logger) {
	defaultLog = l
	slog.SetDefault(l)
}
