// Package adapters provides adapters for converting logging instances to the
// *slog.Logger type. This allows existing logging packages that are in use to
// back log.Default(). Every adapter keeps frame attribution: records emitted
// inside a frame carry the frame group no matter the backend.
package adapters

import (
	"log/slog"

	"github.com/tracekit/spanreport/frames"
	"github.com/tracekit/spanreport/telemetry/log"

	"github.com/rs/zerolog"
	slogzap "github.com/samber/slog-zap/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
	"go.uber.org/zap"
)

// Zap creates a new slog.Logger that writes to a Zap logger.
func Zap(l *zap.Logger) *slog.Logger {
	return slog.New(frames.NewLogHandler(
		slogzap.Option{
			AddSource: true,
			Level:     log.LogLevel,
			Logger:    l,
		}.NewZapHandler()))
}

// ZeroLog creates a new slog.Logger that writes to a Zerolog logger.
func ZeroLog(l zerolog.Logger) *slog.Logger {
	return slog.New(frames.NewLogHandler(
		slogzerolog.Option{
			AddSource: true,
			Level:     log.LogLevel,
			Logger:    &l,
		}.NewZerologHandler()))
}
