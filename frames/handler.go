package frames

import (
	"context"
	"log/slog"
)

// NewLogHandler wraps inner so that every record emitted with a context
// carrying a frame is attributed to that frame. The record gains a "frame"
// group with the frame's id and scope. Records without an active frame pass
// through unchanged.
func NewLogHandler(inner slog.Handler) slog.Handler {
	return logHandler{inner: inner}
}

type logHandler struct {
	inner slog.Handler
}

func (l logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l logHandler) Handle(ctx context.Context, rec slog.Record) error {
	if f := Current(ctx); f != nil {
		rec = rec.Clone()
		rec.AddAttrs(slog.Group("frame",
			slog.String("id", f.ID().String()),
			slog.String("scope", f.Scope()),
		))
	}
	return l.inner.Handle(ctx, rec)
}

func (l logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return logHandler{inner: l.inner.WithAttrs(attrs)}
}

func (l logHandler) WithGroup(name string) slog.Handler {
	return logHandler{inner: l.inner.WithGroup(name)}
}
