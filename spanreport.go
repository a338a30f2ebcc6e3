/*
Package spanreport grants access to the execution frame where an error
happened, allowing errors to be logged inside the scope they came from
rather than the scope that happened to be active when someone got around to
logging them.

Install() the capture hook once at startup. Every report created afterwards
through the report package snapshots the frame active at creation time. Get
the frame back with Span(), or log a Result in one call with Emit() or its
method alias:

	func main() {
		if err := spanreport.Install(); err != nil {
			panic(err)
		}

		ctx, f := frames.New(context.Background(), "app", "startup")
		defer f.End()

		if cfg, ok := loadConfig(ctx).Emit(ctx); ok {
			run(ctx, cfg)
		}
	}

The %+v form of a report appends a trace of the captured frame chain to the
message, one "• target::name{fields}" line per frame, innermost first. Build
with the noframetrace tag to compile the trace suffix out.
*/
package spanreport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tracekit/spanreport/frames"
	"github.com/tracekit/spanreport/report"
	"github.com/tracekit/spanreport/telemetry/log"
)

// Handler is the per-report capability that remembers the frame that was
// active when the report was created. It is built by the factory Install()
// registers and never re-captures on wrapping.
type Handler struct {
	frame *frames.Frame
}

// Frame returns the captured frame. nil when no frame was active at
// creation.
func (h *Handler) Frame() *frames.Frame {
	return h.frame
}

// Debug renders the wrapped error's own debug form.
func (h *Handler) Debug(err error, s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), err)
}

// Install registers the frame-capture hook with the report package.
// Required for this package to function; call it once, before any report
// that relies on frame capture is created. A second call fails with
// report.ErrHookSet.
func Install() error {
	return report.SetHook(func(ctx context.Context) report.Handler {
		return &Handler{frame: frames.Current(ctx)}
	})
}

// Span returns the frame the error occurred in.
//
// Panics if err does not carry a report with a spanreport.Handler, i.e. if
// Install() was never called or the report predates it.
func Span(err error) *frames.Frame {
	var r *report.Report
	if !errors.As(err, &r) {
		panic(fmt.Sprintf("spanreport: wanted a *report.Report carrying a spanreport.Handler, error is %T", err))
	}
	h, ok := r.Handler().(*Handler)
	if !ok {
		panic(fmt.Sprintf("spanreport: wanted a spanreport.Handler on the report, got %T (missing Install()?)", r.Handler()))
	}
	return h.frame
}

// Result pairs a value with the error that may have replaced it. It exists
// so Emit and Span have a method form at call sites.
type Result[T any] struct {
	// V is the value.
	V T
	// Err is the error.
	Err error
}

// Span is method syntax for [Span], reading the frame off the result's
// error.
func (r Result[T]) Span() *frames.Frame {
	return Span(r.Err)
}

// Emit is method syntax for [Emit].
func (r Result[T]) Emit(ctx context.Context) (T, bool) {
	return Emit(ctx, r)
}

// Emit sends one error-level log event if an error happened, and reports
// whether the value is usable. The event is emitted inside the error's
// captured frame, not whatever frame is active on ctx, and its message is
// the error's display text. On success the value passes through with no
// side effects.
//
// Panics under the same conditions as [Span].
func Emit[T any](ctx context.Context, res Result[T]) (T, bool) {
	if res.Err == nil {
		return res.V, true
	}

	f := Span(res.Err)
	f.In(ctx, func(ctx context.Context) {
		log.Default().LogAttrs(ctx, slog.LevelError, fmt.Sprintf("%v", res.Err))
	})

	var zero T
	return zero, false
}
