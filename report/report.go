/*
Package report provides the error-report container that carries a pluggable
per-error handler. The handler is built once, by a process-wide factory, at
the moment the report is created, and it drives the report's debug and
display rendering from then on. Wrapping a report never rebuilds its handler.

Register the factory once with SetHook before any report that relies on it
is created. The github.com/tracekit/spanreport root package supplies the
standard frame-capturing factory through its Install function.
*/
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Handler is the capability object attached to every Report. It owns the
// report's textual rendering and whatever per-error state the factory chose
// to capture at creation time.
type Handler interface {
	// Debug renders the error's debug form to s.
	Debug(err error, s fmt.State, verb rune)
	// Display renders the error's display form to s. The alternate flag on
	// s selects the expanded form.
	Display(err error, s fmt.State, verb rune)
}

// Factory builds the Handler for a report being created. ctx is the context
// the report constructor was called with.
type Factory func(ctx context.Context) Handler

// ErrHookSet is returned by SetHook when a factory is already registered.
var ErrHookSet = errors.New("report: hook already set")

var (
	hookMu sync.Mutex
	hook   Factory
)

// SetHook registers f as the process-wide handler factory for all reports
// created afterwards. Registering twice fails with ErrHookSet; the hook is
// never silently overwritten.
func SetHook(f Factory) error {
	hookMu.Lock()
	defer hookMu.Unlock()
	if hook != nil {
		return ErrHookSet
	}
	hook = f
	return nil
}

func currentHook() Factory {
	hookMu.Lock()
	defer hookMu.Unlock()
	return hook
}

// Report is an error with an attached Handler. Create one with New, Errorf
// or Wrap. The zero value is not usable.
type Report struct {
	err     error
	handler Handler
}

// New returns a Report wrapping a new error with the given message.
func New(ctx context.Context, msg string) *Report {
	return newReport(ctx, errors.New(msg))
}

// Errorf returns a Report wrapping an error formatted per fmt.Errorf,
// including %w wrapping.
func Errorf(ctx context.Context, format string, args ...any) *Report {
	return newReport(ctx, fmt.Errorf(format, args...))
}

// Wrap returns a Report whose message prefixes err with msg. Wrapping an
// existing Report keeps its handler: the handler is built once, when the
// error is first created, never on chaining. Returns nil if err is nil.
func Wrap(ctx context.Context, err error, msg string) *Report {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Report); ok {
		return &Report{err: fmt.Errorf("%s: %w", msg, r.err), handler: r.handler}
	}
	return newReport(ctx, fmt.Errorf("%s: %w", msg, err))
}

func newReport(ctx context.Context, err error) *Report {
	r := &Report{err: err}
	if f := currentHook(); f != nil {
		r.handler = f(ctx)
	}
	r.trace(ctx)
	return r
}

// trace records the error on the recording span, if any. This happens when
// the report is created, not when it is logged.
func (r *Report) trace(ctx context.Context) {
	if ctx == nil {
		return
	}
	sp := trace.SpanFromContext(ctx)
	if !sp.IsRecording() {
		return
	}
	sp.RecordError(r.err)
	sp.SetStatus(codes.Error, r.err.Error())
}

// Error implements the error interface.
func (r *Report) Error() string {
	return r.err.Error()
}

// Unwrap unwraps the error.
func (r *Report) Unwrap() error {
	return r.err
}

// Handler returns the handler attached at creation. nil if no hook was
// registered when the report was created.
func (r *Report) Handler() Handler {
	return r.handler
}

// Format implements fmt.Formatter. %v renders the display form, %+v the
// expanded display form and %#v the debug form, all through the attached
// handler. Without a handler the wrapped error is formatted directly.
func (r *Report) Format(s fmt.State, verb rune) {
	if r.handler == nil {
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.err)
		return
	}
	if verb == 'v' && s.Flag('#') {
		r.handler.Debug(r.err, s, verb)
		return
	}
	r.handler.Display(r.err, s, verb)
}
