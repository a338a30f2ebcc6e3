/*
Package frames provides nested, named execution scopes that ride on a
context.Context. A Frame marks "where in logical execution" a piece of code
runs: it has a target (usually a package or subsystem), a name and optional
fields, and frames nest into an ancestor chain as contexts derive.

The general use looks like:

	func handleJob(ctx context.Context) error {
		// This activates a new frame on the returned context. If an OTEL
		// span is recording on ctx, a child span named "worker::handle_job"
		// is started as well.
		ctx, f := frames.New(ctx, "worker", "handle_job", slog.String("job", id))
		defer f.End()

		...
	}

Code that wants to know the active scope uses frames.Current(ctx), which
returns nil when no frame is active. Frames are immutable after creation and
cheap to hand around by pointer. A nil *Frame is valid everywhere and means
"no active scope".
*/
package frames

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// tracerName names the tracer used for spans started on behalf of frames.
const tracerName = "github.com/tracekit/spanreport/frames"

type frameKey struct{}

// Frame is a node in the chain of nested execution scopes. Create one with
// New(). Immutable after creation.
type Frame struct {
	id     uuid.UUID
	target string
	name   string
	attrs  []slog.Attr
	parent *Frame

	span trace.Span
}

// New returns a context carrying a new Frame whose parent is the frame
// already active on ctx. attrs are optional fields describing the scope.
// If an OTEL span is recording on ctx, a child span named target::name is
// started with the fields as span attributes; it is ended by End().
func New(ctx context.Context, target, name string, attrs ...slog.Attr) (context.Context, *Frame) {
	f := &Frame{
		id:     uuid.New(),
		target: target,
		name:   name,
		attrs:  attrs,
		parent: Current(ctx),
	}

	if sp := trace.SpanFromContext(ctx); sp.IsRecording() {
		tracer := sp.TracerProvider().Tracer(tracerName)
		ctx, f.span = tracer.Start(ctx, f.Scope(), trace.WithAttributes(f.traceAttrs()...))
	}

	return context.WithValue(ctx, frameKey{}, f), f
}

// End ends the OTEL span started by New(). Safe to call on a nil Frame or
// when no span was recording.
func (f *Frame) End() {
	if f == nil || f.span == nil {
		return
	}
	f.span.End()
}

// Current returns the frame active on ctx, or nil if there is none.
func Current(ctx context.Context) *Frame {
	f, _ := ctx.Value(frameKey{}).(*Frame)
	return f
}

// WithFrame returns a context with f as the active frame. A nil f masks any
// frame already on ctx, so the returned context reads as "no active scope".
func WithFrame(ctx context.Context, f *Frame) context.Context {
	return context.WithValue(ctx, frameKey{}, f)
}

// In runs fn with f active on the context it receives. The caller's context
// is derived from, never mutated, so the previous ambient frame is back in
// force on every exit path, including a panic in fn.
func (f *Frame) In(ctx context.Context, fn func(context.Context)) {
	fn(WithFrame(ctx, f))
}

// ID returns the frame's identity. uuid.Nil for a nil Frame.
func (f *Frame) ID() uuid.UUID {
	if f == nil {
		return uuid.Nil
	}
	return f.id
}

// Target returns the frame's target.
func (f *Frame) Target() string {
	if f == nil {
		return ""
	}
	return f.target
}

// Name returns the frame's name.
func (f *Frame) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Scope returns the frame's target::name form used in trace output and span
// names.
func (f *Frame) Scope() string {
	if f == nil {
		return ""
	}
	return f.target + "::" + f.name
}

// Parent returns the frame's parent, or nil at the root.
func (f *Frame) Parent() *Frame {
	if f == nil {
		return nil
	}
	return f.parent
}

// Walk calls fn for f and then each ancestor in turn, innermost first.
// fields is the rendered field text, empty when the frame carries no fields.
// Walk stops early if fn returns false. A nil Frame walks nothing.
func (f *Frame) Walk(fn func(target, name, fields string) bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if !fn(cur.target, cur.name, cur.fieldText()) {
			return
		}
	}
}
