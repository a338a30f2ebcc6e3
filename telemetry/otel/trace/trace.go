/*
Package trace bootstraps an OTEL tracer provider so frames started with
frames.New are recorded as spans. This is a convenience for programs that do
not bring their own provider: Init() installs an always-sampling provider
that pretty-prints spans to the given writer, which is enough to see frame
spans during local development. Programs with a real collector should
configure their own provider and skip this package.
*/
package trace

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"
)

var defaultTP *sdkTrace.TracerProvider
var once sync.Once

// Default returns the default trace provider, or nil before Init().
func Default() *sdkTrace.TracerProvider {
	return defaultTP
}

// Set will set the default trace provider. This can be used to override the
// provider before Init() is called. The other use is for testing.
func Set(tp *sdkTrace.TracerProvider) {
	defaultTP = tp
}

// Init initializes the trace package, writing spans to w. Can only be called
// once; later calls are no-ops returning the first result.
func Init(w io.Writer) error {
	var err error
	once.Do(func() {
		if defaultTP != nil {
			return
		}

		var exp *stdouttrace.Exporter
		exp, err = stdouttrace.New(
			stdouttrace.WithWriter(w),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			err = fmt.Errorf("could not create a new stdout trace provider: %v", err)
			return
		}

		bsp := sdkTrace.NewBatchSpanProcessor(exp, sdkTrace.WithBatchTimeout(1*time.Second))
		defaultTP = sdkTrace.NewTracerProvider(
			sdkTrace.WithSampler(sdkTrace.AlwaysSample()),
			sdkTrace.WithSpanProcessor(bsp),
		)

		otel.SetTracerProvider(defaultTP)
		// set global propagator to tracecontext (the default is no-op).
		otel.SetTextMapPropagator(propagation.TraceContext{})
	})
	return err
}

// Close shuts down the trace provider. This should be called at the end of
// the program.
func Close() {
	if defaultTP != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		defaultTP.Shutdown(ctx)
	}
}
