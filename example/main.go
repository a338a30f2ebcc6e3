// Command example shows spanreport end to end: install the hook, point the
// default logger at zerolog, nest a few frames, then emit an error created
// three frames deep. The log line is attributed to the frame the error was
// created in, and the %+v form of the report carries the frame trace.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tracekit/spanreport"
	"github.com/tracekit/spanreport/frames"
	"github.com/tracekit/spanreport/report"
	"github.com/tracekit/spanreport/telemetry/log"
	"github.com/tracekit/spanreport/telemetry/log/adapters"
	tracing "github.com/tracekit/spanreport/telemetry/otel/trace"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

func main() {
	if err := spanreport.Install(); err != nil {
		panic(err)
	}

	log.Set(adapters.ZeroLog(zerolog.New(os.Stdout).With().Timestamp().Logger()))

	if err := tracing.Init(os.Stderr); err != nil {
		log.Default().Error(fmt.Sprintf("tracing disabled: %v", err))
	}
	defer tracing.Close()

	ctx, span := otel.Tracer("example").Start(context.Background(), "main")
	defer span.End()

	ctx, root := frames.New(ctx, "example", "startup", slog.String("version", "0.1.0"))
	defer root.End()

	if cfg, ok := loadConfig(ctx).Emit(ctx); ok {
		log.Default().InfoContext(ctx, "config loaded", slog.String("path", cfg))
		return
	}

	// The trace form names every frame the error climbed out of.
	res := openStore(ctx)
	if _, ok := spanreport.Emit(ctx, res); !ok {
		fmt.Fprintf(os.Stderr, "%+v\n", res.Err)
	}
}

func loadConfig(ctx context.Context) spanreport.Result[string] {
	ctx, f := frames.New(ctx, "example", "load_config", slog.String("path", "/etc/example.conf"))
	defer f.End()

	return spanreport.Result[string]{Err: report.New(ctx, "config file not found")}
}

func openStore(ctx context.Context) spanreport.Result[string] {
	ctx, f := frames.New(ctx, "example", "open_store")
	defer f.End()

	return spanreport.Result[string]{Err: connect(ctx)}
}

func connect(ctx context.Context) error {
	ctx, f := frames.New(ctx, "store", "connect", slog.String("addr", "localhost:5432"))
	defer f.End()

	return report.Wrap(ctx, report.New(ctx, "connection refused"), "open store")
}
