//go:build !noframetrace

package spanreport

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/tracekit/spanreport/frames"
	"github.com/tracekit/spanreport/report"
)

func TestDisplayTrace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx, outer := frames.New(ctx, "svc", "request", slog.String("id", "42"))
	defer outer.End()
	ctx, mid := frames.New(ctx, "svc", "auth")
	defer mid.End()
	ctx, inner := frames.New(ctx, "db", "query", slog.String("sql", "\x1B[31mSELECT 1\x1B[0m"))
	defer inner.End()

	r := report.Errorf(ctx, "query failed")

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "plain display has no trace",
			format: "%v",
			want:   "query failed",
		},
		{
			name:   "alternate display appends the frame chain innermost first",
			format: "%+v",
			want: "query failed" +
				"\n• db::query{sql=SELECT 1}" +
				"\n• svc::auth" +
				"\n• svc::request{id=42}",
		},
	}

	for _, test := range tests {
		if got := fmt.Sprintf(test.format, r); got != test.want {
			t.Errorf("TestDisplayTrace(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestDisplayTraceRendersCapturedFrame(t *testing.T) {
	t.Parallel()

	ctxA, a := frames.New(context.Background(), "app", "frame_a")
	defer a.End()
	r := report.New(ctxA, "boom")

	// frame_b is ambient when formatting happens; frame_a must render.
	_, b := frames.New(context.Background(), "app", "frame_b")
	defer b.End()

	want := "boom\n• app::frame_a"
	if got := fmt.Sprintf("%+v", r); got != want {
		t.Errorf("TestDisplayTraceRendersCapturedFrame: got %q, want %q", got, want)
	}
}

func TestDisplayTraceNoFrame(t *testing.T) {
	t.Parallel()

	r := report.New(context.Background(), "boom")
	if got := fmt.Sprintf("%+v", r); got != "boom" {
		t.Errorf("TestDisplayTraceNoFrame: got %q, want %q", got, "boom")
	}
}

func TestDebugDelegates(t *testing.T) {
	t.Parallel()

	ctx, f := frames.New(context.Background(), "app", "job")
	defer f.End()
	r := report.New(ctx, "boom")

	inner := r.Unwrap()
	if got, want := fmt.Sprintf("%#v", r), fmt.Sprintf("%#v", inner); got != want {
		t.Errorf("TestDebugDelegates: got %q, want %q", got, want)
	}
}
