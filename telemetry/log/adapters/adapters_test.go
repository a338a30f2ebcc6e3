package adapters

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tracekit/spanreport/frames"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZap(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	l := Zap(zap.New(core))

	l.Error("boom")

	if observed.Len() != 1 {
		t.Fatalf("TestZap: got %d entries, want 1", observed.Len())
	}
	if got := observed.All()[0].Message; got != "boom" {
		t.Errorf("TestZap: message: got %q, want %q", got, "boom")
	}
}

func TestZeroLog(t *testing.T) {
	t.Parallel()

	buff := &bytes.Buffer{}
	l := ZeroLog(zerolog.New(buff))

	ctx, f := frames.New(context.Background(), "svc", "request")
	defer f.End()
	l.ErrorContext(ctx, "boom")

	out := buff.String()
	if !strings.Contains(out, "boom") {
		t.Errorf("TestZeroLog: output does not carry the message: %s", out)
	}
	// Frame attribution must survive the backend swap.
	if !strings.Contains(out, "svc::request") {
		t.Errorf("TestZeroLog: output does not carry the frame scope: %s", out)
	}
}
