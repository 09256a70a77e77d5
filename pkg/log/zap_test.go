package log_test

import (
	"context"
	"testing"

	"business-admin/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")

	nop := log.NewNop()
	nop.Errorf(context.Background(), "ignored %d", 1)
}
