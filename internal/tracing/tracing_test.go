package tracing

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewProviderNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	tp, err := NewProvider(lc, "none", io.Discard, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Fatal("expected noop span to have invalid context")
	}
	span.End()
	lc.RequireStart().RequireStop()
}

func TestNewProviderRejectsUnknownExporter(t *testing.T) {
	if _, err := NewProvider(fxtest.NewLifecycle(t), "zipkin", io.Discard, testLogger()); err == nil {
		t.Fatal("expected error for unknown exporter")
	}
}

func TestNewProviderStdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	lc := fxtest.NewLifecycle(t)
	tp, err := NewProvider(lc, "stdout", &buf, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lc.RequireStart()

	_, span := tp.Tracer("test").Start(context.Background(), "provider.getStatus")
	if !span.SpanContext().IsValid() {
		t.Fatal("expected recording span")
	}
	span.End()

	lc.RequireStop()
	if !strings.Contains(buf.String(), "provider.getStatus") {
		t.Fatalf("expected span to be exported on shutdown, got %q", buf.String())
	}
}
