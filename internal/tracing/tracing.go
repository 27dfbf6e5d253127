package tracing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/polkiloo/smsrent/internal/config"
)

// Module provides the tracer provider used by outbound calls.
var Module = fx.Provide(newProvider)

type providerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newProvider(p providerParams) (trace.TracerProvider, error) {
	return NewProvider(p.Lifecycle, p.Config.TraceExporter, os.Stdout, p.Logger)
}

// NewProvider builds a tracer provider for the named exporter. "none" yields a
// no-op provider; "stdout" writes finished spans to w.
func NewProvider(lc fx.Lifecycle, exporter string, w io.Writer, logger *slog.Logger) (trace.TracerProvider, error) {
	switch exporter {
	case "", "none":
		return noop.NewTracerProvider(), nil
	case "stdout":
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", exporter)
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	res := sdkresource.NewSchemaless(attribute.String("service.name", "smsrent"))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			otel.SetTracerProvider(tp)
			otel.SetTextMapPropagator(propagation.TraceContext{})
			logger.Info("tracing enabled", slog.String("exporter", exporter))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
