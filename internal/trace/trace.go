// Package trace wires OpenTelemetry spans around desk operations. Spans are
// exported to stderr and only when LOG_TRACING_ENABLED=true, so CLI output
// on stdout stays clean.
package trace

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "equity-desk"

type Config struct {
	Enabled bool
	Pretty  bool
	Output  io.Writer
}

// LoadConfigFromEnv reads LOG_TRACING_ENABLED and LOG_TRACING_PRETTY.
func LoadConfigFromEnv() Config {
	return Config{
		Enabled: os.Getenv("LOG_TRACING_ENABLED") == "true",
		Pretty:  os.Getenv("LOG_TRACING_PRETTY") != "false",
		Output:  os.Stderr,
	}
}

var (
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
)

func Init(version string) error {
	return InitWithConfig(LoadConfigFromEnv(), version)
}

// InitWithConfig replaces any previous provider. A disabled config leaves
// spans as no-ops.
func InitWithConfig(cfg Config, version string) error {
	if err := Shutdown(context.Background()); err != nil {
		return err
	}
	if !cfg.Enabled {
		return nil
	}

	opts := []stdouttrace.Option{stdouttrace.WithWriter(cfg.Output)}
	if cfg.Pretty {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return err
	}

	res, err := resource.New(context.Background(), resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return err
	}

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	tracer = provider.Tracer(serviceName)
	return nil
}

// Shutdown flushes pending spans and disables tracing.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	p := provider
	provider, tracer = nil, nil
	return p.Shutdown(ctx)
}

func Enabled() bool {
	return tracer != nil
}

// StartSpan opens a span named after a desk operation, e.g. "desk.PlaceOrder".
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func Symbol(s string) attribute.KeyValue { return attribute.String("desk.symbol", s) }
func Quantity(n int) attribute.KeyValue { return attribute.Int("desk.qty", n) }
func Cycle(n int) attribute.KeyValue { return attribute.Int("desk.cycle", n) }
func Exits(n int) attribute.KeyValue { return attribute.Int("desk.exits", n) }
func Mode(m string) attribute.KeyValue { return attribute.String("desk.algo_mode", m) }
func PositionID(id string) attribute.KeyValue { return attribute.String("desk.position_id", id) }

// RecordError marks span failed with err.
func RecordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func GetTraceFields(ctx context.Context) (traceID, spanID string, ok bool) {
	sc := trace.SpanContextFromContext(ctx)
	if tracer == nil || !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
