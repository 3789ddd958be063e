package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// InstrumentationName is the tracer name spans are created under.
const InstrumentationName = "github.com/aalemi-dev/hello-monitor"

// TracerClient wraps an OpenTelemetry TracerProvider. It implements Tracer
// and is safe for concurrent use.
type TracerClient struct {
	provider *trace.TracerProvider
}

// NewClient creates the tracer provider, installs it as the global provider
// together with the W3C trace context and baggage propagators, and returns
// the client. The global install is what lets otelhttp middleware and
// TracerClient spans share one trace.
//
// Example:
//
//	tr, err := tracer.NewClient(tracer.Config{ServiceName: "hello-monitor", AppEnv: "development"})
//	if err != nil {
//	    return err
//	}
//	ctx, span := tr.StartSpan(ctx, "simulate.backend")
//	defer span.End()
func NewClient(cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	return newClient(cfg, options...), nil
}

func newClient(cfg Config, options ...trace.TracerProviderOption) *TracerClient {
	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &TracerClient{provider: tp}
}
