// Package tracer wraps OpenTelemetry tracing behind a small Tracer interface.
//
// NewClient installs a TracerProvider as the global provider, so spans opened
// by the otelhttp middleware around the HTTP router and spans opened with
// StartSpan inside the request handler belong to the same trace. Spans are
// exported over OTLP/HTTP only when Config.EnableExport is set.
//
//	tr, _ := tracer.NewClient(tracer.Config{ServiceName: "hello-monitor"})
//	ctx, span := tr.StartSpan(ctx, "simulate.backend")
//	defer span.End()
//	span.SetAttributes(map[string]interface{}{"simulate.work_ms": 250})
package tracer
