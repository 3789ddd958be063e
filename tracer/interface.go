package tracer

import (
	"context"
)

// Tracer creates spans. Implemented by *TracerClient.
type Tracer interface {
	// StartSpan starts a span named name as a child of the span in ctx, if
	// any. The caller must End the returned span.
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
type Span interface {
	// End finishes the span. Call it exactly once, usually via defer.
	End()

	// SetAttributes attaches key/value pairs. string, int, int64, float64 and
	// bool keep their type; anything else is stored via fmt.Sprint.
	//
	//   span.SetAttributes(map[string]interface{}{
	//     "http.route":           "/",
	//     "simulate.work_ms":     312,
	//     "simulate.db_query_ms": 47,
	//   })
	SetAttributes(attrs map[string]interface{})

	// RecordError records err on the span and sets its status to Error.
	RecordError(err error)
}
