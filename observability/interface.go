package observability

import "time"

// Observer receives events for operations performed by the simulated backend.
// Components accept an optional Observer and work without one.
type Observer interface {
	// ObserveOperation is called once per completed operation.
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component names the subsystem, for example "database" or "worker".
	Component string

	// Operation names what was done, for example "select" or "work".
	Operation string

	// Resource is the target of the operation, if any.
	Resource string

	// Duration is the simulated or measured time the operation took.
	Duration time.Duration

	// Error is non-nil when the operation failed or was cancelled.
	Error error

	// Metadata carries optional operation-specific details.
	Metadata map[string]interface{}
}

// Multi fans an event out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return ObserverFunc(func(ctx OperationContext) {
		for _, o := range filtered {
			o.ObserveOperation(ctx)
		}
	})
}
