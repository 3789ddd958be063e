package observability

// NoOpObserver discards every event.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver returns an Observer that discards every event.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
