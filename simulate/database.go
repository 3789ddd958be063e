package simulate

import (
	"context"
	"time"

	"github.com/aalemi-dev/hello-monitor/observability"
)

// Bounds of a simulated query, in whole milliseconds.
const (
	MinQueryMillis = 10
	MaxQueryMillis = 100
)

const (
	componentDatabase = "database"
	operationSelect   = "select"
	resourceGreetings = "greetings"
)

// Database stands in for a backing store. Queries do not block; each one
// draws a duration and reports it to the observer as if it had taken that
// long.
type Database struct {
	rng      RandomSource
	observer observability.Observer
}

// NewDatabase returns a Database. observer may be nil.
func NewDatabase(rng RandomSource, observer observability.Observer) *Database {
	if observer == nil {
		observer = observability.NewNoOpObserver()
	}
	return &Database{rng: rng, observer: observer}
}

// Query runs one simulated select and returns its duration, a whole number
// of milliseconds in [MinQueryMillis, MaxQueryMillis]. A done ctx fails the
// query with ctx.Err().
func (d *Database) Query(ctx context.Context) (time.Duration, error) {
	op := observability.OperationContext{
		Component: componentDatabase,
		Operation: operationSelect,
		Resource:  resourceGreetings,
	}

	if err := ctx.Err(); err != nil {
		op.Error = err
		d.observer.ObserveOperation(op)
		return 0, err
	}

	millis := UniformInt(d.rng, MinQueryMillis, MaxQueryMillis)
	op.Duration = time.Duration(millis) * time.Millisecond
	op.Metadata = map[string]interface{}{"duration_ms": millis}
	d.observer.ObserveOperation(op)

	return op.Duration, nil
}
