// Package observability defines the Observer hook through which the simulated
// backend reports its operations.
//
// The simulate package never imports metrics or logging directly. It builds
// an OperationContext for each simulated query or unit of work and hands it
// to the configured Observer. The server package supplies observers that set
// the db_query_duration_ms gauge and log the event, combined with Multi:
//
//	db := simulate.NewDatabase(rng, observability.Multi(metricsObserver, logObserver))
//
// A nil Observer is allowed anywhere one is accepted; NewNoOpObserver is the
// explicit form.
package observability
