// Package metrics provides the process-wide metric registry and its
// plain-text exposition for pull-based scraping.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: declares instruments and reads them back
//   - Registry struct: concrete implementation backed by a private Prometheus registry
//   - Metrics struct: owns the Registry and the HTTP servers exposing it
//   - FXModule: provides *Metrics, *Registry and MetricsCollector for dependency injection
//
// Values are stored in client_golang vectors, so updates are atomic and
// concurrent requests never lose increments. The registry keeps its own schema
// table so that:
//   - registering a name twice with another kind or label schema fails with ErrDuplicateName
//   - an observation with the wrong label keys fails with ErrLabelMismatch instead of panicking
//   - NaN or infinite gauge values, and negative histogram observations, fail with ErrInvalidValue
//
// None of these errors is fatal to a request: callers log and continue.
//
// # Instruments
//
//	reg := metrics.NewRegistry()
//
//	requests, _ := reg.CreateCounter("http_requests_total", "Total HTTP Requests", []string{"method", "endpoint"})
//	_ = requests.Inc(metrics.Labels{"method": "GET", "endpoint": "/"})
//
//	cpu, _ := reg.CreateGauge("cpu_usage_percent", "Simulated CPU Usage", nil)
//	_ = cpu.Set(42.5, nil)
//
//	latency, _ := reg.CreateHistogram("http_response_time_seconds", "Response time in seconds", []string{"endpoint"}, nil)
//	_ = latency.Observe(0.21, metrics.Labels{"endpoint": "/"})
//
// # Exposition
//
// Registry.Handler renders Snapshot with WriteText:
//
//	# HELP http_requests_total Total HTTP Requests
//	# TYPE http_requests_total counter
//	http_requests_total{method="GET",endpoint="/"} 3
//
// Labels keep their declared order and histograms expand into _bucket, _sum
// and _count lines. Scrapers that ask for protobuf or OpenMetrics get it
// through prometheus/common/expfmt.
//
// Hooks registered with OnScrape run before each snapshot, which is how
// point-in-time gauges are refreshed on demand.
//
// # Servers
//
// NewMetrics creates the application endpoint (default :8000) and, when
// SystemMetricsAddress is set, a second endpoint with Go runtime, process and
// build info collectors served by promhttp. Set ApplicationMetricsAddress to
// Ptr("") in tests to use the Registry without a listener.
package metrics
