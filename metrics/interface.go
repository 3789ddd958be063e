package metrics

import "net/http"

// MetricsCollector is the contract consumers use to declare instruments and
// read them back. It is implemented by *Registry and exposes no Prometheus
// types, so handlers can be tested against a fresh registry.
type MetricsCollector interface {
	// CreateCounter declares a counter. Calling it again with the same label
	// keys returns the existing counter.
	//
	// Example:
	//   requests, err := m.CreateCounter("http_requests_total", "Total HTTP Requests", []string{"method", "endpoint"})
	//   err = requests.Inc(metrics.Labels{"method": "GET", "endpoint": "/"})
	CreateCounter(name, help string, labels []string) (*Counter, error)

	// CreateGauge declares a gauge.
	//
	// Example:
	//   cpu, err := m.CreateGauge("cpu_usage_percent", "Simulated CPU Usage", nil)
	//   err = cpu.Set(42.5, nil)
	CreateGauge(name, help string, labels []string) (*Gauge, error)

	// CreateHistogram declares a histogram. Empty buckets select DefaultBuckets.
	//
	// Example:
	//   latency, err := m.CreateHistogram("http_response_time_seconds", "Response time in seconds", []string{"endpoint"}, nil)
	//   err = latency.Observe(0.21, metrics.Labels{"endpoint": "/"})
	CreateHistogram(name, help string, labels []string, buckets []float64) (*Histogram, error)

	// Snapshot returns the current state of every instrument.
	Snapshot() ([]Family, error)

	// OnScrape registers a hook that runs before every scrape.
	OnScrape(hook func())

	// Handler returns the exposition handler for this collector.
	Handler(opts HandlerOpts) http.Handler
}
