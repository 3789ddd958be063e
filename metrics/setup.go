package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aalemi-dev/hello-monitor/logger"
)

// MetricsPath is the path both metrics servers serve on.
const MetricsPath = "/metrics"

// Metrics owns the application Registry and the HTTP servers that expose it.
type Metrics struct {
	// Registry holds the application instruments.
	Registry *Registry

	// ApplicationServer serves Registry on MetricsPath. nil when disabled.
	ApplicationServer *http.Server

	// SystemRegistry holds the Go runtime, process and build info collectors.
	// nil when the system endpoint is disabled.
	SystemRegistry *prometheus.Registry

	// SystemServer serves SystemRegistry on MetricsPath. nil when disabled.
	SystemServer *http.Server
}

// NewMetrics initializes the application Registry and the HTTP servers that
// expose it. It sets up:
//
// 1. Application Metrics Endpoint (default: :8000):
//   - Every instrument declared on Registry (http_requests_total, cpu_usage_percent, ...)
//   - Rendered by Registry.Handler, so scrape hooks run and labels keep their declared order
//
// 2. System Metrics Endpoint (disabled by default):
//   - Go runtime metrics (goroutines, GC stats, heap usage)
//   - Process metrics (CPU time, memory, file descriptors)
//   - Build info metrics
//   - All wrapped with a constant `service` label taken from cfg.ServiceName
//
// Parameters:
//   - cfg: Listen addresses of both endpoints and the service name
//   - log: Receives exposition failures. May be nil
//
// Returns:
//   - *Metrics: The Registry plus servers that are configured but not yet
//     listening. RegisterMetricsLifecycle starts them under fx
//
// A server whose address resolves to "" is left nil; the Registry is always
// created and usable.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    ApplicationMetricsAddress: metrics.Ptr(":8000"),
//	    SystemMetricsAddress:      metrics.Ptr(":9090"),
//	    ServiceName:               "hello-monitor",
//	}, log)
//	requests := m.Registry.MustCreateCounter("http_requests_total", "Total HTTP Requests", []string{"method", "endpoint"})
//	go m.ApplicationServer.ListenAndServe()
//
// Access metrics at:
//   - Application metrics: http://localhost:8000/metrics
//   - System metrics: http://localhost:9090/metrics
func NewMetrics(cfg Config, log *logger.LoggerClient) *Metrics {
	m := &Metrics{Registry: NewRegistry()}

	var errorLog logger.Logger
	if log != nil {
		errorLog = log
	}

	appAddr := DefaultApplicationMetricsAddress
	if cfg.ApplicationMetricsAddress != nil {
		appAddr = *cfg.ApplicationMetricsAddress
	}
	if appAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(MetricsPath, m.Registry.Handler(HandlerOpts{ErrorLog: errorLog}))
		m.ApplicationServer = &http.Server{
			Addr:    appAddr,
			Handler: mux,
		}
	}

	systemAddr := DefaultSystemMetricsAddress
	if cfg.SystemMetricsAddress != nil {
		systemAddr = *cfg.SystemMetricsAddress
	}
	if systemAddr != "" {
		systemRegistry := prometheus.NewRegistry()
		prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			systemRegistry,
		).MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)

		mux := http.NewServeMux()
		mux.Handle(MetricsPath, promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}))
		m.SystemRegistry = systemRegistry
		m.SystemServer = &http.Server{
			Addr:    systemAddr,
			Handler: mux,
		}
	}

	return m
}
