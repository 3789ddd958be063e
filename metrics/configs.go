package metrics

// Default addresses for the metrics servers.
//
// The system endpoint is opt-in: its default is empty, which disables it.
const (
	DefaultApplicationMetricsAddress = ":8000"
	DefaultSystemMetricsAddress      = ""
)

// Config defines where the metrics servers listen.
//
// The package can expose two endpoints:
// 1. Application Metrics Endpoint (default: :8000): the instruments declared on the Registry
// 2. System Metrics Endpoint (disabled by default): Go runtime, process and build info metrics
type Config struct {
	// ApplicationMetricsAddress is the listen address of the application
	// metrics server.
	//
	// Example values:
	//   - ":8000"          → Listen on all interfaces, port 8000
	//   - "127.0.0.1:8000" → Listen only on localhost
	//   - nil              → Use default ":8000"
	//   - ptr("")          → Do not start a server; the Registry is still usable
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" envconfig:"METRICS_APPLICATION_ADDRESS"`

	// SystemMetricsAddress is the listen address of the runtime metrics
	// server (Go runtime, process and build info collectors).
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - nil              → Use default "", which disables the endpoint
	//   - ptr("")          → Disabled
	SystemMetricsAddress *string `yaml:"system_metrics_address" envconfig:"METRICS_SYSTEM_ADDRESS"`

	// ServiceName is attached as a constant "service" label to system metrics,
	// which makes them easy to filter when several services share a scrape
	// target. Application metrics keep exactly their declared labels, so
	// http_requests_total stays {method, endpoint}.
	//
	// Example values: "hello-monitor", "hello-monitor-canary"
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// Ptr returns a pointer to the given string value.
//
// Example:
//
//	cfg := metrics.Config{
//	    ApplicationMetricsAddress: metrics.Ptr(":8000"),
//	    SystemMetricsAddress:      metrics.Ptr(":9090"),
//	}
func Ptr(s string) *string {
	return &s
}
