package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/hello-monitor/logger"
)

// FXModule provides the metrics stack to an fx application:
// 1. *Metrics (concrete type) owning the servers
// 2. *Registry and the MetricsCollector interface for declaring instruments
// 3. Lifecycle hooks that start and stop both metrics servers
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{ApplicationMetricsAddress: metrics.Ptr(":8000")}),
//	    fx.Invoke(func(m metrics.MetricsCollector) {
//	        m.CreateCounter("http_requests_total", "Total HTTP Requests", []string{"method", "endpoint"})
//	    }),
//	)
//
// Application Metrics Endpoint (default: :8000):
//   - Instruments declared through MetricsCollector
//
// System Metrics Endpoint (disabled unless SystemMetricsAddress is set):
//   - Go runtime, process and build info collectors
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A *logger.LoggerClient instance, usually from logger.FXModule
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) *Registry { return m.Registry },
		fx.Annotate(
			func(r *Registry) MetricsCollector { return r },
			fx.As(new(MetricsCollector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown of both metrics
// HTTP servers (application and system).
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - m: The Metrics instance holding the servers; nil servers are skipped
//   - log: The logger used for lifecycle and serve errors
//
// The lifecycle hook:
//   - OnStart: Binds each listener synchronously, so a port already in use
//     fails application startup, then serves in a background goroutine
//   - OnStop: Gracefully shuts each server down within the stop context
//
// http.ErrServerClosed after shutdown is expected and not logged.
//
// Note: This function is invoked by FXModule and does not need to be called
// directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	servers := []struct {
		name   string
		server *http.Server
	}{
		{"application", m.ApplicationServer},
		{"system", m.SystemServer},
	}

	for _, s := range servers {
		if s.server == nil {
			continue
		}
		name, server := s.name, s.server

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", server.Addr)
				if err != nil {
					return fmt.Errorf("listen %s metrics server on %s: %w", name, server.Addr, err)
				}

				log.Info("Starting metrics server", nil, map[string]interface{}{
					"endpoint": name,
					"address":  ln.Addr().String(),
				})

				go func() {
					if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("Metrics server stopped unexpectedly", err, map[string]interface{}{"endpoint": name})
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info("Shutting down metrics server", nil, map[string]interface{}{"endpoint": name})
				if err := server.Shutdown(ctx); err != nil {
					log.Error("Error shutting down metrics server", err, map[string]interface{}{"endpoint": name})
				}
				return nil
			},
		})
	}
}
