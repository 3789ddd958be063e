package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/hello-monitor/logger"
)

// FXModule wires the greeting endpoint:
// 1. Instruments declared on the metrics.MetricsCollector
// 2. the simulated database, Handler and gin router
// 3. *Server with lifecycle hooks that listen on start and shut down on stop
//
// Dependencies required by this module: server.Config, server.ServiceName,
// metrics.MetricsCollector, simulate.RandomSource, simulate.Worker,
// tracer.Tracer, logger.Logger and *logger.LoggerClient.
var FXModule = fx.Module("server",
	fx.Provide(
		NewInstruments,
		NewDatabase,
		NewHandler,
		NewRouter,
		NewServer,
	),
	fx.Invoke(
		RegisterScrapeHooks,
		RegisterServerLifecycle,
	),
)

// RegisterServerLifecycle binds the listener on start, so a port conflict
// fails startup, then serves in the background until stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", s.HTTP.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", s.HTTP.Addr, err)
			}

			log.Info("Starting HTTP server", nil, map[string]interface{}{"address": ln.Addr().String()})

			go func() {
				if err := s.HTTP.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server", nil)
			return s.HTTP.Shutdown(ctx)
		},
	})
}
