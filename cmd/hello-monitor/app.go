package main

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/hello-monitor/config"
	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
	"github.com/aalemi-dev/hello-monitor/server"
	"github.com/aalemi-dev/hello-monitor/simulate"
	"github.com/aalemi-dev/hello-monitor/tracer"
)

// options assembles the application graph for cfg.
func options(cfg config.Config) fx.Option {
	return fx.Options(
		fx.WithLogger(logger.FXEventLogger),
		fx.Supply(
			cfg.Logger(),
			cfg.Metrics(),
			cfg.Tracer(),
			cfg.Server(),
			server.ServiceName(cfg.ServiceName),
		),
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		simulate.FXModule,
		server.FXModule,
	)
}
