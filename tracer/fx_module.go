package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/hello-monitor/logger"
)

// FXModule provides *TracerClient and the Tracer interface, and flushes
// pending spans when the application stops.
//
// Dependencies required by this module: tracer.Config and *logger.LoggerClient.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the provider down on stop, which flushes the
// batch exporter when export is enabled.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.provider == nil {
				return nil
			}
			log.Info("Shutting down tracer", nil)
			return tracer.provider.Shutdown(ctx)
		},
	})
}
