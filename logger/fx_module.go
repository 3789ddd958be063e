package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// FXModule provides *LoggerClient and the Logger interface, and flushes the
// logger when the application stops.
//
// Dependencies required by this module: logger.Config.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// FXEventLogger routes fx's own startup and shutdown events through the
// service logger.
//
// Usage:
//
//	fx.New(logger.FXModule, fx.WithLogger(logger.FXEventLogger), ...)
func FXEventLogger(client *LoggerClient) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: client.Zap}
}

// RegisterLoggerLifecycle syncs buffered entries on stop. Sync on a terminal
// stderr fails with EINVAL or ENOTTY, which is ignored.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := client.Zap.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
				return err
			}
			return nil
		},
	})
}
