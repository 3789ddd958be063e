package metrics_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
)

func TestFXModule_StartStop(t *testing.T) {
	var (
		m         *metrics.Metrics
		reg       *metrics.Registry
		collector metrics.MetricsCollector
	)

	app := fxtest.New(t,
		logger.FXModule,
		metrics.FXModule,
		fx.Supply(
			logger.Config{Level: logger.Error},
			metrics.Config{ApplicationMetricsAddress: metrics.Ptr("127.0.0.1:0")},
		),
		fx.Populate(&m, &reg, &collector),
	)
	app.RequireStart()
	app.RequireStop()

	assert.Same(t, m.Registry, reg)
	assert.Same(t, reg, collector)
}

func TestFXModule_PortInUseFailsStart(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := fx.New(
		fx.NopLogger,
		logger.FXModule,
		metrics.FXModule,
		fx.Supply(
			logger.Config{Level: logger.Error},
			metrics.Config{ApplicationMetricsAddress: metrics.Ptr(ln.Addr().String())},
		),
	)
	require.NoError(t, app.Err())

	err = app.Start(context.Background())
	assert.Error(t, err)
	_ = app.Stop(context.Background())
}
