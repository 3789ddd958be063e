package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
)

// NewRouter mounts GET / and GET /metrics on a gin engine. Panics in any
// handler are logged and answered with 500.
func NewRouter(h *Handler, collector metrics.MetricsCollector, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.ErrorWithContext(c.Request.Context(), "Recovered from panic", nil, map[string]interface{}{
			"panic": recovered,
			"path":  c.Request.URL.Path,
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	r.GET("/", h.Greeting)
	r.GET(metrics.MetricsPath, gin.WrapH(collector.Handler(metrics.HandlerOpts{ErrorLog: log})))

	return r
}

// Instrument wraps handler so each request runs inside an OpenTelemetry
// server span named after the service.
func Instrument(handler http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(handler, operation)
}
