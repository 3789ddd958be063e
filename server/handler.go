package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
	"github.com/aalemi-dev/hello-monitor/simulate"
	"github.com/aalemi-dev/hello-monitor/tracer"
)

// Greeting is the body served on GET /.
const Greeting = "Hello, monitored world!"

// Handler serves the greeting endpoint.
type Handler struct {
	inst   *Instruments
	worker simulate.Worker
	rng    simulate.RandomSource
	db     *simulate.Database
	tracer tracer.Tracer
	log    logger.Logger
}

// NewHandler returns a Handler.
func NewHandler(
	inst *Instruments,
	worker simulate.Worker,
	rng simulate.RandomSource,
	db *simulate.Database,
	tr tracer.Tracer,
	log logger.Logger,
) *Handler {
	return &Handler{
		inst:   inst,
		worker: worker,
		rng:    rng,
		db:     db,
		tracer: tr,
		log:    log,
	}
}

// Greeting counts the request, simulates backend work, records the query
// duration and response time, and replies with the greeting. Metric failures
// are logged and never change the response.
func (h *Handler) Greeting(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	if err := h.inst.Requests.Inc(metrics.Labels{labelMethod: greetingMethod, labelEndpoint: greetingEndpoint}); err != nil {
		h.log.ErrorWithContext(ctx, "Failed to count request", err, map[string]interface{}{"metric": RequestsTotalName})
	}

	ctx, span := h.tracer.StartSpan(ctx, "simulate.backend")
	defer span.End()

	work := simulate.WorkDuration(h.rng)
	if err := h.worker.Work(ctx, work); err != nil {
		span.RecordError(err)
		h.log.WarnWithContext(ctx, "Simulated work interrupted", err, map[string]interface{}{"work_ms": work.Milliseconds()})
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	query, err := h.db.Query(ctx)
	if err != nil {
		span.RecordError(err)
		h.log.WarnWithContext(ctx, "Simulated query failed", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	span.SetAttributes(map[string]interface{}{
		"http.route":           greetingEndpoint,
		"simulate.work_ms":     work.Milliseconds(),
		"simulate.db_query_ms": query.Milliseconds(),
	})

	elapsed := time.Since(start).Seconds()
	if err := h.inst.ResponseTime.Observe(elapsed, metrics.Labels{labelEndpoint: greetingEndpoint}); err != nil {
		h.log.ErrorWithContext(ctx, "Failed to record response time", err, map[string]interface{}{"metric": ResponseTimeName})
	}

	c.String(http.StatusOK, Greeting)
}
