package server

import (
	"fmt"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
)

// Instrument names exposed by the service.
const (
	RequestsTotalName   = "http_requests_total"
	CPUUsageName        = "cpu_usage_percent"
	ResponseTimeName    = "http_response_time_seconds"
	DBQueryDurationName = "db_query_duration_ms"
)

// SimulatedCPUPercent is the value cpu_usage_percent reports on every scrape.
const SimulatedCPUPercent = 42.5

const (
	greetingMethod   = "GET"
	greetingEndpoint = "/"
	labelMethod      = "method"
	labelEndpoint    = "endpoint"
)

// Instruments holds the application instruments, declared once at startup.
type Instruments struct {
	Requests     *metrics.Counter
	CPU          *metrics.Gauge
	ResponseTime *metrics.Histogram
	DBQuery      *metrics.Gauge
}

// NewInstruments declares every application instrument on collector. A name
// already taken with another schema fails with metrics.ErrDuplicateName.
func NewInstruments(collector metrics.MetricsCollector) (*Instruments, error) {
	requests, err := collector.CreateCounter(RequestsTotalName, "Total HTTP Requests", []string{labelMethod, labelEndpoint})
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", RequestsTotalName, err)
	}

	cpu, err := collector.CreateGauge(CPUUsageName, "Simulated CPU Usage", nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", CPUUsageName, err)
	}

	responseTime, err := collector.CreateHistogram(ResponseTimeName, "Response time in seconds", []string{labelEndpoint}, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", ResponseTimeName, err)
	}

	dbQuery, err := collector.CreateGauge(DBQueryDurationName, "Database query duration in ms", nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", DBQueryDurationName, err)
	}

	return &Instruments{
		Requests:     requests,
		CPU:          cpu,
		ResponseTime: responseTime,
		DBQuery:      dbQuery,
	}, nil
}

// RegisterScrapeHooks sets the simulated CPU gauge right before every scrape,
// whichever endpoint serves it.
func RegisterScrapeHooks(collector metrics.MetricsCollector, inst *Instruments, log logger.Logger) {
	collector.OnScrape(func() {
		if err := inst.CPU.Set(SimulatedCPUPercent, nil); err != nil {
			log.Error("Failed to set CPU gauge", err, map[string]interface{}{"metric": CPUUsageName})
		}
	})
}
