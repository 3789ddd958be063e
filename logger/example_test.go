package logger_test

import (
	"context"
	"errors"

	"github.com/aalemi-dev/hello-monitor/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "hello-monitor",
	})

	log.Info("server started", nil, map[string]interface{}{
		"address": ":5000",
	})
}

func ExampleLoggerClient_ErrorWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "hello-monitor",
		EnableTracing: true,
	})

	// trace_id and span_id are attached when ctx carries a recording span.
	log.ErrorWithContext(context.Background(), "failed to record response time", errors.New("invalid metric value"), map[string]interface{}{
		"metric": "http_response_time_seconds",
	})
}
