// Package server serves the greeting endpoint and mounts the metrics
// exposition on the same router.
//
// GET / counts the request in http_requests_total, waits for a simulated
// amount of work, runs a simulated database query whose duration lands in
// db_query_duration_ms, records the elapsed time in
// http_response_time_seconds and answers "Hello, monitored world!".
//
// GET /metrics renders the registry. A scrape hook sets cpu_usage_percent to
// SimulatedCPUPercent first, so every scrape reports it.
package server
