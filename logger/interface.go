package logger

import (
	"context"
)

// Logger is the structured logging contract used across the service.
// It is implemented by *LoggerClient.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error together with err.
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext logs a debug-level message with trace correlation.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext logs an informational message with trace correlation.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning with trace correlation.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error with trace correlation.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
