package logger

// Log levels accepted by Config.Level.
const (
	// Debug logs everything, including per-request simulation details.
	Debug = "debug"

	// Info logs lifecycle events and failures. This is the default.
	Info = "info"

	// Warning logs only warnings and errors.
	Warning = "warning"

	// Error logs only errors, such as rejected metric updates.
	Error = "error"
)

// Config defines the logger behaviour.
type Config struct {
	// Level is the minimum level written: "debug", "info", "warning" or
	// "error". Unknown values fall back to "info".
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`

	// EnableTracing adds trace_id and span_id from the active span to entries
	// written through the *WithContext methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOG_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// CallerSkip is the number of stack frames to skip when reporting the
	// caller. Defaults to 1, which reports the code calling LoggerClient.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOG_CALLER_SKIP"`
}
