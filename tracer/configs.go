package tracer

// Config controls service identification and span export.
type Config struct {
	// ServiceName is set as the service.name resource attribute on every span.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// AppEnv sets deployment.environment and environment on every span.
	// Typical values: "development", "staging", "production".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector. The endpoint is read
	// from the standard OTEL_EXPORTER_OTLP_* environment variables. When false,
	// spans are still created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACE_EXPORT"`
}
