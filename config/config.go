package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
	"github.com/aalemi-dev/hello-monitor/server"
	"github.com/aalemi-dev/hello-monitor/tracer"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HELLO_MONITOR"

const maxPort = 65535

var (
	ErrReadConfig      = errors.New("failed to read config file")
	ErrParseConfig     = errors.New("failed to parse config")
	ErrInvalidPort     = errors.New("invalid port")
	ErrPortConflict    = errors.New("ports must differ")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the complete application configuration.
type Config struct {
	// Host is the interface both HTTP servers bind.
	Host string `yaml:"host" envconfig:"HTTP_HOST"`

	// Port serves GET / and GET /metrics. 0 lets the OS choose.
	Port int `yaml:"port" envconfig:"HTTP_PORT"`

	// MetricsPort serves GET /metrics only. 0 lets the OS choose.
	MetricsPort int `yaml:"metrics_port" envconfig:"METRICS_PORT"`

	// SystemMetricsPort serves Go runtime and process metrics. 0 disables it.
	SystemMetricsPort int `yaml:"system_metrics_port" envconfig:"SYSTEM_METRICS_PORT"`

	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`
	AppEnv      string `yaml:"app_env" envconfig:"APP_ENV"`

	// LogLevel is one of debug, info, warning, error.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// EnableTracing adds trace_id and span_id to context-aware log entries.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`

	// TraceExport sends spans to the OTLP/HTTP collector named by the
	// standard OTEL_EXPORTER_OTLP_* variables.
	TraceExport bool `yaml:"trace_export" envconfig:"TRACE_EXPORT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:          server.DefaultHost,
		Port:          server.DefaultPort,
		MetricsPort:   8000,
		ServiceName:   "hello-monitor",
		AppEnv:        "development",
		LogLevel:      logger.Info,
		EnableTracing: true,
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, applies HELLO_MONITOR_* environment variables and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeYAML rejects unknown keys so typos surface at startup.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks port ranges, port collisions and the log level.
func (c Config) Validate() error {
	ports := []struct {
		name  string
		value int
	}{
		{"port", c.Port},
		{"metrics_port", c.MetricsPort},
		{"system_metrics_port", c.SystemMetricsPort},
	}
	for _, p := range ports {
		if p.value < 0 || p.value > maxPort {
			return fmt.Errorf("%w: %s=%d", ErrInvalidPort, p.name, p.value)
		}
	}

	for i := range ports {
		for j := i + 1; j < len(ports); j++ {
			if ports[i].value != 0 && ports[i].value == ports[j].value {
				return fmt.Errorf("%w: %s and %s are both %d", ErrPortConflict, ports[i].name, ports[j].name, ports[i].value)
			}
		}
	}

	switch c.LogLevel {
	case logger.Debug, logger.Info, logger.Warning, logger.Error:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Logger returns the logger section.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:         c.LogLevel,
		EnableTracing: c.EnableTracing,
		ServiceName:   c.ServiceName,
	}
}

// Metrics returns the metrics section. The system endpoint is disabled
// unless SystemMetricsPort is set.
func (c Config) Metrics() metrics.Config {
	cfg := metrics.Config{
		ApplicationMetricsAddress: metrics.Ptr(c.address(c.MetricsPort)),
		SystemMetricsAddress:      metrics.Ptr(""),
		ServiceName:               c.ServiceName,
	}
	if c.SystemMetricsPort != 0 {
		cfg.SystemMetricsAddress = metrics.Ptr(c.address(c.SystemMetricsPort))
	}
	return cfg
}

// Tracer returns the tracer section.
func (c Config) Tracer() tracer.Config {
	return tracer.Config{
		ServiceName:  c.ServiceName,
		AppEnv:       c.AppEnv,
		EnableExport: c.TraceExport,
	}
}

// Server returns the greeting server section.
func (c Config) Server() server.Config {
	return server.Config{Host: c.Host, Port: c.Port}
}

func (c Config) address(port int) string {
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}
