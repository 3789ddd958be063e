// Package config loads the application configuration.
//
// Sources are applied in increasing priority: Default, an optional YAML file,
// then HELLO_MONITOR_* environment variables. The CLI applies its flags on
// top. The per-package sections (Logger, Metrics, Tracer, Server) are derived
// from the single flat Config.
//
//	host: 0.0.0.0
//	port: 5000
//	metrics_port: 8000
//	log_level: info
package config
