package server

import (
	"net"
	"strconv"
)

// Defaults for the greeting server.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

// Config defines where the greeting server listens.
type Config struct {
	// Host is the interface to bind. Empty binds every interface.
	Host string `yaml:"host" envconfig:"HOST"`

	// Port is the TCP port. 0 picks a free port, which tests rely on.
	Port int `yaml:"port" envconfig:"PORT"`
}

// Address returns the host:port listen address.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ServiceName names the otelhttp server span.
type ServiceName string
