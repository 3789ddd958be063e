package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readHeaderTimeout = 10 * time.Second

// Server is the greeting HTTP server.
type Server struct {
	HTTP *http.Server
}

// NewServer builds the server for router. It does not listen;
// RegisterServerLifecycle does that under fx.
func NewServer(cfg Config, router *gin.Engine, serviceName ServiceName) *Server {
	return &Server{
		HTTP: &http.Server{
			Addr:              cfg.Address(),
			Handler:           Instrument(router, string(serviceName)),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}
