package server

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Server wraps http.Server with optional TLS and graceful shutdown
type Server struct {
	srv     *http.Server
	ln      net.Listener
	tlsCert string
	tlsKey  string
}

// New creates a new server instance. When both tlsCert and tlsKey are
// non-empty the server serves HTTPS, otherwise plain HTTP.
func New(handler http.Handler, port, tlsCert, tlsKey string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
	}
}

// Start binds the listen address and begins serving in a goroutine. Bind
// failures such as a port already in use are returned here, before any
// request is accepted.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	if s.tlsCert != "" && s.tlsKey != "" {
		// Configure TLS
		s.srv.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}

		// Start HTTPS server in goroutine
		go func() {
			if err := s.srv.ServeTLS(ln, s.tlsCert, s.tlsKey); err != nil && err != http.ErrServerClosed {
				panic(err)
			}
		}()
		return nil
	}

	// Start HTTP server in goroutine
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()
	return nil
}

// Addr returns the bound listen address. Before Start it is the configured
// address; after Start it reflects the actual listener, including a
// kernel-assigned port when the server was created with port "0".
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.srv.Addr
	}
	return s.ln.Addr().String()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
