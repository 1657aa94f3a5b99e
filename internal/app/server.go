package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Server wraps http.Server with graceful shutdown capabilities. Widget
// requests are small and short-lived, so the read and write timeouts stay
// tight.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithShutdownTimeout sets how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) { s.shutdownTimeout = d }
}

// NewServer creates a new Server instance listening on the given port.
func NewServer(handler http.Handler, port string, opts ...ServerOption) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run starts the server and blocks until a shutdown signal is received or
// the listener fails.
func (s *Server) Run() error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info().
			Str("signal", sig.String()).
			Dur("drain_timeout", s.shutdownTimeout).
			Msg("Signal received, draining in-flight requests")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Drain timeout exceeded, connections were cut")
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
