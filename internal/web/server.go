package web

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/cory-johannsen/weirdos/internal/config"
)

// Server wraps the HTTP listener so the lifecycle manager can run it as a
// service.
type Server struct {
	httpServer *http.Server
	cfg        config.HTTPConfig
	logger     *zap.Logger
}

// NewServer builds the API server from configuration and a route handler.
//
// Precondition: handler and logger must be non-nil.
func NewServer(cfg config.HTTPConfig, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Start listens and serves until Stop is called or the listener fails.
//
// Postcondition: returns nil after a graceful Stop, the listener error
// otherwise.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop drains in-flight requests, bounded by the configured shutdown
// timeout, then closes the listener.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("http shutdown incomplete, closing", zap.Error(err))
		_ = s.httpServer.Close()
	}
}
