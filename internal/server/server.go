package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	config *Config
	server *http.Server
	svc    *Services
}

func New(ctx context.Context, config *Config) (*Server, error) {
	svc, err := NewServices(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Server{
		config: config,
		svc:    svc,
		server: &http.Server{
			Addr:              config.HTTP.Addr,
			Handler:           SetupRoutes(svc, config),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Start runs the HTTP server until ctx is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("server start", "addr", s.config.HTTP.Addr)
	defer slog.Info("server stop")

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("server shutdown signal")
	if err := s.Stop(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
		return err
	}
	return nil
}

// Stop drains in-flight requests, then releases the store handle.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return s.svc.Shutdown(shutdownCtx)
}
