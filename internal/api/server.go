// Package api exposes the assistant over HTTP.
//
// Endpoints:
//
//	GET  /           health probe (reports retrieval availability)
//	POST /api/chat   one conversation turn
//	POST /api/reset  clear a session's history
//
// Middleware order: recovery -> logging -> CORS -> handler.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/x-maues/rag-flarista/internal/chat"
)

const (
	// DefaultAddr is used when no listen address is configured.
	DefaultAddr = ":8000"

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout guards against slow-header clients.
	ReadHeaderTimeout = 10 * time.Second

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout = 30 * time.Second

	// WriteTimeout must leave room for a full provider round trip.
	WriteTimeout = 120 * time.Second

	// IdleTimeout applies to keep-alive connections.
	IdleTimeout = 120 * time.Second
)

// Converser is the orchestration surface the transport depends on.
type Converser interface {
	Converse(ctx context.Context, req chat.Request) (chat.Response, error)
	Reset(id string) bool
	RAGAvailable() bool
}

// Server is the HTTP server for the assistant API.
type Server struct {
	mux         *http.ServeMux
	corsOrigins []string
	logger      zerolog.Logger
}

// NewServer registers all routes against the given orchestrator.
func NewServer(svc Converser, corsOrigins []string, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()

	NewHealthHandler(svc).RegisterRoutes(mux)
	NewChatHandler(svc, logger).RegisterRoutes(mux)

	return &Server{mux: mux, corsOrigins: corsOrigins, logger: logger}
}

// Handler returns the mux with middleware applied.
func (s *Server) Handler() http.Handler {
	return chain(s.mux,
		recoveryMiddleware(s.logger),
		loggingMiddleware(s.logger),
		corsMiddleware(s.corsOrigins),
	)
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails. Cancellation triggers a bounded graceful shutdown.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
