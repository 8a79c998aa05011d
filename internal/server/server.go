// ABOUTME: Assembles the taskwell HTTP server from config
// ABOUTME: Wires store, identity gateway, and task API; manages lifecycle

// Package server builds and runs the taskwell HTTP server. It owns the
// wiring: SQLite store, identity gateway, auth middleware, and the task
// API all come together here, and Run manages graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/taskwell/taskwell/internal/auth"
	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/identity"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/taskapi"
)

// Server is the assembled taskwell service.
type Server struct {
	config     *config.Config
	store      store.Store
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a Server from configuration. It opens the database and wires
// the HTTP routes but does not start listening; call Run for that.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	verifier, err := identity.NewJWTVerifier([]byte(cfg.Identity.JWTSecret))
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("creating JWT verifier: %w", err)
	}

	gateway := identity.NewGateway(s, verifier, cfg.Identity.TokenTTL)

	mux := http.NewServeMux()

	// Health endpoint - no auth required
	mux.HandleFunc("GET /health", handleHealth)

	identity.NewAPI(gateway).RegisterRoutes(mux)
	taskapi.New(s).RegisterRoutes(mux, auth.Middleware(gateway))

	srv := &Server{
		config: cfg,
		store:  s,
		logger: logger.With("component", "server"),
		httpServer: &http.Server{
			Addr:              cfg.Server.HTTPAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	return srv, nil
}

// Handler returns the assembled HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled.
// Returns nil on graceful shutdown, or an error if the server fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.HTTPAddr)
	if err != nil {
		_ = s.store.Close()
		return fmt.Errorf("listening on HTTP address: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
	case serverErr = <-errCh:
		s.logger.Error("server error", "error", serverErr)
	}

	shutdownErr := s.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the original context is
// already canceled.
func (s *Server) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops the HTTP server and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store close: %w", err))
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
