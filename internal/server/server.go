package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"curator/internal/api"
	"curator/internal/config"
	"curator/internal/history"
	"curator/internal/logging"
)

const version = "0.1.0"

// Runner launches detached curation jobs. *curation.Curator satisfies it.
type Runner interface {
	RunDetached(ctx context.Context, themeName string) error
}

// Server serves the curator HTTP API.
type Server struct {
	cfg    *config.Config
	runner Runner
	store  *history.Store
	logger *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New builds the API server. A nil server is returned when no bind address
// is configured; its Start and Stop methods are no-ops.
func New(cfg *config.Config, runner Runner, store *history.Store, logger *slog.Logger) *Server {
	if cfg == nil || strings.TrimSpace(cfg.API.Bind) == "" {
		return nil
	}

	srv := &Server{
		cfg:    cfg,
		runner: runner,
		store:  store,
		logger: logging.NewComponentLogger(logger, "api-server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", srv.handleStatus)
	mux.HandleFunc("/api/themes", srv.handleThemes)
	mux.HandleFunc("/api/themes/", srv.handleTheme)
	mux.HandleFunc("/api/runs", srv.handleRuns)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

// Start begins listening on the configured bind address. Serving continues
// in the background until ctx is canceled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", strings.TrimSpace(s.cfg.API.Bind))
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr reports the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
