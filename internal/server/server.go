package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/userdb/internal/models"
	"github.com/desertthunder/userdb/internal/shared"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Server wraps the HTTP listener serving the user record API.
type Server struct {
	http   *http.Server
	logger *log.Logger
}

// Store combines the record operations and the audit log reads the API serves.
type Store interface {
	models.UserStore
	models.DeletionLog
}

// NewRouter assembles the chi router with middleware and all routes mounted.
func NewRouter(store Store, logger *log.Logger, cfg shared.ServerConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	if cfg.RateLimit > 0 {
		r.Use(Throttle(rate.Limit(cfg.RateLimit), cfg.RateBurst))
	}

	h := NewUserHandler(store, logger)
	r.Route("/users", h.MountRoutes)
	r.Get("/deletions", h.listDeletions)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// New creates a [Server] bound to the configured address.
func New(cfg shared.ServerConfig, store Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(store, logger, cfg),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start listens and serves until [Server.Shutdown] is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}
