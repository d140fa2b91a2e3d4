// Package server wires the HTTP surface: the chi router, the edge
// authorization gate, and the JSON API handlers.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/gitsync"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/internal/ui"
)

// Syncer abstracts the GitHub sync service for testability.
type Syncer interface {
	Sync(ctx context.Context) ([]gitsync.SyncResult, error)
}

// Server is the portfolio HTTP server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.Config
	startTime time.Time
	auth      *auth.Service
	store     store.Store
	syncer    Syncer // optional; nil when no GitHub token is configured
	ui        *ui.UI
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithSyncer sets the GitHub sync service used by the sync endpoints.
func WithSyncer(syncer Syncer) Option {
	return func(s *Server) {
		s.syncer = syncer
	}
}

// New creates a Server with all routes registered.
func New(cfg config.Config, st store.Store, logger *slog.Logger, opts ...Option) *Server {
	authSvc := auth.NewService(auth.Config{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		Secret:        cfg.TokenSecret,
	})

	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		auth:      authSvc,
		store:     st,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ui = ui.New(st, authSvc, logger)

	for _, name := range cfg.InsecureDefaults() {
		s.logger.Warn("INSECURE DEFAULT in use, set real credentials before exposing this server", "setting", name)
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware. The auth gate runs last so every request below it,
	// page or API, passes through exactly one enforcement point.
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(s.authGate)

	// Static files (CSS, images).
	r.Handle("/static/*", ui.StaticHandler("static"))

	// HTML pages.
	s.ui.RegisterRoutes(r)

	// API routes (JSON).
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Get("/check-auth", s.handleCheckAuth)
			r.Post("/logout", s.handleLogout)
			r.Get("/projects", s.handleListAllProjects)
		})

		r.Get("/projects", s.handleListProjects)
		r.Route("/projects/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetProject)
			r.Delete("/", s.handleDeleteProject)
			r.Post("/toggle-visibility", s.handleToggleVisibility)
		})

		r.Post("/sync-github", s.handleSyncGitHub)
		r.Get("/cron/sync-github", s.handleCronSync)
	})
}
