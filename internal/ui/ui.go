// Package ui serves the HTML pages: the public portfolio, the admin login
// page, and the admin dashboard. All authorization happens at the edge gate
// and in the API handlers; these pages only render.
package ui

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/store"
)

// UI handles the web user interface.
type UI struct {
	store  store.Store
	auth   *auth.Service
	logger *slog.Logger
}

// New creates a UI handler.
func New(st store.Store, authSvc *auth.Service, logger *slog.Logger) *UI {
	return &UI{
		store:  st,
		auth:   authSvc,
		logger: logger.With("component", "ui"),
	}
}

// RegisterRoutes registers all HTML routes on the given router.
// Protection is decided by the route policy, not here.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Get("/", ui.HandleHome)
	r.Get("/admin", ui.HandleDashboard)
	r.Get("/admin/login", ui.HandleLoginPage)
}

// HandleHome renders the public portfolio page with visible projects.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	projects, err := ui.store.ListProjects(r.Context(), false)
	if err != nil {
		ui.logger.Error("load projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ui.render(w, "home", map[string]any{
		"Title":    "Portfolio",
		"Projects": projects,
	})
}

// HandleLoginPage renders the admin login form. The redirect query parameter
// is carried into the form so a successful login returns the admin to the
// page they originally requested.
func (ui *UI) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	// Already authenticated admins skip the form.
	if p, _ := ui.auth.VerifyToken(auth.TokenFromRequest(r)); p != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	ui.render(w, "login", map[string]any{
		"Title":    "Admin Login",
		"Redirect": sanitizeRedirect(r.URL.Query().Get("redirect")),
	})
}

// sanitizeRedirect restricts the post-login destination to same-site paths.
// Absolute URLs and protocol-relative ("//host") values fall back to /admin
// so the login form cannot be used as an open redirect.
func sanitizeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/admin"
	}
	return target
}

// HandleDashboard renders the admin dashboard with all projects, hidden ones
// included. The edge gate guarantees only a verified admin reaches this.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	principal, _ := ui.auth.VerifyToken(auth.TokenFromRequest(r))

	projects, err := ui.store.ListProjects(r.Context(), true)
	if err != nil {
		ui.logger.Error("load projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ui.render(w, "dashboard", map[string]any{
		"Title":     "Admin Dashboard",
		"Principal": principal,
		"Projects":  projects,
	})
}

// StaticHandler returns an http.Handler that serves static files from the given directory.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/static/", fs)
}
