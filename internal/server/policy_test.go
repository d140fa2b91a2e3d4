package server

import (
	"net/http"
	"testing"
)

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   Protection
	}{
		// Skip-list beats the /admin and /api/admin prefixes.
		{"admin login page", http.MethodGet, "/admin/login", Public},
		{"admin login subpath", http.MethodGet, "/admin/login/", Public},
		{"api login", http.MethodPost, "/api/admin/login", Public},
		{"check-auth", http.MethodGet, "/api/admin/check-auth", Public},
		{"static asset", http.MethodGet, "/static/css/site.css", Public},
		{"favicon", http.MethodGet, "/favicon.ico", Public},
		{"robots", http.MethodGet, "/robots.txt", Public},
		{"sitemap", http.MethodGet, "/sitemap.xml", Public},

		// Dotted paths outside /api/ are static files.
		{"top-level file", http.MethodGet, "/resume.pdf", Public},
		{"nested file", http.MethodGet, "/images/me.png", Public},
		{"dotted api path is not exempt", http.MethodGet, "/api/admin/v1.2/thing", ProtectedAPI},

		// Root.
		{"site root", http.MethodGet, "/", Public},

		// Admin pages.
		{"admin dashboard", http.MethodGet, "/admin", ProtectedPage},
		{"admin subpage", http.MethodGet, "/admin/projects", ProtectedPage},
		{"admin-prefixed word", http.MethodGet, "/administration", ProtectedPage},

		// Admin APIs.
		{"admin projects api", http.MethodGet, "/api/admin/projects", ProtectedAPI},
		{"logout", http.MethodPost, "/api/admin/logout", ProtectedAPI},

		// Sync.
		{"sync", http.MethodPost, "/api/sync-github", ProtectedAPI},
		{"cron sync is public", http.MethodGet, "/api/cron/sync-github", Public},

		// Project mutations.
		{"toggle visibility", http.MethodPost, "/api/projects/abc123/toggle-visibility", ProtectedAPI},
		{"delete project", http.MethodDelete, "/api/projects/abc123", ProtectedAPI},
		{"get project", http.MethodGet, "/api/projects/abc123", Public},
		{"post project item", http.MethodPost, "/api/projects/abc123", Public},

		// Everything else is public.
		{"project list", http.MethodGet, "/api/projects", Public},
		{"health", http.MethodGet, "/api/health", Public},
		{"unknown page", http.MethodGet, "/about", Public},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRoute(tt.method, tt.path); got != tt.want {
				t.Errorf("ClassifyRoute(%s, %s) = %s, want %s", tt.method, tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyRoute_FirstMatchWins(t *testing.T) {
	// The same path must classify identically no matter the method, except
	// where a rule is explicitly method-restricted.
	if got := ClassifyRoute(http.MethodPost, "/admin/login"); got != Public {
		t.Errorf("POST /admin/login = %s, want public", got)
	}
	if got := ClassifyRoute(http.MethodDelete, "/api/projects/x/toggle-visibility"); got != ProtectedAPI {
		t.Errorf("DELETE toggle-visibility = %s, want protected-api", got)
	}
}
