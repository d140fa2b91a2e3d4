package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/pkg/model"
)

// handleListProjects returns visible projects for the public site.
// GET /api/projects
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context(), false)
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load projects")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// handleListAllProjects returns every project, hidden ones included, for the
// admin dashboard. The gate already required a valid token for /api/admin.
// GET /api/admin/projects
func (s *Server) handleListAllProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context(), true)
	if err != nil {
		s.logger.Error("list all projects failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load projects")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// handleGetProject returns one visible project.
// GET /api/projects/{id}
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		s.logger.Error("get project failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}
	if p == nil || !p.IsVisible {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"project": p})
}

// handleToggleVisibility flips a project's visibility. Verified a second time
// in-handler, independent of the gate.
// POST /api/projects/{id}/toggle-visibility
func (s *Server) handleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	if s.requireAdmin(w, r) == nil {
		return
	}
	id := chi.URLParam(r, "id")

	p, err := s.store.ToggleProjectVisibility(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		s.logger.Error("toggle visibility failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to toggle project visibility")
		return
	}

	s.logger.Info("project visibility toggled", "id", id, "visible", p.IsVisible)
	respondJSON(w, http.StatusOK, map[string]any{"project": p})
}

// handleDeleteProject removes a project.
// DELETE /api/projects/{id}
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if s.requireAdmin(w, r) == nil {
		return
	}
	id := chi.URLParam(r, "id")

	err := s.store.DeleteProject(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		s.logger.Error("delete project failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	s.logger.Info("project deleted", "id", id)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
