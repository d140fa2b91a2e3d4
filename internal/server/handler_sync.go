package server

import (
	"net/http"
)

// handleSyncGitHub runs a GitHub sync on demand from the admin dashboard.
// POST /api/sync-github
func (s *Server) handleSyncGitHub(w http.ResponseWriter, r *http.Request) {
	if s.requireAdmin(w, r) == nil {
		return
	}

	if s.syncer == nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "GitHub token not configured",
		})
		return
	}

	results, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.logger.Error("github sync failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to sync repositories",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": results,
	})
}

// handleCronSync is the variant invoked by an external cron service.
// GET /api/cron/sync-github
func (s *Server) handleCronSync(w http.ResponseWriter, r *http.Request) {
	if s.syncer == nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "GitHub token not configured",
		})
		return
	}

	results, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.logger.Error("cron sync failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Daily sync failed",
		})
		return
	}

	s.logger.Info("cron sync completed", "results", len(results))
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Daily sync completed",
		"results": results,
	})
}
