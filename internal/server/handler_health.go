package server

import (
	"net/http"
	"runtime"
	"time"
)

// Version is the server version reported by /api/health.
const Version = "0.1.0"

// handleHealth reports liveness.
// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"version":    Version,
		"go_version": runtime.Version(),
		"uptime":     time.Since(s.startTime).Round(time.Second).String(),
	})
}
