package server

import (
	"encoding/json"
	"net/http"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/pkg/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin authenticates the administrator and sets the session cookie.
// POST /api/admin/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal := s.auth.Authenticate(req.Username, req.Password)
	if principal == nil {
		// Deliberately vague: never reveal which field was wrong.
		s.logger.Warn("login failed", "username", req.Username)
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.auth.IssueToken(principal)
	if err != nil {
		s.logger.Error("token issue failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	auth.SetTokenCookie(w, token, s.config.SecureCookies)
	s.logger.Info("admin logged in", "username", principal.Username)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    principal,
	})
}

// handleCheckAuth reports whether the current cookie names a valid admin.
// GET /api/admin/check-auth
func (s *Server) handleCheckAuth(w http.ResponseWriter, r *http.Request) {
	principal, _ := s.auth.VerifyToken(auth.TokenFromRequest(r))

	var user *model.AdminPrincipal
	if principal != nil {
		user = principal
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": principal != nil,
		"user":          user,
	})
}

// handleLogout clears the session cookie.
// POST /api/admin/logout
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
