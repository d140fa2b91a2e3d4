package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/pkg/model"
)

const ctxKeyPrincipal ctxKey = "admin_principal"

// authErrorHeader carries the redirect diagnostic for protected pages.
const authErrorHeader = "X-Auth-Error"

// PrincipalFromContext extracts the verified admin principal from the request
// context. Returns nil for public routes and unauthenticated requests.
func PrincipalFromContext(ctx context.Context) *model.AdminPrincipal {
	if p, ok := ctx.Value(ctxKeyPrincipal).(*model.AdminPrincipal); ok {
		return p
	}
	return nil
}

// authGate is the single enforcement point for every inbound request. It
// classifies the path, verifies the session cookie for protected routes, and
// converts every verification failure into a definitive deny before any
// handler runs.
func (s *Server) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := ClassifyRoute(r.Method, r.URL.Path)
		if level == Public {
			next.ServeHTTP(w, r)
			return
		}

		token := auth.TokenFromRequest(r)
		principal, err := s.auth.VerifyToken(token)
		if principal != nil {
			ctx := context.WithValue(r.Context(), ctxKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		expired := errors.Is(err, auth.ErrTokenExpired)
		s.logger.Debug("request denied",
			"path", r.URL.Path,
			"protection", level.String(),
			"expired", expired,
		)

		switch level {
		case ProtectedPage:
			if expired {
				w.Header().Set(authErrorHeader, "token-expired")
			} else {
				w.Header().Set(authErrorHeader, "no-token")
			}
			loginURL := "/admin/login?redirect=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, loginURL, http.StatusSeeOther)

		case ProtectedAPI:
			body := model.AuthError{Error: "Unauthorized", Code: model.AuthNoToken}
			if expired {
				body = model.AuthError{Error: "Token expired", Code: model.AuthTokenExpired}
			}
			respondJSON(w, http.StatusUnauthorized, body)
		}
	})
}

// requireAdmin re-verifies the session cookie independently of the gate.
// Mutating handlers call it before touching the store, so a route that the
// policy table misses still cannot mutate state unauthenticated.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) *model.AdminPrincipal {
	principal, err := s.auth.VerifyToken(auth.TokenFromRequest(r))
	if principal == nil {
		code := model.AuthNoToken
		msg := "Unauthorized"
		if errors.Is(err, auth.ErrTokenExpired) {
			code = model.AuthTokenExpired
			msg = "Token expired"
		}
		respondJSON(w, http.StatusUnauthorized, model.AuthError{Error: msg, Code: code})
		return nil
	}
	return principal
}
