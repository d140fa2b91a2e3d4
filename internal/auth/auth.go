// Package auth implements the signed session token scheme and the
// administrator trust boundary: credential checks, token issuance, and
// fail-closed token verification.
package auth

import (
	"net/http"
	"time"

	"github.com/me/folio/pkg/model"
)

const (
	// CookieName is the cookie that carries the session token.
	CookieName = "admin-token"
	// TokenTTL is the validity window of an issued token.
	TokenTTL = 24 * time.Hour
)

// Config holds the administrator credentials and the signing secret.
// It is read-only after construction; the Service never mutates it.
type Config struct {
	AdminUsername string
	AdminPassword string
	Secret        string
}

// Service validates admin credentials and issues and verifies session tokens.
// All methods are safe for concurrent use.
type Service struct {
	cfg Config
	now func() time.Time
}

// NewService creates an authenticator for the given credentials.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// Authenticate checks raw credentials against the configured administrator.
// Matching is exact and case-sensitive. Returns nil on any mismatch.
func (s *Service) Authenticate(username, password string) *model.AdminPrincipal {
	if username != s.cfg.AdminUsername || password != s.cfg.AdminPassword {
		return nil
	}
	return &model.AdminPrincipal{Username: s.cfg.AdminUsername, IsAdmin: true}
}

// IssueToken signs a fresh token for the principal, valid for TokenTTL.
func (s *Service) IssueToken(p *model.AdminPrincipal) (string, error) {
	return Encode(Payload{
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
		Exp:      s.now().Add(TokenTTL).Unix(),
	}, s.cfg.Secret)
}

// VerifyToken verifies a token and returns the authenticated principal.
// A nil principal always means "deny"; the error describes which check
// failed (ErrMalformedToken, ErrBadSignature, ErrTokenExpired, ErrNotAdmin)
// for diagnostics only and must never be used to grant partial access.
func (s *Service) VerifyToken(token string) (*model.AdminPrincipal, error) {
	p, err := Decode(token, s.cfg.Secret)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin {
		return nil, ErrNotAdmin
	}
	return &model.AdminPrincipal{Username: p.Username, IsAdmin: true}, nil
}

// SetTokenCookie attaches the session token cookie to the response.
func SetTokenCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TokenTTL / time.Second),
	})
}

// ClearTokenCookie removes the session token cookie.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns "" when the cookie is absent.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
