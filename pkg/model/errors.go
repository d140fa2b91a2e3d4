package model

// AuthErrorCode distinguishes why a protected API request was rejected.
// The distinction is diagnostic only; both codes deny access identically.
type AuthErrorCode string

const (
	AuthNoToken      AuthErrorCode = "NO_TOKEN"
	AuthTokenExpired AuthErrorCode = "TOKEN_EXPIRED"
)

// AuthError is the 401 body returned for protected API routes.
type AuthError struct {
	Error string        `json:"error"`
	Code  AuthErrorCode `json:"code"`
}
