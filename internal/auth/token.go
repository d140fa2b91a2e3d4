package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Verification failures. All of them mean "deny"; the distinction exists so
// the edge gate can report token-expired separately from no-token.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
	ErrNotAdmin       = errors.New("token principal is not an administrator")
)

// tokenHeader is the fixed first segment: every token this server issues is
// HMAC-SHA256 signed.
var tokenHeader = encodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))

// Payload is the signed content of a session token.
type Payload struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Exp      int64  `json:"exp"` // unix seconds
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeSegment accepts both padded and unpadded base64url input; clients are
// not trusted to preserve padding.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}

// Sign computes the base64url HMAC-SHA256 of msg keyed by secret.
func Sign(msg, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	return encodeSegment(mac.Sum(nil))
}

// Encode serializes and signs a payload into header.payload.signature form.
func Encode(p Payload, secret string) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal token payload: %w", err)
	}
	signing := tokenHeader + "." + encodeSegment(body)
	return signing + "." + Sign(signing, secret), nil
}

// Decode verifies a token's structure, signature, and expiry, and returns its
// payload. The signature is checked before the payload is parsed, so nothing
// unauthenticated is ever deserialized.
func Decode(token, secret string) (Payload, error) {
	var p Payload

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return p, ErrMalformedToken
	}

	expected := Sign(parts[0]+"."+parts[1], secret)
	if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
		return p, ErrBadSignature
	}

	body, err := decodeSegment(parts[1])
	if err != nil {
		return p, ErrMalformedToken
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return p, ErrMalformedToken
	}

	// Expiry must be strictly in the future.
	if p.Exp <= time.Now().Unix() {
		return p, ErrTokenExpired
	}

	return p, nil
}
