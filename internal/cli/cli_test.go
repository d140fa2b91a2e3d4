package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/folio/internal/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientSendsSessionCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(auth.CookieName); err == nil {
			gotCookie = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"projects":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123", testLogger())
	if _, err := c.Get("/api/admin/projects"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotCookie != "tok-123" {
		t.Errorf("cookie = %q, want tok-123", gotCookie)
	}
}

func TestClientErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Token expired","code":"TOKEN_EXPIRED"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "stale", testLogger())
	_, err := c.Post("/api/sync-github", nil)
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "folio login") {
		t.Errorf("error = %q, want a re-login hint for expired tokens", err)
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", testLogger())
	_, err := c.Get("/api/health")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("error = %v, want the raw status surfaced", err)
	}
}

func TestRequestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/login" {
			t.Errorf("path = %s, want /api/admin/login", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if req["username"] != "admin" || req["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: auth.CookieName, Value: "session-token"})
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", testLogger())

	token, err := requestToken(c, "admin", "pw")
	if err != nil {
		t.Fatalf("requestToken failed: %v", err)
	}
	if token != "session-token" {
		t.Errorf("token = %q, want session-token", token)
	}

	if _, err := requestToken(c, "admin", "wrong"); err == nil {
		t.Error("expected an error for bad credentials")
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got := LoadToken(); got != "" {
		t.Fatalf("LoadToken on fresh home = %q, want empty", got)
	}

	credPath, err := credentialsPath()
	if err != nil {
		t.Fatalf("credentialsPath failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(credPath), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data, _ := json.Marshal(credentials{Token: "saved-token"})
	if err := os.WriteFile(credPath, data, 0600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	if got := LoadToken(); got != "saved-token" {
		t.Errorf("LoadToken = %q, want saved-token", got)
	}
}
