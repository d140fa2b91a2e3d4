package github

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestListRepositories(t *testing.T) {
	var gotAuth, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "public-repo", "stargazers_count": 7, "private": false, "topics": ["go"]},
			{"id": 2, "name": "secret-repo", "private": true},
			{"id": 3, "name": "site", "language": "TypeScript", "private": false}
		]`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, Token: "ghp_test"}, testLogger())

	repos, err := c.ListRepositories(context.Background())
	if err != nil {
		t.Fatalf("ListRepositories failed: %v", err)
	}

	if gotPath != "/user/repos" {
		t.Errorf("path = %q, want /user/repos", gotPath)
	}
	if gotAuth != "Bearer ghp_test" {
		t.Errorf("Authorization = %q, want Bearer ghp_test", gotAuth)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept = %q", gotAccept)
	}

	if len(repos) != 2 {
		t.Fatalf("repo count = %d, want 2 (private filtered)", len(repos))
	}
	if repos[0].Name != "public-repo" || repos[0].Stars != 7 {
		t.Errorf("repos[0] = %+v", repos[0])
	}
	if repos[1].Language != "TypeScript" {
		t.Errorf("repos[1].Language = %q, want TypeScript", repos[1].Language)
	}
}

func TestListRepositories_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, Token: "bad"}, testLogger())
	if _, err := c.ListRepositories(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 401")
	}
}

func TestListRepositories_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, testLogger())
	if _, err := c.ListRepositories(context.Background()); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
