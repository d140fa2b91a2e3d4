package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if got := cfg.InsecureDefaults(); len(got) != 2 {
		t.Errorf("InsecureDefaults = %v, want both credential warnings", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	content := `
addr: ":9090"
admin_username: alice
admin_password: s3cret
token_secret: signing-key
github_token: ghp_abc
sync_interval: 1h
secure_cookies: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.AdminUsername != "alice" || cfg.AdminPassword != "s3cret" {
		t.Errorf("admin = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.TokenSecret != "signing-key" {
		t.Errorf("TokenSecret = %q", cfg.TokenSecret)
	}
	if cfg.SyncInterval != time.Hour {
		t.Errorf("SyncInterval = %v, want 1h", cfg.SyncInterval)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies = false, want true")
	}
	// File did not touch log settings.
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info (untouched)", cfg.LogLevel)
	}
	if got := cfg.InsecureDefaults(); len(got) != 0 {
		t.Errorf("InsecureDefaults = %v, want none", got)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [not a string"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FOLIO_ADDR", ":7070")
	t.Setenv("ADMIN_USERNAME", "bob")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("FOLIO_SYNC_INTERVAL", "30m")
	t.Setenv("FOLIO_SECURE_COOKIES", "true")

	cfg := Default()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}

	if cfg.Addr != ":7070" || cfg.AdminUsername != "bob" || cfg.AdminPassword != "hunter2" {
		t.Errorf("env overlay wrong: %+v", cfg)
	}
	if cfg.SyncInterval != 30*time.Minute {
		t.Errorf("SyncInterval = %v, want 30m", cfg.SyncInterval)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies = false, want true")
	}
}

func TestLoadEnv_BadInterval(t *testing.T) {
	t.Setenv("FOLIO_SYNC_INTERVAL", "often")
	cfg := Default()
	if err := cfg.LoadEnv(); err == nil {
		t.Error("expected error for unparseable interval")
	}
}

func TestInsecureDefaults_PartialOverride(t *testing.T) {
	cfg := Default()
	cfg.AdminPassword = "changed"
	got := cfg.InsecureDefaults()
	if len(got) != 1 || got[0] != "token secret" {
		t.Errorf("InsecureDefaults = %v, want [token secret]", got)
	}
}
