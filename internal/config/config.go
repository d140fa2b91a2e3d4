// Package config loads server configuration from defaults, an optional YAML
// file, and the environment, in that order. The resulting Config is built
// once at startup and passed by value; nothing mutates it afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Insecure fallbacks, kept for parity with the original deployment. Any of
// these still in effect at startup is logged loudly (see InsecureDefaults).
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "your-secure-password"
	DefaultTokenSecret   = "your-jwt-secret-key"
)

// Config holds configuration for the portfolio server.
type Config struct {
	Addr      string // Listen address (default ":8080")
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: text, json
	DBPath    string // SQLite database path (":memory:" for testing)

	AdminUsername string // Administrator login
	AdminPassword string
	TokenSecret   string // HMAC key for session tokens

	GitHubToken  string        // Enables GitHub sync when set
	SyncInterval time.Duration // Background sync period (0 disables)

	SecureCookies bool // Set the Secure flag on session cookies (HTTPS deployments)
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		AdminUsername: DefaultAdminUsername,
		AdminPassword: DefaultAdminPassword,
		TokenSecret:   DefaultTokenSecret,
	}
}

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// "absent" from "set to zero value".
type fileConfig struct {
	Addr          *string `yaml:"addr"`
	LogLevel      *string `yaml:"log_level"`
	LogFormat     *string `yaml:"log_format"`
	DBPath        *string `yaml:"db_path"`
	AdminUsername *string `yaml:"admin_username"`
	AdminPassword *string `yaml:"admin_password"`
	TokenSecret   *string `yaml:"token_secret"`
	GitHubToken   *string `yaml:"github_token"`
	SyncInterval  *string `yaml:"sync_interval"`
	SecureCookies *bool   `yaml:"secure_cookies"`
}

// LoadFile overlays settings from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.Addr, fc.Addr)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	setString(&c.DBPath, fc.DBPath)
	setString(&c.AdminUsername, fc.AdminUsername)
	setString(&c.AdminPassword, fc.AdminPassword)
	setString(&c.TokenSecret, fc.TokenSecret)
	setString(&c.GitHubToken, fc.GitHubToken)
	if fc.SyncInterval != nil {
		d, err := time.ParseDuration(*fc.SyncInterval)
		if err != nil {
			return fmt.Errorf("parse sync_interval: %w", err)
		}
		c.SyncInterval = d
	}
	if fc.SecureCookies != nil {
		c.SecureCookies = *fc.SecureCookies
	}
	return nil
}

// LoadEnv overlays settings from environment variables.
func (c *Config) LoadEnv() error {
	setEnv(&c.Addr, "FOLIO_ADDR")
	setEnv(&c.LogLevel, "FOLIO_LOG_LEVEL")
	setEnv(&c.LogFormat, "FOLIO_LOG_FORMAT")
	setEnv(&c.DBPath, "FOLIO_DB_PATH")
	setEnv(&c.AdminUsername, "ADMIN_USERNAME")
	setEnv(&c.AdminPassword, "ADMIN_PASSWORD")
	setEnv(&c.TokenSecret, "TOKEN_SECRET")
	setEnv(&c.GitHubToken, "GITHUB_TOKEN")
	if v := os.Getenv("FOLIO_SYNC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse FOLIO_SYNC_INTERVAL: %w", err)
		}
		c.SyncInterval = d
	}
	if v := os.Getenv("FOLIO_SECURE_COOKIES"); v != "" {
		c.SecureCookies = v == "1" || v == "true"
	}
	return nil
}

// InsecureDefaults lists which credential settings are still at their
// guessable built-in values. The server warns about each at startup.
func (c Config) InsecureDefaults() []string {
	var insecure []string
	if c.AdminUsername == DefaultAdminUsername && c.AdminPassword == DefaultAdminPassword {
		insecure = append(insecure, "admin credentials")
	}
	if c.TokenSecret == DefaultTokenSecret {
		insecure = append(insecure, "token secret")
	}
	return insecure
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
