// Package github wraps the GitHub REST API calls used to populate the
// portfolio: listing the authenticated user's public repositories.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the production GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Repo is the subset of GitHub repository metadata the portfolio cares about.
type Repo struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	HTMLURL     string     `json:"html_url"`
	Homepage    string     `json:"homepage"`
	Language    string     `json:"language"`
	Stars       int        `json:"stargazers_count"`
	Forks       int        `json:"forks_count"`
	Topics      []string   `json:"topics"`
	Private     bool       `json:"private"`
	PushedAt    *time.Time `json:"pushed_at"`
}

// ClientConfig holds GitHub API configuration.
type ClientConfig struct {
	BaseURL string // defaults to DefaultBaseURL when empty
	Token   string
}

// Client is a minimal GitHub REST API client.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the configured endpoint.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With("component", "github"),
	}
}

// ListRepositories fetches the authenticated user's repositories, most
// recently updated first, and filters out private ones.
func (c *Client) ListRepositories(ctx context.Context) ([]Repo, error) {
	var repos []Repo
	if err := c.get(ctx, "/user/repos?sort=updated&per_page=50", &repos); err != nil {
		return nil, err
	}

	public := repos[:0]
	for _, repo := range repos {
		if !repo.Private {
			public = append(public, repo)
		}
	}
	c.logger.Debug("repositories fetched", "total", len(repos), "public", len(public))
	return public, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("github api call", "endpoint", endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("github api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api %s: HTTP %d: %s", endpoint, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
