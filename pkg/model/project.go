package model

import "time"

// Category classifies a project for display grouping.
type Category string

const (
	CategoryML        Category = "ml"
	CategoryFullstack Category = "fullstack"
	CategoryBackend   Category = "backend"
	CategoryOther     Category = "other"
)

// Project is a portfolio entry, usually synced from a GitHub repository.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	GitHubURL   string     `json:"githubUrl"`
	Homepage    string     `json:"homepage,omitempty"`
	Language    string     `json:"language,omitempty"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	GitHubID    int64      `json:"githubId,omitempty"` // 0 for manually created projects
	Topics      []string   `json:"topics"`
	IsVisible   bool       `json:"isVisible"`
	PushedAt    *time.Time `json:"pushedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
