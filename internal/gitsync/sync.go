// Package gitsync turns GitHub repositories into portfolio projects: it
// upserts repo metadata into the store and classifies each repo into a
// display category.
package gitsync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/me/folio/internal/github"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/pkg/model"
)

// RepoLister abstracts the GitHub client for testability.
type RepoLister interface {
	ListRepositories(ctx context.Context) ([]github.Repo, error)
}

// SyncResult records what happened to a single repository during a sync.
type SyncResult struct {
	Action  string         `json:"action"` // "created" or "updated"
	Project *model.Project `json:"project"`
}

// Syncer synchronizes GitHub repositories into the project store.
type Syncer struct {
	store  store.Store
	github RepoLister
	logger *slog.Logger
}

// NewSyncer creates a syncer.
func NewSyncer(st store.Store, gh RepoLister, logger *slog.Logger) *Syncer {
	return &Syncer{
		store:  st,
		github: gh,
		logger: logger.With("component", "gitsync"),
	}
}

// Sync fetches the user's public repositories and upserts each one as a
// project, keyed by GitHub repository ID. New projects start visible.
func (s *Syncer) Sync(ctx context.Context) ([]SyncResult, error) {
	repos, err := s.github.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	var results []SyncResult
	for _, repo := range repos {
		existing, err := s.store.GetProjectByGitHubID(ctx, repo.ID)
		if err != nil {
			return results, fmt.Errorf("lookup project for repo %d: %w", repo.ID, err)
		}

		if existing != nil {
			applyRepo(existing, repo)
			existing.UpdatedAt = time.Now().UTC()
			if err := s.store.UpdateProject(ctx, existing); err != nil {
				return results, fmt.Errorf("update project %s: %w", existing.ID, err)
			}
			results = append(results, SyncResult{Action: "updated", Project: existing})
			continue
		}

		now := time.Now().UTC()
		p := &model.Project{
			ID:        "proj_" + uuid.New().String()[:8],
			IsVisible: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyRepo(p, repo)
		if err := s.store.CreateProject(ctx, p); err != nil {
			return results, fmt.Errorf("create project for repo %d: %w", repo.ID, err)
		}
		results = append(results, SyncResult{Action: "created", Project: p})
	}

	s.logger.Info("sync complete", "repos", len(repos), "results", len(results))
	return results, nil
}

// applyRepo copies repo metadata onto a project. Visibility and timestamps
// are left alone so a sync never un-hides a hidden project.
func applyRepo(p *model.Project, repo github.Repo) {
	p.Title = repo.Name
	if p.Title == "" {
		p.Title = "Untitled Project"
	}
	p.Description = repo.Description
	if p.Description == "" {
		p.Description = "No description available"
	}
	p.Category = Categorize(repo)
	p.GitHubURL = repo.HTMLURL
	p.Homepage = repo.Homepage
	p.Language = repo.Language
	p.Stars = repo.Stars
	p.Forks = repo.Forks
	p.GitHubID = repo.ID
	p.Topics = repo.Topics
	p.PushedAt = repo.PushedAt
}

// Categorize classifies a repository by topics, description, and language.
// Rules are checked in order; the first match wins.
func Categorize(repo github.Repo) model.Category {
	desc := strings.ToLower(repo.Description)

	if hasAnyTopic(repo.Topics, "machine-learning", "ai", "ml", "data-science") ||
		strings.Contains(desc, "machine learning") ||
		repo.Language == "Python" {
		return model.CategoryML
	}

	if hasAnyTopic(repo.Topics, "react", "nextjs", "fullstack", "webapp") ||
		strings.Contains(desc, "full stack") ||
		repo.Language == "JavaScript" || repo.Language == "TypeScript" {
		return model.CategoryFullstack
	}

	if hasAnyTopic(repo.Topics, "backend", "api", "server") ||
		strings.Contains(desc, "backend") {
		return model.CategoryBackend
	}

	return model.CategoryOther
}

func hasAnyTopic(topics []string, wanted ...string) bool {
	for _, t := range topics {
		if slices.Contains(wanted, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
