// Package store defines the persistence layer for portfolio projects.
package store

import (
	"context"
	"errors"

	"github.com/me/folio/pkg/model"
)

// ErrNotFound is returned by mutating operations that target a missing project.
// Read operations return (nil, nil) for missing projects instead.
var ErrNotFound = errors.New("project not found")

// Store defines the persistence operations for project records.
type Store interface {
	CreateProject(ctx context.Context, p *model.Project) error
	GetProject(ctx context.Context, id string) (*model.Project, error)
	GetProjectByGitHubID(ctx context.Context, githubID int64) (*model.Project, error)
	// ListProjects returns projects ordered by stars descending, then most
	// recently updated. Hidden projects are excluded unless includeHidden.
	ListProjects(ctx context.Context, includeHidden bool) ([]*model.Project, error)
	UpdateProject(ctx context.Context, p *model.Project) error
	// ToggleProjectVisibility flips is_visible and returns the updated project.
	ToggleProjectVisibility(ctx context.Context, id string) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
