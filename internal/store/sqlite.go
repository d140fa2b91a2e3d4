package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/folio/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

const projectColumns = `id, title, description, category, github_url, homepage, language,
	stars, forks, github_id, topics, is_visible, pushed_at, created_at, updated_at`

func (s *SQLiteStore) CreateProject(ctx context.Context, p *model.Project) error {
	s.logger.Debug("sql", "op", "insert", "table", "projects", "id", p.ID)

	topicsJSON, err := json.Marshal(p.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, string(p.Category), p.GitHubURL, p.Homepage, p.Language,
		p.Stars, p.Forks, nullableID(p.GitHubID), string(topicsJSON), boolToInt(p.IsVisible),
		nullableTime(p.PushedAt),
		p.CreatedAt.Format(time.RFC3339Nano), p.UpdatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	s.logger.Debug("sql", "op", "select", "table", "projects", "id", id)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (s *SQLiteStore) GetProjectByGitHubID(ctx context.Context, githubID int64) (*model.Project, error) {
	s.logger.Debug("sql", "op", "select", "table", "projects", "github_id", githubID)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE github_id = ?`, githubID)
	return scanProject(row)
}

func (s *SQLiteStore) ListProjects(ctx context.Context, includeHidden bool) ([]*model.Project, error) {
	s.logger.Debug("sql", "op", "select", "table", "projects", "include_hidden", includeHidden)

	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeHidden {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY stars DESC, updated_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLiteStore) UpdateProject(ctx context.Context, p *model.Project) error {
	s.logger.Debug("sql", "op", "update", "table", "projects", "id", p.ID)

	topicsJSON, err := json.Marshal(p.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, category = ?, github_url = ?,
		 homepage = ?, language = ?, stars = ?, forks = ?, github_id = ?, topics = ?,
		 is_visible = ?, pushed_at = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Description, string(p.Category), p.GitHubURL,
		p.Homepage, p.Language, p.Stars, p.Forks, nullableID(p.GitHubID), string(topicsJSON),
		boolToInt(p.IsVisible), nullableTime(p.PushedAt), time.Now().Format(time.RFC3339Nano),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ToggleProjectVisibility(ctx context.Context, id string) (*model.Project, error) {
	s.logger.Debug("sql", "op", "update", "table", "projects", "id", id, "field", "is_visible")

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET is_visible = 1 - is_visible, updated_at = ? WHERE id = ?`,
		time.Now().Format(time.RFC3339Nano), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetProject(ctx, id)
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "projects", "id", id)

	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*model.Project, error) {
	var p model.Project
	var category, topicsJSON string
	var githubID sql.NullInt64
	var pushedAt sql.NullString
	var visible int
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Title, &p.Description, &category, &p.GitHubURL, &p.Homepage,
		&p.Language, &p.Stars, &p.Forks, &githubID, &topicsJSON, &visible,
		&pushedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Category = model.Category(category)
	p.IsVisible = visible != 0
	if githubID.Valid {
		p.GitHubID = githubID.Int64
	}
	if err := json.Unmarshal([]byte(topicsJSON), &p.Topics); err != nil {
		return nil, fmt.Errorf("unmarshal topics: %w", err)
	}
	if pushedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, pushedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse pushed_at: %w", err)
		}
		p.PushedAt = &t
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func nullableTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
