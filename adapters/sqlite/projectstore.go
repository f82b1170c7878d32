package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/ports"
)

// ProjectStore implements ports.ProjectStore with SQLite.
type ProjectStore struct {
	db *DB
}

// NewProjectStore creates a new SQLite project store.
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns all projects ordered by id descending.
func (s *ProjectStore) List(ctx context.Context) ([]project.Project, error) {
	rows, err := s.db.DB.QueryContext(ctx, `
		SELECT id, title, description, details, file_url, created_at, updated_at
		FROM projects
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Details, &p.FileURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(ctx context.Context, id int64) (project.Project, error) {
	var p project.Project
	err := s.db.DB.QueryRowContext(ctx, `
		SELECT id, title, description, details, file_url, created_at, updated_at
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Details, &p.FileURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return project.Project{}, ports.ErrNotFound
	}
	return p, err
}

// Create stores a new project and returns it with the assigned ID.
// Timestamps come from the caller so they follow the injected clock;
// zero values fall back to wall-clock time.
func (s *ProjectStore) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	res, err := s.db.DB.ExecContext(ctx, `
		INSERT INTO projects (title, description, details, file_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.Title, p.Description, p.Details, p.FileURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return project.Project{}, err
	}
	return s.Get(ctx, id)
}

// Update overwrites the four text fields of an existing project.
// This is deliberately a full overwrite, not a merge: edits always resubmit
// title, description, details and file_url together.
func (s *ProjectStore) Update(ctx context.Context, p project.Project) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	res, err := s.db.DB.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, details = ?, file_url = ?, updated_at = ?
		WHERE id = ?
	`, p.Title, p.Description, p.Details, p.FileURL, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes a project.
func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.DB.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Ensure interface compliance.
var _ ports.ProjectStore = (*ProjectStore)(nil)
