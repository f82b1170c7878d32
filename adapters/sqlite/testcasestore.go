package sqlite

import (
	"context"

	"github.com/ahmedw/folio/domain/testcase"
	"github.com/ahmedw/folio/ports"
)

// TestCaseStore implements ports.TestCaseStore with SQLite.
type TestCaseStore struct {
	db *DB
}

// NewTestCaseStore creates a new SQLite test-case store.
func NewTestCaseStore(db *DB) *TestCaseStore {
	return &TestCaseStore{db: db}
}

// List returns all test cases, newest first.
func (s *TestCaseStore) List(ctx context.Context) ([]testcase.TestCase, error) {
	rows, err := s.db.DB.QueryContext(ctx, `
		SELECT id, name, procedure, notes, status, created_at
		FROM test_cases
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []testcase.TestCase
	for rows.Next() {
		var tc testcase.TestCase
		var status string
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Procedure, &tc.Notes, &status, &tc.CreatedAt); err != nil {
			return nil, err
		}
		tc.Status = testcase.Status(status)
		cases = append(cases, tc)
	}
	return cases, rows.Err()
}

// Create stores a new test case.
func (s *TestCaseStore) Create(ctx context.Context, tc testcase.TestCase) error {
	_, err := s.db.DB.ExecContext(ctx, `
		INSERT INTO test_cases (id, name, procedure, notes, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tc.ID, tc.Name, tc.Procedure, tc.Notes, string(tc.Status), tc.CreatedAt)
	return err
}

// UpdateStatus sets the status of a test case.
func (s *TestCaseStore) UpdateStatus(ctx context.Context, id string, status testcase.Status) error {
	return s.updateField(ctx, "status", string(status), id)
}

// UpdateNotes sets the notes of a test case.
func (s *TestCaseStore) UpdateNotes(ctx context.Context, id, notes string) error {
	return s.updateField(ctx, "notes", notes, id)
}

// UpdateProcedure sets the procedure of a test case.
func (s *TestCaseStore) UpdateProcedure(ctx context.Context, id, procedure string) error {
	return s.updateField(ctx, "procedure", procedure, id)
}

func (s *TestCaseStore) updateField(ctx context.Context, column, value, id string) error {
	// column is always one of the fixed names above, never user input.
	res, err := s.db.DB.ExecContext(ctx, "UPDATE test_cases SET "+column+" = ? WHERE id = ?", value, id)
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
var _ ports.TestCaseStore = (*TestCaseStore)(nil)
