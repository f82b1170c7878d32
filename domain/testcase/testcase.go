// Package testcase provides manual test-case value types.
// This package has NO dependencies on I/O.
package testcase

import (
	"strings"
	"time"
)

// Status is the outcome of a manual test run.
type Status string

const (
	StatusPassed  Status = "Passed"
	StatusFailed  Status = "Failed"
	StatusPending Status = "Pending"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusPending:
		return true
	}
	return false
}

// TestCase is a manually tracked test (immutable value type).
type TestCase struct {
	ID        string
	Name      string
	Procedure string
	Notes     string
	Status    Status
	CreatedAt time.Time
}

// New creates a test case. The status always starts as Pending regardless
// of caller input; text fields are trimmed.
func New(id, name, procedure, notes string, now time.Time) TestCase {
	return TestCase{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Procedure: strings.TrimSpace(procedure),
		Notes:     strings.TrimSpace(notes),
		Status:    StatusPending,
		CreatedAt: now.UTC(),
	}
}
