// Package project provides the portfolio project value type and pure
// validation functions. This package has NO dependencies on I/O.
package project

import (
	"strings"
	"time"
)

// Project is a portfolio entry (immutable value type).
// The four text fields are always written together; edits overwrite all of
// them, last write wins.
type Project struct {
	ID          int64
	Title       string
	Description string
	Details     string
	FileURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalized returns a copy with surrounding whitespace trimmed from all
// text fields.
func (p Project) Normalized() Project {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Details = strings.TrimSpace(p.Details)
	p.FileURL = strings.TrimSpace(p.FileURL)
	return p
}

// Validate checks the required fields. Returns a field -> message map,
// empty when the project is valid.
func Validate(p Project) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(p.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(p.Details) == "" {
		errs["details"] = "Details are required"
	}
	return errs
}
