package project_test

import (
	"testing"

	"github.com/ahmedw/folio/domain/project"
)

func TestValidate_AllFieldsPresent(t *testing.T) {
	p := project.Project{
		Title:       "Seat Monitor",
		Description: "Camera-based seat occupancy",
		Details:     "Raspberry Pi + vision model",
	}
	if errs := project.Validate(p); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	errs := project.Validate(project.Project{Title: "   "})

	for _, field := range []string{"title", "description", "details"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestValidate_FileURLOptional(t *testing.T) {
	p := project.Project{Title: "a", Description: "b", Details: "c"}
	if errs := project.Validate(p); len(errs) != 0 {
		t.Errorf("file_url should be optional, got %v", errs)
	}
}

func TestNormalized(t *testing.T) {
	p := project.Project{Title: " t ", Description: "d\n", Details: "\tx", FileURL: " /uploads/a.pdf "}
	n := p.Normalized()

	if n.Title != "t" || n.Description != "d" || n.Details != "x" || n.FileURL != "/uploads/a.pdf" {
		t.Errorf("Normalized() = %+v", n)
	}
}
