package validation_test

import (
	"testing"

	"github.com/ahmedw/folio/pkg/validation"
)

type sample struct {
	Title  string `validate:"required"`
	Status string `validate:"omitempty,oneof=Passed Failed Pending"`
}

func TestStruct_Valid(t *testing.T) {
	if errs := validation.Struct(&sample{Title: "ok"}); errs != nil {
		t.Errorf("expected nil, got %v", errs)
	}
}

func TestStruct_RequiredMissing(t *testing.T) {
	errs := validation.Struct(&sample{})
	if errs == nil {
		t.Fatal("expected errors")
	}
	if errs["title"] == "" {
		t.Errorf("expected title error, got %v", errs)
	}
}

func TestStruct_OneOf(t *testing.T) {
	errs := validation.Struct(&sample{Title: "ok", Status: "Skipped"})
	if errs == nil || errs["status"] == "" {
		t.Errorf("expected status error, got %v", errs)
	}

	if errs := validation.Struct(&sample{Title: "ok", Status: "Passed"}); errs != nil {
		t.Errorf("Passed should be accepted, got %v", errs)
	}
}
