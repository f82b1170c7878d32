package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmedw/folio/adapters/sqlite"
	"github.com/ahmedw/folio/domain/testcase"
	"github.com/ahmedw/folio/ports"
)

func TestTestCaseStore_CreateAndList(t *testing.T) {
	store := sqlite.NewTestCaseStore(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		tc := testcase.New("tc-"+name, name, "steps", "", base.Add(time.Duration(i)*time.Minute))
		if err := store.Create(ctx, tc); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	cases, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cases) != 3 {
		t.Fatalf("len = %d, want 3", len(cases))
	}
	if cases[0].Name != "newest" || cases[2].Name != "oldest" {
		t.Errorf("wrong order: %s, %s, %s", cases[0].Name, cases[1].Name, cases[2].Name)
	}
	for _, tc := range cases {
		if tc.Status != testcase.StatusPending {
			t.Errorf("%s: status = %s, want Pending", tc.ID, tc.Status)
		}
	}
}

func TestTestCaseStore_UpdateStatus(t *testing.T) {
	store := sqlite.NewTestCaseStore(setupTestDB(t))
	ctx := context.Background()

	tc := testcase.New("tc-1", "boot", "power on", "", time.Now())
	if err := store.Create(ctx, tc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateStatus(ctx, "tc-1", testcase.StatusPassed); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	cases, _ := store.List(ctx)
	if cases[0].Status != testcase.StatusPassed {
		t.Errorf("status = %s, want Passed", cases[0].Status)
	}
}

func TestTestCaseStore_UpdateNotesAndProcedure(t *testing.T) {
	store := sqlite.NewTestCaseStore(setupTestDB(t))
	ctx := context.Background()

	tc := testcase.New("tc-1", "boot", "power on", "old notes", time.Now())
	if err := store.Create(ctx, tc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateNotes(ctx, "tc-1", "new notes"); err != nil {
		t.Fatalf("UpdateNotes failed: %v", err)
	}
	if err := store.UpdateProcedure(ctx, "tc-1", "new procedure"); err != nil {
		t.Fatalf("UpdateProcedure failed: %v", err)
	}

	cases, _ := store.List(ctx)
	if cases[0].Notes != "new notes" {
		t.Errorf("notes = %q", cases[0].Notes)
	}
	if cases[0].Procedure != "new procedure" {
		t.Errorf("procedure = %q", cases[0].Procedure)
	}
	// Each mutation is independent: the others stay intact.
	if cases[0].Name != "boot" || cases[0].Status != testcase.StatusPending {
		t.Errorf("unrelated fields changed: %+v", cases[0])
	}
}

func TestTestCaseStore_Update_NotFound(t *testing.T) {
	store := sqlite.NewTestCaseStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.UpdateStatus(ctx, "missing", testcase.StatusFailed); !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("UpdateStatus: expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateNotes(ctx, "missing", "n"); !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("UpdateNotes: expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateProcedure(ctx, "missing", "p"); !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("UpdateProcedure: expected ErrNotFound, got %v", err)
	}
}
