package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmedw/folio/adapters/sqlite"
	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/ports"
)

func TestProjectStore_CreateAndGet(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, project.Project{
		Title:       "Seat Monitor",
		Description: "Occupancy detection",
		Details:     "Pi camera + vision model",
		FileURL:     "/uploads/abc123.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Seat Monitor" || got.Description != "Occupancy detection" ||
		got.Details != "Pi camera + vision model" || got.FileURL != "/uploads/abc123.pdf" {
		t.Errorf("Get returned %+v", got)
	}
}

func TestProjectStore_Get_NotFound(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))

	_, err := store.Get(context.Background(), 999)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectStore_List_IDDescending(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := store.Create(ctx, project.Project{Title: title, Description: "d", Details: "x"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("len = %d, want 3", len(projects))
	}
	if projects[0].Title != "third" || projects[2].Title != "first" {
		t.Errorf("wrong order: %s, %s, %s", projects[0].Title, projects[1].Title, projects[2].Title)
	}
	for i := 0; i < len(projects)-1; i++ {
		if projects[i].ID < projects[i+1].ID {
			t.Errorf("IDs not descending at %d", i)
		}
	}
}

func TestProjectStore_Update_OverwritesAllFields(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, project.Project{
		Title:       "old title",
		Description: "old description",
		Details:     "old details",
		FileURL:     "/uploads/old.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Overwrite semantics: an empty file_url clears the stored value,
	// it is not merged away.
	err = store.Update(ctx, project.Project{
		ID:          created.ID,
		Title:       "new title",
		Description: "new description",
		Details:     "new details",
		FileURL:     "",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID changed: %d -> %d", created.ID, got.ID)
	}
	if got.Title != "new title" || got.Description != "new description" || got.Details != "new details" {
		t.Errorf("fields not overwritten: %+v", got)
	}
	if got.FileURL != "" {
		t.Errorf("FileURL = %q, want empty (overwrite, not merge)", got.FileURL)
	}
}

func TestProjectStore_Update_NotFound(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))

	err := store.Update(context.Background(), project.Project{ID: 12345, Title: "t", Description: "d", Details: "x"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectStore_Delete(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, project.Project{Title: "t", Description: "d", Details: "x"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, p := range projects {
		if p.ID == created.ID {
			t.Error("deleted project still listed")
		}
	}
}

func TestProjectStore_Delete_NotFound(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))

	err := store.Delete(context.Background(), 999)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectStore_PersistsCallerTimestamps(t *testing.T) {
	store := sqlite.NewProjectStore(setupTestDB(t))
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p, err := store.Create(ctx, project.Project{
		Title:       "t",
		Description: "d",
		Details:     "x",
		CreatedAt:   created,
		UpdatedAt:   created,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.Equal(created) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, created)
	}

	updated := created.Add(48 * time.Hour)
	err = store.Update(ctx, project.Project{
		ID:          p.ID,
		Title:       "t2",
		Description: "d2",
		Details:     "x2",
		UpdatedAt:   updated,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err = store.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, updated)
	}
}
