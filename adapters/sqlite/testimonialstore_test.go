package sqlite_test

import (
	"context"
	"testing"

	"github.com/ahmedw/folio/adapters/sqlite"
)

func TestTestimonialStore_List(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTestimonialStore(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO testimonials (author, role, quote, created_at) VALUES
		('Alice', 'Manager', 'Great work', '2025-01-01 10:00:00'),
		('Bob', 'Colleague', 'Reliable and fast', '2025-02-01 10:00:00')
	`)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	testimonials, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(testimonials) != 2 {
		t.Fatalf("len = %d, want 2", len(testimonials))
	}
	if testimonials[0].Author != "Bob" {
		t.Errorf("newest first: got %s", testimonials[0].Author)
	}
	if testimonials[1].Quote != "Great work" {
		t.Errorf("quote = %q", testimonials[1].Quote)
	}
}

func TestTestimonialStore_List_Empty(t *testing.T) {
	store := sqlite.NewTestimonialStore(setupTestDB(t))

	testimonials, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(testimonials) != 0 {
		t.Errorf("expected empty list, got %d", len(testimonials))
	}
}
