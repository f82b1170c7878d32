package sqlite

import (
	"context"

	"github.com/ahmedw/folio/ports"
)

// TestimonialStore implements ports.TestimonialStore with SQLite.
type TestimonialStore struct {
	db *DB
}

// NewTestimonialStore creates a new SQLite testimonial store.
func NewTestimonialStore(db *DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

// List returns all testimonials, newest first.
func (s *TestimonialStore) List(ctx context.Context) ([]ports.Testimonial, error) {
	rows, err := s.db.DB.QueryContext(ctx, `
		SELECT id, author, role, quote, created_at
		FROM testimonials
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []ports.Testimonial
	for rows.Next() {
		var tm ports.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Role, &tm.Quote, &tm.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, tm)
	}
	return testimonials, rows.Err()
}

// Ensure interface compliance.
var _ ports.TestimonialStore = (*TestimonialStore)(nil)
