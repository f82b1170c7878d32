package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	folioHTTP "github.com/ahmedw/folio/adapters/http"
	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/ports"
)

type staticProjectStore struct {
	items []project.Project
}

func (s staticProjectStore) List(ctx context.Context) ([]project.Project, error) {
	return s.items, nil
}

func (s staticProjectStore) Get(ctx context.Context, id int64) (project.Project, error) {
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, ports.ErrNotFound
}

func (s staticProjectStore) Create(ctx context.Context, p project.Project) (project.Project, error) {
	return p, nil
}

func (s staticProjectStore) Update(ctx context.Context, p project.Project) error { return nil }
func (s staticProjectStore) Delete(ctx context.Context, id int64) error          { return nil }

type staticTestimonialStore struct {
	items []ports.Testimonial
}

func (s staticTestimonialStore) List(ctx context.Context) ([]ports.Testimonial, error) {
	return s.items, nil
}

func newTestRouter() nethttp.Handler {
	public := folioHTTP.NewPublicHandler(
		staticProjectStore{items: []project.Project{
			{ID: 2, Title: "Second", Description: "d", Details: "x", CreatedAt: time.Now()},
			{ID: 1, Title: "First", Description: "d", Details: "x", CreatedAt: time.Now()},
		}},
		staticTestimonialStore{items: []ports.Testimonial{
			{ID: 1, Author: "Sam", Role: "Manager", Quote: "Great work"},
		}},
		zerolog.Nop(),
	)

	return folioHTTP.NewRouter(zerolog.Nop(), folioHTTP.RouterConfig{
		Public: public,
	})
}

func get(t *testing.T, h nethttp.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		if rec := get(t, r, path); rec.Code != nethttp.StatusOK {
			t.Errorf("%s = %d, want 200", path, rec.Code)
		}
	}
}

func TestVersion(t *testing.T) {
	rec := get(t, newTestRouter(), "/version")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var v folioHTTP.VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Service != "folio" {
		t.Errorf("service = %q", v.Service)
	}
}

func TestPublicProjects_List(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/projects")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []folioHTTP.PublicProject
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Second" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestPublicProjects_Get(t *testing.T) {
	r := newTestRouter()

	rec := get(t, r, "/api/projects/1")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p folioHTTP.PublicProject
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Title != "First" {
		t.Errorf("title = %q", p.Title)
	}

	if rec := get(t, r, "/api/projects/99"); rec.Code != nethttp.StatusNotFound {
		t.Errorf("missing project = %d, want 404", rec.Code)
	}
	if rec := get(t, r, "/api/projects/abc"); rec.Code != nethttp.StatusBadRequest {
		t.Errorf("bad id = %d, want 400", rec.Code)
	}
}

func TestPublicTestimonials(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/testimonials")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []folioHTTP.PublicTestimonial
	json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list) != 1 || list[0].Author != "Sam" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestUploads_NoDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a1b2c3.pdf"), []byte("%PDF-fake"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r := folioHTTP.NewRouter(zerolog.Nop(), folioHTTP.RouterConfig{
		UploadsDir: dir,
	})

	if rec := get(t, r, "/uploads/a1b2c3.pdf"); rec.Code != nethttp.StatusOK {
		t.Errorf("file = %d, want 200", rec.Code)
	}
	if rec := get(t, r, "/uploads/"); rec.Code != nethttp.StatusNotFound {
		t.Errorf("directory listing = %d, want 404", rec.Code)
	}
	if rec := get(t, r, "/uploads/missing.pdf"); rec.Code != nethttp.StatusNotFound {
		t.Errorf("missing file = %d, want 404", rec.Code)
	}
}
