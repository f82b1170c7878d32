package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedw/folio/adapters/auth"
	"github.com/ahmedw/folio/adapters/clock"
	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/domain/session"
	"github.com/ahmedw/folio/domain/testcase"
	"github.com/ahmedw/folio/ports"
	"github.com/ahmedw/folio/web"
)

type stubProjects struct{}

func (stubProjects) List(ctx context.Context) ([]project.Project, error) {
	return []project.Project{
		{ID: 1, Title: "Demo", Description: "desc", Details: "details", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}, nil
}

func (stubProjects) Get(ctx context.Context, id int64) (project.Project, error) {
	if id != 1 {
		return project.Project{}, ports.ErrNotFound
	}
	return project.Project{ID: 1, Title: "Demo", Description: "desc", Details: "details", CreatedAt: time.Now()}, nil
}

func (stubProjects) Create(ctx context.Context, p project.Project) (project.Project, error) {
	return p, nil
}
func (stubProjects) Update(ctx context.Context, p project.Project) error { return nil }
func (stubProjects) Delete(ctx context.Context, id int64) error          { return nil }

type stubTestCases struct{}

func (stubTestCases) List(ctx context.Context) ([]testcase.TestCase, error) {
	return []testcase.TestCase{
		{ID: "a", Name: "boots", Status: testcase.StatusPassed, CreatedAt: time.Now()},
	}, nil
}
func (stubTestCases) Create(ctx context.Context, tc testcase.TestCase) error { return nil }
func (stubTestCases) UpdateStatus(ctx context.Context, id string, s testcase.Status) error {
	return nil
}
func (stubTestCases) UpdateNotes(ctx context.Context, id, notes string) error         { return nil }
func (stubTestCases) UpdateProcedure(ctx context.Context, id, procedure string) error { return nil }

type stubTestimonials struct{}

func (stubTestimonials) List(ctx context.Context) ([]ports.Testimonial, error) {
	return []ports.Testimonial{{ID: 1, Author: "Sam", Quote: "Great"}}, nil
}

type site struct {
	handler *web.Handler
	router  http.Handler
	tokens  *auth.TokenService
	clock   *clock.Fake
}

func newSite(t *testing.T) *site {
	t.Helper()

	clk := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	tokens, err := auth.NewTokenService("web-test-secret", clk)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	h, err := web.NewHandler(web.Deps{
		Tokens:       tokens,
		Projects:     stubProjects{},
		TestCases:    stubTestCases{},
		Testimonials: stubTestimonials{},
		Logger:       zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	return &site{handler: h, router: h.Router(), tokens: tokens, clock: clk}
}

func (s *site) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *site) sessionCookie(t *testing.T, remember bool) *http.Cookie {
	t.Helper()
	token, _, err := s.tokens.Issue("ahmed", remember)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestGate_PublicPagesAlwaysProceed(t *testing.T) {
	s := newSite(t)
	for _, path := range []string{"/", "/projects", "/projects/1", "/about"} {
		if rec := s.get(path, nil); rec.Code != http.StatusOK {
			t.Errorf("%s = %d, want 200", path, rec.Code)
		}
	}
}

func TestGate_ProtectedRedirectsWhenAnonymous(t *testing.T) {
	s := newSite(t)
	for _, path := range []string{"/admin", "/admin/", "/admin/dashboard"} {
		rec := s.get(path, nil)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Errorf("%s = %d, want 307", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("%s redirected to %q, want /admin/login", path, loc)
		}
	}
}

func TestGate_LoginRedirectsWhenAuthenticated(t *testing.T) {
	s := newSite(t)
	cookie := s.sessionCookie(t, false)

	rec := s.get("/admin/login", cookie)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("redirected to %q, want /admin/dashboard", loc)
	}
}

func TestGate_LoginPageRendersWhenAnonymous(t *testing.T) {
	s := newSite(t)
	rec := s.get("/admin/login", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGate_DashboardWithValidSession(t *testing.T) {
	s := newSite(t)
	cookie := s.sessionCookie(t, false)

	rec := s.get("/admin/dashboard", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGate_ExpiredSessionRedirects(t *testing.T) {
	s := newSite(t)
	cookie := s.sessionCookie(t, false)

	s.clock.Advance(24*time.Hour + time.Second)

	rec := s.get("/admin/dashboard", cookie)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expired session status = %d, want 307", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirected to %q, want /admin/login", loc)
	}
}

func TestGate_RememberSessionSurvivesDay(t *testing.T) {
	s := newSite(t)
	cookie := s.sessionCookie(t, true)

	s.clock.Advance(24*time.Hour + time.Second)

	if rec := s.get("/admin/dashboard", cookie); rec.Code != http.StatusOK {
		t.Errorf("remembered session rejected after 24h: %d", rec.Code)
	}
}

func TestGate_GarbageCookieTreatedAsAnonymous(t *testing.T) {
	s := newSite(t)
	cookie := &http.Cookie{Name: session.CookieName, Value: "not-a-token"}

	rec := s.get("/admin/dashboard", cookie)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Errorf("status = %d, want 307", rec.Code)
	}
}
