package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/domain/testcase"
	"github.com/ahmedw/folio/ports"
)

// PageData holds fields common to every page.
type PageData struct {
	Title  string
	Active string
}

// HomePage renders the landing page with the latest projects.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load projects for home page")
		projects = nil
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}

	data := struct {
		PageData
		Projects []project.Project
	}{
		PageData: PageData{Title: "Home", Active: "home"},
		Projects: projects,
	}
	h.render(w, "home", data)
}

// ProjectsPage renders the full project list.
func (h *Handler) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load projects")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := struct {
		PageData
		Projects []project.Project
	}{
		PageData: PageData{Title: "Projects", Active: "projects"},
		Projects: projects,
	}
	h.render(w, "projects", data)
}

// ProjectPage renders one project's detail page.
func (h *Handler) ProjectPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error().Err(err).Int64("id", id).Msg("failed to load project")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := struct {
		PageData
		Project project.Project
	}{
		PageData: PageData{Title: p.Title, Active: "projects"},
		Project:  p,
	}
	h.render(w, "project", data)
}

// AboutPage renders the about page with testimonials.
func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonials.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load testimonials")
		testimonials = nil
	}

	data := struct {
		PageData
		Testimonials []ports.Testimonial
	}{
		PageData:     PageData{Title: "About", Active: "about"},
		Testimonials: testimonials,
	}
	h.render(w, "about", data)
}

// LoginPage renders the admin login form. The form posts to the JSON
// auth API from a small inline script.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		PageData
	}{
		PageData: PageData{Title: "Admin Login", Active: ""},
	}
	h.render(w, "login", data)
}

// DashboardPage renders the admin dashboard composing projects and
// test cases. System stats load client-side from the JSON API.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load projects for dashboard")
	}
	cases, err := h.testCases.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load test cases for dashboard")
	}

	counts := map[testcase.Status]int{}
	for _, tc := range cases {
		counts[tc.Status]++
	}

	data := struct {
		PageData
		Projects  []project.Project
		TestCases []testcase.TestCase
		Passed    int
		Failed    int
		Pending   int
	}{
		PageData:  PageData{Title: "Dashboard", Active: "admin"},
		Projects:  projects,
		TestCases: cases,
		Passed:    counts[testcase.StatusPassed],
		Failed:    counts[testcase.StatusFailed],
		Pending:   counts[testcase.StatusPending],
	}
	h.render(w, "dashboard", data)
}
