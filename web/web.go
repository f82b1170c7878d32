// Package web provides the server-rendered site: public portfolio pages
// and the admin area. All templates are embedded in the binary.
// Stateless design - no server-side session storage.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ahmedw/folio/adapters/auth"
	"github.com/ahmedw/folio/ports"
)

//go:embed templates/* static/*
var assets embed.FS

// Handler provides the SSR endpoints.
type Handler struct {
	templates    map[string]*template.Template
	tokens       *auth.TokenService
	projects     ports.ProjectStore
	testCases    ports.TestCaseStore
	testimonials ports.TestimonialStore
	logger       zerolog.Logger
}

// Deps contains dependencies for the web handler.
type Deps struct {
	Tokens       *auth.TokenService
	Projects     ports.ProjectStore
	TestCases    ports.TestCaseStore
	Testimonials ports.TestimonialStore
	Logger       zerolog.Logger
}

// NewHandler creates a new web handler.
func NewHandler(deps Deps) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		templates:    tmpl,
		tokens:       deps.Tokens,
		projects:     deps.Projects,
		testCases:    deps.TestCases,
		testimonials: deps.Testimonials,
		logger:       deps.Logger,
	}, nil
}

// Router returns the web router. The auth gate runs on every page.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	// Static files (CSS) - no auth required
	staticFS, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Group(func(r chi.Router) {
		r.Use(h.Gate)

		// Public pages
		r.Get("/", h.HomePage)
		r.Get("/projects", h.ProjectsPage)
		r.Get("/projects/{id}", h.ProjectPage)
		r.Get("/about", h.AboutPage)
		r.Get("/aboutme", h.AboutPage)

		// Admin pages
		r.Get("/admin/login", h.LoginPage)
		r.Get("/admin", h.DashboardPage)
		r.Get("/admin/dashboard", h.DashboardPage)
	})

	return r
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},
		"truncate": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			return s[:n] + "..."
		},
		"statusClass": func(s string) string {
			return "status-" + strings.ToLower(s)
		},
	}

	templates := make(map[string]*template.Template)

	layoutContent, err := fs.ReadFile(assets, "templates/layouts/base.html")
	if err != nil {
		return nil, err
	}

	pages, err := fs.Glob(assets, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := strings.TrimPrefix(page, "templates/pages/")
		name = strings.TrimSuffix(name, ".html")

		pageContent, err := fs.ReadFile(assets, page)
		if err != nil {
			return nil, err
		}

		tmpl := template.New(name).Funcs(funcs)
		if _, err := tmpl.Parse(string(layoutContent)); err != nil {
			return nil, fmt.Errorf("parse layout for %s: %w", name, err)
		}
		if _, err := tmpl.Parse(string(pageContent)); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}

		templates[name] = tmpl
	}

	return templates, nil
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl, ok := h.templates[name]
	if !ok {
		h.logger.Error().Str("template", name).Msg("template not found")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("template render error")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
