// Package http provides the public HTTP surface: the root router, the
// public JSON API, and request middleware.
package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ahmedw/folio/adapters/metrics"
	_ "github.com/ahmedw/folio/docs/swagger" // swagger docs
	"github.com/ahmedw/folio/ports"
)

// VersionResponse represents the version endpoint response.
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
	Service string `json:"service" example:"folio"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// version is set at build time via -ldflags.
var version = "dev"

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// -----------------------------------------------------------------------------
// Health
// -----------------------------------------------------------------------------

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a health handler. db may be nil.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness reports that the process is up.
//
//	@Summary		Liveness probe
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness reports whether the database is reachable.
//
//	@Summary		Readiness probe
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health/ready [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Version returns the service version.
//
//	@Summary		Get service version
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version: version,
		Service: "folio",
	})
}

// -----------------------------------------------------------------------------
// Public JSON API
// -----------------------------------------------------------------------------

// PublicProject is a project as exposed to unauthenticated readers.
type PublicProject struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	FileURL     string `json:"file_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// PublicTestimonial is a testimonial as exposed to unauthenticated readers.
type PublicTestimonial struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Quote  string `json:"quote"`
}

// PublicHandler serves the unauthenticated JSON reads.
type PublicHandler struct {
	projects     ports.ProjectStore
	testimonials ports.TestimonialStore
	logger       zerolog.Logger
}

// NewPublicHandler creates the public API handler.
func NewPublicHandler(projects ports.ProjectStore, testimonials ports.TestimonialStore, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		projects:     projects,
		testimonials: testimonials,
		logger:       logger,
	}
}

// Router returns the public API router.
func (h *PublicHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/projects", h.ListProjects)
	r.Get("/projects/{id}", h.GetProject)
	r.Get("/testimonials", h.ListTestimonials)
	return r
}

// ListProjects returns all projects for public display.
//
//	@Summary		List projects (public)
//	@Tags			Public
//	@Produce		json
//	@Success		200	{array}	PublicProject
//	@Router			/api/projects [get]
func (h *PublicHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list projects")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list projects")
		return
	}

	resp := make([]PublicProject, len(projects))
	for i, p := range projects {
		resp[i] = PublicProject{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Details:     p.Details,
			FileURL:     p.FileURL,
			CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProject returns one project for public display.
//
//	@Summary		Get project (public)
//	@Tags			Public
//	@Produce		json
//	@Param			id	path		int	true	"Project ID"
//	@Success		200	{object}	PublicProject
//	@Failure		404	{object}	map[string]interface{}
//	@Router			/api/projects/{id} [get]
func (h *PublicHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid project ID")
		return
	}

	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		h.logger.Error().Err(err).Int64("id", id).Msg("failed to get project")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get project")
		return
	}

	writeJSON(w, http.StatusOK, PublicProject{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Details:     p.Details,
		FileURL:     p.FileURL,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// ListTestimonials returns all testimonials for public display.
//
//	@Summary		List testimonials (public)
//	@Tags			Public
//	@Produce		json
//	@Success		200	{array}	PublicTestimonial
//	@Router			/api/testimonials [get]
func (h *PublicHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.testimonials.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list testimonials")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list testimonials")
		return
	}

	resp := make([]PublicTestimonial, len(items))
	for i, t := range items {
		resp[i] = PublicTestimonial{
			ID:     t.ID,
			Author: t.Author,
			Role:   t.Role,
			Quote:  t.Quote,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// -----------------------------------------------------------------------------
// Router
// -----------------------------------------------------------------------------

// SystemEndpoints carries the admin-only handlers that live directly
// under /api rather than /api/admin.
type SystemEndpoints struct {
	RequireAuth  func(http.Handler) http.Handler
	SystemInfo   http.HandlerFunc
	CaptureImage http.HandlerFunc
	AnalyzeImage http.HandlerFunc
}

// RouterConfig holds optional configuration for the root router.
type RouterConfig struct {
	Metrics       *metrics.Collector
	EnableOpenAPI bool
	MetricsPath   string // defaults to /metrics
	Health        *HealthHandler
	Public        *PublicHandler
	AuthHandler   http.Handler // mounted at /api/auth
	AdminAPI      http.Handler // mounted at /api/admin
	System        *SystemEndpoints
	WebHandler    http.Handler // SSR pages, mounted last at /
	UploadsDir    string       // served at /uploads when non-empty
}

// NewRouter creates the main HTTP router.
func NewRouter(logger zerolog.Logger, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if cfg.Metrics != nil {
		r.Use(NewMetricsMiddleware(cfg.Metrics))
	}

	// Health endpoints (no auth required)
	health := cfg.Health
	if health == nil {
		health = NewHealthHandler(nil)
	}
	r.Get("/health", health.Liveness)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler())
	}

	if cfg.EnableOpenAPI {
		r.Get("/swagger/*", httpSwagger.Handler())
	}

	r.Get("/version", Version)

	r.Route("/api", func(r chi.Router) {
		if cfg.AuthHandler != nil {
			r.Mount("/auth", cfg.AuthHandler)
		}
		if cfg.AdminAPI != nil {
			r.Mount("/admin", cfg.AdminAPI)
		}
		if cfg.Public != nil {
			r.Get("/projects", cfg.Public.ListProjects)
			r.Get("/projects/{id}", cfg.Public.GetProject)
			r.Get("/testimonials", cfg.Public.ListTestimonials)
		}
		if cfg.System != nil {
			r.Group(func(r chi.Router) {
				if cfg.System.RequireAuth != nil {
					r.Use(cfg.System.RequireAuth)
				}
				r.Get("/system-info", cfg.System.SystemInfo)
				r.Get("/capture-image", cfg.System.CaptureImage)
				r.Post("/analyze-image", cfg.System.AnalyzeImage)
			})
		}
	})

	if cfg.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(noDirFS{http.Dir(cfg.UploadsDir)}))
		r.Handle("/uploads/*", fs)
	}

	// SSR pages, mounted last so explicit routes take precedence
	if cfg.WebHandler != nil {
		r.Mount("/", cfg.WebHandler)
	}

	return r
}

// noDirFS serves files only. Attachment names are unguessable tokens, so
// a directory listing would enumerate them all.
type noDirFS struct {
	fs http.FileSystem
}

func (f noDirFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, iofs.ErrNotExist
	}
	return file, nil
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

// NewLoggingMiddleware logs completed HTTP requests.
func NewLoggingMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// Skip logging for health checks and metrics
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				return
			}

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}

// NewMetricsMiddleware records request counts and latency.
func NewMetricsMiddleware(m *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip metrics for internal endpoints
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" ||
				strings.HasPrefix(r.URL.Path, "/swagger") {
				next.ServeHTTP(w, r)
				return
			}

			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := statusLabel(ww.Status())
			path := metrics.NormalizePath(r.URL.Path)

			m.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			m.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		})
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "other"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
