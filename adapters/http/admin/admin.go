// Package admin provides HTTP handlers for the admin JSON API.
package admin

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ahmedw/folio/adapters/auth"
	"github.com/ahmedw/folio/adapters/metrics"
	"github.com/ahmedw/folio/ports"
)

// Credentials holds the configured admin identity. The digest is compared
// with the hasher, never with raw string equality.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Handler provides admin API endpoints.
// Credentials and the analyzer are mutex-guarded so config hot reload
// can rotate them while requests are in flight.
type Handler struct {
	tokens     *auth.TokenService
	hasher     ports.Hasher
	projects   ports.ProjectStore
	testCases  ports.TestCaseStore
	files      ports.FileStore
	system     ports.SystemInfo
	camera     ports.Camera
	idgen      ports.IDGenerator
	clock      ports.Clock
	logger     zerolog.Logger
	metrics    *metrics.Collector
	production bool

	mu       sync.RWMutex
	creds    Credentials
	analyzer ports.ImageAnalyzer
}

// Deps contains dependencies for the admin handler.
type Deps struct {
	Tokens      *auth.TokenService
	Credentials Credentials
	Hasher      ports.Hasher
	Projects    ports.ProjectStore
	TestCases   ports.TestCaseStore
	Files       ports.FileStore
	System      ports.SystemInfo
	Camera      ports.Camera
	Analyzer    ports.ImageAnalyzer
	IDGen       ports.IDGenerator
	Clock       ports.Clock
	Logger      zerolog.Logger
	Metrics     *metrics.Collector
	Production  bool
}

// NewHandler creates a new admin API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		tokens:     deps.Tokens,
		creds:      deps.Credentials,
		hasher:     deps.Hasher,
		projects:   deps.Projects,
		testCases:  deps.TestCases,
		files:      deps.Files,
		system:     deps.System,
		camera:     deps.Camera,
		analyzer:   deps.Analyzer,
		idgen:      deps.IDGen,
		clock:      deps.Clock,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		production: deps.Production,
	}
}

// UpdateCredentials swaps the admin identity, typically after a config
// reload rotated the username or password hash. Existing sessions stay
// valid; only new logins check the new pair.
func (h *Handler) UpdateCredentials(creds Credentials) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = creds
}

// SetAnalyzer swaps the vision analyzer after a config reload.
// A nil analyzer disables the analyze endpoint.
func (h *Handler) SetAnalyzer(a ports.ImageAnalyzer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.analyzer = a
}

func (h *Handler) credentials() Credentials {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.creds
}

func (h *Handler) imageAnalyzer() ports.ImageAnalyzer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.analyzer
}

// AuthRouter returns the router for authentication endpoints.
// Login is public; logout requires a valid session.
func (h *Handler) AuthRouter() chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	return r
}

// Router returns the protected admin API router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(h.RequireAuth)

	// Projects
	r.Get("/projects", h.ListProjects)
	r.Post("/projects", h.CreateProject)
	r.Get("/projects/{id}", h.GetProject)
	r.Put("/projects/{id}", h.UpdateProject)
	r.Delete("/projects/{id}", h.DeleteProject)
	r.Post("/projects/upload", h.UploadAttachment)

	// Test cases
	r.Get("/testcases", h.ListTestCases)
	r.Post("/testcases", h.CreateTestCase)
	r.Patch("/testcases/{id}/status", h.UpdateTestCaseStatus)
	r.Patch("/testcases/{id}/notes", h.UpdateTestCaseNotes)
	r.Patch("/testcases/{id}/procedure", h.UpdateTestCaseProcedure)

	return r
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// timeFormat is the timestamp format used in all API responses.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
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

func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    "validation_failed",
			"message": "Validation failed",
			"fields":  fields,
		},
	})
}
