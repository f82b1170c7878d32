package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/ports"
)

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	FileURL     string `json:"file_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProjectRequest represents a create or update request.
type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	FileURL     string `json:"file_url,omitempty"`
}

// UploadResponse represents a successful attachment upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// maxUploadSize caps project attachment uploads at 20MB.
const maxUploadSize = 20 << 20

// ListProjects returns all projects, newest first.
//
//	@Summary		List projects
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}	ProjectResponse
//	@Security		CookieAuth
//	@Router			/api/admin/projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.storeError(w, "projects", "list projects", err)
		return
	}

	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = projectToResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProject returns one project.
//
//	@Summary		Get project
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		int	true	"Project ID"
//	@Success		200	{object}	ProjectResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/projects/{id} [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}

	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		h.storeError(w, "projects", "get project", err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(p))
}

// CreateProject creates a project.
//
//	@Summary		Create project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProjectRequest	true	"Project fields"
//	@Success		201		{object}	ProjectResponse
//	@Failure		400		{object}	ErrorResponse	"Validation failed"
//	@Security		CookieAuth
//	@Router			/api/admin/projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p := project.Project{
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		FileURL:     req.FileURL,
	}.Normalized()

	if errs := project.Validate(p); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	now := h.clock.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := h.projects.Create(r.Context(), p)
	if err != nil {
		h.storeError(w, "projects", "create project", err)
		return
	}

	h.logger.Info().Int64("id", created.ID).Str("title", created.Title).Msg("project created")
	writeJSON(w, http.StatusCreated, projectToResponse(created))
}

// UpdateProject overwrites all editable fields of a project.
//
//	@Summary		Update project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Project ID"
//	@Param			request	body		ProjectRequest	true	"Project fields"
//	@Success		200		{object}	ProjectResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/projects/{id} [put]
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p := project.Project{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		FileURL:     req.FileURL,
	}.Normalized()

	if errs := project.Validate(p); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	p.UpdatedAt = h.clock.Now().UTC()

	if err := h.projects.Update(r.Context(), p); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		h.storeError(w, "projects", "update project", err)
		return
	}

	updated, err := h.projects.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, "projects", "get project", err)
		return
	}

	h.logger.Info().Int64("id", id).Msg("project updated")
	writeJSON(w, http.StatusOK, projectToResponse(updated))
}

// DeleteProject removes a project.
//
//	@Summary		Delete project
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		int	true	"Project ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/projects/{id} [delete]
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		h.storeError(w, "projects", "delete project", err)
		return
	}

	h.logger.Info().Int64("id", id).Msg("project deleted")
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadAttachment stores an uploaded file and returns its public URL.
// The URL is not linked to any project until the client saves it on one.
//
//	@Summary		Upload attachment
//	@Tags			Projects
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Attachment"
//	@Success		201		{object}	UploadResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/projects/upload [post]
func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "A 'file' form field is required")
		return
	}
	defer file.Close()

	url, err := h.files.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("upload failed")
		if h.metrics != nil {
			h.metrics.UploadErrors.Inc()
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to store file")
		return
	}

	h.logger.Info().Str("filename", header.Filename).Str("url", url).Msg("attachment uploaded")
	if h.metrics != nil {
		h.metrics.UploadsTotal.Inc()
	}
	writeJSON(w, http.StatusCreated, UploadResponse{URL: url})
}

func (h *Handler) storeError(w http.ResponseWriter, store, action string, err error) {
	h.logger.Error().Err(err).Msg("failed to " + action)
	if h.metrics != nil {
		h.metrics.StoreErrors.WithLabelValues(store).Inc()
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "Failed to "+action)
}

func parseProjectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid project ID")
		return 0, false
	}
	return id, true
}

func projectToResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Details:     p.Details,
		FileURL:     p.FileURL,
		CreatedAt:   p.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:   p.UpdatedAt.UTC().Format(timeFormat),
	}
}
