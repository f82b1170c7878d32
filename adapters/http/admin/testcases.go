package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ahmedw/folio/domain/testcase"
	"github.com/ahmedw/folio/pkg/validation"
	"github.com/ahmedw/folio/ports"
)

// TestCaseResponse represents a test case in API responses.
type TestCaseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Procedure string `json:"procedure"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CreateTestCaseRequest represents a request to create a test case.
// Status is intentionally absent: new cases always start Pending.
type CreateTestCaseRequest struct {
	Name      string `json:"name" validate:"required"`
	Procedure string `json:"procedure"`
	Notes     string `json:"notes"`
}

// UpdateStatusRequest sets a test case status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Passed Failed Pending"`
}

// UpdateTextRequest sets a single text field of a test case.
type UpdateTextRequest struct {
	Value string `json:"value"`
}

// ListTestCases returns all test cases, newest first.
//
//	@Summary		List test cases
//	@Tags			TestCases
//	@Produce		json
//	@Success		200	{array}	TestCaseResponse
//	@Security		CookieAuth
//	@Router			/api/admin/testcases [get]
func (h *Handler) ListTestCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.testCases.List(r.Context())
	if err != nil {
		h.storeError(w, "testcases", "list test cases", err)
		return
	}

	resp := make([]TestCaseResponse, len(cases))
	for i, tc := range cases {
		resp[i] = testCaseToResponse(tc)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateTestCase creates a test case in Pending status.
//
//	@Summary		Create test case
//	@Tags			TestCases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTestCaseRequest	true	"Test case fields"
//	@Success		201		{object}	TestCaseResponse
//	@Failure		400		{object}	ErrorResponse	"Validation failed"
//	@Security		CookieAuth
//	@Router			/api/admin/testcases [post]
func (h *Handler) CreateTestCase(w http.ResponseWriter, r *http.Request) {
	var req CreateTestCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if errs := validation.Struct(&req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	tc := testcase.New(h.idgen.New(), req.Name, req.Procedure, req.Notes, h.clock.Now())
	if err := h.testCases.Create(r.Context(), tc); err != nil {
		h.storeError(w, "testcases", "create test case", err)
		return
	}

	h.logger.Info().Str("id", tc.ID).Str("name", tc.Name).Msg("test case created")
	writeJSON(w, http.StatusCreated, testCaseToResponse(tc))
}

// UpdateTestCaseStatus sets the status of a test case.
//
//	@Summary		Update test case status
//	@Tags			TestCases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Test case ID"
//	@Param			request	body		UpdateStatusRequest	true	"New status"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	ErrorResponse	"Unknown status"
//	@Failure		404		{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/testcases/{id}/status [patch]
func (h *Handler) UpdateTestCaseStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if errs := validation.Struct(&req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	if err := h.testCases.UpdateStatus(r.Context(), id, testcase.Status(req.Status)); err != nil {
		h.testCaseUpdateError(w, "status", err)
		return
	}

	h.logger.Info().Str("id", id).Str("status", req.Status).Msg("test case status updated")
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// UpdateTestCaseNotes sets the notes of a test case.
//
//	@Summary		Update test case notes
//	@Tags			TestCases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Test case ID"
//	@Param			request	body		UpdateTextRequest	true	"New notes"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/testcases/{id}/notes [patch]
func (h *Handler) UpdateTestCaseNotes(w http.ResponseWriter, r *http.Request) {
	h.updateTestCaseText(w, r, "notes", h.testCases.UpdateNotes)
}

// UpdateTestCaseProcedure sets the procedure of a test case.
//
//	@Summary		Update test case procedure
//	@Tags			TestCases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Test case ID"
//	@Param			request	body		UpdateTextRequest	true	"New procedure"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/admin/testcases/{id}/procedure [patch]
func (h *Handler) UpdateTestCaseProcedure(w http.ResponseWriter, r *http.Request) {
	h.updateTestCaseText(w, r, "procedure", h.testCases.UpdateProcedure)
}

func (h *Handler) updateTestCaseText(w http.ResponseWriter, r *http.Request, field string, update func(ctx context.Context, id, value string) error) {
	id := chi.URLParam(r, "id")

	var req UpdateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := update(r.Context(), id, strings.TrimSpace(req.Value)); err != nil {
		h.testCaseUpdateError(w, field, err)
		return
	}

	h.logger.Info().Str("id", id).Str("field", field).Msg("test case updated")
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) testCaseUpdateError(w http.ResponseWriter, field string, err error) {
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "Test case not found")
		return
	}
	h.storeError(w, "testcases", "update test case "+field, err)
}

func testCaseToResponse(tc testcase.TestCase) TestCaseResponse {
	return TestCaseResponse{
		ID:        tc.ID,
		Name:      tc.Name,
		Procedure: tc.Procedure,
		Notes:     tc.Notes,
		Status:    string(tc.Status),
		CreatedAt: tc.CreatedAt.UTC().Format(timeFormat),
	}
}
