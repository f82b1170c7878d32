package admin

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AnalyzeImageRequest carries a captured image to the vision model.
type AnalyzeImageRequest struct {
	Image string `json:"image"`
}

// AnalyzeImageResponse is the vision model's seat-occupancy answer.
type AnalyzeImageResponse struct {
	Analysis string `json:"analysis"`
}

// CaptureImageResponse carries a captured still as a data URL.
type CaptureImageResponse struct {
	Image string `json:"image"`
}

// SystemInfoHandler returns a snapshot of host resources.
//
//	@Summary		System info
//	@Description	Host CPU, memory, disk and network metrics
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	ports.SystemSnapshot
//	@Security		CookieAuth
//	@Router			/api/system-info [get]
func (h *Handler) SystemInfoHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := h.system.Snapshot(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to collect system info")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to collect system info")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// CaptureImage takes a still from the host camera.
//
//	@Summary		Capture camera image
//	@Tags			HotSeat
//	@Produce		json
//	@Success		200	{object}	CaptureImageResponse
//	@Failure		503	{object}	ErrorResponse	"Camera not available"
//	@Security		CookieAuth
//	@Router			/api/capture-image [get]
func (h *Handler) CaptureImage(w http.ResponseWriter, r *http.Request) {
	if h.camera == nil {
		writeError(w, http.StatusServiceUnavailable, "camera_unavailable", "Camera capture is not enabled")
		return
	}

	image, err := h.camera.Capture(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("camera capture failed")
		writeError(w, http.StatusInternalServerError, "capture_failed", "Failed to capture image")
		return
	}

	writeJSON(w, http.StatusOK, CaptureImageResponse{Image: image})
}

// AnalyzeImage forwards a captured image to the vision model.
//
//	@Summary		Analyze seat occupancy
//	@Description	Sends a base64 JPEG to the vision model and returns its description
//	@Tags			HotSeat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalyzeImageRequest	true	"Base64 image"
//	@Success		200		{object}	AnalyzeImageResponse
//	@Failure		503		{object}	ErrorResponse	"Vision not configured"
//	@Security		CookieAuth
//	@Router			/api/analyze-image [post]
func (h *Handler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	analyzer := h.imageAnalyzer()
	if analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "vision_unavailable", "Vision analysis is not enabled")
		return
	}

	var req AnalyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "An 'image' field is required")
		return
	}

	// Accept both raw base64 and data URLs; the analyzer wants raw base64.
	image := req.Image
	if idx := strings.Index(image, ","); idx >= 0 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}

	analysis, err := analyzer.Analyze(r.Context(), image)
	if err != nil {
		h.logger.Error().Err(err).Msg("vision analysis failed")
		if h.metrics != nil {
			h.metrics.VisionRequests.WithLabelValues("failure").Inc()
		}
		writeError(w, http.StatusBadGateway, "vision_failed", "Vision analysis failed")
		return
	}

	if h.metrics != nil {
		h.metrics.VisionRequests.WithLabelValues("success").Inc()
	}
	writeJSON(w, http.StatusOK, AnalyzeImageResponse{Analysis: analysis})
}
