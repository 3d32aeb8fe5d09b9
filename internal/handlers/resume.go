package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leettrack/leettrack/internal/services"
	"github.com/leettrack/leettrack/types"
)

// ResumeHandler provides HTTP handlers for the resume builder.
type ResumeHandler struct {
	resumeService *services.ResumeService
}

// NewResumeHandler constructs a handler with the provided service.
func NewResumeHandler(resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// ResumeRouter registers resume routes on the given router.
func ResumeRouter(r chi.Router, resumeService *services.ResumeService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewResumeHandler(resumeService)

	r.Use(authMiddleware)
	r.Get("/", handler.GetResume)
	r.Put("/", handler.SaveResume)
	r.Post("/export", handler.ExportResume)
}

func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resume, err := h.resumeService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch resume")
		return
	}

	writeJSON(w, http.StatusOK, resume)
}

func (h *ResumeHandler) SaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var resume types.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	resume.UserID = userID

	if resume.Theme != "" && !types.ValidTheme(resume.Theme) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid theme %q", resume.Theme))
		return
	}

	saved, err := h.resumeService.Save(r.Context(), resume)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (h *ResumeHandler) ExportResume(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	key, err := h.resumeService.Export(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrExportUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "resume export is not configured")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to export resume")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}
