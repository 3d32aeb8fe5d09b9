package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leettrack/leettrack/internal/services"
	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

// CheatSheetHandler provides HTTP handlers for cheat sheets.
type CheatSheetHandler struct {
	sheetService *services.CheatSheetService
}

// NewCheatSheetHandler constructs a handler with the provided service.
func NewCheatSheetHandler(sheetService *services.CheatSheetService) *CheatSheetHandler {
	return &CheatSheetHandler{sheetService: sheetService}
}

// CheatSheetRouter registers cheat sheet routes on the given router.
func CheatSheetRouter(r chi.Router, sheetService *services.CheatSheetService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCheatSheetHandler(sheetService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListCheatSheets)
	r.Post("/", handler.CreateCheatSheet)
	r.Route("/{sheetID}", func(r chi.Router) {
		r.Get("/", handler.GetCheatSheet)
		r.Put("/", handler.UpdateCheatSheet)
		r.Delete("/", handler.DeleteCheatSheet)
	})
}

func (h *CheatSheetHandler) ListCheatSheets(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sheets, err := h.sheetService.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cheat sheets")
		return
	}

	writeJSON(w, http.StatusOK, sheets)
}

func (h *CheatSheetHandler) GetCheatSheet(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sheet, err := h.sheetService.Get(r.Context(), ownerID, chi.URLParam(r, "sheetID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cheat sheet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch cheat sheet")
		return
	}

	writeJSON(w, http.StatusOK, sheet)
}

func (h *CheatSheetHandler) CreateCheatSheet(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var sheet types.CheatSheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	sheet.ID = ""

	if err := validateCheatSheet(sheet); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.sheetService.Create(r.Context(), ownerID, sheet)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create cheat sheet")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *CheatSheetHandler) UpdateCheatSheet(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var patch types.CheatSheetUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		writeError(w, http.StatusBadRequest, "title cannot be empty")
		return
	}
	if patch.Type != nil && !types.ValidCheatSheetType(*patch.Type) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid type %q", *patch.Type))
		return
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		writeError(w, http.StatusBadRequest, "content cannot be empty")
		return
	}

	updated, err := h.sheetService.Update(r.Context(), ownerID, chi.URLParam(r, "sheetID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cheat sheet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cheat sheet")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *CheatSheetHandler) DeleteCheatSheet(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.sheetService.Delete(r.Context(), ownerID, chi.URLParam(r, "sheetID")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cheat sheet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete cheat sheet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func validateCheatSheet(sheet types.CheatSheet) error {
	if strings.TrimSpace(sheet.Title) == "" {
		return errors.New("title is required")
	}
	if !types.ValidCheatSheetType(sheet.Type) {
		return fmt.Errorf("invalid type %q", sheet.Type)
	}
	if strings.TrimSpace(sheet.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}
