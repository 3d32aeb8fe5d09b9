package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leettrack/leettrack/internal/services"
	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

// ProblemHandler provides HTTP handlers for tracked problems.
type ProblemHandler struct {
	problemService *services.ProblemService
}

// NewProblemHandler constructs a handler with the provided service.
func NewProblemHandler(problemService *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

// ProblemRouter registers problem routes on the given router. All
// routes require authentication and operate on the caller's own data.
func ProblemRouter(r chi.Router, problemService *services.ProblemService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewProblemHandler(problemService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListProblems)
	r.Post("/", handler.CreateProblem)
	r.Route("/{problemID}", func(r chi.Router) {
		r.Get("/", handler.GetProblem)
		r.Put("/", handler.UpdateProblem)
		r.Delete("/", handler.DeleteProblem)
	})
}

func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	problems, err := h.problemService.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list problems")
		return
	}

	writeJSON(w, http.StatusOK, problems)
}

func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	problem, err := h.problemService.Get(r.Context(), ownerID, chi.URLParam(r, "problemID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "problem not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch problem")
		return
	}

	writeJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var problem types.Problem
	if err := json.NewDecoder(r.Body).Decode(&problem); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	problem.ID = ""

	if err := validateProblem(problem); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.problemService.Create(r.Context(), ownerID, problem)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateNumber) {
			writeErrorCode(w, http.StatusConflict,
				fmt.Sprintf("problem number %d already exists", problem.Number), "duplicate_number")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create problem")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ProblemHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var patch types.ProblemUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := validateProblemPatch(patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.problemService.Update(r.Context(), ownerID, chi.URLParam(r, "problemID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "problem not found")
			return
		}
		if errors.Is(err, store.ErrDuplicateNumber) {
			writeErrorCode(w, http.StatusConflict, "problem number already exists", "duplicate_number")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update problem")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.problemService.Delete(r.Context(), ownerID, chi.URLParam(r, "problemID")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "problem not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete problem")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func validateProblem(problem types.Problem) error {
	if strings.TrimSpace(problem.Title) == "" {
		return errors.New("title is required")
	}
	if problem.Number < 1 {
		return errors.New("number must be a positive integer")
	}
	if err := validateLink(problem.Link); err != nil {
		return err
	}
	if !types.ValidDifficulty(problem.Difficulty) {
		return fmt.Errorf("invalid difficulty %q", problem.Difficulty)
	}
	if !types.ValidStatus(problem.Status) {
		return fmt.Errorf("invalid status %q", problem.Status)
	}
	return validateDateSolved(problem.DateSolved)
}

func validateProblemPatch(patch types.ProblemUpdate) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if patch.Number != nil && *patch.Number < 1 {
		return errors.New("number must be a positive integer")
	}
	if patch.Link != nil {
		if err := validateLink(*patch.Link); err != nil {
			return err
		}
	}
	if patch.Difficulty != nil && !types.ValidDifficulty(*patch.Difficulty) {
		return fmt.Errorf("invalid difficulty %q", *patch.Difficulty)
	}
	if patch.Status != nil && !types.ValidStatus(*patch.Status) {
		return fmt.Errorf("invalid status %q", *patch.Status)
	}
	if patch.DateSolved != nil {
		return validateDateSolved(*patch.DateSolved)
	}
	return nil
}

func validateLink(link string) error {
	if strings.TrimSpace(link) == "" {
		return nil
	}
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("link must be a valid URL")
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if host != "leetcode.com" && !strings.HasSuffix(host, ".leetcode.com") {
		return errors.New("link must be a leetcode.com problem URL")
	}
	return nil
}

func validateDateSolved(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(types.DateLayout, date); err != nil {
		return errors.New("dateSolved must be in YYYY-MM-DD format")
	}
	return nil
}
