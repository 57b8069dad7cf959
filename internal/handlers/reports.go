package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/ryff"
	"github.com/adityawrm/mindbloom-backend/internal/services"
	"github.com/adityawrm/mindbloom-backend/internal/settings"
)

// ReportHandler serves the wellbeing report endpoints and the
// questionnaire itself.
type ReportHandler struct {
	reports  *services.ReportService
	settings *settings.Manager
	log      *zap.Logger
}

func NewReportHandler(reports *services.ReportService, st *settings.Manager, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, settings: st, log: log}
}

type submitReportRequest struct {
	Answers map[string]int `json:"answers"`
}

type reportResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Report  models.WellbeingReport `json:"report"`
}

type reportListResponse struct {
	Success bool                     `json:"success"`
	Reports []models.WellbeingReport `json:"reports"`
	Total   int                      `json:"total"`
}

// Questions returns the 42 questionnaire items in the active language.
func (h *ReportHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"questions": ryff.Questions(h.settings.Language()),
	})
}

// List returns all stored reports, newest first.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports := h.reports.List(r.Context())
	writeJSON(w, http.StatusOK, reportListResponse{
		Success: true,
		Reports: reports,
		Total:   len(reports),
	})
}

// Latest returns the most recent report.
func (h *ReportHandler) Latest(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Latest(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "No reports yet")
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report})
}

// Get returns one report by id.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report})
}

// Submit scores a questionnaire. Answer keys arrive as strings from JSON;
// non-numeric keys are rejected, out-of-range ratings are ignored by the
// scorer.
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answers := make(map[int]int, len(req.Answers))
	for key, rating := range req.Answers {
		id, err := parseQuestionID(key)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid question id: "+key)
			return
		}
		answers[id] = rating
	}

	report := h.reports.Submit(r.Context(), answers)
	writeJSON(w, http.StatusCreated, reportResponse{Success: true, Report: report})
}

// Delete removes a report.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report deleted",
	})
}

// Advice returns the cached or freshly generated advice for one
// dimension, identified by the "dimension" query parameter.
func (h *ReportHandler) Advice(w http.ResponseWriter, r *http.Request) {
	dimension := r.URL.Query().Get("dimension")
	text, err := h.reports.AdviceFor(r.Context(), chi.URLParam(r, "id"), dimension)
	switch {
	case errors.Is(err, services.ErrUnknownDimension):
		writeError(w, http.StatusBadRequest, "Unknown dimension")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Report not found")
	case err != nil:
		h.log.Error("advice generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate advice")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"dimension": dimension,
			"advice":    text,
		})
	}
}

type feedbackRequest struct {
	Dimension string `json:"dimension"`
	Feedback  string `json:"feedback"`
}

// Feedback records the user's reflection on one dimension. Once every
// dimension has feedback the summary is generated and returned with the
// report.
func (h *ReportHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Feedback) == "" {
		writeError(w, http.StatusBadRequest, "Feedback is required")
		return
	}

	report, err := h.reports.RecordFeedback(r.Context(), chi.URLParam(r, "id"), req.Dimension, req.Feedback)
	switch {
	case errors.Is(err, services.ErrUnknownDimension):
		writeError(w, http.StatusBadRequest, "Unknown dimension")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Report not found")
	case err != nil:
		h.log.Error("record feedback failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to record feedback")
	default:
		writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report})
	}
}

func parseQuestionID(key string) (int, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, err
	}
	if id < 1 || id > 42 {
		return 0, errors.New("question id out of range")
	}
	return id, nil
}
