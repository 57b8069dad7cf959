package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/services"
)

// Insighter produces the cross-entry dashboard insight.
type Insighter interface {
	JournalInsights(ctx context.Context, entries []models.JournalEntry) string
}

// JournalHandler serves the journal entry endpoints.
type JournalHandler struct {
	entries  *services.EntryService
	insights Insighter
	log      *zap.Logger
}

func NewJournalHandler(entries *services.EntryService, insights Insighter, log *zap.Logger) *JournalHandler {
	return &JournalHandler{entries: entries, insights: insights, log: log}
}

type saveEntryRequest struct {
	Content string `json:"content"`
}

type entryResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Entry   models.JournalEntry `json:"entry"`
}

type entryListResponse struct {
	Success bool                  `json:"success"`
	Entries []models.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// List returns all entries, newest first.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.entries.List(r.Context())
	writeJSON(w, http.StatusOK, entryListResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}

// Get returns one entry by id.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Success: true, Entry: entry})
}

// Create analyzes and stores a new entry.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entries.Add(r.Context(), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		h.log.Error("create entry failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save entry")
		return
	}
	writeJSON(w, http.StatusCreated, entryResponse{Success: true, Entry: entry})
}

// Update re-analyzes an existing entry with new content.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req saveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entries.Update(r.Context(), chi.URLParam(r, "id"), req.Content)
	switch {
	case errors.Is(err, services.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "Content is required")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Entry not found")
	case err != nil:
		h.log.Error("update entry failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
	default:
		writeJSON(w, http.StatusOK, entryResponse{Success: true, Entry: entry})
	}
}

// Delete removes an entry.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entries.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Entry deleted",
	})
}

// Insights returns an AI-generated observation over the recent entries.
func (h *JournalHandler) Insights(w http.ResponseWriter, r *http.Request) {
	text := h.insights.JournalInsights(r.Context(), h.entries.List(r.Context()))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"insights": text,
	})
}
