package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/settings"
)

// SettingsHandler serves the user preference endpoints.
type SettingsHandler struct {
	settings *settings.Manager
	log      *zap.Logger
}

func NewSettingsHandler(st *settings.Manager, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: st, log: log}
}

type settingsResponse struct {
	Success       bool   `json:"success"`
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	APIKeySet     bool   `json:"api_key_set"`
	APIKeyDefault bool   `json:"api_key_default"`
}

type updateSettingsRequest struct {
	Language *string `json:"language,omitempty"`
	Theme    *string `json:"theme,omitempty"`
	APIKey   *string `json:"api_key,omitempty"`
}

func (h *SettingsHandler) current() settingsResponse {
	return settingsResponse{
		Success:       true,
		Language:      h.settings.Language(),
		Theme:         h.settings.Theme(),
		APIKeySet:     h.settings.APIKey() != "",
		APIKeyDefault: !h.settings.HasOverride(),
	}
}

// Get returns the current settings. The API key itself is never echoed
// back, only whether one is configured.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.current())
}

// Update applies any subset of language, theme, and API key. Fields left
// out of the request are untouched; an empty api_key clears the override.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	if req.Language != nil {
		if err := h.settings.SetLanguage(ctx, *req.Language); err != nil {
			writeError(w, http.StatusBadRequest, "Unsupported language")
			return
		}
	}
	if req.Theme != nil {
		if err := h.settings.SetTheme(ctx, *req.Theme); err != nil {
			writeError(w, http.StatusBadRequest, "Unsupported theme")
			return
		}
	}
	if req.APIKey != nil {
		if err := h.settings.SetAPIKey(ctx, *req.APIKey); err != nil {
			h.log.Error("set api key failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to store API key")
			return
		}
	}

	writeJSON(w, http.StatusOK, h.current())
}
