package handlers

import (
	"net/http"

	"github.com/adityawrm/mindbloom-backend/internal/services"
)

// StatsHandler serves the dashboard overview endpoint.
type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview returns streak, entry count, and the sentiment and report
// score deltas for the dashboard.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   h.stats.Overview(r.Context()),
	})
}
