package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adityawrm/mindbloom-backend/internal/handlers"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Journal  *handlers.JournalHandler
	Reports  *handlers.ReportHandler
	Settings *handlers.SettingsHandler
	Stats    *handlers.StatsHandler
	Events   *handlers.EventsHandler
	Health   http.HandlerFunc
}

// Setup registers the full API surface on the router.
func Setup(r *chi.Mux, h Handlers) {
	// Journal routes
	r.Get("/api/journals", h.Journal.List)
	r.Post("/api/journals", h.Journal.Create)
	r.Get("/api/journals/insights", h.Journal.Insights)
	r.Get("/api/journals/{id}", h.Journal.Get)
	r.Put("/api/journals/{id}", h.Journal.Update)
	r.Delete("/api/journals/{id}", h.Journal.Delete)

	// Questionnaire and report routes
	r.Get("/api/ryff/questions", h.Reports.Questions)
	r.Get("/api/reports", h.Reports.List)
	r.Post("/api/reports", h.Reports.Submit)
	r.Get("/api/reports/latest", h.Reports.Latest)
	r.Get("/api/reports/{id}", h.Reports.Get)
	r.Delete("/api/reports/{id}", h.Reports.Delete)
	r.Get("/api/reports/{id}/advice", h.Reports.Advice)
	r.Post("/api/reports/{id}/feedback", h.Reports.Feedback)

	// Settings routes
	r.Get("/api/settings", h.Settings.Get)
	r.Put("/api/settings", h.Settings.Update)

	// Dashboard stats
	r.Get("/api/stats", h.Stats.Overview)

	// Realtime settings sync
	r.Get("/ws/events", h.Events.Serve)

	r.Get("/health", h.Health)
}
