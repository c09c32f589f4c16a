package http

import (
	"github.com/go-chi/chi/v5"

	"shoptrack/internal/usecase/tracking"
)

// NewRouter builds the API surface over the tracking service. The
// router is only mounted after startup reconciliation has finished, so
// no request can race a half-healed schema.
func NewRouter(svc *tracking.Service) chi.Router {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Get("/lookup/{key}", h.lookup)
		r.Get("/search", h.search)
		r.Get("/summary", h.summary)
		r.Get("/last3", h.lastIntake)

		r.Post("/sync/batch", h.syncBatch)

		r.Post("/records/{category}", h.createRecord)
		r.Get("/records/{category}", h.listRecords)

		r.Post("/spares", h.createSpare)
		r.Get("/spares", h.listSpares)

		r.Get("/export/supplies", h.exportSupplies)
		r.Get("/export/search", h.exportSearch)
		r.Get("/export/summary", h.exportSummary)

		r.Post("/admin/repair", h.repair)
	})

	return r
}
