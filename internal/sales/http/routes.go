package saleshttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/salespulse/salespulse/internal/platform/httpx"
)

// MountRoutes registers the seed and dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/api/dashboard", h.handleDashboard)
	r.Group(func(gr chi.Router) {
		if h.seedRPM > 0 {
			gr.Use(httprate.Limit(h.seedRPM, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					httpx.JSON(w, http.StatusTooManyRequests, httpx.ErrorBody{
						Message: "Failed to seed data",
						Details: "rate limit exceeded",
					})
				}),
			))
		}
		gr.Get("/seed", h.handleSeed)
	})
}
