package saleshttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/salespulse/salespulse/internal/platform/httpx"
	"github.com/salespulse/salespulse/internal/sales"
)

// SalesService is the seed and dashboard contract used by the handler.
type SalesService interface {
	Seed(ctx context.Context) (int, error)
	Dashboard(ctx context.Context) (sales.Dashboard, error)
}

// Handler serves the sales API.
type Handler struct {
	logger  *slog.Logger
	service SalesService
	seedRPM int
}

// NewHandler constructs the sales HTTP handler. seedPerMinute caps /seed calls
// per client IP; zero or less disables the limit.
func NewHandler(logger *slog.Logger, service SalesService, seedPerMinute int) *Handler {
	return &Handler{logger: logger, service: service, seedRPM: seedPerMinute}
}

// SeedMessage is returned by a successful /seed.
const SeedMessage = "✅ Data seeded successfully!"

type seedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *Handler) handleSeed(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Seed(r.Context())
	if err != nil {
		h.handleServerError(w, "Failed to seed data", err)
		return
	}
	httpx.JSON(w, http.StatusOK, seedResponse{Message: SeedMessage, Count: count})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.handleServerError(w, "Failed to load dashboard data", err)
		return
	}
	httpx.JSON(w, http.StatusOK, dash)
}

func (h *Handler) handleServerError(w http.ResponseWriter, message string, err error) {
	h.logError(message, err)
	httpx.Fail(w, http.StatusInternalServerError, message, err)
}

func (h *Handler) logError(message string, err error) {
	if h.logger != nil {
		h.logger.Error(message, slog.Any("error", err))
	}
}
