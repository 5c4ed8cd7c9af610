package dashboardhttp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salespulse/salespulse/internal/dashboard"
	"github.com/salespulse/salespulse/internal/view"
)

const fetchTimeout = 8 * time.Second

// DashboardSource returns the aggregation payload.
type DashboardSource interface {
	Dashboard(ctx context.Context) (*dashboard.Payload, error)
}

// Handler serves the dashboard page.
type Handler struct {
	logger    *slog.Logger
	source    DashboardSource
	templates *view.Engine
}

// NewHandler constructs the dashboard page handler.
func NewHandler(logger *slog.Logger, source DashboardSource, templates *view.Engine) *Handler {
	return &Handler{logger: logger, source: source, templates: templates}
}

// MountRoutes registers the page onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/", h.handlePage)
}

// handlePage fetches the payload once and renders whichever state results.
// A failed fetch still answers 200; the error lives in the page.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	page := dashboard.NewPage(dashboard.ParseUIState(r.URL.Query()))

	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	payload, err := h.source.Dashboard(ctx)
	if err != nil {
		h.logError("fetch dashboard", err)
		page = page.Fail()
	} else if page, err = page.Load(payload); err != nil {
		h.logError("build dashboard", err)
	}

	h.render(w, page)
}

func (h *Handler) render(w http.ResponseWriter, page dashboard.Page) {
	data := view.TemplateData{
		Title:       page.Title,
		CurrentPath: "/",
		Data:        page,
	}
	if page.Dark() {
		data.BodyClass = "dark-theme"
	}
	if err := h.templates.Render(w, http.StatusOK, "pages/dashboard.html", data); err != nil {
		h.logError("render dashboard", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Error(msg, slog.Any("error", err))
	}
}
