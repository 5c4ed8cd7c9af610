package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salespulse/salespulse/internal/observability"
	"github.com/salespulse/salespulse/internal/platform/httpx"
	saleshttp "github.com/salespulse/salespulse/internal/sales/http"
)

// RouterParams groups dependencies for building the API router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	SalesHandler *saleshttp.Handler
	Metrics      *observability.Metrics
}

// NewRouter constructs the API chi.Router.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
		CORS:    true,
	}) {
		r.Use(mw)
	}
	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)

	r.Get("/healthz", healthz)

	if params.SalesHandler != nil {
		params.SalesHandler.MountRoutes(r)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}
	return r
}

// PageHandler is mounted at the dashboard root.
type PageHandler interface {
	MountRoutes(r chi.Router)
}

// DashboardRouterParams groups dependencies for the dashboard web client.
type DashboardRouterParams struct {
	Logger  *slog.Logger
	Config  *Config
	Pages   PageHandler
	Static  fs.FS
	Metrics *observability.Metrics
}

// NewDashboardRouter constructs the router of the dashboard client.
func NewDashboardRouter(params DashboardRouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
		// Charts are inline SVG and the stylesheet is served from /static.
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data:",
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", healthz)
	if params.Pages != nil {
		params.Pages.MountRoutes(r)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	if params.Static != nil {
		mountStatic(r, params.Static, params.Logger)
	}
	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
