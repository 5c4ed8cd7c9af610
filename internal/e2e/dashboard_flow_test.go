package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/salespulse/internal/app"
	"github.com/salespulse/salespulse/internal/dashboard"
	dashboardhttp "github.com/salespulse/salespulse/internal/dashboard/http"
	"github.com/salespulse/salespulse/internal/observability"
	"github.com/salespulse/salespulse/internal/sales"
	saleshttp "github.com/salespulse/salespulse/internal/sales/http"
	"github.com/salespulse/salespulse/internal/view"
	"github.com/salespulse/salespulse/web"
)

type stack struct {
	api       *httptest.Server
	dashboard *httptest.Server
	client    *dashboard.Client
}

func newStack(t *testing.T) stack {
	t.Helper()
	cfg := &app.Config{AppEnv: "test", AppRequestTimeout: 5 * time.Second, StoreDriver: app.DriverMemory}

	apiMetrics := observability.NewMetrics()
	store := sales.Instrument(sales.NewMemoryStore(), app.DriverMemory, apiMetrics)
	api := httptest.NewServer(app.NewRouter(app.RouterParams{
		Config:       cfg,
		SalesHandler: saleshttp.NewHandler(nil, sales.NewService(store, nil, nil), 0),
		Metrics:      apiMetrics,
	}))
	t.Cleanup(api.Close)

	client := dashboard.NewClient(api.URL, api.Client())
	engine, err := view.NewEngine()
	require.NoError(t, err)
	page := httptest.NewServer(app.NewDashboardRouter(app.DashboardRouterParams{
		Config:  cfg,
		Pages:   dashboardhttp.NewHandler(nil, client, engine),
		Static:  web.Static,
		Metrics: observability.NewMetrics(),
	}))
	t.Cleanup(page.Close)

	return stack{api: api, dashboard: page, client: client}
}

func fetch(t *testing.T, url string) (int, http.Header, string) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, res.Header, string(body)
}

func TestSeedThenRenderDashboard(t *testing.T) {
	s := newStack(t)

	// Before seeding the page renders zeros rather than an error.
	code, _, body := fetch(t, s.dashboard.URL+"/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `data-state="loaded"`)
	assert.Contains(t, body, "$0")

	res, err := s.client.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 22, res.Count)

	code, header, body := fetch(t, s.dashboard.URL+"/?theme=dark")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, header.Get("Content-Security-Policy"), "default-src 'self'")
	assert.Contains(t, body, "$327,850")
	assert.Contains(t, body, "3,319")
	assert.Contains(t, body, `class="dark-theme"`)
	assert.Contains(t, body, `href="/static/css/app.css"`)

	code, header, css := fetch(t, s.dashboard.URL+"/static/css/app.css")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(header.Get("Content-Type"), "text/css"))
	assert.Equal(t, "public, max-age=3600", header.Get("Cache-Control"))
	assert.Contains(t, css, ".kpi-card")
}

func TestAPIMetricsReflectTraffic(t *testing.T) {
	s := newStack(t)

	_, err := s.client.Seed(context.Background())
	require.NoError(t, err)
	_, err = s.client.Dashboard(context.Background())
	require.NoError(t, err)

	code, _, body := fetch(t, s.api.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "salespulse_seeded_records_total 22")
	assert.Contains(t, body, `salespulse_store_operations_total{driver="memory",op="aggregate",result="ok"} 1`)
	assert.Contains(t, body, `salespulse_http_requests_total{code="200",route="/api/dashboard"} 1`)
}

func TestAPIDownShowsErrorBanner(t *testing.T) {
	s := newStack(t)
	s.api.Close()

	code, _, body := fetch(t, s.dashboard.URL+"/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `data-state="error"`)
	assert.Contains(t, body, dashboard.ErrorMessage)
	assert.NotContains(t, body, `class="kpi-card"`)
}
