package dashboardhttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/salespulse/internal/dashboard"
	"github.com/salespulse/salespulse/internal/sales"
	saleshttp "github.com/salespulse/salespulse/internal/sales/http"
	"github.com/salespulse/salespulse/internal/view"
)

type stubSource struct {
	payload *dashboard.Payload
	err     error
	calls   int
}

func (s *stubSource) Dashboard(ctx context.Context) (*dashboard.Payload, error) {
	s.calls++
	return s.payload, s.err
}

func newPageRouter(t *testing.T, source DashboardSource) http.Handler {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	r := chi.NewRouter()
	NewHandler(nil, source, engine).MountRoutes(r)
	return r
}

func getPage(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// newAPI runs the real API over an in-memory store.
func newAPI(t *testing.T, store sales.Store) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	saleshttp.NewHandler(nil, sales.NewService(store, nil, nil), 0).MountRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestPageRendersSeededDashboard(t *testing.T) {
	api := newAPI(t, sales.NewMemoryStore())
	client := dashboard.NewClient(api.URL, api.Client())
	_, err := client.Seed(context.Background())
	require.NoError(t, err)

	rec := getPage(t, newPageRouter(t, client), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `data-state="loaded"`)
	assert.Contains(t, body, "Sales &amp; Product Performance")
	assert.Contains(t, body, "$327,850")
	assert.Contains(t, body, "3,319")
	assert.Contains(t, body, "$81,963")
	assert.Contains(t, body, "55.6%")
	assert.Contains(t, body, "▲ 8.3%")
	assert.Contains(t, body, "▼ 1.4%")
	assert.Contains(t, body, "Jan – Jun 2024")
	assert.Equal(t, 5, strings.Count(body, `class="kpi-card"`))
	assert.Equal(t, 6, strings.Count(body, `class="slice"`))
	assert.Equal(t, 4, strings.Count(body, `class="bar"`))
	assert.Equal(t, 2, strings.Count(body, `class="series"`))
	assert.NotContains(t, body, "Unable to load data")
}

func TestPageShowsErrorWhenAPIFails(t *testing.T) {
	store := sales.NewMemoryStore()
	store.Err = errors.New("connection refused")
	api := newAPI(t, store)

	rec := getPage(t, newPageRouter(t, dashboard.NewClient(api.URL, api.Client())), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `data-state="error"`)
	assert.Contains(t, body, "Unable to load data. Check the API service.")
	assert.Contains(t, body, "Last 90 days")
	assert.NotContains(t, body, `class="kpi-card"`)
	assert.NotContains(t, body, `class="chart`)
}

func TestPageShowsErrorOnMalformedJSON(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kpis": [`))
	}))
	t.Cleanup(api.Close)

	rec := getPage(t, newPageRouter(t, dashboard.NewClient(api.URL, api.Client())), "/")
	assert.Contains(t, rec.Body.String(), `data-state="error"`)
}

func TestPageShowsErrorWhenAPIUnreachable(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	url := api.URL
	api.Close()

	rec := getPage(t, newPageRouter(t, dashboard.NewClient(url, nil)), "/")
	assert.Contains(t, rec.Body.String(), "Unable to load data. Check the API service.")
}

func TestPageFetchesOncePerLoad(t *testing.T) {
	source := &stubSource{payload: &dashboard.Payload{}}
	router := newPageRouter(t, source)

	getPage(t, router, "/")
	getPage(t, router, "/?theme=dark")
	assert.Equal(t, 2, source.calls)
}

func TestThemeAndSidebarFromQuery(t *testing.T) {
	source := &stubSource{payload: &dashboard.Payload{KPIs: map[string]float64{"totalSales": 0}}}
	body := getPage(t, newPageRouter(t, source), "/?theme=dark&sidebar=collapsed").Body.String()

	assert.Contains(t, body, `class="dark-theme"`)
	assert.Contains(t, body, "dashboard--dark")
	assert.Contains(t, body, "sidebar sidebar--collapsed sidebar--dark")
	assert.Contains(t, body, "dashboard__content--sidebar-collapsed")
	assert.Contains(t, body, "&gt;&gt;")
	assert.Contains(t, body, `href="/?theme=dark"`, "toggle re-opens the sidebar and keeps the theme")
	assert.Contains(t, body, `href="/?sidebar=collapsed"`, "theme toggle keeps the sidebar state")
	assert.Contains(t, body, "$0")
	assert.Contains(t, body, `href="#dashboard"`)
	assert.Contains(t, body, `href="#settings"`)
}
