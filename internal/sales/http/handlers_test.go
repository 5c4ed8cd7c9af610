package saleshttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/salespulse/internal/sales"
)

type failingStore struct {
	*sales.MemoryStore
	err error
}

func (f failingStore) Aggregate(ctx context.Context) (sales.Aggregation, error) {
	return sales.Aggregation{}, f.err
}

func (f failingStore) BulkInsert(ctx context.Context, records []sales.Record) (int, error) {
	return 0, f.err
}

func newRouter(svc SalesService, seedRPM int) http.Handler {
	r := chi.NewRouter()
	NewHandler(nil, svc, seedRPM).MountRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.0.2.10:4411"
	h.ServeHTTP(rec, req)
	return rec
}

func TestSeedThenDashboard(t *testing.T) {
	svc := sales.NewService(sales.NewMemoryStore(), nil, nil)
	router := newRouter(svc, 0)

	rec := get(t, router, "/seed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"✅ Data seeded successfully!","count":22}`, rec.Body.String())

	rec = get(t, router, "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		KPIs      map[string]float64 `json:"kpis"`
		KPITrends map[string]struct {
			Value float64 `json:"value"`
			Label string  `json:"label"`
		} `json:"kpiTrends"`
		Regions  []map[string]any `json:"regions"`
		Products []map[string]any `json:"products"`
		Trend    []map[string]any `json:"trend"`
		Filters  struct {
			DateRange string `json:"dateRange"`
		} `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 327850.0, body.KPIs["totalSales"])
	assert.Equal(t, 3319.0, body.KPIs["totalOrders"])
	assert.Equal(t, 4.0, body.KPIs["activeRegions"])
	assert.Equal(t, 81962.5, body.KPIs["avgRevenuePerRegion"])
	assert.Equal(t, 8.3, body.KPITrends["totalSales"].Value)
	assert.Equal(t, "vs. last quarter", body.KPITrends["conversionRate"].Label)
	assert.Len(t, body.Regions, 4)
	assert.Equal(t, "North America", body.Regions[0]["region"])
	assert.Contains(t, body.Regions[0], "avgOrderValue")
	assert.Len(t, body.Products, 6)
	assert.Contains(t, body.Products[0], "share")
	require.Len(t, body.Trend, 6)
	assert.Equal(t, "2024-01-01", body.Trend[0]["date"])
	assert.Equal(t, "Jan – Jun 2024", body.Filters.DateRange)
}

func TestDashboardStoreFailureReturns500(t *testing.T) {
	store := failingStore{MemoryStore: sales.NewMemoryStore(), err: errors.New("connect: connection refused")}
	router := newRouter(sales.NewService(store, nil, nil), 0)

	rec := get(t, router, "/api/dashboard")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to load dashboard data", body["message"])
	assert.Contains(t, body["details"], "connection refused")
}

func TestSeedFailureReturns500(t *testing.T) {
	store := failingStore{MemoryStore: sales.NewMemoryStore(), err: errors.New("bulk rejected")}
	router := newRouter(sales.NewService(store, nil, nil), 0)

	rec := get(t, router, "/seed")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to seed data", body["message"])
	assert.Contains(t, body["details"], "bulk rejected")
}

func TestSeedRateLimited(t *testing.T) {
	router := newRouter(sales.NewService(sales.NewMemoryStore(), nil, nil), 1)

	require.Equal(t, http.StatusOK, get(t, router, "/seed").Code)
	rec := get(t, router, "/seed")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The dashboard is not limited.
	assert.Equal(t, http.StatusOK, get(t, router, "/api/dashboard").Code)
}

func TestEmptyStoreDashboard(t *testing.T) {
	router := newRouter(sales.NewService(sales.NewMemoryStore(), nil, nil), 0)

	rec := get(t, router, "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"regions":[]`)
	assert.Contains(t, rec.Body.String(), `"totalSales":0`)
}
