package perf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/salespulse/salespulse/internal/app"
	"github.com/salespulse/salespulse/internal/sales"
	saleshttp "github.com/salespulse/salespulse/internal/sales/http"
)

func newAPI(tb testing.TB) http.Handler {
	tb.Helper()
	svc := sales.NewService(sales.NewMemoryStore(), nil, nil)
	if _, err := svc.Seed(context.Background()); err != nil {
		tb.Fatalf("seed: %v", err)
	}
	cfg := &app.Config{AppEnv: "test", AppRequestTimeout: 5 * time.Second}
	return app.NewRouter(app.RouterParams{
		Config:       cfg,
		SalesHandler: saleshttp.NewHandler(nil, svc, 0),
	})
}

func TestDashboardLatencyTarget(t *testing.T) {
	handler := newAPI(t)
	const threshold = 250 * time.Millisecond

	samples := make([]time.Duration, 0, 50)
	for i := 0; i < cap(samples); i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		start := time.Now()
		handler.ServeHTTP(rec, req)
		samples = append(samples, time.Since(start))
		if rec.Code != http.StatusOK {
			t.Fatalf("dashboard returned %d: %s", rec.Code, rec.Body.String())
		}
	}

	if p95 := percentile95(samples); p95 > threshold {
		t.Fatalf("dashboard latency regression: p95=%s threshold=%s", p95, threshold)
	}
}

func BenchmarkDashboard(b *testing.B) {
	handler := newAPI(b)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	return sorted[index]
}
