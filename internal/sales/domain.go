package sales

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// IndexName is the logical dataset backing the dashboard.
const IndexName = "sales-performance"

// Result caps for the grouped facets.
const (
	RegionLimit  = 20
	ProductLimit = 10
)

// TrendDateLayout labels monthly buckets (yyyy-MM-dd).
const TrendDateLayout = "2006-01-02"

// ErrStoreUnavailable marks transport level failures talking to the store.
var ErrStoreUnavailable = errors.New("sales: store unavailable")

// Record is one synthetic sales fact. Records are immutable once written and
// carry no natural key.
type Record struct {
	Region  string          `json:"region" validate:"required"`
	Product string          `json:"product" validate:"required"`
	Sales   decimal.Decimal `json:"sales" validate:"gte=0"`
	Orders  int             `json:"orders" validate:"gte=0"`
	Date    time.Time       `json:"date" validate:"required"`
}

// Store is the external search/analytics engine.
type Store interface {
	// EnsureSchema creates the backing index or table when it is missing.
	EnsureSchema(ctx context.Context) error
	// BulkInsert writes all records in one request and makes them visible to
	// subsequent reads.
	BulkInsert(ctx context.Context, records []Record) (int, error)
	// Aggregate runs the dashboard aggregation in a single round trip.
	Aggregate(ctx context.Context) (Aggregation, error)
}

// Aggregation is the raw facet output of the store, before reshaping.
type Aggregation struct {
	TotalSales  float64
	TotalOrders float64
	Regions     []RegionBucket
	Products    []ProductBucket
	Months      []MonthBucket
}

// RegionBucket carries the per-region sums and the bucket-script average.
type RegionBucket struct {
	Key           string
	Sales         float64
	Orders        float64
	AvgOrderValue float64
}

// ProductBucket carries the per-product sums.
type ProductBucket struct {
	Key    string
	Sales  float64
	Orders float64
}

// MonthBucket is one calendar month of the date histogram.
type MonthBucket struct {
	Label  string
	Sales  float64
	Orders float64
}

// Dashboard is the JSON contract consumed by the dashboard client.
type Dashboard struct {
	KPIs      KPIs                `json:"kpis"`
	KPITrends map[string]KPITrend `json:"kpiTrends"`
	Regions   []RegionRow         `json:"regions"`
	Products  []ProductRow        `json:"products"`
	Trend     []TrendPoint        `json:"trend"`
	Filters   Filters             `json:"filters"`
}

// KPIs holds the headline metrics.
type KPIs struct {
	TotalSales          float64 `json:"totalSales"`
	AvgRevenuePerRegion float64 `json:"avgRevenuePerRegion"`
	TotalOrders         float64 `json:"totalOrders"`
	ConversionRate      float64 `json:"conversionRate"`
	ActiveRegions       int     `json:"activeRegions"`
}

// KPITrend is a static delta shown under a KPI card.
type KPITrend struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RegionRow is one bar of the region chart.
type RegionRow struct {
	Region        string  `json:"region"`
	Sales         float64 `json:"sales"`
	Orders        float64 `json:"orders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// ProductRow is one product line with its share of total sales.
type ProductRow struct {
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
	Orders  float64 `json:"orders"`
	Share   float64 `json:"share"`
}

// TrendPoint is one monthly bucket of the trend chart.
type TrendPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders float64 `json:"orders"`
}

// Filters describes the scope label shown above the dashboard.
type Filters struct {
	DateRange string `json:"dateRange"`
}
