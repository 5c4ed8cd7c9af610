package sales

import "math"

// DateRangeLabel is the static scope label returned with every dashboard.
const DateRangeLabel = "Jan – Jun 2024"

const trendLabel = "vs. last quarter"

// conversionFactor drives the placeholder conversion rate. It is not a real
// funnel metric.
const conversionFactor = 1.8

// PlaceholderTrends returns the fixed KPI deltas. They are not computed from
// data.
func PlaceholderTrends() map[string]KPITrend {
	return map[string]KPITrend{
		"totalSales":          {Value: 8.3, Label: trendLabel},
		"avgRevenuePerRegion": {Value: -1.4, Label: trendLabel},
		"totalOrders":         {Value: 5.6, Label: trendLabel},
		"conversionRate":      {Value: 0.7, Label: trendLabel},
		"activeRegions":       {Value: 0, Label: trendLabel},
	}
}

// Reshape converts raw facets into the flat dashboard contract.
func Reshape(agg Aggregation) Dashboard {
	totalSales := finite(agg.TotalSales)
	totalOrders := finite(agg.TotalOrders)

	regions := agg.Regions
	if len(regions) > RegionLimit {
		regions = regions[:RegionLimit]
	}
	products := agg.Products
	if len(products) > ProductLimit {
		products = products[:ProductLimit]
	}

	dash := Dashboard{
		KPITrends: PlaceholderTrends(),
		Regions:   make([]RegionRow, 0, len(regions)),
		Products:  make([]ProductRow, 0, len(products)),
		Trend:     make([]TrendPoint, 0, len(agg.Months)),
		Filters:   Filters{DateRange: DateRangeLabel},
	}

	for _, bucket := range regions {
		dash.Regions = append(dash.Regions, RegionRow{
			Region:        bucket.Key,
			Sales:         finite(bucket.Sales),
			Orders:        finite(bucket.Orders),
			AvgOrderValue: finite(bucket.AvgOrderValue),
		})
	}
	for _, bucket := range products {
		dash.Products = append(dash.Products, ProductRow{
			Product: bucket.Key,
			Sales:   finite(bucket.Sales),
			Orders:  finite(bucket.Orders),
			Share:   ratio(bucket.Sales, totalSales),
		})
	}
	for _, bucket := range agg.Months {
		dash.Trend = append(dash.Trend, TrendPoint{
			Date:   bucket.Label,
			Sales:  finite(bucket.Sales),
			Orders: finite(bucket.Orders),
		})
	}

	activeRegions := len(dash.Regions)
	dash.KPIs = KPIs{
		TotalSales:          totalSales,
		AvgRevenuePerRegion: ratio(totalSales, float64(activeRegions)),
		TotalOrders:         totalOrders,
		ConversionRate:      ConversionRate(totalOrders),
		ActiveRegions:       activeRegions,
	}
	return dash
}

// ConversionRate applies the placeholder formula
// orders / max(orders*1.8, 1) * 100, returning 0 for no orders.
func ConversionRate(totalOrders float64) float64 {
	if totalOrders == 0 {
		return 0
	}
	return totalOrders / math.Max(totalOrders*conversionFactor, 1) * 100
}

// AvgOrderValue mirrors the store-side bucket script.
func AvgOrderValue(sales, orders float64) float64 {
	return ratio(sales, orders)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return finite(num / den)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
