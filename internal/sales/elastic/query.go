package elastic

import (
	"github.com/salespulse/salespulse/internal/sales"
)

// mappings types the five record fields: two keyword dimensions, a double
// and an integer measure, and a date.
func mappings() map[string]any {
	return map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"region":  map[string]any{"type": "keyword"},
				"product": map[string]any{"type": "keyword"},
				"sales":   map[string]any{"type": "double"},
				"orders":  map[string]any{"type": "integer"},
				"date":    map[string]any{"type": "date"},
			},
		},
	}
}

func sumOf(field string) map[string]any {
	return map[string]any{"sum": map[string]any{"field": field}}
}

func measures() map[string]any {
	return map[string]any{
		"total_sales":  sumOf("sales"),
		"total_orders": sumOf("orders"),
	}
}

// dashboardQuery is the single search request behind the dashboard.
func dashboardQuery() map[string]any {
	regionAggs := measures()
	regionAggs["avg_order_value"] = map[string]any{
		"bucket_script": map[string]any{
			"buckets_path": map[string]any{
				"sales":  "total_sales",
				"orders": "total_orders",
			},
			"script": "params.orders == 0 ? 0 : params.sales / params.orders",
		},
	}

	return map[string]any{
		"size": 0,
		"aggs": map[string]any{
			"total_sales":  sumOf("sales"),
			"total_orders": sumOf("orders"),
			"sales_by_region": map[string]any{
				"terms": map[string]any{
					"field": "region",
					"size":  sales.RegionLimit,
					"order": map[string]any{"total_sales": "desc"},
				},
				"aggs": regionAggs,
			},
			"sales_by_product": map[string]any{
				"terms": map[string]any{
					"field": "product",
					"size":  sales.ProductLimit,
					"order": map[string]any{"total_sales": "desc"},
				},
				"aggs": measures(),
			},
			"sales_over_time": map[string]any{
				"date_histogram": map[string]any{
					"field":             "date",
					"calendar_interval": "month",
					"format":            "yyyy-MM-dd",
				},
				"aggs": measures(),
			},
		},
	}
}
