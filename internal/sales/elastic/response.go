package elastic

import "github.com/salespulse/salespulse/internal/sales"

// valueAgg is a single-value metric; Elasticsearch reports null for empty
// inputs of some pipelines.
type valueAgg struct {
	Value *float64 `json:"value"`
}

func (v valueAgg) float() float64 {
	if v.Value == nil {
		return 0
	}
	return *v.Value
}

type regionBucket struct {
	Key           string   `json:"key"`
	TotalSales    valueAgg `json:"total_sales"`
	TotalOrders   valueAgg `json:"total_orders"`
	AvgOrderValue valueAgg `json:"avg_order_value"`
}

type productBucket struct {
	Key         string   `json:"key"`
	TotalSales  valueAgg `json:"total_sales"`
	TotalOrders valueAgg `json:"total_orders"`
}

type timeBucket struct {
	KeyAsString string   `json:"key_as_string"`
	TotalSales  valueAgg `json:"total_sales"`
	TotalOrders valueAgg `json:"total_orders"`
}

type searchResponse struct {
	Aggregations struct {
		TotalSales    valueAgg `json:"total_sales"`
		TotalOrders   valueAgg `json:"total_orders"`
		SalesByRegion struct {
			Buckets []regionBucket `json:"buckets"`
		} `json:"sales_by_region"`
		SalesByProduct struct {
			Buckets []productBucket `json:"buckets"`
		} `json:"sales_by_product"`
		SalesOverTime struct {
			Buckets []timeBucket `json:"buckets"`
		} `json:"sales_over_time"`
	} `json:"aggregations"`
}

func (r searchResponse) toAggregation() sales.Aggregation {
	aggs := r.Aggregations
	out := sales.Aggregation{
		TotalSales:  aggs.TotalSales.float(),
		TotalOrders: aggs.TotalOrders.float(),
		Regions:     make([]sales.RegionBucket, 0, len(aggs.SalesByRegion.Buckets)),
		Products:    make([]sales.ProductBucket, 0, len(aggs.SalesByProduct.Buckets)),
		Months:      make([]sales.MonthBucket, 0, len(aggs.SalesOverTime.Buckets)),
	}
	for _, b := range aggs.SalesByRegion.Buckets {
		out.Regions = append(out.Regions, sales.RegionBucket{
			Key:           b.Key,
			Sales:         b.TotalSales.float(),
			Orders:        b.TotalOrders.float(),
			AvgOrderValue: b.AvgOrderValue.float(),
		})
	}
	for _, b := range aggs.SalesByProduct.Buckets {
		out.Products = append(out.Products, sales.ProductBucket{
			Key:    b.Key,
			Sales:  b.TotalSales.float(),
			Orders: b.TotalOrders.float(),
		})
	}
	for _, b := range aggs.SalesOverTime.Buckets {
		out.Months = append(out.Months, sales.MonthBucket{
			Label:  b.KeyAsString,
			Sales:  b.TotalSales.float(),
			Orders: b.TotalOrders.float(),
		})
	}
	return out
}

type bulkResponse struct {
	Errors bool                        `json:"errors"`
	Items  []map[string]bulkItemResult `json:"items"`
}

type bulkItemResult struct {
	Status int         `json:"status"`
	Error  *errorCause `json:"error,omitempty"`
}

type errorCause struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error  errorCause `json:"error"`
	Status int        `json:"status"`
}
