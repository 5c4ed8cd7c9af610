package sales

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests and local demos. It
// computes the same facets the search engine does, including empty months
// between the first and last record.
type MemoryStore struct {
	mu      sync.Mutex
	schema  bool
	records []Record

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// EnsureSchema implements Store.
func (m *MemoryStore) EnsureSchema(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.schema = true
	return nil
}

// BulkInsert implements Store.
func (m *MemoryStore) BulkInsert(ctx context.Context, records []Record) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.records = append(m.records, records...)
	return len(records), nil
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Aggregate implements Store.
func (m *MemoryStore) Aggregate(ctx context.Context) (Aggregation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return Aggregation{}, m.Err
	}

	var agg Aggregation
	regions := map[string]*RegionBucket{}
	products := map[string]*ProductBucket{}
	months := map[string]*MonthBucket{}
	var first, last time.Time

	for _, r := range m.records {
		sales := r.Sales.InexactFloat64()
		orders := float64(r.Orders)
		agg.TotalSales += sales
		agg.TotalOrders += orders

		rb, ok := regions[r.Region]
		if !ok {
			rb = &RegionBucket{Key: r.Region}
			regions[r.Region] = rb
		}
		rb.Sales += sales
		rb.Orders += orders

		pb, ok := products[r.Product]
		if !ok {
			pb = &ProductBucket{Key: r.Product}
			products[r.Product] = pb
		}
		pb.Sales += sales
		pb.Orders += orders

		month := monthStart(r.Date)
		label := month.Format(TrendDateLayout)
		mb, ok := months[label]
		if !ok {
			mb = &MonthBucket{Label: label}
			months[label] = mb
		}
		mb.Sales += sales
		mb.Orders += orders
		if first.IsZero() || month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}
	}

	for _, rb := range regions {
		rb.AvgOrderValue = AvgOrderValue(rb.Sales, rb.Orders)
		agg.Regions = append(agg.Regions, *rb)
	}
	sort.Slice(agg.Regions, func(i, j int) bool {
		if agg.Regions[i].Sales == agg.Regions[j].Sales {
			return agg.Regions[i].Key < agg.Regions[j].Key
		}
		return agg.Regions[i].Sales > agg.Regions[j].Sales
	})
	if len(agg.Regions) > RegionLimit {
		agg.Regions = agg.Regions[:RegionLimit]
	}

	for _, pb := range products {
		agg.Products = append(agg.Products, *pb)
	}
	sort.Slice(agg.Products, func(i, j int) bool {
		if agg.Products[i].Sales == agg.Products[j].Sales {
			return agg.Products[i].Key < agg.Products[j].Key
		}
		return agg.Products[i].Sales > agg.Products[j].Sales
	})
	if len(agg.Products) > ProductLimit {
		agg.Products = agg.Products[:ProductLimit]
	}

	if !first.IsZero() {
		for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
			label := cur.Format(TrendDateLayout)
			if mb, ok := months[label]; ok {
				agg.Months = append(agg.Months, *mb)
				continue
			}
			agg.Months = append(agg.Months, MonthBucket{Label: label})
		}
	}
	return agg, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
