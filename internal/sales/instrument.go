package sales

import (
	"context"
	"time"
)

// StoreObserver receives the timing and outcome of every store call.
type StoreObserver interface {
	ObserveStore(driver, op string, elapsed time.Duration, err error)
	AddSeeded(n int)
}

type instrumentedStore struct {
	next   Store
	driver string
	obs    StoreObserver
	now    func() time.Time
}

// Instrument wraps store so each call is reported to obs. A nil observer
// returns store unchanged.
func Instrument(store Store, driver string, obs StoreObserver) Store {
	if obs == nil {
		return store
	}
	return &instrumentedStore{next: store, driver: driver, obs: obs, now: time.Now}
}

func (s *instrumentedStore) EnsureSchema(ctx context.Context) error {
	start := s.now()
	err := s.next.EnsureSchema(ctx)
	s.obs.ObserveStore(s.driver, "ensure_schema", s.now().Sub(start), err)
	return err
}

func (s *instrumentedStore) BulkInsert(ctx context.Context, records []Record) (int, error) {
	start := s.now()
	n, err := s.next.BulkInsert(ctx, records)
	s.obs.ObserveStore(s.driver, "bulk_insert", s.now().Sub(start), err)
	if err == nil {
		s.obs.AddSeeded(n)
	}
	return n, err
}

func (s *instrumentedStore) Aggregate(ctx context.Context) (Aggregation, error) {
	start := s.now()
	agg, err := s.next.Aggregate(ctx)
	s.obs.ObserveStore(s.driver, "aggregate", s.now().Sub(start), err)
	return agg, err
}
