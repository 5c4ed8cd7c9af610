package sales

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

// fillTimeout bounds a shared cache fill, which outlives the caller that
// started it.
const fillTimeout = 15 * time.Second

// Service seeds the store and builds the dashboard view model.
type Service struct {
	store     Store
	cache     *Cache
	logger    *slog.Logger
	validator *validator.Validate
	dataset   func() []Record
	fills     singleflight.Group
}

// NewService wires a Store with an optional Cache.
func NewService(store Store, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     store,
		cache:     cache,
		logger:    logger,
		validator: newValidator(),
		dataset:   SeedDataset,
	}
}

// Seed ensures the schema and bulk writes the fixed dataset. Calling it again
// appends duplicates; the store enforces no key.
func (s *Service) Seed(ctx context.Context) (int, error) {
	if err := s.store.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("sales: ensure schema: %w", err)
	}
	records := s.dataset()
	if err := ValidateRecords(s.validator, records); err != nil {
		return 0, err
	}
	count, err := s.store.BulkInsert(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("sales: bulk insert: %w", err)
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("dashboard cache bump", slog.Any("error", err))
	}
	s.logger.Info("sales dataset seeded", slog.Int("count", count))
	return count, nil
}

// Dashboard ensures the schema, runs the aggregation and reshapes it. With a
// cache, concurrent misses share one aggregation and a Redis failure is logged
// and served uncached.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	if err := s.store.EnsureSchema(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("sales: ensure schema: %w", err)
	}

	cached, key, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("dashboard cache read", slog.Any("error", err))
	}
	if ok {
		return cached, nil
	}
	if key == "" {
		return s.compute(ctx)
	}

	results := s.fills.DoChan(key, func() (any, error) {
		// The fill outlives any single waiter.
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fillTimeout)
		defer cancel()
		dash, err := s.compute(fillCtx)
		if err != nil {
			return Dashboard{}, err
		}
		if err := s.cache.Put(fillCtx, key, dash); err != nil {
			s.logger.Warn("dashboard cache write", slog.Any("error", err))
		}
		return dash, nil
	})
	select {
	case <-ctx.Done():
		return Dashboard{}, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return Dashboard{}, res.Err
		}
		return res.Val.(Dashboard), nil
	}
}

func (s *Service) compute(ctx context.Context) (Dashboard, error) {
	agg, err := s.store.Aggregate(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("sales: aggregate: %w", err)
	}
	return Reshape(agg), nil
}
