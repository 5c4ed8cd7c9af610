// Package postgres implements the sales store on PostgreSQL for deployments
// without a search engine.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/salespulse/salespulse/internal/sales"
)

// DB is the subset of pgxpool.Pool the store relies on.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store keeps sales records in a single table.
type Store struct {
	db    DB
	name  string
	table string
	newID func() uuid.UUID
}

// New returns a Store for the dataset name; dashes become underscores in the
// table name.
func New(db DB, dataset string) *Store {
	name := TableName(dataset)
	return &Store{
		db:    db,
		name:  name,
		table: pgx.Identifier{name}.Sanitize(),
		newID: uuid.New,
	}
}

// TableName maps a dataset name onto a SQL identifier.
func TableName(dataset string) string {
	if dataset == "" {
		dataset = sales.IndexName
	}
	return strings.ToLower(strings.ReplaceAll(dataset, "-", "_"))
}

func indexPrefix(table string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, strings.ToLower(table))
}

// EnsureSchema creates the table and its date index when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL(s.table)); err != nil {
		return wrap("ensure schema", err)
	}
	return nil
}

// BulkInsert copies all records in one COPY statement. Each row gets a fresh
// UUID; nothing prevents duplicates.
func (s *Store) BulkInsert(ctx context.Context, records []sales.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{s.newID(), r.Region, r.Product, r.Sales.InexactFloat64(), int32(r.Orders), r.Date})
	}
	n, err := s.db.CopyFrom(ctx, pgx.Identifier{s.name}, []string{"id", "region", "product", "sales", "orders", "date"}, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, wrap("copy", err)
	}
	return int(n), nil
}

// Aggregate sends the four facet queries as one batch, so the dashboard
// still costs a single round trip.
func (s *Store) Aggregate(ctx context.Context) (sales.Aggregation, error) {
	agg := sales.Aggregation{
		Regions:  []sales.RegionBucket{},
		Products: []sales.ProductBucket{},
		Months:   []sales.MonthBucket{},
	}

	batch := &pgx.Batch{}
	batch.Queue(totalsSQL(s.table)).QueryRow(func(row pgx.Row) error {
		return row.Scan(&agg.TotalSales, &agg.TotalOrders)
	})
	batch.Queue(regionsSQL(s.table), sales.RegionLimit).Query(func(rows pgx.Rows) error {
		for rows.Next() {
			var b sales.RegionBucket
			if err := rows.Scan(&b.Key, &b.Sales, &b.Orders, &b.AvgOrderValue); err != nil {
				return err
			}
			agg.Regions = append(agg.Regions, b)
		}
		return rows.Err()
	})
	batch.Queue(productsSQL(s.table), sales.ProductLimit).Query(func(rows pgx.Rows) error {
		for rows.Next() {
			var b sales.ProductBucket
			if err := rows.Scan(&b.Key, &b.Sales, &b.Orders); err != nil {
				return err
			}
			agg.Products = append(agg.Products, b)
		}
		return rows.Err()
	})
	batch.Queue(monthsSQL(s.table)).Query(func(rows pgx.Rows) error {
		for rows.Next() {
			var b sales.MonthBucket
			if err := rows.Scan(&b.Label, &b.Sales, &b.Orders); err != nil {
				return err
			}
			agg.Months = append(agg.Months, b)
		}
		return rows.Err()
	})

	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return sales.Aggregation{}, wrap("aggregate", err)
	}
	return agg, nil
}

func wrap(op string, err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("sales/postgres: %s: %w: %w", op, sales.ErrStoreUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("sales/postgres: %s: %s (SQLSTATE %s): %w", op, pgErr.Message, pgErr.Code, err)
	}
	return fmt.Errorf("sales/postgres: %s: %w", op, err)
}
