// Package elastic implements the sales store on Elasticsearch.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/salespulse/salespulse/internal/sales"
)

// Store issues index, bulk and search requests against one index.
type Store struct {
	client *elasticsearch.Client
	index  string
}

// New returns a Store bound to index. An empty index uses sales.IndexName.
func New(client *elasticsearch.Client, index string) *Store {
	if index == "" {
		index = sales.IndexName
	}
	return &Store{client: client, index: index}
}

type document struct {
	Region  string  `json:"region"`
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
	Orders  int     `json:"orders"`
	Date    string  `json:"date"`
}

// EnsureSchema creates the index with fixed mappings when it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return unavailable("index exists", err)
	}
	drain(res)
	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("sales/elastic: index exists: unexpected status %d", res.StatusCode)
	}

	body, err := json.Marshal(mappings())
	if err != nil {
		return fmt.Errorf("sales/elastic: encode mappings: %w", err)
	}
	res, err = s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(body)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return unavailable("create index", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		cause := decodeError(res)
		// Another request created it between the two calls.
		if cause.Error.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("sales/elastic: create index: [%d] %s: %s", res.StatusCode, cause.Error.Type, cause.Error.Reason)
	}
	return nil
}

// BulkInsert writes all records in one bulk request with refresh=true so they
// are searchable as soon as it returns.
func (s *Store) BulkInsert(ctx context.Context, records []sales.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	action := map[string]any{"index": map[string]any{"_index": s.index}}
	for _, r := range records {
		if err := enc.Encode(action); err != nil {
			return 0, fmt.Errorf("sales/elastic: encode action: %w", err)
		}
		doc := document{
			Region:  r.Region,
			Product: r.Product,
			Sales:   r.Sales.InexactFloat64(),
			Orders:  r.Orders,
			Date:    r.Date.Format(sales.TrendDateLayout),
		}
		if err := enc.Encode(doc); err != nil {
			return 0, fmt.Errorf("sales/elastic: encode document: %w", err)
		}
	}

	res, err := s.client.Bulk(
		&buf,
		s.client.Bulk.WithIndex(s.index),
		s.client.Bulk.WithRefresh("true"),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return 0, unavailable("bulk", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		cause := decodeError(res)
		return 0, fmt.Errorf("sales/elastic: bulk: [%d] %s: %s", res.StatusCode, cause.Error.Type, cause.Error.Reason)
	}

	var out bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("sales/elastic: decode bulk response: %w", err)
	}
	if out.Errors {
		for _, item := range out.Items {
			for _, result := range item {
				if result.Error != nil {
					return 0, fmt.Errorf("sales/elastic: bulk item: %s: %s", result.Error.Type, result.Error.Reason)
				}
			}
		}
		return 0, fmt.Errorf("sales/elastic: bulk reported errors")
	}
	return len(out.Items), nil
}

// Aggregate runs the dashboard search with size 0 and decodes the buckets.
func (s *Store) Aggregate(ctx context.Context) (sales.Aggregation, error) {
	body, err := json.Marshal(dashboardQuery())
	if err != nil {
		return sales.Aggregation{}, fmt.Errorf("sales/elastic: encode query: %w", err)
	}
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return sales.Aggregation{}, unavailable("search", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		cause := decodeError(res)
		return sales.Aggregation{}, fmt.Errorf("sales/elastic: search: [%d] %s: %s", res.StatusCode, cause.Error.Type, cause.Error.Reason)
	}

	var out searchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return sales.Aggregation{}, fmt.Errorf("sales/elastic: decode search response: %w", err)
	}
	return out.toAggregation(), nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("sales/elastic: %s: %w: %w", op, sales.ErrStoreUnavailable, err)
}

func decodeError(res *esapi.Response) errorResponse {
	var out errorResponse
	raw, err := io.ReadAll(res.Body)
	if err != nil || json.Unmarshal(raw, &out) != nil || out.Error.Type == "" {
		out.Error = errorCause{Type: http.StatusText(res.StatusCode), Reason: string(bytes.TrimSpace(raw))}
	}
	return out
}

func drain(res *esapi.Response) {
	if res == nil || res.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
