// Package dashboard builds the dashboard page from the API's aggregation
// payload: KPI cards, charts and the navigation sidebar.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIBase is where the API listens unless overridden by a flag.
const DefaultAPIBase = "http://localhost:5000"

// ErrUnavailable marks any failure to obtain a usable payload.
var ErrUnavailable = errors.New("dashboard: api unavailable")

// Payload is the dashboard response as the client reads it. Every field is
// optional; missing KPIs read as zero.
type Payload struct {
	KPIs      map[string]float64 `json:"kpis"`
	KPITrends map[string]Trend   `json:"kpiTrends"`
	Regions   []Region           `json:"regions"`
	Products  []Product          `json:"products"`
	Trend     []Point            `json:"trend"`
	Filters   *Filters           `json:"filters"`
}

// Trend is a KPI delta. A nil Value hides the trend line.
type Trend struct {
	Value *float64 `json:"value"`
	Label *string  `json:"label"`
}

type Region struct {
	Region        string  `json:"region"`
	Sales         float64 `json:"sales"`
	Orders        float64 `json:"orders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type Product struct {
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
	Orders  float64 `json:"orders"`
	Share   float64 `json:"share"`
}

type Point struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders float64 `json:"orders"`
}

type Filters struct {
	DateRange *string `json:"dateRange"`
}

// SeedResult is the body of a successful seed call.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Client talks to the SalesPulse API.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for base. A nil httpClient gets a 10s timeout.
func NewClient(base string, httpClient *http.Client) *Client {
	if strings.TrimSpace(base) == "" {
		base = DefaultAPIBase
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(base, "/"), http: httpClient}
}

// Base returns the API base URL.
func (c *Client) Base() string { return c.base }

// Dashboard fetches the aggregation payload once.
func (c *Client) Dashboard(ctx context.Context) (*Payload, error) {
	var out Payload
	if err := c.get(ctx, "/api/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Seed asks the API to write the fixed dataset.
func (c *Client) Seed(ctx context.Context) (SeedResult, error) {
	var out SeedResult
	if err := c.get(ctx, "/seed", &out); err != nil {
		return SeedResult{}, err
	}
	return out, nil
}

type apiError struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: GET %s: %d %s: %s", ErrUnavailable, path, res.StatusCode, apiErr.Message, apiErr.Details)
		}
		return fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, res.StatusCode)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUnavailable, path, err)
	}
	return nil
}
