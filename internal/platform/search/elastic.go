// Package search builds the Elasticsearch client used by the sales store.
package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// New returns a client for the comma separated node URLs. Unlike the Redis and
// Postgres constructors it does not ping: the API must start while the cluster
// is still booting, and each request reports its own availability.
func New(urls string) (*elasticsearch.Client, error) {
	var addrs []string
	for _, u := range strings.Split(urls, ",") {
		if u = strings.TrimSpace(u); u != "" {
			addrs = append(addrs, u)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("platform/search: no node address configured")
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addrs,
		// A failed query surfaces as one 500; the transport must not replay it.
		DisableRetry: true,
		Transport: &http.Transport{
			ResponseHeaderTimeout: 10 * time.Second,
			MaxIdleConnsPerHost:   10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("platform/search: new client: %w", err)
	}
	return client, nil
}

// Ping reports whether the cluster answers.
func Ping(ctx context.Context, client *elasticsearch.Client) error {
	res, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("platform/search: ping: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("platform/search: ping: %s", res.Status())
	}
	return nil
}
