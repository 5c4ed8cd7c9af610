package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyAddressList(t *testing.T) {
	_, err := New(" , ")
	require.Error(t, err)
}

func TestClientDoesNotRetryUnavailableNode(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	require.NoError(t, err)

	require.Error(t, Ping(context.Background(), client))
	assert.EqualValues(t, 1, hits.Load())
}

func TestPingHealthyNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client, err := New(" " + srv.URL + " ,")
	require.NoError(t, err)
	assert.NoError(t, Ping(context.Background(), client))
}
