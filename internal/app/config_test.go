package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/salespulse/salespulse/testing"
)

var configEnv = []string{
	"APP_ENV", "APP_ADDR", "LOG_FORMAT", "STORE_DRIVER", "ELASTIC_URL", "SALES_INDEX",
	"PG_DSN", "PG_MAX_CONNS", "REDIS_ADDR", "DASHBOARD_CACHE_TTL", "SEED_RATE_LIMIT", "DASHBOARD_ADDR",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.AppAddr)
	assert.Equal(t, DriverElasticsearch, cfg.StoreDriver)
	assert.Equal(t, "http://localhost:9200", cfg.ElasticURL)
	assert.Equal(t, "sales-performance", cfg.SalesIndex)
	assert.Equal(t, int32(4), cfg.PGMaxConns)
	assert.Equal(t, ":5173", cfg.DashboardAddr)
	assert.Equal(t, time.Duration(0), cfg.DashboardCacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ELASTIC_URL=http://es.internal:9200\nREDIS_ADDR=127.0.0.1:6379\nDASHBOARD_CACHE_TTL=30s\n"), 0o600))
	t.Setenv("APP_ADDR", ":6000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://es.internal:9200", cfg.ElasticURL)
	assert.Equal(t, ":6000", cfg.AppAddr)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
}

func TestLoadConfigEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SALES_INDEX=from-file\n"), 0o600))
	t.Setenv("SALES_INDEX", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SalesIndex)
}

func TestLoadConfigRejectsBadDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestLoadConfigPostgresNeedsDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", DriverPostgres)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)

	t.Setenv("PG_DSN", "postgres://localhost/sales")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
}

func TestLoadDashboardConfigIgnoresStoreSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", DriverPostgres)
	t.Setenv("DASHBOARD_ADDR", ":8080")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)

	cfg, err := LoadDashboardConfig(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.DashboardAddr)
}

func TestJSONLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "json", AppEnv: "production"})
	logger.Info("seeded", "count", 22)
	logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "seeded", line["msg"])
	assert.EqualValues(t, 22, line["count"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInTestModeSetByTestingPackage(t *testing.T) {
	assert.True(t, InTestMode())
}

func TestReadTestMode(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "true": true, "0": false, "": false, "yes": false} {
		t.Setenv(TestModeEnv, value)
		assert.Equal(t, want, readTestMode(), "value %q", value)
	}
}
