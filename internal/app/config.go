package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverElasticsearch = "elasticsearch"
	DriverPostgres      = "postgres"
	DriverMemory        = "memory"
)

// Config holds runtime configuration for the SalesPulse processes.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":5000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"elasticsearch"`
	ElasticURL  string `envconfig:"ELASTIC_URL" default:"http://localhost:9200"`
	SalesIndex  string `envconfig:"SALES_INDEX" default:"sales-performance"`
	PGDSN       string `envconfig:"PG_DSN"`
	PGMaxConns  int32  `envconfig:"PG_MAX_CONNS" default:"4"`

	RedisAddr         string        `envconfig:"REDIS_ADDR"`
	DashboardCacheTTL time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"0s"`

	SeedRateLimit int `envconfig:"SEED_RATE_LIMIT" default:"10"`

	DashboardAddr string `envconfig:"DASHBOARD_ADDR" default:":5173"`
}

// LoadConfig reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	cfg, err := load(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDashboardConfig loads the same settings for the dashboard client. The
// client never opens a store, so store and cache settings are not validated.
func LoadDashboardConfig(envFiles ...string) (*Config, error) {
	return load(envFiles)
}

func load(envFiles []string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("app: load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverElasticsearch:
		if c.ElasticURL == "" {
			return errors.New("elastic url must be provided")
		}
	case DriverPostgres:
		if c.PGDSN == "" {
			return errors.New("pg dsn must be provided for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.DashboardCacheTTL < 0 {
		return errors.New("dashboard cache ttl must not be negative")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// CacheEnabled reports whether dashboard responses should go through Redis.
func (c *Config) CacheEnabled() bool {
	return c != nil && c.RedisAddr != "" && c.DashboardCacheTTL > 0
}
