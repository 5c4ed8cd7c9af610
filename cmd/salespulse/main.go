package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/salespulse/salespulse/internal/app"
	"github.com/salespulse/salespulse/internal/observability"
	"github.com/salespulse/salespulse/internal/platform/cache"
	"github.com/salespulse/salespulse/internal/platform/db"
	"github.com/salespulse/salespulse/internal/platform/search"
	"github.com/salespulse/salespulse/internal/sales"
	"github.com/salespulse/salespulse/internal/sales/elastic"
	saleshttp "github.com/salespulse/salespulse/internal/sales/http"
	"github.com/salespulse/salespulse/internal/sales/postgres"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping api startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("api stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	metrics := observability.NewMetrics()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	store = sales.Instrument(store, cfg.StoreDriver, metrics)

	var dashboardCache *sales.Cache
	if cfg.CacheEnabled() {
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, dashboard cache disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			dashboardCache = sales.NewCache(redisClient, cfg.DashboardCacheTTL)
			logger.Info("dashboard cache enabled", slog.Duration("ttl", cfg.DashboardCacheTTL))
		}
	}

	service := sales.NewService(store, dashboardCache, logger)
	salesHandler := saleshttp.NewHandler(logger, service, cfg.SeedRateLimit)

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		SalesHandler: salesHandler,
		Metrics:      metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}
	return serve(ctx, server, logger)
}

// openStore connects the configured driver. The returned func releases it.
func openStore(ctx context.Context, cfg *app.Config, logger *slog.Logger) (sales.Store, func(), error) {
	switch cfg.StoreDriver {
	case app.DriverPostgres:
		pool, err := db.New(ctx, cfg.PGDSN, db.Options{AppName: "salespulse", MaxConns: cfg.PGMaxConns})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres store", slog.String("table", postgres.TableName(cfg.SalesIndex)))
		return postgres.New(pool, cfg.SalesIndex), pool.Close, nil
	case app.DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return sales.NewMemoryStore(), func() {}, nil
	default:
		client, err := search.New(cfg.ElasticURL)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := search.Ping(pingCtx, client); err != nil {
			logger.Warn("elasticsearch not reachable yet", slog.String("url", cfg.ElasticURL), slog.Any("error", err))
		}
		logger.Info("using elasticsearch store", slog.String("index", cfg.SalesIndex))
		return elastic.New(client, cfg.SalesIndex), func() {}, nil
	}
}

func serve(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
