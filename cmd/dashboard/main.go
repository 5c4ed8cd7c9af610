// Command dashboard serves the SalesPulse dashboard page.
//
// Usage:
//
//	dashboard --api http://localhost:5000
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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/salespulse/salespulse/internal/app"
	"github.com/salespulse/salespulse/internal/dashboard"
	dashboardhttp "github.com/salespulse/salespulse/internal/dashboard/http"
	"github.com/salespulse/salespulse/internal/observability"
	"github.com/salespulse/salespulse/internal/view"
	"github.com/salespulse/salespulse/web"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping dashboard startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var apiBase, addr string
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Serve the sales performance dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadDashboardConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.DashboardAddr = addr
			}
			return run(cmd.Context(), cfg, app.NewLogger(cfg), apiBase)
		},
	}
	cmd.Flags().StringVar(&apiBase, "api", dashboard.DefaultAPIBase, "SalesPulse API base URL")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to DASHBOARD_ADDR)")
	return cmd
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger, apiBase string) error {
	templates, err := view.NewEngine()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	client := dashboard.NewClient(apiBase, nil)
	pages := dashboardhttp.NewHandler(logger, client, templates)

	router := app.NewDashboardRouter(app.DashboardRouterParams{
		Logger:  logger,
		Config:  cfg,
		Pages:   pages,
		Static:  web.Static,
		Metrics: observability.NewMetrics(),
	})

	server := &http.Server{
		Addr:         cfg.DashboardAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting dashboard", slog.String("addr", server.Addr), slog.String("api", client.Base()))
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
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
