// Package main boots the Travel Intent Service Simulator.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/app"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/config"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/demo"
	httpapi "github.com/fairyhunter13/travel-intent-service-simulator/internal/http"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
)

func main() {
	root := &cobra.Command{
		Use:   "travel-intent-service-simulator",
		Short: "In-memory inventory-to-booking pipeline for a travel catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP service",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Walk the five-stage inventory-to-booking scenario",
			RunE: func(cmd *cobra.Command, args []string) error {
				sys, err := app.Build(config.Load())
				if err != nil {
					return err
				}
				return demo.Run(cmd.OutOrStdout(), sys)
			},
		},
	)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	sys, err := app.Build(cfg)
	if err != nil {
		obs.Logger.Error("wiring_failed", "error", err)
		return err
	}

	a := httpapi.NewApp(cfg, sys.Graph, sys.Bus, sys.Catalog, sys.Classifier,
		sys.Ingestion, sys.Search, sys.Booking)
	mux := httpapi.NewRouter(a)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		obs.Logger.Error("http_server_error", "error", err)
		return err
	case s := <-sigc:
		obs.Logger.Info("shutdown_signal", "signal", s.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
		return err
	}
	obs.Logger.Info("service_stopped")
	return nil
}
