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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ecocycle/internal/app"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/config"
	ecoHttp "github.com/MrJamesThe3rd/ecocycle/internal/http"
	activityHandler "github.com/MrJamesThe3rd/ecocycle/internal/http/activity"
	dashboardHandler "github.com/MrJamesThe3rd/ecocycle/internal/http/dashboard"
	productHandler "github.com/MrJamesThe3rd/ecocycle/internal/http/product"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(os.Stderr, cfg.App.LogFormat, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening app: %w", err)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.Close(closeCtx); err != nil {
			logger.Error("failed to close resources", "error", err)
		}
	}()

	if err := a.OpenMarketplace(ctx); err != nil {
		return fmt.Errorf("opening marketplace: %w", err)
	}

	var (
		dashboardH = dashboardHandler.NewHandler(a.Dashboard)
		activityH  = activityHandler.NewHandler(a.Activity)
		productH   = productHandler.NewHandler(a.Marketplace, cfg.Storage.MaxImageSize)
	)

	routerCfg := ecoHttp.Config{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	}
	if cfg.Storage.Driver == "local" {
		routerCfg.UploadDir = cfg.Storage.UploadDir
		routerCfg.UploadPrefix = cfg.Storage.PublicPrefix
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	router := ecoHttp.New(routerCfg, auth.Required(tokens), a.DB, dashboardH, activityH, productH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting server", "port", srv.Addr, "app", cfg.App.Name)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
