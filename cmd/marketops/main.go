// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the marketops API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketops/internal/cache"
	"marketops/internal/config"
	"marketops/internal/database"
	"marketops/internal/generation"
	"marketops/internal/handlers"
	"marketops/internal/middleware"
	"marketops/internal/router"
	"marketops/internal/storage"
	"marketops/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Structured logger: JSON in production, text elsewhere.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded", "env", cfg.Server.Env, "addr", cfg.Addr())

	pool, err := database.Connect(ctx, cfg.DSN(), cfg.Postgres.MaxConns)
	if err != nil {
		return err
	}
	db := database.New(pool)
	defer db.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	// Seed development data (no-op if the account already has templates).
	if cfg.IsDev() && cfg.Server.SeedAccount != "" {
		if err := database.Seed(ctx, db, cfg.Server.SeedAccount); err != nil {
			return err
		}
	}

	// Valkey is optional: without it every cache lookup misses.
	valkey, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.Valkey.Password)
	if err != nil {
		slog.Warn("valkey unavailable, caching disabled", "addr", cfg.ValkeyAddr(), "error", err)
	} else {
		defer valkey.Close()
	}
	templateCache := cache.NewTemplateCache(valkey, cache.DefaultTemplateTTL)
	dashboardCache := cache.NewDashboardCache(valkey, cache.DefaultDashboardTTL)

	// S3-compatible object storage is optional; uploads answer 503 without it.
	var objects handlers.ObjectStorage
	storageClient, err := storage.New(cfg.S3)
	if err != nil {
		return err
	}
	if storageClient != nil {
		objects = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3.Endpoint, "bucket", storageClient.Bucket())
	} else {
		slog.Warn("s3 storage not configured, uploads disabled")
	}

	images := generation.NewImageClient(cfg.ImageGen)
	banners := generation.NewBannerClient(cfg.Banner)
	slog.Info("generation upstreams",
		"image_generation", images != nil,
		"banner_rendering", banners != nil,
	)

	brandStore := store.NewBrandStore(db)
	platformStore := store.NewPlatformStore(db)
	userStore := store.NewUserStore(db)
	templateStore := store.NewTemplateStore(db)
	postStore := store.NewPostStore(db)
	assetStore := store.NewAssetStore(db)
	dashboardStore := store.NewDashboardStore(db)

	limiter := middleware.NewRateLimiter(cfg.Limits.PerMinute, cfg.Limits.Burst)
	defer limiter.Stop()

	r := router.New(router.Handlers{
		Health:    handlers.Health(pool),
		Brands:    handlers.NewBrandHandler(brandStore, dashboardCache),
		Platforms: handlers.NewPlatformHandler(platformStore, brandStore, dashboardCache),
		Users:     handlers.NewUserHandler(userStore, dashboardCache),
		Templates: handlers.NewTemplateHandler(templateStore, templateCache, dashboardCache),
		Posts:     handlers.NewPostHandler(postStore, brandStore, platformStore, templateStore, dashboardCache),
		Dashboard: handlers.NewDashboardHandler(dashboardStore, dashboardCache),
		Assets:    handlers.NewAssetHandler(assetStore, objects),
		Generate:  handlers.NewGenerateHandler(images, banners, objects, assetStore, templateStore, templateCache),
	}, limiter)

	// WriteTimeout must cover image generation, which can take over a minute.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.ImageGen.Timeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
