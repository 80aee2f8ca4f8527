// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ContentDesk API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"contentdesk/internal/auth"
	"contentdesk/internal/cache"
	"contentdesk/internal/config"
	"contentdesk/internal/database"
	"contentdesk/internal/handlers"
	"contentdesk/internal/middleware"
	"contentdesk/internal/router"
	"contentdesk/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	flag.Parse()

	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logHandler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		logHandler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.Store.Driver,
	)

	ctx := context.Background()

	// Connect to PostgreSQL unless running on the memory driver.
	var db *sql.DB
	if cfg.Store.Driver == config.DriverPostgres {
		db, err = database.Connect(ctx, database.Options{
			DSN:             cfg.DSN(),
			MaxOpenConns:    cfg.DB.MaxOpenConns,
			MaxIdleConns:    cfg.DB.MaxIdleConns,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		})
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("memory store in use, content is lost on restart")
	}

	// Public response cache: shared Valkey when configured, in-process otherwise.
	var responses cache.Cache
	if cfg.Valkey.Addr != "" {
		client, err := cache.ConnectValkey(ctx, cache.ValkeyOptions{
			Addr:     cfg.Valkey.Addr,
			Password: cfg.Valkey.Password,
			DB:       cfg.Valkey.DB,
		})
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		responses = cache.NewValkey(client, cfg.Cache.TTL)
	} else {
		responses = cache.NewLRU(cfg.Cache.Size, cfg.Cache.TTL)
	}

	// Bearer tokens. Without a secret every caller is anonymous and the
	// protected routes answer 401.
	var verifier *auth.Verifier
	if cfg.Auth.JWTSecret != "" {
		if verifier, err = auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer); err != nil {
			slog.Error("failed to initialize token verifier", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("AUTH_JWT_SECRET not set, protected routes disabled")
	}

	var changes store.ChangeLog = store.NewMemoryChangeLog(1000)
	if db != nil {
		changes = store.NewChangeLogStore(db)
	}

	limiter := middleware.NewRateLimiter(cfg.HTTP.CounterLimit, cfg.HTTP.CounterWindow, cfg.HTTP.TrustProxy)
	defer limiter.Stop()

	res, err := buildResources(db, cfg, handlers.Options{
		Cache:        responses,
		Changes:      changes,
		CounterLimit: limiter.Middleware,
	})
	if err != nil {
		slog.Error("failed to initialize stores", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() && cfg.Store.Seed {
		if err := database.Seed(ctx, res.news, res.tutorials); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	deps := router.Deps{
		Resources: res.mounted,
		Changes:   handlers.NewChanges(changes, auth.Gate{}),
		Verifier:  verifier,
		Timeout:   cfg.HTTP.RequestTimeout,
	}
	if db != nil {
		deps.DB = db
	}
	r := router.New(deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTP.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "resources", len(res.mounted))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
