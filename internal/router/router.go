// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Every
// content type is mounted under /api/{resource}; operational endpoints sit
// at the root.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contentdesk/internal/auth"
	"contentdesk/internal/handlers"
	"contentdesk/internal/middleware"
)

// Deps is everything the router wires together.
type Deps struct {
	Resources []handlers.Mountable
	Changes   *handlers.Changes
	// Verifier checks bearer tokens. Nil leaves every caller anonymous.
	Verifier *auth.Verifier
	// DB is pinged by /health. Nil when running on the memory driver.
	DB      handlers.Pinger
	Timeout time.Duration
}

// New creates the configured chi router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Metrics)

	// Operational endpoints: no identity, no timeout.
	r.Get("/health", handlers.Health(d.DB))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if d.Timeout > 0 {
			r.Use(chimw.Timeout(d.Timeout))
		}
		r.Use(middleware.LoadIdentity(d.Verifier))

		for _, res := range d.Resources {
			r.Mount("/"+res.Name(), res.Routes())
		}
		if d.Changes != nil {
			r.With(middleware.NoStore).Get("/changes", d.Changes.Recent)
		}
	})

	return r
}
