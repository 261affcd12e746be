// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Operational
// endpoints sit at the root; the JSON API lives under /api behind the
// account middleware.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketops/internal/handlers"
	"marketops/internal/middleware"
)

// Handlers groups everything New mounts.
type Handlers struct {
	Health    http.Handler
	Brands    *handlers.BrandHandler
	Platforms *handlers.PlatformHandler
	Users     *handlers.UserHandler
	Templates *handlers.TemplateHandler
	Posts     *handlers.PostHandler
	Dashboard *handlers.DashboardHandler
	Assets    *handlers.AssetHandler
	Generate  *handlers.GenerateHandler
}

// New creates the configured Chi router. The limiter guards the generation
// endpoints, which call paid upstream APIs.
func New(h Handlers, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Method(http.MethodGet, "/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Account)

		r.Mount("/brands", h.Brands.Routes())
		r.Mount("/platforms", h.Platforms.Routes())
		r.Mount("/users", h.Users.Routes())
		r.Mount("/templates", h.Templates.Routes())
		r.Mount("/layouts", handlers.LayoutRoutes())
		r.Mount("/posts", h.Posts.Routes())
		r.Get("/dashboard", h.Dashboard.Get)
		r.Mount("/uploads", h.Assets.UploadRoutes())
		r.Mount("/assets", h.Assets.AssetRoutes())

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Mount("/generate", h.Generate.Routes())
		})
	})

	return r
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
