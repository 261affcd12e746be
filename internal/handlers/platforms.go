// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"marketops/internal/models"
	"marketops/internal/store"
)

type platformRequest struct {
	BrandID uuid.UUID `json:"brand_id" validate:"required"`
	Name    string    `json:"name" validate:"notblank,max=120"`
	Kind    string    `json:"kind" validate:"platform_kind"`
	Handle  string    `json:"handle" validate:"max=120"`
	Active  *bool     `json:"active"`
}

// Brand and kind are fixed once a platform exists.
type platformUpdateRequest struct {
	Name   string `json:"name" validate:"notblank,max=120"`
	Handle string `json:"handle" validate:"max=120"`
	Active *bool  `json:"active"`
}

// PlatformHandler serves /api/platforms.
type PlatformHandler struct {
	platforms PlatformStore
	brands    BrandStore
	dashboard DashboardCache
}

func NewPlatformHandler(platforms PlatformStore, brands BrandStore, dashboard DashboardCache) *PlatformHandler {
	return &PlatformHandler{platforms: platforms, brands: brands, dashboard: dashboard}
}

func (h *PlatformHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List accepts an optional brand_id query filter.
func (h *PlatformHandler) List(w http.ResponseWriter, r *http.Request) {
	var brandID *uuid.UUID
	if raw := r.URL.Query().Get("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid brand_id")
			return
		}
		brandID = &id
	}

	platforms, err := h.platforms.List(r.Context(), account(r), brandID)
	if err != nil {
		serverError(w, r, "failed to list platforms", err)
		return
	}
	writeJSON(w, http.StatusOK, platforms)
}

func (h *PlatformHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	p, err := h.platforms.FindByID(r.Context(), account(r), id)
	if err != nil {
		serverError(w, r, "failed to get platform", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "platform not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PlatformHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req platformRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	acct := account(r)

	brand, err := h.brands.FindByID(r.Context(), acct, req.BrandID)
	if err != nil {
		serverError(w, r, "failed to look up brand", err)
		return
	}
	if brand == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation failed", "brand_id does not match a brand")
		return
	}

	created, err := h.platforms.Create(r.Context(), &models.Platform{
		AccountID: acct,
		BrandID:   brand.ID,
		Name:      strings.TrimSpace(req.Name),
		Kind:      models.PlatformKind(req.Kind),
		Handle:    strings.TrimSpace(req.Handle),
		Active:    req.Active == nil || *req.Active,
	})
	if err != nil {
		serverError(w, r, "failed to create platform", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), acct)
	writeJSON(w, http.StatusCreated, created)
}

func (h *PlatformHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req platformUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.platforms.Update(r.Context(), &models.Platform{
		ID:        id,
		AccountID: account(r),
		Name:      strings.TrimSpace(req.Name),
		Handle:    strings.TrimSpace(req.Handle),
		Active:    req.Active == nil || *req.Active,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "platform not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to update platform", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PlatformHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	err := h.platforms.Delete(r.Context(), account(r), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "platform not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to delete platform", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	w.WriteHeader(http.StatusNoContent)
}
