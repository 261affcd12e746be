// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"marketops/internal/models"
	"marketops/internal/store"
)

const (
	defaultPrimaryColor   = "#000000"
	defaultSecondaryColor = "#ffffff"
)

type brandRequest struct {
	Name           string  `json:"name" validate:"notblank,max=120"`
	PrimaryColor   string  `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor string  `json:"secondary_color" validate:"omitempty,hexcolor"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,url"`
	Website        *string `json:"website" validate:"omitempty,url"`
}

func (req brandRequest) brand(accountID string) *models.Brand {
	b := &models.Brand{
		AccountID:      accountID,
		Name:           strings.TrimSpace(req.Name),
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        blankToNil(req.LogoURL),
		Website:        blankToNil(req.Website),
	}
	if b.PrimaryColor == "" {
		b.PrimaryColor = defaultPrimaryColor
	}
	if b.SecondaryColor == "" {
		b.SecondaryColor = defaultSecondaryColor
	}
	return b
}

// BrandHandler serves /api/brands.
type BrandHandler struct {
	brands    BrandStore
	dashboard DashboardCache
}

func NewBrandHandler(brands BrandStore, dashboard DashboardCache) *BrandHandler {
	return &BrandHandler{brands: brands, dashboard: dashboard}
}

func (h *BrandHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.List(r.Context(), account(r))
	if err != nil {
		serverError(w, r, "failed to list brands", err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	b, err := h.brands.FindByID(r.Context(), account(r), id)
	if err != nil {
		serverError(w, r, "failed to get brand", err)
		return
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.brands.Create(r.Context(), req.brand(account(r)))
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, "a brand with this name already exists")
		return
	}
	if err != nil {
		serverError(w, r, "failed to create brand", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	writeJSON(w, http.StatusCreated, created)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req brandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b := req.brand(account(r))
	b.ID = id
	updated, err := h.brands.Update(r.Context(), b)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to update brand", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	err := h.brands.Delete(r.Context(), account(r), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to delete brand", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	w.WriteHeader(http.StatusNoContent)
}

// blankToNil maps an empty or whitespace-only optional string to nil.
func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
