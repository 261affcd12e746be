// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"marketops/internal/design"
	"marketops/internal/models"
	"marketops/internal/store"
)

// templateResponse carries the stored template plus any fields the
// normalizer had to replace with fallbacks.
type templateResponse struct {
	*models.Template
	Warnings []string `json:"warnings,omitempty"`
}

// renderResponse is a template laid out on a specific canvas.
type renderResponse struct {
	TemplateID      string                `json:"template_id"`
	Width           int                   `json:"width"`
	Height          int                   `json:"height"`
	BackgroundImage *string               `json:"background_image"`
	Shapes          []models.Shape        `json:"shapes"`
	LogoPlacement   *models.LogoPlacement `json:"logo_placement"`
}

type fromLayoutRequest struct {
	Layout      string `json:"layout" validate:"notblank"`
	Name        string `json:"name" validate:"notblank,max=120"`
	Description string `json:"description" validate:"max=500"`
	Width       int    `json:"width" validate:"min=0,max=10000"`
	Height      int    `json:"height" validate:"min=0,max=10000"`
}

// TemplateHandler serves /api/templates.
type TemplateHandler struct {
	templates TemplateStore
	cache     TemplateCache
	dashboard DashboardCache
}

func NewTemplateHandler(templates TemplateStore, cache TemplateCache, dashboard DashboardCache) *TemplateHandler {
	return &TemplateHandler{templates: templates, cache: cache, dashboard: dashboard}
}

func (h *TemplateHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/from-layout", h.CreateFromLayout)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/render", h.Render)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context(), account(r))
	if err != nil {
		serverError(w, r, "failed to list templates", err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := findTemplate(r.Context(), h.templates, h.cache, account(r), chi.URLParam(r, "id"))
	if err != nil {
		serverError(w, r, "failed to get template", err)
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Render returns the template scaled from its own canvas to the requested
// width and height. Without a size the stored canvas is used as is.
func (h *TemplateHandler) Render(w http.ResponseWriter, r *http.Request) {
	t, err := findTemplate(r.Context(), h.templates, h.cache, account(r), chi.URLParam(r, "id"))
	if err != nil {
		serverError(w, r, "failed to get template", err)
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	width, height, err := canvasQuery(r, t.CanvasWidth, t.CanvasHeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shapes, err := design.ScaleShapesFrom(t.Shapes, t.CanvasWidth, t.CanvasHeight, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logo, err := design.ScaleLogo(t.LogoPlacement, t.CanvasWidth, t.CanvasHeight, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		TemplateID:      t.ID,
		Width:           width,
		Height:          height,
		BackgroundImage: t.BackgroundImage,
		Shapes:          design.Layered(shapes),
		LogoPlacement:   logo,
	})
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, warnings, ok := decodeTemplate(w, r)
	if !ok {
		return
	}
	t.OwnerID = account(r)

	created, err := h.templates.Create(r.Context(), &t)
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, "a template with this id already exists")
		return
	}
	if err != nil {
		serverError(w, r, "failed to create template", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), t.OwnerID)
	writeJSON(w, http.StatusCreated, templateResponse{Template: created, Warnings: warnings})
}

// CreateFromLayout starts a template from a preset layout.
func (h *TemplateHandler) CreateFromLayout(w http.ResponseWriter, r *http.Request) {
	var req fromLayoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !design.HasPreset(req.Layout) {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}

	width, height := req.Width, req.Height
	if width == 0 && height == 0 {
		width, height = design.BaseWidth, design.BaseHeight
	}
	shapes, err := design.Layout(req.Layout, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acct := account(r)
	created, err := h.templates.Create(r.Context(), &models.Template{
		OwnerID:      acct,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Shapes:       shapes,
		CanvasWidth:  width,
		CanvasHeight: height,
	})
	if err != nil {
		serverError(w, r, "failed to create template", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), acct)
	writeJSON(w, http.StatusCreated, templateResponse{Template: created})
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, warnings, ok := decodeTemplate(w, r)
	if !ok {
		return
	}
	t.ID = id
	t.OwnerID = account(r)

	updated, err := h.templates.Update(r.Context(), &t)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to update template", err)
		return
	}
	h.cache.Invalidate(r.Context(), t.OwnerID, id)
	h.dashboard.Invalidate(r.Context(), t.OwnerID)
	writeJSON(w, http.StatusOK, templateResponse{Template: updated, Warnings: warnings})
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	acct := account(r)

	err := h.templates.Delete(r.Context(), acct, id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to delete template", err)
		return
	}
	h.cache.Invalidate(r.Context(), acct, id)
	h.dashboard.Invalidate(r.Context(), acct)
	w.WriteHeader(http.StatusNoContent)
}

// decodeTemplate reads a loosely-typed template body through the
// normalizer. Malformed fields become warnings; a template that still fails
// validation is rejected with 422.
func decodeTemplate(w http.ResponseWriter, r *http.Request) (models.Template, []string, bool) {
	var raw map[string]any
	if err := readJSON(w, r, &raw); err != nil {
		return models.Template{}, nil, false
	}
	if raw == nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return models.Template{}, nil, false
	}

	t, err := design.Normalize(raw)
	var warnings []string
	var pe *design.ParseError
	if errors.As(err, &pe) {
		slog.Warn("template body had malformed fields", "account", account(r), "fields", len(pe.Fields), "error", err)
		for _, f := range pe.Fields {
			warnings = append(warnings, f.Error())
		}
	} else if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.Template{}, nil, false
	}

	if err := design.ValidateTemplate(t); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid template", strings.Split(err.Error(), "\n")...)
		return models.Template{}, nil, false
	}
	return t, warnings, true
}

// findTemplate reads through the cache. A miss that the store resolves is
// written back.
func findTemplate(ctx context.Context, templates TemplateStore, cache TemplateCache, accountID, id string) (*models.Template, error) {
	if t, ok := cache.Get(ctx, accountID, id); ok {
		return t, nil
	}
	t, err := templates.FindByID(ctx, accountID, id)
	if err != nil || t == nil {
		return t, err
	}
	cache.Set(ctx, accountID, t)
	return t, nil
}
