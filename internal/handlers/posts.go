// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"marketops/internal/markdown"
	"marketops/internal/middleware"
	"marketops/internal/models"
	"marketops/internal/store"
)

type postRequest struct {
	BrandID    uuid.UUID  `json:"brand_id" validate:"required"`
	PlatformID *uuid.UUID `json:"platform_id"`
	TemplateID *string    `json:"template_id" validate:"omitempty,max=64"`
	Caption    string     `json:"caption" validate:"notblank,max=5000"`
	ImageURL   *string    `json:"image_url" validate:"omitempty,url"`
}

type reviewRequest struct {
	Note *string `json:"note" validate:"omitempty,max=1000"`
}

type rejectRequest struct {
	Note string `json:"note" validate:"notblank,max=1000"`
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// postResponse adds the rendered caption to a single post.
type postResponse struct {
	*models.Post
	CaptionHTML string `json:"caption_html"`
}

// PostHandler serves /api/posts and its approval workflow.
type PostHandler struct {
	posts     PostStore
	brands    BrandStore
	platforms PlatformStore
	templates TemplateStore
	dashboard DashboardCache
	now       func() time.Time
}

func NewPostHandler(posts PostStore, brands BrandStore, platforms PlatformStore, templates TemplateStore, dashboard DashboardCache) *PostHandler {
	return &PostHandler{
		posts:     posts,
		brands:    brands,
		platforms: platforms,
		templates: templates,
		dashboard: dashboard,
		now:       time.Now,
	}
}

func (h *PostHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/submit", h.Submit)
		r.Post("/approve", h.Approve)
		r.Post("/reject", h.Reject)
		r.Post("/schedule", h.Schedule)
		r.Post("/publish", h.Publish)
	})
	return r
}

// List accepts an optional ?status= filter.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.PostStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	posts, err := h.posts.List(r.Context(), account(r), status)
	if err != nil {
		serverError(w, r, "failed to list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}

	html, err := markdown.ToHTML(p.Caption)
	if err != nil {
		// The raw caption is still useful without its preview.
		slog.Warn("failed to render caption", "post_id", p.ID, "error", err)
	}
	writeJSON(w, http.StatusOK, postResponse{Post: p, CaptionHTML: html})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.checkRefs(w, r, req) {
		return
	}

	acct := account(r)
	created, err := h.posts.Create(r.Context(), &models.Post{
		AccountID:  acct,
		BrandID:    req.BrandID,
		PlatformID: req.PlatformID,
		TemplateID: blankToNil(req.TemplateID),
		Caption:    strings.TrimSpace(req.Caption),
		ImageURL:   blankToNil(req.ImageURL),
		AuthorID:   userID(r),
	})
	if err != nil {
		serverError(w, r, "failed to create post", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), acct)
	writeJSON(w, http.StatusCreated, created)
}

// Update edits a draft or rejected post. The brand cannot change.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.BrandID = p.BrandID
	if !h.checkRefs(w, r, req) {
		return
	}

	p.PlatformID = req.PlatformID
	p.TemplateID = blankToNil(req.TemplateID)
	p.Caption = strings.TrimSpace(req.Caption)
	p.ImageURL = blankToNil(req.ImageURL)

	updated, err := h.posts.Update(r.Context(), p)
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, "only draft or rejected posts can be edited")
		return
	}
	if err != nil {
		serverError(w, r, "failed to update post", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	err := h.posts.Delete(r.Context(), account(r), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to delete post", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	w.WriteHeader(http.StatusNoContent)
}

// Submit sends a draft or rejected post for review.
func (h *PostHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	h.transition(w, r, p, models.PostPending, nil, nil)
}

func (h *PostHandler) Approve(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	var req reviewRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	h.transition(w, r, p, models.PostApproved, blankToNil(req.Note), nil)
}

// Reject returns a pending post to its author. A note is mandatory.
func (h *PostHandler) Reject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	note := strings.TrimSpace(req.Note)
	h.transition(w, r, p, models.PostRejected, &note, nil)
}

// Schedule books an approved post for a future time.
func (h *PostHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	var req scheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.ScheduledAt.After(h.now()) {
		writeError(w, http.StatusUnprocessableEntity, "validation failed", "scheduled_at must be in the future")
		return
	}
	at := req.ScheduledAt.UTC()
	h.transition(w, r, p, models.PostScheduled, nil, &at)
}

// Publish marks a scheduled post as published once it went out.
func (h *PostHandler) Publish(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	h.transition(w, r, p, models.PostPublished, nil, nil)
}

func (h *PostHandler) transition(w http.ResponseWriter, r *http.Request, p *models.Post, to models.PostStatus, note *string, at *time.Time) {
	if !p.Status.CanTransitionTo(to) {
		writeError(w, http.StatusConflict, "cannot move a "+string(p.Status)+" post to "+string(to))
		return
	}

	updated, err := h.posts.Transition(r.Context(), p.AccountID, p.ID, p.Status, to, note, at)
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, "post was changed by someone else")
		return
	}
	if err != nil {
		serverError(w, r, "failed to change post status", err)
		return
	}
	slog.Info("post status changed", "post_id", p.ID, "from", p.Status, "to", to, "account", p.AccountID)
	h.dashboard.Invalidate(r.Context(), p.AccountID)
	writeJSON(w, http.StatusOK, updated)
}

// load fetches the {id} post, answering 400 or 404 itself.
func (h *PostHandler) load(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return nil, false
	}
	p, err := h.posts.FindByID(r.Context(), account(r), id)
	if err != nil {
		serverError(w, r, "failed to get post", err)
		return nil, false
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return nil, false
	}
	return p, true
}

// checkRefs verifies the brand exists and, when set, that the platform
// belongs to it and the template belongs to the account.
func (h *PostHandler) checkRefs(w http.ResponseWriter, r *http.Request, req postRequest) bool {
	acct := account(r)
	brand, err := h.brands.FindByID(r.Context(), acct, req.BrandID)
	if err != nil {
		serverError(w, r, "failed to look up brand", err)
		return false
	}
	if brand == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation failed", "brand_id does not match a brand")
		return false
	}

	if req.PlatformID != nil {
		platform, err := h.platforms.FindByID(r.Context(), acct, *req.PlatformID)
		if err != nil {
			serverError(w, r, "failed to look up platform", err)
			return false
		}
		if platform == nil || platform.BrandID != brand.ID {
			writeError(w, http.StatusUnprocessableEntity, "validation failed", "platform_id does not match a platform of this brand")
			return false
		}
	}

	if id := blankToNil(req.TemplateID); id != nil {
		tmpl, err := h.templates.FindByID(r.Context(), acct, *id)
		if err != nil {
			serverError(w, r, "failed to look up template", err)
			return false
		}
		if tmpl == nil {
			writeError(w, http.StatusUnprocessableEntity, "validation failed", "template_id does not match a template")
			return false
		}
	}
	return true
}

func userID(r *http.Request) *uuid.UUID {
	return middleware.UserFromCtx(r.Context())
}
