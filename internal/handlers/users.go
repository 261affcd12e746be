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

// bcrypt ignores input past 72 bytes.
type createUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"notblank,max=120"`
	Role        string `json:"role" validate:"role"`
}

type updateUserRequest struct {
	DisplayName string `json:"display_name" validate:"notblank,max=120"`
	Role        string `json:"role" validate:"role"`
}

// UserHandler serves /api/users.
type UserHandler struct {
	users     UserStore
	dashboard DashboardCache
}

func NewUserHandler(users UserStore, dashboard DashboardCache) *UserHandler {
	return &UserHandler{users: users, dashboard: dashboard}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), account(r))
	if err != nil {
		serverError(w, r, "failed to list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	u, err := h.users.FindByID(r.Context(), account(r), id)
	if err != nil {
		serverError(w, r, "failed to get user", err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.users.Create(r.Context(), &models.User{
		AccountID:   account(r),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        models.Role(req.Role),
	}, req.Password)
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, "a user with this email already exists")
		return
	}
	if err != nil {
		serverError(w, r, "failed to create user", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.users.Update(r.Context(), account(r), id, strings.TrimSpace(req.DisplayName), models.Role(req.Role))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to update user", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	err := h.users.Delete(r.Context(), account(r), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		serverError(w, r, "failed to delete user", err)
		return
	}
	h.dashboard.Invalidate(r.Context(), account(r))
	w.WriteHeader(http.StatusNoContent)
}
