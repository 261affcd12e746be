// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketops/internal/models"
	"marketops/internal/store"
)

func TestUserHandler_Create(t *testing.T) {
	users := new(MockUserStore)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ana@example.com" && u.Role == models.RoleCreator && u.AccountID == testAccount
	}), "correct horse").Return(&models.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         models.RoleCreator,
	}, nil)
	h := NewUserHandler(users, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPost, "/", map[string]any{
		"email":        "Ana@Example.com",
		"password":     "correct horse",
		"display_name": "Ana",
		"role":         "creator",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	users.AssertExpectations(t)
}

func TestUserHandler_CreateDuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, store.ErrConflict)
	h := NewUserHandler(users, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPost, "/", map[string]any{
		"email":        "ana@example.com",
		"password":     "correct horse",
		"display_name": "Ana",
		"role":         "admin",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestUserHandler_UpdateRole(t *testing.T) {
	id := uuid.New()
	users := new(MockUserStore)
	users.On("Update", mock.Anything, testAccount, id, "Ana B", models.RoleManager).
		Return(&models.User{ID: id, DisplayName: "Ana B", Role: models.RoleManager}, nil)
	h := NewUserHandler(users, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPut, "/"+id.String(), map[string]any{
		"display_name": "Ana B",
		"role":         "manager",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleManager, decodeBody[models.User](t, rec).Role)

	rec = serve(t, h.Routes(), http.MethodPut, "/"+id.String(), map[string]any{
		"display_name": "Ana B",
		"role":         "owner",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	users.AssertNumberOfCalls(t, "Update", 1)
}

func TestUserHandler_GetAndDelete(t *testing.T) {
	id := uuid.New()
	users := new(MockUserStore)
	users.On("FindByID", mock.Anything, testAccount, id).Return(nil, nil)
	users.On("Delete", mock.Anything, testAccount, id).Return(nil)
	h := NewUserHandler(users, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodGet, "/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h.Routes(), http.MethodDelete, "/"+id.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
