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

func TestPlatformHandler_ListFiltersByBrand(t *testing.T) {
	brandID := uuid.New()
	platforms := new(MockPlatformStore)
	platforms.On("List", mock.Anything, testAccount, &brandID).Return([]models.Platform{{Name: "IG"}}, nil)
	platforms.On("List", mock.Anything, testAccount, (*uuid.UUID)(nil)).Return([]models.Platform{}, nil)
	h := NewPlatformHandler(platforms, new(MockBrandStore), quietDashboard())

	rec := serve(t, h.Routes(), http.MethodGet, "/?brand_id="+brandID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Platform](t, rec), 1)

	rec = serve(t, h.Routes(), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = serve(t, h.Routes(), http.MethodGet, "/?brand_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	platforms.AssertExpectations(t)
}

func TestPlatformHandler_Create(t *testing.T) {
	brandID := uuid.New()
	brands := new(MockBrandStore)
	brands.On("FindByID", mock.Anything, testAccount, brandID).Return(&models.Brand{ID: brandID}, nil)
	platforms := new(MockPlatformStore)
	platforms.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Platform) bool {
		return p.BrandID == brandID && p.Kind == models.PlatformInstagram && p.Active && p.Handle == "@acme"
	})).Return(&models.Platform{ID: uuid.New(), BrandID: brandID, Kind: models.PlatformInstagram}, nil)
	h := NewPlatformHandler(platforms, brands, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPost, "/", map[string]any{
		"brand_id": brandID,
		"name":     "Instagram",
		"kind":     "instagram",
		"handle":   " @acme ",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	platforms.AssertExpectations(t)
}

func TestPlatformHandler_CreateUnknownBrand(t *testing.T) {
	brands := new(MockBrandStore)
	brands.On("FindByID", mock.Anything, testAccount, mock.Anything).Return(nil, nil)
	platforms := new(MockPlatformStore)
	h := NewPlatformHandler(platforms, brands, quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPost, "/", map[string]any{
		"brand_id": uuid.New(),
		"name":     "Instagram",
		"kind":     "instagram",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "brand_id does not match a brand")
	platforms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlatformHandler_CreateUnknownKind(t *testing.T) {
	h := NewPlatformHandler(new(MockPlatformStore), new(MockBrandStore), quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPost, "/", map[string]any{
		"brand_id": uuid.New(),
		"name":     "Orkut",
		"kind":     "orkut",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "kind must be one of")
}

func TestPlatformHandler_UpdateDeactivates(t *testing.T) {
	id := uuid.New()
	platforms := new(MockPlatformStore)
	platforms.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Platform) bool {
		return p.ID == id && !p.Active && p.Name == "IG"
	})).Return(&models.Platform{ID: id, Name: "IG"}, nil)
	h := NewPlatformHandler(platforms, new(MockBrandStore), quietDashboard())

	rec := serve(t, h.Routes(), http.MethodPut, "/"+id.String(), map[string]any{"name": "IG", "active": false})

	assert.Equal(t, http.StatusOK, rec.Code)
	platforms.AssertExpectations(t)
}

func TestPlatformHandler_DeleteMissing(t *testing.T) {
	platforms := new(MockPlatformStore)
	platforms.On("Delete", mock.Anything, testAccount, mock.Anything).Return(store.ErrNotFound)
	h := NewPlatformHandler(platforms, new(MockBrandStore), quietDashboard())

	rec := serve(t, h.Routes(), http.MethodDelete, "/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
