// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketops/internal/generation"
	"marketops/internal/middleware"
	"marketops/internal/models"
	"marketops/internal/storage"
)

const testAccount = "acme"

// serve runs one request through the account middleware and h.
func serve(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = jsonReader(t, body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(middleware.AccountHeader, testAccount)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	middleware.Account(h).ServeHTTP(rec, req)
	return rec
}

// jsonReader encodes body, passing strings through untouched so tests can
// send malformed JSON.
func jsonReader(t *testing.T, body any) io.Reader {
	t.Helper()
	if s, ok := body.(string); ok {
		return bytes.NewBufferString(s)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func strPtr(s string) *string { return &s }

// one returns a mock result, treating nil as a typed nil pointer.
func one[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockBrandStore struct{ mock.Mock }

func (m *MockBrandStore) List(ctx context.Context, accountID string) ([]models.Brand, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBrandStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Brand, error) {
	return one[models.Brand](m.Called(ctx, accountID, id))
}

func (m *MockBrandStore) Create(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	return one[models.Brand](m.Called(ctx, b))
}

func (m *MockBrandStore) Update(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	return one[models.Brand](m.Called(ctx, b))
}

func (m *MockBrandStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockPlatformStore struct{ mock.Mock }

func (m *MockPlatformStore) List(ctx context.Context, accountID string, brandID *uuid.UUID) ([]models.Platform, error) {
	args := m.Called(ctx, accountID, brandID)
	return args.Get(0).([]models.Platform), args.Error(1)
}

func (m *MockPlatformStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Platform, error) {
	return one[models.Platform](m.Called(ctx, accountID, id))
}

func (m *MockPlatformStore) Create(ctx context.Context, p *models.Platform) (*models.Platform, error) {
	return one[models.Platform](m.Called(ctx, p))
}

func (m *MockPlatformStore) Update(ctx context.Context, p *models.Platform) (*models.Platform, error) {
	return one[models.Platform](m.Called(ctx, p))
}

func (m *MockPlatformStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) List(ctx context.Context, accountID string) ([]models.User, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.User, error) {
	return one[models.User](m.Called(ctx, accountID, id))
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User, password string) (*models.User, error) {
	return one[models.User](m.Called(ctx, u, password))
}

func (m *MockUserStore) Update(ctx context.Context, accountID string, id uuid.UUID, displayName string, role models.Role) (*models.User, error) {
	return one[models.User](m.Called(ctx, accountID, id, displayName, role))
}

func (m *MockUserStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockTemplateStore struct{ mock.Mock }

func (m *MockTemplateStore) List(ctx context.Context, accountID string) ([]models.Template, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]models.Template), args.Error(1)
}

func (m *MockTemplateStore) FindByID(ctx context.Context, accountID, id string) (*models.Template, error) {
	return one[models.Template](m.Called(ctx, accountID, id))
}

func (m *MockTemplateStore) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	return one[models.Template](m.Called(ctx, t))
}

func (m *MockTemplateStore) Update(ctx context.Context, t *models.Template) (*models.Template, error) {
	return one[models.Template](m.Called(ctx, t))
}

func (m *MockTemplateStore) Delete(ctx context.Context, accountID, id string) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockTemplateCache struct{ mock.Mock }

func (m *MockTemplateCache) Get(ctx context.Context, accountID, id string) (*models.Template, bool) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Template), args.Bool(1)
}

func (m *MockTemplateCache) Set(ctx context.Context, accountID string, t *models.Template) {
	m.Called(ctx, accountID, t)
}

func (m *MockTemplateCache) Invalidate(ctx context.Context, accountID, id string) {
	m.Called(ctx, accountID, id)
}

type MockPostStore struct{ mock.Mock }

func (m *MockPostStore) List(ctx context.Context, accountID string, status models.PostStatus) ([]models.Post, error) {
	args := m.Called(ctx, accountID, status)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, accountID, id))
}

func (m *MockPostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, p))
}

func (m *MockPostStore) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, p))
}

func (m *MockPostStore) Transition(ctx context.Context, accountID string, id uuid.UUID, from, to models.PostStatus, note *string, scheduledAt *time.Time) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, accountID, id, from, to, note, scheduledAt))
}

func (m *MockPostStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockAssetStore struct{ mock.Mock }

func (m *MockAssetStore) Create(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	return one[models.Asset](m.Called(ctx, a))
}

func (m *MockAssetStore) List(ctx context.Context, accountID string, limit int) ([]models.Asset, error) {
	args := m.Called(ctx, accountID, limit)
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Asset, error) {
	return one[models.Asset](m.Called(ctx, accountID, id))
}

func (m *MockAssetStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}

type MockDashboardStore struct{ mock.Mock }

func (m *MockDashboardStore) Summary(ctx context.Context, accountID string, now time.Time) (*models.Dashboard, error) {
	return one[models.Dashboard](m.Called(ctx, accountID, now))
}

type MockDashboardCache struct{ mock.Mock }

func (m *MockDashboardCache) Get(ctx context.Context, accountID string) (*models.Dashboard, bool) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Dashboard), args.Bool(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, accountID string, d *models.Dashboard) {
	m.Called(ctx, accountID, d)
}

func (m *MockDashboardCache) Invalidate(ctx context.Context, accountID string) {
	m.Called(ctx, accountID)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	return m.Called(ctx, key, contentType, body, size).Error(0)
}

func (m *MockStorage) PresignPut(ctx context.Context, key, contentType string, size int64) (*storage.PresignedUpload, error) {
	return one[storage.PresignedUpload](m.Called(ctx, key, contentType, size))
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) FileURL(key string) string {
	return "https://cdn.example.com/" + key
}

type MockImageGenerator struct{ mock.Mock }

func (m *MockImageGenerator) Generate(ctx context.Context, prompt string) (*generation.Image, error) {
	return one[generation.Image](m.Called(ctx, prompt))
}

type MockBannerRenderer struct{ mock.Mock }

func (m *MockBannerRenderer) Render(ctx context.Context, req generation.BannerRequest) (*generation.Banner, error) {
	return one[generation.Banner](m.Called(ctx, req))
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// quietDashboard accepts any invalidation.
func quietDashboard() *MockDashboardCache {
	dc := new(MockDashboardCache)
	dc.On("Invalidate", mock.Anything, testAccount).Maybe()
	return dc
}
