// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API. Every route runs behind the
// account middleware, so handlers read the account from the request context
// and pass it to the stores.
package handlers

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"marketops/internal/generation"
	"marketops/internal/models"
	"marketops/internal/storage"
)

// BrandStore defines the brand persistence used by BrandHandler.
type BrandStore interface {
	List(ctx context.Context, accountID string) ([]models.Brand, error)
	FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Brand, error)
	Create(ctx context.Context, b *models.Brand) (*models.Brand, error)
	Update(ctx context.Context, b *models.Brand) (*models.Brand, error)
	Delete(ctx context.Context, accountID string, id uuid.UUID) error
}

// PlatformStore defines the platform persistence used by PlatformHandler.
type PlatformStore interface {
	List(ctx context.Context, accountID string, brandID *uuid.UUID) ([]models.Platform, error)
	FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Platform, error)
	Create(ctx context.Context, p *models.Platform) (*models.Platform, error)
	Update(ctx context.Context, p *models.Platform) (*models.Platform, error)
	Delete(ctx context.Context, accountID string, id uuid.UUID) error
}

// UserStore defines the user persistence used by UserHandler.
type UserStore interface {
	List(ctx context.Context, accountID string) ([]models.User, error)
	FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, u *models.User, password string) (*models.User, error)
	Update(ctx context.Context, accountID string, id uuid.UUID, displayName string, role models.Role) (*models.User, error)
	Delete(ctx context.Context, accountID string, id uuid.UUID) error
}

// TemplateStore defines the template persistence used by TemplateHandler
// and GenerateHandler.
type TemplateStore interface {
	List(ctx context.Context, accountID string) ([]models.Template, error)
	FindByID(ctx context.Context, accountID, id string) (*models.Template, error)
	Create(ctx context.Context, t *models.Template) (*models.Template, error)
	Update(ctx context.Context, t *models.Template) (*models.Template, error)
	Delete(ctx context.Context, accountID, id string) error
}

// TemplateCache fronts TemplateStore lookups.
type TemplateCache interface {
	Get(ctx context.Context, accountID, id string) (*models.Template, bool)
	Set(ctx context.Context, accountID string, t *models.Template)
	Invalidate(ctx context.Context, accountID, id string)
}

// PostStore defines the post persistence used by PostHandler.
type PostStore interface {
	List(ctx context.Context, accountID string, status models.PostStatus) ([]models.Post, error)
	FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) (*models.Post, error)
	Transition(ctx context.Context, accountID string, id uuid.UUID, from, to models.PostStatus, note *string, scheduledAt *time.Time) (*models.Post, error)
	Delete(ctx context.Context, accountID string, id uuid.UUID) error
}

// AssetStore defines the asset bookkeeping used by uploads and generation.
type AssetStore interface {
	Create(ctx context.Context, a *models.Asset) (*models.Asset, error)
	List(ctx context.Context, accountID string, limit int) ([]models.Asset, error)
	FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Asset, error)
	Delete(ctx context.Context, accountID string, id uuid.UUID) error
}

// DashboardStore computes the KPI summary.
type DashboardStore interface {
	Summary(ctx context.Context, accountID string, now time.Time) (*models.Dashboard, error)
}

// DashboardCache fronts DashboardStore. Handlers that change counted rows
// invalidate it.
type DashboardCache interface {
	Get(ctx context.Context, accountID string) (*models.Dashboard, bool)
	Set(ctx context.Context, accountID string, d *models.Dashboard)
	Invalidate(ctx context.Context, accountID string)
}

// ObjectStorage is the S3 bucket holding uploads and generated images.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignPut(ctx context.Context, key, contentType string, size int64) (*storage.PresignedUpload, error)
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
}

// ImageGenerator turns a prompt into image bytes.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*generation.Image, error)
}

// BannerRenderer draws a bound template through the rendering service.
type BannerRenderer interface {
	Render(ctx context.Context, req generation.BannerRequest) (*generation.Banner, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
