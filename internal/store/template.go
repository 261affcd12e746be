// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marketops/internal/database"
	"marketops/internal/design"
	"marketops/internal/models"
)

const templateColumns = `id, account_id, name, description, shapes, canvas_width, canvas_height,
	background_image, logo_placement, thumbnail_url, preview_url, created_at, updated_at`

// TemplateStore handles banner template persistence. Shapes and the logo
// placement are stored as JSONB; rows are read back through
// design.Normalize so older or hand-edited rows still load.
type TemplateStore struct {
	db *database.DB
}

// NewTemplateStore creates a new TemplateStore with the given database handle.
func NewTemplateStore(db *database.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func scanTemplate(row interface{ Scan(...any) error }) (*models.Template, error) {
	var (
		id, accountID, name, description string
		shapes, logo                     []byte
		width, height                    int
		background, thumbnail, preview   *string
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(
		&id, &accountID, &name, &description, &shapes, &width, &height,
		&background, &logo, &thumbnail, &preview, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	rec := map[string]any{
		"id":            id,
		"owner_id":      accountID,
		"name":          name,
		"description":   description,
		"shapes_json":   string(shapes),
		"canvas_width":  width,
		"canvas_height": height,
		"created_at":    createdAt,
		"updated_at":    updatedAt,
	}
	if logo != nil {
		rec["logo_placement"] = string(logo)
	}
	setOptional(rec, "background_image", background)
	setOptional(rec, "thumbnail_url", thumbnail)
	setOptional(rec, "preview_url", preview)

	t, err := design.Normalize(rec)
	if err != nil {
		slog.Warn("stored template has malformed fields", "template_id", id, "error", err)
	}
	return &t, nil
}

func setOptional(rec map[string]any, key string, v *string) {
	if v != nil {
		rec[key] = *v
	}
}

// encodeTemplate returns the JSONB payloads for a template's shapes and logo.
func encodeTemplate(t *models.Template) (shapes, logo []byte, err error) {
	list := t.Shapes
	if list == nil {
		list = []models.Shape{}
	}
	if shapes, err = json.Marshal(list); err != nil {
		return nil, nil, fmt.Errorf("encode shapes: %w", err)
	}
	if t.LogoPlacement != nil {
		if logo, err = json.Marshal(t.LogoPlacement); err != nil {
			return nil, nil, fmt.Errorf("encode logo placement: %w", err)
		}
	}
	return shapes, logo, nil
}

// List returns the account's templates, most recently updated first.
func (s *TemplateStore) List(ctx context.Context, accountID string) ([]models.Template, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM templates WHERE account_id = $1
		ORDER BY updated_at DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := []models.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// FindByID retrieves a template. Returns nil if not found.
func (s *TemplateStore) FindByID(ctx context.Context, accountID, id string) (*models.Template, error) {
	t, err := scanTemplate(s.db.Pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM templates WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// Create inserts a template, generating an ID when it has none.
func (s *TemplateStore) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	shapes, logo, err := encodeTemplate(t)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	id := t.ID
	if id == "" {
		id = uuid.NewString()
	}

	created, err := scanTemplate(s.db.Pool.QueryRow(ctx, `
		INSERT INTO templates (id, account_id, name, description, shapes, canvas_width, canvas_height,
			background_image, logo_placement, thumbnail_url, preview_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+templateColumns,
		id, t.OwnerID, t.Name, t.Description, shapes, t.CanvasWidth, t.CanvasHeight,
		t.BackgroundImage, logo, t.ThumbnailURL, t.PreviewURL,
	))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("create template %s: %w", id, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return created, nil
}

// Update replaces a template's content.
func (s *TemplateStore) Update(ctx context.Context, t *models.Template) (*models.Template, error) {
	shapes, logo, err := encodeTemplate(t)
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}

	updated, err := scanTemplate(s.db.Pool.QueryRow(ctx, `
		UPDATE templates SET
			name = $3, description = $4, shapes = $5, canvas_width = $6, canvas_height = $7,
			background_image = $8, logo_placement = $9, thumbnail_url = $10, preview_url = $11,
			updated_at = NOW()
		WHERE account_id = $1 AND id = $2
		RETURNING `+templateColumns,
		t.OwnerID, t.ID, t.Name, t.Description, shapes, t.CanvasWidth, t.CanvasHeight,
		t.BackgroundImage, logo, t.ThumbnailURL, t.PreviewURL,
	))
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return updated, nil
}

// Delete removes a template. Posts that used it keep their images.
func (s *TemplateStore) Delete(ctx context.Context, accountID, id string) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM templates WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
