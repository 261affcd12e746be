// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"marketops/internal/database"
	"marketops/internal/models"
	"marketops/internal/slug"
)

const brandColumns = `id, account_id, name, slug, primary_color, secondary_color, logo_url, website, created_at, updated_at`

// BrandStore handles brand persistence.
type BrandStore struct {
	db *database.DB
}

// NewBrandStore creates a new BrandStore with the given database handle.
func NewBrandStore(db *database.DB) *BrandStore {
	return &BrandStore{db: db}
}

func scanBrand(row interface{ Scan(...any) error }) (*models.Brand, error) {
	b := &models.Brand{}
	err := row.Scan(
		&b.ID, &b.AccountID, &b.Name, &b.Slug, &b.PrimaryColor, &b.SecondaryColor,
		&b.LogoURL, &b.Website, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// List returns the account's brands ordered by name.
func (s *BrandStore) List(ctx context.Context, accountID string) ([]models.Brand, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+brandColumns+`
		FROM brands WHERE account_id = $1
		ORDER BY name
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, *b)
	}
	return brands, rows.Err()
}

// FindByID retrieves a brand by UUID. Returns nil if not found.
func (s *BrandStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Brand, error) {
	b, err := scanBrand(s.db.Pool.QueryRow(ctx, `
		SELECT `+brandColumns+`
		FROM brands WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand by id: %w", err)
	}
	return b, nil
}

// SlugExists reports whether the account already has a brand with slug.
func (s *BrandStore) SlugExists(ctx context.Context, accountID, slugValue string) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM brands WHERE account_id = $1 AND slug = $2)`,
		accountID, slugValue,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check brand slug: %w", err)
	}
	return exists, nil
}

// Create inserts a brand. The slug is derived from the name and suffixed
// until it is unique within the account.
func (s *BrandStore) Create(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	base := slug.Generate(b.Name)
	if base == "" {
		base = "brand"
	}
	brandSlug, err := slug.Unique(base, func(candidate string) (bool, error) {
		return s.SlugExists(ctx, b.AccountID, candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	created, err := scanBrand(s.db.Pool.QueryRow(ctx, `
		INSERT INTO brands (account_id, name, slug, primary_color, secondary_color, logo_url, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+brandColumns,
		b.AccountID, b.Name, brandSlug, b.PrimaryColor, b.SecondaryColor, b.LogoURL, b.Website,
	))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("create brand %s: %w", brandSlug, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return created, nil
}

// Update modifies a brand's presentation fields. The slug is kept stable.
func (s *BrandStore) Update(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	updated, err := scanBrand(s.db.Pool.QueryRow(ctx, `
		UPDATE brands SET
			name = $3, primary_color = $4, secondary_color = $5,
			logo_url = $6, website = $7, updated_at = NOW()
		WHERE account_id = $1 AND id = $2
		RETURNING `+brandColumns,
		b.AccountID, b.ID, b.Name, b.PrimaryColor, b.SecondaryColor, b.LogoURL, b.Website,
	))
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return updated, nil
}

// Delete removes a brand along with its platforms and posts.
func (s *BrandStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM brands WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
