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
)

const platformColumns = `id, account_id, brand_id, name, kind, handle, active, created_at, updated_at`

// PlatformStore handles the social platform catalogue.
type PlatformStore struct {
	db *database.DB
}

// NewPlatformStore creates a new PlatformStore with the given database handle.
func NewPlatformStore(db *database.DB) *PlatformStore {
	return &PlatformStore{db: db}
}

func scanPlatform(row interface{ Scan(...any) error }) (*models.Platform, error) {
	p := &models.Platform{}
	err := row.Scan(
		&p.ID, &p.AccountID, &p.BrandID, &p.Name, &p.Kind, &p.Handle,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// List returns the account's platforms, optionally limited to one brand.
func (s *PlatformStore) List(ctx context.Context, accountID string, brandID *uuid.UUID) ([]models.Platform, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+platformColumns+`
		FROM platforms
		WHERE account_id = $1 AND ($2::uuid IS NULL OR brand_id = $2)
		ORDER BY kind, name
	`, accountID, brandID)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()

	platforms := []models.Platform{}
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		platforms = append(platforms, *p)
	}
	return platforms, rows.Err()
}

// FindByID retrieves a platform by UUID. Returns nil if not found.
func (s *PlatformStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Platform, error) {
	p, err := scanPlatform(s.db.Pool.QueryRow(ctx, `
		SELECT `+platformColumns+`
		FROM platforms WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find platform by id: %w", err)
	}
	return p, nil
}

// Create inserts a platform.
func (s *PlatformStore) Create(ctx context.Context, p *models.Platform) (*models.Platform, error) {
	created, err := scanPlatform(s.db.Pool.QueryRow(ctx, `
		INSERT INTO platforms (account_id, brand_id, name, kind, handle, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+platformColumns,
		p.AccountID, p.BrandID, p.Name, p.Kind, p.Handle, p.Active,
	))
	if err != nil {
		return nil, fmt.Errorf("create platform: %w", err)
	}
	return created, nil
}

// Update modifies a platform's name, handle and active flag.
func (s *PlatformStore) Update(ctx context.Context, p *models.Platform) (*models.Platform, error) {
	updated, err := scanPlatform(s.db.Pool.QueryRow(ctx, `
		UPDATE platforms SET name = $3, handle = $4, active = $5, updated_at = NOW()
		WHERE account_id = $1 AND id = $2
		RETURNING `+platformColumns,
		p.AccountID, p.ID, p.Name, p.Handle, p.Active,
	))
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update platform: %w", err)
	}
	return updated, nil
}

// Delete removes a platform. Posts keep existing with no platform.
func (s *PlatformStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM platforms WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete platform: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
