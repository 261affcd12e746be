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

const assetColumns = `id, account_id, source, prompt, content_type, size_bytes, s3_key, url,
	thumb_s3_key, thumb_url, created_at`

// AssetStore records metadata for images held in object storage.
type AssetStore struct {
	db *database.DB
}

// NewAssetStore creates a new AssetStore with the given database handle.
func NewAssetStore(db *database.DB) *AssetStore {
	return &AssetStore{db: db}
}

func scanAsset(row interface{ Scan(...any) error }) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(
		&a.ID, &a.AccountID, &a.Source, &a.Prompt, &a.ContentType, &a.SizeBytes,
		&a.S3Key, &a.URL, &a.ThumbS3Key, &a.ThumbURL, &a.CreatedAt,
	)
	return a, err
}

// Create inserts asset metadata after the object has been stored.
func (s *AssetStore) Create(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	created, err := scanAsset(s.db.Pool.QueryRow(ctx, `
		INSERT INTO assets (account_id, source, prompt, content_type, size_bytes, s3_key, url, thumb_s3_key, thumb_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+assetColumns,
		a.AccountID, a.Source, a.Prompt, a.ContentType, a.SizeBytes, a.S3Key, a.URL, a.ThumbS3Key, a.ThumbURL,
	))
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return created, nil
}

// List returns the account's most recent assets, at most limit of them.
func (s *AssetStore) List(ctx context.Context, accountID string, limit int) ([]models.Asset, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+assetColumns+`
		FROM assets WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// FindByID retrieves an asset. Returns nil if not found.
func (s *AssetStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Asset, error) {
	a, err := scanAsset(s.db.Pool.QueryRow(ctx, `
		SELECT `+assetColumns+`
		FROM assets WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// Delete removes asset metadata. The caller deletes the stored objects.
func (s *AssetStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM assets WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
