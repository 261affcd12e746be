// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marketops/internal/database"
	"marketops/internal/models"
)

const postColumns = `id, account_id, brand_id, platform_id, template_id, caption, image_url,
	status, scheduled_at, reviewer_note, author_id, created_at, updated_at`

// PostStore handles social posts and their approval workflow.
type PostStore struct {
	db *database.DB
}

// NewPostStore creates a new PostStore with the given database handle.
func NewPostStore(db *database.DB) *PostStore {
	return &PostStore{db: db}
}

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	err := row.Scan(
		&p.ID, &p.AccountID, &p.BrandID, &p.PlatformID, &p.TemplateID, &p.Caption,
		&p.ImageURL, &p.Status, &p.ScheduledAt, &p.ReviewerNote, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// List returns the account's posts, newest first. A non-empty status
// narrows the result to that status.
func (s *PostStore) List(ctx context.Context, accountID string, status models.PostStatus) ([]models.Post, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE account_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`, accountID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a post by UUID. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.Post, error) {
	p, err := scanPost(s.db.Pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a draft post.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	created, err := scanPost(s.db.Pool.QueryRow(ctx, `
		INSERT INTO posts (account_id, brand_id, platform_id, template_id, caption, image_url, status, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+postColumns,
		p.AccountID, p.BrandID, p.PlatformID, p.TemplateID, p.Caption, p.ImageURL,
		models.PostDraft, p.AuthorID,
	))
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update edits a post's content. Only draft and rejected posts can be
// edited; anything else yields ErrConflict.
func (s *PostStore) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	updated, err := scanPost(s.db.Pool.QueryRow(ctx, `
		UPDATE posts SET
			platform_id = $3, template_id = $4, caption = $5, image_url = $6, updated_at = NOW()
		WHERE account_id = $1 AND id = $2 AND status IN ('draft', 'rejected')
		RETURNING `+postColumns,
		p.AccountID, p.ID, p.PlatformID, p.TemplateID, p.Caption, p.ImageURL,
	))
	if isNoRows(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// Transition moves a post from status from to status to, optionally
// recording a reviewer note and a schedule time. It fails with ErrConflict
// when the post is no longer in status from.
func (s *PostStore) Transition(ctx context.Context, accountID string, id uuid.UUID, from, to models.PostStatus, note *string, scheduledAt *time.Time) (*models.Post, error) {
	p, err := scanPost(s.db.Pool.QueryRow(ctx, `
		UPDATE posts SET
			status = $4,
			reviewer_note = COALESCE($5, reviewer_note),
			scheduled_at = COALESCE($6, scheduled_at),
			updated_at = NOW()
		WHERE account_id = $1 AND id = $2 AND status = $3
		RETURNING `+postColumns,
		accountID, id, from, to, note, scheduledAt,
	))
	if isNoRows(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("transition post %s -> %s: %w", from, to, err)
	}
	return p, nil
}

// Delete removes a post.
func (s *PostStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM posts WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
