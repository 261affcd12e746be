// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"marketops/internal/database"
	"marketops/internal/models"
)

// DashboardStore computes the account KPIs.
type DashboardStore struct {
	db *database.DB
}

// NewDashboardStore creates a new DashboardStore with the given database handle.
func NewDashboardStore(db *database.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// Summary counts the account's records as of now. UpcomingWeek counts posts
// scheduled within the next seven days.
func (s *DashboardStore) Summary(ctx context.Context, accountID string, now time.Time) (*models.Dashboard, error) {
	d := &models.Dashboard{Posts: make(map[models.PostStatus]int, len(models.PostStatuses)), GeneratedAt: now}
	for _, st := range models.PostStatuses {
		d.Posts[st] = 0
	}

	err := s.db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM brands WHERE account_id = $1),
			(SELECT COUNT(*) FROM platforms WHERE account_id = $1),
			(SELECT COUNT(*) FROM users WHERE account_id = $1),
			(SELECT COUNT(*) FROM templates WHERE account_id = $1),
			(SELECT COUNT(*) FROM posts
				WHERE account_id = $1 AND status = 'scheduled'
				AND scheduled_at >= $2 AND scheduled_at < $3)
	`, accountID, now, now.Add(7*24*time.Hour)).Scan(
		&d.Brands, &d.Platforms, &d.Users, &d.Templates, &d.UpcomingWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT status, COUNT(*) FROM posts
		WHERE account_id = $1
		GROUP BY status
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("dashboard post counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.PostStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan post count: %w", err)
		}
		d.Posts[status] = count
	}
	return d, rows.Err()
}
