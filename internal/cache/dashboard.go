// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"marketops/internal/models"
)

const (
	dashboardKeyPrefix = "dashboard:"

	// DefaultDashboardTTL bounds how stale the KPI summary can get.
	DefaultDashboardTTL = time.Minute
)

// DashboardCache holds the per-account dashboard summary.
type DashboardCache struct {
	c jsonCache
}

// NewDashboardCache creates a dashboard cache. A nil client disables caching.
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl == 0 {
		ttl = DefaultDashboardTTL
	}
	return &DashboardCache{c: jsonCache{client: client, prefix: dashboardKeyPrefix, ttl: ttl}}
}

// Get returns the cached summary, or false on a miss.
func (dc *DashboardCache) Get(ctx context.Context, accountID string) (*models.Dashboard, bool) {
	var d models.Dashboard
	if !dc.c.get(ctx, accountID, &d) {
		return nil, false
	}
	return &d, true
}

// Set stores a summary.
func (dc *DashboardCache) Set(ctx context.Context, accountID string, d *models.Dashboard) {
	dc.c.set(ctx, accountID, d)
}

// Invalidate drops the account's summary so the next read recomputes it.
func (dc *DashboardCache) Invalidate(ctx context.Context, accountID string) {
	dc.c.del(ctx, accountID)
}
