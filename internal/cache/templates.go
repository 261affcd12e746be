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
	templateKeyPrefix = "template:"

	// DefaultTemplateTTL is how long a normalized template stays cached.
	DefaultTemplateTTL = 10 * time.Minute
)

// TemplateCache holds normalized templates keyed by account and id.
type TemplateCache struct {
	c jsonCache
}

// NewTemplateCache creates a template cache. A nil client disables caching.
func NewTemplateCache(client *redis.Client, ttl time.Duration) *TemplateCache {
	if ttl == 0 {
		ttl = DefaultTemplateTTL
	}
	return &TemplateCache{c: jsonCache{client: client, prefix: templateKeyPrefix, ttl: ttl}}
}

// TemplateKey returns the cache key for a template within an account.
func TemplateKey(accountID, id string) string {
	return accountID + ":" + id
}

// Get returns the cached template, or false on a miss.
func (tc *TemplateCache) Get(ctx context.Context, accountID, id string) (*models.Template, bool) {
	var t models.Template
	if !tc.c.get(ctx, TemplateKey(accountID, id), &t) {
		return nil, false
	}
	return &t, true
}

// Set stores a template.
func (tc *TemplateCache) Set(ctx context.Context, accountID string, t *models.Template) {
	tc.c.set(ctx, TemplateKey(accountID, t.ID), t)
}

// Invalidate removes a template after it was updated or deleted.
func (tc *TemplateCache) Invalidate(ctx context.Context, accountID, id string) {
	tc.c.del(ctx, TemplateKey(accountID, id))
}
