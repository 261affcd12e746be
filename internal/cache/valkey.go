// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache provides the Valkey (Redis-compatible) client and the
// read-through caches used by the API: templates by id and the per-account
// dashboard summary.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// jsonCache stores JSON-encoded values under a key prefix. A nil client
// turns every operation into a miss or a no-op.
type jsonCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (c *jsonCache) get(ctx context.Context, key string, dst any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		slog.Warn("cache get error", "key", c.prefix+key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("cache entry undecodable, dropping", "key", c.prefix+key, "error", err)
		c.del(ctx, key)
		return false
	}
	slog.Debug("cache hit", "key", c.prefix+key)
	return true
}

func (c *jsonCache) set(ctx context.Context, key string, v any) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache encode error", "key", c.prefix+key, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		slog.Warn("cache set error", "key", c.prefix+key, "error", err)
	}
}

func (c *jsonCache) del(ctx context.Context, key string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		slog.Warn("cache invalidate error", "key", c.prefix+key, "error", err)
	}
}
