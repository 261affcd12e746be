// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	Server   ServerConfig   `env:",prefix=APP_"`
	Postgres PostgresConfig `env:",prefix=POSTGRES_"`
	Valkey   ValkeyConfig   `env:",prefix=VALKEY_"`
	S3       S3Config       `env:",prefix=S3_"`
	ImageGen ImageGenConfig `env:",prefix=IMAGEGEN_"`
	Banner   BannerConfig   `env:",prefix=BANNER_"`
	Limits   LimitConfig    `env:",prefix=RATE_LIMIT_"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     string `env:"PORT,default=8080"`
	Env      string `env:"ENV,default=development"` // "development", "production", "testing"
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// SeedAccount receives the starter templates in development.
	SeedAccount string `env:"SEED_ACCOUNT,default=demo"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=5432"`
	User     string `env:"USER,default=marketops"`
	Password string `env:"PASSWORD,default=changeme"`
	Name     string `env:"DB,default=marketops"`
	MaxConns int32  `env:"MAX_CONNS,default=25"`
}

// ValkeyConfig holds the Redis-compatible cache settings.
type ValkeyConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=6379"`
	Password string `env:"PASSWORD"`
}

// S3Config holds the object storage settings. Storage is disabled when the
// endpoint or credentials are empty.
type S3Config struct {
	Endpoint   string        `env:"ENDPOINT"`
	Region     string        `env:"REGION,default=fsn1"`
	AccessKey  string        `env:"ACCESS_KEY"`
	SecretKey  string        `env:"SECRET_KEY"`
	Bucket     string        `env:"BUCKET,default=marketops-assets"`
	PublicURL  string        `env:"PUBLIC_URL"`
	PresignTTL time.Duration `env:"PRESIGN_TTL,default=15m"`
}

// ImageGenConfig points at an OpenAI-compatible image generation API.
type ImageGenConfig struct {
	BaseURL  string        `env:"BASE_URL,default=https://api.openai.com/v1"`
	APIKey   string        `env:"API_KEY"`
	Model    string        `env:"MODEL,default=gpt-image-1"`
	Size     string        `env:"SIZE,default=1024x1024"`
	Timeout  time.Duration `env:"TIMEOUT,default=90s"`
	Moderate bool          `env:"MODERATE,default=true"`
}

// BannerConfig points at the third-party banner rendering API.
type BannerConfig struct {
	URL     string        `env:"URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT,default=30s"`
}

// LimitConfig sets the per-client token bucket on generation endpoints.
type LimitConfig struct {
	PerMinute int `env:"PER_MINUTE,default=10"`
	Burst     int `env:"BURST,default=3"`
}

// Load reads an optional .env file, then the environment, applying
// development defaults where appropriate. Returns an error if critical
// values are missing in production mode.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.IsProduction() && cfg.Postgres.Password == "changeme" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}

	return &cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	p := c.Postgres
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Name,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// ValkeyAddr returns the cache address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.Valkey.Host, c.Valkey.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LogLevel parses the configured log level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
