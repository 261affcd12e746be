// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"marketops/internal/design"
)

// SeedAdminEmail is the login created for a fresh account.
const SeedAdminEmail = "admin@marketops.local"

// Seed populates an empty account with a default admin user and one starter
// template per preset layout, drawn on the base canvas.
func Seed(ctx context.Context, db *DB, accountID string) error {
	var count int
	if err := db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE account_id = $1", accountID,
	).Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping", "account_id", accountID)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (account_id, email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4, $5)
	`, accountID, SeedAdminEmail, string(hash), "Admin", "admin"); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	for _, p := range design.Presets() {
		shapes, err := design.Layout(p.Key, design.BaseWidth, design.BaseHeight)
		if err != nil {
			return fmt.Errorf("seed layout %s: %w", p.Key, err)
		}
		shapesJSON, err := json.Marshal(shapes)
		if err != nil {
			return fmt.Errorf("seed marshal %s: %w", p.Key, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO templates (id, account_id, name, description, shapes, canvas_width, canvas_height)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.NewString(), accountID, p.Name, p.Description, shapesJSON,
			design.BaseWidth, design.BaseHeight); err != nil {
			return fmt.Errorf("seed insert template %s: %w", p.Key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"account_id", accountID,
		"email", SeedAdminEmail,
		"password", "admin",
	)
	return nil
}
