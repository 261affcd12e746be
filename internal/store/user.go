// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"marketops/internal/database"
	"marketops/internal/models"
)

const userColumns = `id, account_id, email, password_hash, display_name, role, created_at, updated_at`

// UserStore handles all user-related database operations.
type UserStore struct {
	db *database.DB
}

// NewUserStore creates a new UserStore with the given database handle.
func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.AccountID, &u.Email, &u.PasswordHash, &u.DisplayName,
		&u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// List returns every user in the account ordered by display name.
func (s *UserStore) List(ctx context.Context, accountID string) ([]models.User, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE account_id = $1
		ORDER BY display_name
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// FindByID retrieves a user by UUID. Returns nil if not found.
func (s *UserStore) FindByID(ctx context.Context, accountID string, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE account_id = $1 AND id = $2
	`, accountID, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail retrieves a user by email address. Returns nil if not found.
func (s *UserStore) FindByEmail(ctx context.Context, accountID, email string) (*models.User, error) {
	u, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE account_id = $1 AND email = $2
	`, accountID, email))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Create hashes the password with bcrypt and inserts the user. A duplicate
// email within the account yields ErrConflict.
func (s *UserStore) Create(ctx context.Context, u *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := scanUser(s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (account_id, email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		u.AccountID, u.Email, string(hash), u.DisplayName, u.Role,
	))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("create user %s: %w", u.Email, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Update changes a user's display name and role.
func (s *UserStore) Update(ctx context.Context, accountID string, id uuid.UUID, displayName string, role models.Role) (*models.User, error) {
	u, err := scanUser(s.db.Pool.QueryRow(ctx, `
		UPDATE users SET display_name = $3, role = $4, updated_at = NOW()
		WHERE account_id = $1 AND id = $2
		RETURNING `+userColumns,
		accountID, id, displayName, role,
	))
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// CheckPassword reports whether password matches the user's stored hash.
func (s *UserStore) CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Delete removes a user.
func (s *UserStore) Delete(ctx context.Context, accountID string, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM users WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
