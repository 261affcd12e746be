// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all marketops
// entities. Each store wraps a *database.DB and exposes typed query methods
// scoped to one account. Lookups return (nil, nil) when nothing matches;
// mutations return ErrNotFound.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned by updates and deletes that match no row.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict is returned when a write collides with a unique constraint
	// or with a concurrent status change.
	ErrConflict = errors.New("store: conflict")
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
