// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketops/internal/models"
)

var userCols = []string{"id", "account_id", "email", "password_hash", "display_name", "role", "created_at", "updated_at"}

func TestUserStore_List(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE account_id`).
		WithArgs(testAccount).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(uuid.New(), testAccount, "ana@acme.test", "hash", "Ana", models.RoleAdmin, now, now).
			AddRow(uuid.New(), testAccount, "bo@acme.test", "hash", "Bo", models.RoleCreator, now, now))

	users, err := s.List(context.Background(), testAccount)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].DisplayName)
	assert.Equal(t, models.RoleCreator, users[1].Role)
}

func TestUserStore_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE account_id = .+ AND id`).
		WithArgs(testAccount, id).
		WillReturnError(pgx.ErrNoRows)

	u, err := s.FindByID(context.Background(), testAccount, id)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserStore_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE account_id = .+ AND email`).
		WithArgs(testAccount, "ana@acme.test").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, testAccount, "ana@acme.test", "hash", "Ana", models.RoleManager, now, now))

	u, err := s.FindByEmail(context.Background(), testAccount, "ana@acme.test")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
}

func TestUserStore_CreateHashesPassword(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(testAccount, "new@acme.test", pgxmock.AnyArg(), "New", models.RoleCreator).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, testAccount, "new@acme.test", "stored-hash", "New", models.RoleCreator, now, now))

	u, err := s.Create(context.Background(), &models.User{
		AccountID: testAccount, Email: "new@acme.test", DisplayName: "New", Role: models.RoleCreator,
	}, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
}

func TestUserStore_CreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.Create(context.Background(), &models.User{AccountID: testAccount, Email: "dup@acme.test"}, "pw")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserStore_CheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	s := &UserStore{}
	u := &models.User{PasswordHash: string(hash)}

	assert.True(t, s.CheckPassword(u, "correct horse"))
	assert.False(t, s.CheckPassword(u, "battery staple"))
}

func TestUserStore_UpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE users SET display_name`).
		WithArgs(testAccount, id, "Ana", models.RoleAdmin).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.Update(context.Background(), testAccount, id, "Ana", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(testAccount, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(testAccount, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(testAccount, id).
		WillReturnError(errors.New("connection reset"))

	ctx := context.Background()
	assert.NoError(t, s.Delete(ctx, testAccount, id))
	assert.ErrorIs(t, s.Delete(ctx, testAccount, id), ErrNotFound)

	err := s.Delete(ctx, testAccount, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "delete user")
}
