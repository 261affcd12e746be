// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		account     string
		user        string
		wantStatus  int
		wantAccount string
		wantUser    *uuid.UUID
		wantError   string
	}{
		{name: "account only", account: "acme", wantStatus: http.StatusOK, wantAccount: "acme"},
		{name: "account and user", account: "acme_eu-1", user: userID.String(), wantStatus: http.StatusOK, wantAccount: "acme_eu-1", wantUser: &userID},
		{name: "missing account", wantStatus: http.StatusBadRequest, wantError: "missing or invalid X-Account-ID header"},
		{name: "account with spaces", account: "acme inc", wantStatus: http.StatusBadRequest, wantError: "missing or invalid X-Account-ID header"},
		{name: "bad user id", account: "acme", user: "not-a-uuid", wantStatus: http.StatusBadRequest, wantError: "invalid X-User-ID header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotAccount string
				gotUser    *uuid.UUID
			)
			handler := Account(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAccount = AccountFromCtx(r.Context())
				gotUser = UserFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
			if tt.account != "" {
				req.Header.Set(AccountHeader, tt.account)
			}
			if tt.user != "" {
				req.Header.Set(UserHeader, tt.user)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAccount, gotAccount)
			assert.Equal(t, tt.wantUser, gotUser)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, rr.Body.String())
			}
		})
	}
}

func TestAccountFromEmptyContext(t *testing.T) {
	assert.Empty(t, AccountFromCtx(context.Background()))
	assert.Nil(t, UserFromCtx(context.Background()))
	assert.Equal(t, "acme", AccountFromCtx(WithAccount(context.Background(), "acme")))
}
