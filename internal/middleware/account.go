// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Headers set by the authenticating proxy in front of the API.
const (
	AccountHeader = "X-Account-ID"
	UserHeader    = "X-User-ID"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	accountKey contextKey = "account"
	userKey    contextKey = "user"
)

var accountPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Account requires the X-Account-ID header and stores the account in the
// request context. An optional X-User-ID carries the acting user's UUID.
func Account(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := r.Header.Get(AccountHeader)
		if !accountPattern.MatchString(account) {
			writeError(w, http.StatusBadRequest, "missing or invalid "+AccountHeader+" header")
			return
		}
		ctx := context.WithValue(r.Context(), accountKey, account)

		if raw := r.Header.Get(UserHeader); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid "+UserHeader+" header")
				return
			}
			ctx = context.WithValue(ctx, userKey, id)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountFromCtx returns the account set by Account, or "" outside it.
func AccountFromCtx(ctx context.Context) string {
	account, _ := ctx.Value(accountKey).(string)
	return account
}

// UserFromCtx returns the acting user's ID, or nil when none was sent.
func UserFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(userKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// WithAccount returns ctx carrying account, for handlers invoked outside
// the middleware chain.
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountKey, account)
}
