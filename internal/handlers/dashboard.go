// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"
)

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	summary DashboardStore
	cache   DashboardCache
	now     func() time.Time
}

func NewDashboardHandler(summary DashboardStore, cache DashboardCache) *DashboardHandler {
	return &DashboardHandler{summary: summary, cache: cache, now: time.Now}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	acct := account(r)
	if d, ok := h.cache.Get(r.Context(), acct); ok {
		writeJSON(w, http.StatusOK, d)
		return
	}

	d, err := h.summary.Summary(r.Context(), acct, h.now())
	if err != nil {
		serverError(w, r, "failed to build dashboard", err)
		return
	}
	h.cache.Set(r.Context(), acct, d)
	writeJSON(w, http.StatusOK, d)
}
