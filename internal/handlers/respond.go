// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"marketops/internal/middleware"
)

// maxBodyBytes caps JSON request bodies. Templates with many shapes stay
// well below it.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}

// serverError logs err with the request path and answers 500 without
// leaking internals to the client.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path, "account", middleware.AccountFromCtx(r.Context()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads the request body into dst and validates it. On failure
// the response has already been written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation failed", validationMessages(err)...)
		return false
	}
	return true
}

// readJSON decodes without validation, answering 400 or 413 on bad input.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	} else {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
	}
	return err
}

func account(r *http.Request) string {
	return middleware.AccountFromCtx(r.Context())
}

// uuidParam parses a UUID route parameter, answering 400 when malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// canvasQuery reads optional width and height query parameters. Both absent
// returns the fallback; one without the other or a non-positive value is an
// error.
func canvasQuery(r *http.Request, fallbackW, fallbackH int) (int, int, error) {
	q := r.URL.Query()
	ws, hs := q.Get("width"), q.Get("height")
	if ws == "" && hs == "" {
		return fallbackW, fallbackH, nil
	}

	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, errors.New("width must be a positive integer")
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, errors.New("height must be a positive integer")
	}
	return w, h, nil
}
