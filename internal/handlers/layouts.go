// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketops/internal/design"
	"marketops/internal/models"
)

type layoutResponse struct {
	Key    string         `json:"key"`
	Known  bool           `json:"known"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Shapes []models.Shape `json:"shapes"`
}

// LayoutRoutes serves the read-only preset catalogue at /api/layouts.
func LayoutRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", ListLayouts)
	r.Get("/{key}", GetLayout)
	return r
}

func ListLayouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, design.Presets())
}

// GetLayout scales a preset to ?width=&height=, defaulting to the base
// canvas. Unknown keys answer with an empty shape list.
func GetLayout(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	width, height, err := canvasQuery(r, design.BaseWidth, design.BaseHeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shapes, err := design.Layout(key, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		Key:    key,
		Known:  design.HasPreset(key),
		Width:  width,
		Height: height,
		Shapes: shapes,
	})
}
