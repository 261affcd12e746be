// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"marketops/internal/models"
	"marketops/internal/storage"
	"marketops/internal/store"
)

const (
	uploadFolder    = "uploads"
	generatedFolder = "generated"
	thumbFolder     = "thumbnails"
)

type presignRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,min=1"`
}

type presignResponse struct {
	Upload *storage.PresignedUpload `json:"upload"`
	Asset  *models.Asset            `json:"asset"`
}

// AssetHandler serves /api/uploads and /api/assets. Storage may be nil, in
// which case presigning answers 503.
type AssetHandler struct {
	assets  AssetStore
	storage ObjectStorage
}

func NewAssetHandler(assets AssetStore, storage ObjectStorage) *AssetHandler {
	return &AssetHandler{assets: assets, storage: storage}
}

func (h *AssetHandler) UploadRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/presign", h.Presign)
	return r
}

func (h *AssetHandler) AssetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
	return r
}

// Presign validates the file the client is about to send and returns a
// presigned PUT for it. The asset row is recorded up front.
func (h *AssetHandler) Presign(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "storage is not configured")
		return
	}
	var req presignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ext, ok := models.UploadContentTypes[req.ContentType]
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "validation failed",
			"content_type must be one of: image/jpeg, image/png, image/webp, image/gif, image/svg+xml")
		return
	}
	if req.Size > models.MaxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file too large (max %d MB)", models.MaxUploadSize>>20))
		return
	}

	acct := account(r)
	key := storage.ObjectKey(acct, uploadFolder, ext)
	upload, err := h.storage.PresignPut(r.Context(), key, req.ContentType, req.Size)
	if err != nil {
		serverError(w, r, "failed to presign upload", err)
		return
	}

	asset, err := h.assets.Create(r.Context(), &models.Asset{
		AccountID:   acct,
		Source:      models.AssetUploaded,
		ContentType: req.ContentType,
		SizeBytes:   req.Size,
		S3Key:       key,
		URL:         upload.PublicURL,
	})
	if err != nil {
		serverError(w, r, "failed to record upload", err)
		return
	}
	writeJSON(w, http.StatusCreated, presignResponse{Upload: upload, Asset: asset})
}

// List accepts an optional ?limit=; the store clamps it.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	assets, err := h.assets.List(r.Context(), account(r), limit)
	if err != nil {
		serverError(w, r, "failed to list assets", err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	a, err := h.assets.FindByID(r.Context(), account(r), id)
	if err != nil {
		serverError(w, r, "failed to get asset", err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete drops the asset row, then its objects. Object removal failures are
// logged only; the row is already gone.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	acct := account(r)

	a, err := h.assets.FindByID(r.Context(), acct, id)
	if err != nil {
		serverError(w, r, "failed to get asset", err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	if err := h.assets.Delete(r.Context(), acct, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		serverError(w, r, "failed to delete asset", err)
		return
	}

	if h.storage != nil {
		keys := []string{a.S3Key}
		if a.ThumbS3Key != nil {
			keys = append(keys, *a.ThumbS3Key)
		}
		for _, key := range keys {
			if err := h.storage.Delete(r.Context(), key); err != nil {
				slog.Warn("failed to delete object", "key", key, "error", err)
			}
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
