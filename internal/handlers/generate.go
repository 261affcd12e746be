// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"marketops/internal/design"
	"marketops/internal/generation"
	"marketops/internal/imaging"
	"marketops/internal/models"
	"marketops/internal/storage"
)

type imageRequest struct {
	Prompt string `json:"prompt" validate:"notblank,max=4000"`
}

type imageResponse struct {
	Asset         *models.Asset `json:"asset"`
	RevisedPrompt string        `json:"revised_prompt,omitempty"`
}

type bannerRequest struct {
	TemplateID string              `json:"template_id" validate:"notblank"`
	Data       models.CampaignData `json:"data"`
	Width      int                 `json:"width" validate:"min=0,max=10000"`
	Height     int                 `json:"height" validate:"min=0,max=10000"`
}

// GenerateHandler proxies the image generation and banner rendering APIs.
type GenerateHandler struct {
	images    ImageGenerator
	banners   BannerRenderer
	storage   ObjectStorage
	assets    AssetStore
	templates TemplateStore
	cache     TemplateCache
}

func NewGenerateHandler(images ImageGenerator, banners BannerRenderer, storage ObjectStorage, assets AssetStore, templates TemplateStore, cache TemplateCache) *GenerateHandler {
	return &GenerateHandler{
		images:    images,
		banners:   banners,
		storage:   storage,
		assets:    assets,
		templates: templates,
		cache:     cache,
	}
}

func (h *GenerateHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/image", h.Image)
	r.Post("/banner", h.Banner)
	return r
}

// Image generates a picture from a prompt, stores it with a thumbnail and
// records it as an asset.
func (h *GenerateHandler) Image(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "storage is not configured")
		return
	}
	var req imageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	acct := account(r)

	img, err := h.images.Generate(r.Context(), prompt)
	if err != nil {
		upstreamError(w, r, "image generation", err)
		return
	}

	ext, ok := models.UploadContentTypes[img.ContentType]
	if !ok {
		slog.Error("image generation returned an unexpected format", "content_type", img.ContentType)
		writeError(w, http.StatusBadGateway, "image generation returned an unsupported format")
		return
	}

	key := storage.ObjectKey(acct, generatedFolder, ext)
	if err := h.storage.Upload(r.Context(), key, img.ContentType, bytes.NewReader(img.Data), int64(len(img.Data))); err != nil {
		serverError(w, r, "failed to store generated image", err)
		return
	}

	asset := &models.Asset{
		AccountID:   acct,
		Source:      models.AssetGenerated,
		Prompt:      &prompt,
		ContentType: img.ContentType,
		SizeBytes:   int64(len(img.Data)),
		S3Key:       key,
		URL:         h.storage.FileURL(key),
	}

	thumb, err := imaging.Thumb(img.Data, imaging.ThumbWidth)
	if err != nil {
		slog.Warn("failed to build thumbnail", "key", key, "error", err)
	} else {
		thumbKey := storage.ObjectKey(acct, thumbFolder, ".png")
		if err := h.storage.Upload(r.Context(), thumbKey, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
			slog.Warn("failed to store thumbnail", "key", thumbKey, "error", err)
		} else {
			thumbURL := h.storage.FileURL(thumbKey)
			asset.ThumbS3Key = &thumbKey
			asset.ThumbURL = &thumbURL
		}
	}

	created, err := h.assets.Create(r.Context(), asset)
	if err != nil {
		serverError(w, r, "failed to record generated image", err)
		return
	}
	slog.Info("image generated", "account", acct, "asset_id", created.ID, "bytes", created.SizeBytes)
	writeJSON(w, http.StatusCreated, imageResponse{Asset: created, RevisedPrompt: img.RevisedPrompt})
}

// Banner binds campaign data into a template, scales it and has the
// rendering service draw it.
func (h *GenerateHandler) Banner(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if (req.Width == 0) != (req.Height == 0) {
		writeError(w, http.StatusBadRequest, "width and height must be given together")
		return
	}

	t, err := findTemplate(r.Context(), h.templates, h.cache, account(r), req.TemplateID)
	if err != nil {
		serverError(w, r, "failed to get template", err)
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	banner, err := generation.BuildBanner(*t, req.Data, req.Width, req.Height)
	if errors.Is(err, design.ErrInvalidCanvas) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		serverError(w, r, "failed to build banner", err)
		return
	}

	out, err := h.banners.Render(r.Context(), banner)
	if err != nil {
		upstreamError(w, r, "banner rendering", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// upstreamError maps generation client failures to responses.
func upstreamError(w http.ResponseWriter, r *http.Request, what string, err error) {
	var flagged *generation.FlaggedPromptError
	var apiErr *generation.APIError
	switch {
	case errors.Is(err, generation.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, what+" is not configured")
	case errors.As(err, &flagged):
		writeError(w, http.StatusUnprocessableEntity, "prompt was flagged by moderation", flagged.Categories...)
	case errors.As(err, &apiErr):
		slog.Error(what+" failed", "status", apiErr.Status, "body", apiErr.Body, "account", account(r))
		writeError(w, http.StatusBadGateway, what+" failed")
	default:
		slog.Error(what+" failed", "error", err, "account", account(r))
		writeError(w, http.StatusBadGateway, what+" failed")
	}
}
