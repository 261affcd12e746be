// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generation

import (
	"context"
	"fmt"
	"net/http"

	"marketops/internal/config"
	"marketops/internal/design"
	"marketops/internal/metrics"
	"marketops/internal/models"
)

// BannerRequest is the payload sent to the banner rendering service: a
// canvas and its layers, bottom first, with text already resolved.
type BannerRequest struct {
	TemplateID      string                `json:"template_id"`
	Width           int                   `json:"width"`
	Height          int                   `json:"height"`
	BackgroundImage *string               `json:"background_image,omitempty"`
	Shapes          []models.Shape        `json:"shapes"`
	Logo            *models.LogoPlacement `json:"logo,omitempty"`
}

// Banner is the rendering service's answer.
type Banner struct {
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// BuildBanner scales t from its own canvas to width x height, resolves the
// campaign data bindings and orders the layers. A zero width and height
// keep the template's canvas.
func BuildBanner(t models.Template, data models.CampaignData, width, height int) (BannerRequest, error) {
	if width == 0 && height == 0 {
		width, height = t.CanvasWidth, t.CanvasHeight
	}

	shapes, err := design.ScaleShapesFrom(t.Shapes, t.CanvasWidth, t.CanvasHeight, width, height)
	if err != nil {
		return BannerRequest{}, err
	}
	logo, err := design.ScaleLogo(t.LogoPlacement, t.CanvasWidth, t.CanvasHeight, width, height)
	if err != nil {
		return BannerRequest{}, err
	}

	return BannerRequest{
		TemplateID:      t.ID,
		Width:           width,
		Height:          height,
		BackgroundImage: t.BackgroundImage,
		Shapes:          design.Layered(design.Bind(shapes, data)),
		Logo:            logo,
	}, nil
}

// BannerClient posts banner requests to the rendering service.
type BannerClient struct {
	url    string
	apiKey string
	client *http.Client
}

// NewBannerClient returns nil when no rendering URL is configured.
func NewBannerClient(cfg config.BannerConfig) *BannerClient {
	if cfg.URL == "" {
		return nil
	}
	return &BannerClient{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Render asks the service to draw req and returns where the image lives.
func (c *BannerClient) Render(ctx context.Context, req BannerRequest) (*Banner, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	var out struct {
		Banner
		URL string `json:"url"`
	}
	if err := postJSON(ctx, c.client, metrics.UpstreamBanner, c.url, c.apiKey, req, &out); err != nil {
		return nil, err
	}

	b := out.Banner
	if b.ImageURL == "" {
		b.ImageURL = out.URL
	}
	if b.ImageURL == "" {
		return nil, fmt.Errorf("banner: no image url returned")
	}
	if b.Width == 0 {
		b.Width, b.Height = req.Width, req.Height
	}
	return &b, nil
}
