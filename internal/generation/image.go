// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"marketops/internal/config"
	"marketops/internal/metrics"
)

// Image is a generated image ready to be stored.
type Image struct {
	Data          []byte
	ContentType   string
	RevisedPrompt string
}

// ImageClient calls an OpenAI-compatible POST /images/generations endpoint.
type ImageClient struct {
	cfg       config.ImageGenConfig
	client    *http.Client
	moderator *Moderator
}

// NewImageClient returns nil when no API key is configured.
func NewImageClient(cfg config.ImageGenConfig) *ImageClient {
	if cfg.APIKey == "" {
		return nil
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &ImageClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Moderate {
		c.moderator = NewModerator(cfg.APIKey, cfg.BaseURL)
	}
	return c
}

// Generate checks the prompt with the moderator (when enabled) and creates
// one image from it. A flagged prompt yields a *FlaggedPromptError.
func (c *ImageClient) Generate(ctx context.Context, prompt string) (*Image, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	if c.moderator != nil {
		res, err := c.moderator.Check(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if !res.Safe {
			return nil, &FlaggedPromptError{Categories: res.Categories}
		}
	}

	body := imagesRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		N:      1,
		Size:   c.cfg.Size,
	}
	// DALL-E models answer with URLs unless asked for base64; gpt-image
	// models always answer with base64 and reject the parameter.
	if strings.HasPrefix(c.cfg.Model, "dall-e") {
		body.ResponseFormat = "b64_json"
	}

	var result imagesResponse
	if err := postJSON(ctx, c.client, metrics.UpstreamImageGen, c.cfg.BaseURL+"/images/generations", c.cfg.APIKey, body, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("imagegen: no image returned")
	}

	data, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("imagegen decode: %w", err)
	}

	return &Image{
		Data:          data,
		ContentType:   http.DetectContentType(data),
		RevisedPrompt: result.Data[0].RevisedPrompt,
	}, nil
}

type imagesRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type imagesResponse struct {
	Data []struct {
		B64JSON       string `json:"b64_json"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}
