// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generation proxies the third-party creative APIs: an
// OpenAI-compatible image generation endpoint (with prompt moderation) and
// the banner rendering service that turns a scaled, data-bound template
// into an image.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketops/internal/metrics"
)

// maxResponseBytes caps upstream bodies; a 1024x1024 PNG in base64 fits easily.
const maxResponseBytes = 32 << 20

// ErrNotConfigured is returned when the upstream has no URL or API key.
var ErrNotConfigured = errors.New("generation: upstream not configured")

// APIError is a non-2xx answer from an upstream.
type APIError struct {
	Upstream string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Upstream, e.Status, e.Body)
}

// postJSON sends body to url and decodes a JSON answer into out. The call is
// recorded under upstream in the metrics.
func postJSON(ctx context.Context, client *http.Client, upstream, url, apiKey string, body, out any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordUpstream(upstream, start, err) }()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", upstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s request: %w", upstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s http: %w", upstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s read body: %w", upstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Upstream: upstream, Status: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s unmarshal: %w", upstream, err)
	}
	return nil
}
