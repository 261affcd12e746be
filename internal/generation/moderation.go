// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generation

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

// ModerationResult contains the outcome of a prompt safety check.
type ModerationResult struct {
	Safe       bool     // true if the prompt passes moderation
	Categories []string // flagged category names, empty when safe
}

// FlaggedPromptError reports a prompt rejected by moderation.
type FlaggedPromptError struct {
	Categories []string
}

func (e *FlaggedPromptError) Error() string {
	return "prompt rejected by moderation: " + strings.Join(e.Categories, ", ")
}

// Moderator uses the OpenAI Moderation API (POST /moderations), which is
// free for OpenAI API key holders.
type Moderator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewModerator creates a moderator against baseURL.
func NewModerator(apiKey, baseURL string) *Moderator {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Moderator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Check evaluates text and lists the flagged categories when it is unsafe.
func (m *Moderator) Check(ctx context.Context, text string) (*ModerationResult, error) {
	var result moderationResponse
	err := postJSON(ctx, m.client, "moderation", m.baseURL+"/moderations", m.apiKey,
		moderationRequest{Model: "omni-moderation-latest", Input: text}, &result)
	if err != nil {
		return nil, fmt.Errorf("moderation: %w", err)
	}

	if len(result.Results) == 0 || !result.Results[0].Flagged {
		return &ModerationResult{Safe: true}, nil
	}

	var flagged []string
	for cat, isFlagged := range result.Results[0].Categories {
		if isFlagged {
			flagged = append(flagged, displayCategory(cat))
		}
	}
	slices.Sort(flagged)
	return &ModerationResult{Categories: flagged}, nil
}

// displayCategory turns "hate/threatening" into "hate (threatening)" and
// "self_harm" into "self harm".
func displayCategory(cat string) string {
	display := cat
	if base, sub, ok := strings.Cut(cat, "/"); ok {
		display = base + " (" + sub + ")"
	}
	return strings.ReplaceAll(display, "_", " ")
}

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}
