// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is a post's position in the approval workflow.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPending   PostStatus = "pending"
	PostApproved  PostStatus = "approved"
	PostRejected  PostStatus = "rejected"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

// PostStatuses lists every workflow status in display order.
var PostStatuses = []PostStatus{
	PostDraft, PostPending, PostApproved, PostRejected, PostScheduled, PostPublished,
}

// Valid reports whether s is a known status.
func (s PostStatus) Valid() bool {
	for _, known := range PostStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// transitions maps each status to the statuses it may move to.
var transitions = map[PostStatus][]PostStatus{
	PostDraft:     {PostPending},
	PostRejected:  {PostPending},
	PostPending:   {PostApproved, PostRejected},
	PostApproved:  {PostScheduled},
	PostScheduled: {PostPublished},
}

// CanTransitionTo reports whether a post in status s may move to next.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Post is a piece of social content moving through review and scheduling.
type Post struct {
	ID           uuid.UUID  `json:"id"`
	AccountID    string     `json:"account_id"`
	BrandID      uuid.UUID  `json:"brand_id"`
	PlatformID   *uuid.UUID `json:"platform_id"`
	TemplateID   *string    `json:"template_id"`
	Caption      string     `json:"caption"`
	ImageURL     *string    `json:"image_url"`
	Status       PostStatus `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	ReviewerNote *string    `json:"reviewer_note"`
	AuthorID     *uuid.UUID `json:"author_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsEditable returns true while the post has not entered review.
func (p *Post) IsEditable() bool {
	return p.Status == PostDraft || p.Status == PostRejected
}
