// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PlatformKind identifies the social network a platform account lives on.
type PlatformKind string

const (
	PlatformInstagram PlatformKind = "instagram"
	PlatformFacebook  PlatformKind = "facebook"
	PlatformLinkedIn  PlatformKind = "linkedin"
	PlatformX         PlatformKind = "x"
	PlatformTikTok    PlatformKind = "tiktok"
)

// PlatformKinds lists the supported networks.
var PlatformKinds = []PlatformKind{
	PlatformInstagram, PlatformFacebook, PlatformLinkedIn, PlatformX, PlatformTikTok,
}

// Valid reports whether k is a supported network.
func (k PlatformKind) Valid() bool {
	for _, known := range PlatformKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Platform is one brand's presence on a social network.
type Platform struct {
	ID        uuid.UUID    `json:"id"`
	AccountID string       `json:"account_id"`
	BrandID   uuid.UUID    `json:"brand_id"`
	Name      string       `json:"name"`
	Kind      PlatformKind `json:"kind"`
	Handle    string       `json:"handle"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
