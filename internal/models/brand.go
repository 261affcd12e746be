// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a client brand whose campaigns the team produces.
type Brand struct {
	ID             uuid.UUID `json:"id"`
	AccountID      string    `json:"account_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	LogoURL        *string   `json:"logo_url"`
	Website        *string   `json:"website"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
