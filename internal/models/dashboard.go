// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Dashboard holds the KPI counters shown on the team's landing page.
type Dashboard struct {
	Brands       int                `json:"brands"`
	Platforms    int                `json:"platforms"`
	Users        int                `json:"users"`
	Templates    int                `json:"templates"`
	Posts        map[PostStatus]int `json:"posts"`
	UpcomingWeek int                `json:"upcoming_week"`
	GeneratedAt  time.Time          `json:"generated_at"`
}
