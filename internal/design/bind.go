// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

import (
	"strings"

	"marketops/internal/models"
)

// BulletPrefix starts each line of a bullet-group shape.
const BulletPrefix = "• "

// ResolveText returns the text a shape displays for the given campaign data.
// Shapes without a data binding show their literal text. A bound shape whose
// campaign value is empty falls back to its literal text.
func ResolveText(s models.Shape, data models.CampaignData) string {
	if s.DataField == "" {
		return s.Text
	}
	if v := fieldValue(s.DataField, data); v != "" {
		return v
	}
	return s.Text
}

// Bind returns a copy of shapes with every data-bound shape's Text replaced
// by its resolved campaign value.
func Bind(shapes []models.Shape, data models.CampaignData) []models.Shape {
	out := make([]models.Shape, len(shapes))
	for i, s := range shapes {
		s.Text = ResolveText(s, data)
		out[i] = s
	}
	return out
}

func fieldValue(f models.DataField, data models.CampaignData) string {
	switch f {
	case models.FieldHook:
		return data.Hook
	case models.FieldSubheading:
		return data.Subheading
	case models.FieldBullets:
		return bulletList(data.Bullets)
	case models.FieldProof:
		return data.Proof
	case models.FieldCTAText:
		return data.CTAText
	case models.FieldCTALink:
		return data.CTALink
	case models.FieldHashtags:
		return hashtagLine(data.Hashtags)
	case models.FieldCompanyName:
		return data.CompanyName
	case models.FieldLocation:
		return data.Location
	}
	return ""
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, BulletPrefix+item)
	}
	return strings.Join(lines, "\n")
}

func hashtagLine(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
		if tag == "" {
			continue
		}
		out = append(out, "#"+tag)
	}
	return strings.Join(out, " ")
}
