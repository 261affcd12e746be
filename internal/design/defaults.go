// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package design holds the campaign banner data pipeline used by the design
// studio: shape defaulting, coordinate scaling between canvases, the preset
// layouts and normalization of templates arriving from the transport layer.
// Everything here is a synchronous transform over plain values.
package design

import (
	"github.com/google/uuid"

	"marketops/internal/models"
)

// Shape defaults applied to every field a caller leaves unset.
const (
	DefaultX               = 50
	DefaultY               = 50
	DefaultWidth           = 200
	DefaultHeight          = 80
	DefaultBackgroundColor = "transparent"
	DefaultBorderColor     = "#000000"
	DefaultTextColor       = "#1a1a1a"
	DefaultFontFamily      = "Arial"
	DefaultFontSize        = 36
	DefaultFontWeight      = 700
	DefaultPadding         = 10
	DefaultOpacity         = 1.0
	DefaultShadowColor     = "transparent"
	DefaultZIndex          = 1
)

// PartialShape is a shape description where every attribute is optional.
// A nil field means "not provided" and is filled by DefaultShape.
type PartialShape struct {
	ID   *string
	Type *models.ShapeVariant

	X      *int
	Y      *int
	Width  *int
	Height *int

	BackgroundColor *string
	BorderColor     *string
	BorderWidth     *int
	BorderRadius    *int
	TextColor       *string
	FontFamily      *string
	FontSize        *int
	FontWeight      *int
	TextAlign       *models.TextAlign
	Padding         *int
	Opacity         *float64

	ShadowBlur    *int
	ShadowOffsetX *int
	ShadowOffsetY *int
	ShadowColor   *string

	ZIndex *int

	Text      *string
	DataField *models.DataField
}

// DefaultShape turns a partial description into a complete shape. A missing
// or blank ID gets a freshly generated one; keeping IDs unique across a
// template is the caller's job. Negative geometry is clamped to zero and
// opacity to [0, 1].
func DefaultShape(p PartialShape) models.Shape {
	s := models.Shape{
		ID:              str(p.ID, ""),
		Type:            models.ShapeVariant(str((*string)(p.Type), string(models.ShapeText))),
		X:               nonNegative(num(p.X, DefaultX)),
		Y:               nonNegative(num(p.Y, DefaultY)),
		Width:           nonNegative(num(p.Width, DefaultWidth)),
		Height:          nonNegative(num(p.Height, DefaultHeight)),
		BackgroundColor: str(p.BackgroundColor, DefaultBackgroundColor),
		BorderColor:     str(p.BorderColor, DefaultBorderColor),
		BorderWidth:     nonNegative(num(p.BorderWidth, 0)),
		BorderRadius:    nonNegative(num(p.BorderRadius, 0)),
		TextColor:       str(p.TextColor, DefaultTextColor),
		FontFamily:      str(p.FontFamily, DefaultFontFamily),
		FontSize:        nonNegative(num(p.FontSize, DefaultFontSize)),
		FontWeight:      num(p.FontWeight, DefaultFontWeight),
		TextAlign:       models.TextAlign(str((*string)(p.TextAlign), string(models.AlignLeft))),
		Padding:         nonNegative(num(p.Padding, DefaultPadding)),
		Opacity:         DefaultOpacity,
		ShadowBlur:      nonNegative(num(p.ShadowBlur, 0)),
		ShadowOffsetX:   num(p.ShadowOffsetX, 0),
		ShadowOffsetY:   num(p.ShadowOffsetY, 0),
		ShadowColor:     str(p.ShadowColor, DefaultShadowColor),
		ZIndex:          num(p.ZIndex, DefaultZIndex),
		Text:            str(p.Text, ""),
		DataField:       models.DataField(str((*string)(p.DataField), "")),
	}

	if p.Opacity != nil {
		s.Opacity = min(max(*p.Opacity, 0), 1)
	}
	if s.ID == "" {
		s.ID = NewShapeID()
	}
	return s
}

// PartialOf converts a complete shape back into a partial description with
// every field set. DefaultShape(PartialOf(s)) == s for any defaulted s.
func PartialOf(s models.Shape) PartialShape {
	return PartialShape{
		ID:              &s.ID,
		Type:            &s.Type,
		X:               &s.X,
		Y:               &s.Y,
		Width:           &s.Width,
		Height:          &s.Height,
		BackgroundColor: &s.BackgroundColor,
		BorderColor:     &s.BorderColor,
		BorderWidth:     &s.BorderWidth,
		BorderRadius:    &s.BorderRadius,
		TextColor:       &s.TextColor,
		FontFamily:      &s.FontFamily,
		FontSize:        &s.FontSize,
		FontWeight:      &s.FontWeight,
		TextAlign:       &s.TextAlign,
		Padding:         &s.Padding,
		Opacity:         &s.Opacity,
		ShadowBlur:      &s.ShadowBlur,
		ShadowOffsetX:   &s.ShadowOffsetX,
		ShadowOffsetY:   &s.ShadowOffsetY,
		ShadowColor:     &s.ShadowColor,
		ZIndex:          &s.ZIndex,
		Text:            &s.Text,
		DataField:       &s.DataField,
	}
}

// NewShapeID returns a short random shape identifier.
func NewShapeID() string {
	return "shape-" + uuid.NewString()[:8]
}

func num(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// str treats an empty string the same as an absent one.
func str(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func nonNegative(v int) int {
	return max(v, 0)
}
