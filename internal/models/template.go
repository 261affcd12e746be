// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ShapeVariant identifies how a template shape is drawn by the design studio.
type ShapeVariant string

const (
	ShapeText             ShapeVariant = "text"
	ShapeRectangle        ShapeVariant = "rectangle"
	ShapeRoundedRectangle ShapeVariant = "rounded-rectangle"
	ShapeCircle           ShapeVariant = "circle"
	ShapeBulletGroup      ShapeVariant = "bullet-group"
)

// Valid reports whether v is one of the known shape variants.
func (v ShapeVariant) Valid() bool {
	switch v {
	case ShapeText, ShapeRectangle, ShapeRoundedRectangle, ShapeCircle, ShapeBulletGroup:
		return true
	}
	return false
}

// TextAlign is the horizontal alignment of a shape's text.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Valid reports whether a is one of the known alignments.
func (a TextAlign) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// Shape is one positioned, styled element of a campaign template.
// Geometry is in pixels with a top-left origin. Shapes with a higher ZIndex
// paint on top of lower ones.
type Shape struct {
	ID   string       `json:"id"`
	Type ShapeVariant `json:"type"`

	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`

	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	BorderRadius    int       `json:"borderRadius"`
	TextColor       string    `json:"textColor"`
	FontFamily      string    `json:"fontFamily"`
	FontSize        int       `json:"fontSize"`
	FontWeight      int       `json:"fontWeight"`
	TextAlign       TextAlign `json:"textAlign"`
	Padding         int       `json:"padding"`
	Opacity         float64   `json:"opacity"`

	ShadowBlur    int    `json:"shadowBlur"`
	ShadowOffsetX int    `json:"shadowOffsetX"`
	ShadowOffsetY int    `json:"shadowOffsetY"`
	ShadowColor   string `json:"shadowColor"`

	ZIndex int `json:"zIndex"`

	// Text is static copy shown when the shape has no data-field binding.
	Text string `json:"text,omitempty"`
	// DataField names the CampaignData attribute that supplies the text.
	DataField DataField `json:"dataField,omitempty"`
}

// LogoPlacement is an overlay image positioned independently of the shapes.
type LogoPlacement struct {
	URL     string  `json:"url"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Opacity float64 `json:"opacity"`
}

// Template is a named, reusable banner layout. Shapes are kept in the order
// they were authored; paint order is decided by each shape's ZIndex.
type Template struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"owner_id,omitempty"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Shapes          []Shape        `json:"shapes"`
	CanvasWidth     int            `json:"canvas_width"`
	CanvasHeight    int            `json:"canvas_height"`
	BackgroundImage *string        `json:"background_image"`
	LogoPlacement   *LogoPlacement `json:"logo_placement"`
	ThumbnailURL    *string        `json:"thumbnail_url"`
	PreviewURL      *string        `json:"preview_url"`
	CreatedAt       time.Time      `json:"created_at,omitzero"`
	UpdatedAt       time.Time      `json:"updated_at,omitzero"`
}
