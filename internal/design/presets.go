// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

import (
	"sort"

	"marketops/internal/models"
)

// Preset is a named, hand-authored starting arrangement of shapes.
type Preset struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	shapes      []models.Shape
}

// Preset keys.
const (
	PresetOffer = "offer"
	PresetHero  = "hero"
)

// presets holds the defaulted blueprints in base canvas coordinates. They are
// built once at package init and never mutated.
var presets = map[string]Preset{
	PresetOffer: {
		Key:         PresetOffer,
		Name:        "Offer",
		Description: "Headline, supporting copy, three bullets, proof line and a call-to-action button.",
		shapes:      defaultAll(offerBlueprint()),
	},
	PresetHero: {
		Key:         PresetHero,
		Name:        "Hero",
		Description: "Full-bleed colour block with an oversized centred headline and a pill button.",
		shapes:      defaultAll(heroBlueprint()),
	},
}

// Presets returns every preset sorted by key, without shapes.
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, Preset{Key: p.Key, Name: p.Name, Description: p.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}

// HasPreset reports whether key names a known preset.
func HasPreset(key string) bool {
	_, ok := presets[key]
	return ok
}

// Layout returns the preset named key scaled to a width x height canvas.
// An unknown key yields an empty, non-nil layout and no error; use HasPreset
// to tell the two apart. Invalid canvas sizes fail with ErrInvalidCanvas even
// for unknown keys.
func Layout(key string, width, height int) ([]models.Shape, error) {
	if _, _, err := Factors(width, height); err != nil {
		return nil, err
	}
	p, ok := presets[key]
	if !ok {
		return []models.Shape{}, nil
	}
	return ScaleShapes(p.shapes, width, height)
}

func defaultAll(blueprint []PartialShape) []models.Shape {
	shapes := make([]models.Shape, len(blueprint))
	for i, p := range blueprint {
		shapes[i] = DefaultShape(p)
	}
	return shapes
}

func offerBlueprint() []PartialShape {
	return []PartialShape{
		{
			ID: ptr("offer-panel"), Type: ptr(models.ShapeRoundedRectangle),
			X: ptr(60), Y: ptr(60), Width: ptr(960), Height: ptr(1230),
			BackgroundColor: ptr("#ffffff"), BorderRadius: ptr(32), Opacity: ptr(0.92),
			ShadowBlur: ptr(24), ShadowOffsetY: ptr(8), ShadowColor: ptr("rgba(0,0,0,0.18)"),
			ZIndex: ptr(0),
		},
		{
			ID: ptr("offer-hook"), Type: ptr(models.ShapeText),
			X: ptr(90), Y: ptr(120), Width: ptr(900), Height: ptr(220),
			FontSize: ptr(76), FontWeight: ptr(800),
			DataField: ptr(models.FieldHook), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-subheading"), Type: ptr(models.ShapeText),
			X: ptr(90), Y: ptr(360), Width: ptr(900), Height: ptr(110),
			FontSize: ptr(40), FontWeight: ptr(500), TextColor: ptr("#4a4a4a"),
			DataField: ptr(models.FieldSubheading), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-bullets"), Type: ptr(models.ShapeBulletGroup),
			X: ptr(90), Y: ptr(500), Width: ptr(900), Height: ptr(330),
			FontSize: ptr(34), FontWeight: ptr(500), Padding: ptr(16),
			DataField: ptr(models.FieldBullets), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-proof"), Type: ptr(models.ShapeText),
			X: ptr(90), Y: ptr(860), Width: ptr(900), Height: ptr(90),
			FontSize: ptr(30), FontWeight: ptr(400), TextColor: ptr("#6b6b6b"),
			DataField: ptr(models.FieldProof), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-cta"), Type: ptr(models.ShapeRoundedRectangle),
			X: ptr(90), Y: ptr(990), Width: ptr(560), Height: ptr(120),
			BackgroundColor: ptr("#ff5a36"), TextColor: ptr("#ffffff"), BorderRadius: ptr(60),
			FontSize: ptr(42), TextAlign: ptr(models.AlignCenter), Padding: ptr(24),
			DataField: ptr(models.FieldCTAText), ZIndex: ptr(3),
		},
		{
			ID: ptr("offer-hashtags"), Type: ptr(models.ShapeText),
			X: ptr(90), Y: ptr(1150), Width: ptr(900), Height: ptr(60),
			FontSize: ptr(26), FontWeight: ptr(400), TextColor: ptr("#ff5a36"),
			DataField: ptr(models.FieldHashtags), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-company"), Type: ptr(models.ShapeText),
			X: ptr(90), Y: ptr(1210), Width: ptr(600), Height: ptr(50),
			FontSize: ptr(24), FontWeight: ptr(600),
			DataField: ptr(models.FieldCompanyName), ZIndex: ptr(2),
		},
		{
			ID: ptr("offer-location"), Type: ptr(models.ShapeText),
			X: ptr(690), Y: ptr(1210), Width: ptr(300), Height: ptr(50),
			FontSize: ptr(24), FontWeight: ptr(400), TextAlign: ptr(models.AlignRight),
			DataField: ptr(models.FieldLocation), ZIndex: ptr(2),
		},
	}
}

func heroBlueprint() []PartialShape {
	return []PartialShape{
		{
			ID: ptr("hero-background"), Type: ptr(models.ShapeRectangle),
			X: ptr(0), Y: ptr(0), Width: ptr(BaseWidth), Height: ptr(BaseHeight),
			BackgroundColor: ptr("#101828"), ZIndex: ptr(0),
		},
		{
			ID: ptr("hero-accent"), Type: ptr(models.ShapeCircle),
			X: ptr(640), Y: ptr(0), Width: ptr(520), Height: ptr(520),
			BackgroundColor: ptr("#f79009"), Opacity: ptr(0.85), ZIndex: ptr(1),
		},
		{
			ID: ptr("hero-hook"), Type: ptr(models.ShapeText),
			X: ptr(80), Y: ptr(420), Width: ptr(920), Height: ptr(320),
			FontSize: ptr(96), FontWeight: ptr(900), TextColor: ptr("#ffffff"),
			TextAlign: ptr(models.AlignCenter),
			DataField: ptr(models.FieldHook), ZIndex: ptr(2),
		},
		{
			ID: ptr("hero-subheading"), Type: ptr(models.ShapeText),
			X: ptr(120), Y: ptr(760), Width: ptr(840), Height: ptr(120),
			FontSize: ptr(38), FontWeight: ptr(400), TextColor: ptr("#d0d5dd"),
			TextAlign: ptr(models.AlignCenter),
			DataField: ptr(models.FieldSubheading), ZIndex: ptr(2),
		},
		{
			ID: ptr("hero-cta"), Type: ptr(models.ShapeRoundedRectangle),
			X: ptr(290), Y: ptr(960), Width: ptr(500), Height: ptr(110),
			BackgroundColor: ptr("#f79009"), TextColor: ptr("#101828"), BorderRadius: ptr(55),
			FontSize: ptr(40), TextAlign: ptr(models.AlignCenter), Padding: ptr(20),
			DataField: ptr(models.FieldCTAText), ZIndex: ptr(3),
		},
		{
			ID: ptr("hero-company"), Type: ptr(models.ShapeText),
			X: ptr(80), Y: ptr(1230), Width: ptr(920), Height: ptr(60),
			FontSize: ptr(28), FontWeight: ptr(600), TextColor: ptr("#ffffff"),
			TextAlign: ptr(models.AlignCenter),
			DataField: ptr(models.FieldCompanyName), ZIndex: ptr(2),
		},
	}
}

func ptr[T any](v T) *T { return &v }
