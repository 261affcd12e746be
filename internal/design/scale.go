// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

import (
	"errors"
	"fmt"
	"math"

	"marketops/internal/models"
)

// Base canvas that stored shapes and preset layouts are authored against.
const (
	BaseWidth  = 1080
	BaseHeight = 1350
)

// Floors applied to scaled text metrics so small canvases stay legible.
const (
	MinFontSize = 10
	MinPadding  = 4
)

// ErrInvalidCanvas is returned when a target canvas has a zero or negative side.
var ErrInvalidCanvas = errors.New("design: canvas dimensions must be positive")

// Factors returns the per-axis scale factors from the base canvas to a
// width x height target.
func Factors(width, height int) (scaleX, scaleY float64, err error) {
	return factors(BaseWidth, BaseHeight, width, height)
}

func factors(fromWidth, fromHeight, width, height int) (float64, float64, error) {
	if fromWidth <= 0 || fromHeight <= 0 {
		return 0, 0, fmt.Errorf("%w: source is %dx%d", ErrInvalidCanvas, fromWidth, fromHeight)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: got %dx%d", ErrInvalidCanvas, width, height)
	}
	return float64(width) / float64(fromWidth), float64(height) / float64(fromHeight), nil
}

// ScaleShapes maps shapes authored on the base canvas onto a width x height
// canvas and returns a new slice; the input is not modified. Positions and
// sizes scale per axis. Font size, padding, border width and shadow metrics
// scale by the smaller factor so text does not distort when the aspect ratio
// changes. Always scale from base coordinates: re-scaling an already scaled
// set compounds rounding error.
func ScaleShapes(shapes []models.Shape, width, height int) ([]models.Shape, error) {
	return ScaleShapesFrom(shapes, BaseWidth, BaseHeight, width, height)
}

// ScaleShapesFrom is ScaleShapes for shapes authored on a fromWidth x
// fromHeight canvas, such as a saved template drawn at its own size.
func ScaleShapesFrom(shapes []models.Shape, fromWidth, fromHeight, width, height int) ([]models.Shape, error) {
	sx, sy, err := factors(fromWidth, fromHeight, width, height)
	if err != nil {
		return nil, err
	}
	uniform := min(sx, sy)

	out := make([]models.Shape, len(shapes))
	for i, s := range shapes {
		s.X = scale(s.X, sx)
		s.Y = scale(s.Y, sy)
		s.Width = scale(s.Width, sx)
		s.Height = scale(s.Height, sy)
		s.FontSize = max(scale(s.FontSize, uniform), MinFontSize)
		s.Padding = max(scale(s.Padding, uniform), MinPadding)
		s.BorderWidth = scale(s.BorderWidth, uniform)
		s.BorderRadius = scale(s.BorderRadius, uniform)
		s.ShadowBlur = scale(s.ShadowBlur, uniform)
		s.ShadowOffsetX = scale(s.ShadowOffsetX, uniform)
		s.ShadowOffsetY = scale(s.ShadowOffsetY, uniform)
		out[i] = s
	}
	return out, nil
}

// ScaleLogo maps a logo placement from a fromWidth x fromHeight canvas onto
// width x height. A nil placement stays nil.
func ScaleLogo(logo *models.LogoPlacement, fromWidth, fromHeight, width, height int) (*models.LogoPlacement, error) {
	sx, sy, err := factors(fromWidth, fromHeight, width, height)
	if err != nil {
		return nil, err
	}
	if logo == nil {
		return nil, nil
	}
	scaled := *logo
	scaled.X = scale(logo.X, sx)
	scaled.Y = scale(logo.Y, sy)
	scaled.Width = scale(logo.Width, sx)
	scaled.Height = scale(logo.Height, sy)
	return &scaled, nil
}

// scale rounds halves up, so -2.5 becomes -2 and 2.5 becomes 3.
func scale(v int, factor float64) int {
	return int(math.Floor(float64(v)*factor + 0.5))
}
