// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"marketops/internal/models"
)

// Validation errors returned by ValidateTemplate.
var (
	ErrTemplateName     = errors.New("design: template name is required")
	ErrDuplicateShapeID = errors.New("design: duplicate shape id")
	ErrUnknownVariant   = errors.New("design: unknown shape variant")
	ErrUnknownDataField = errors.New("design: unknown campaign field")
	ErrUnknownAlignment = errors.New("design: unknown text alignment")
)

// ValidateTemplate checks a normalized template before it is persisted. All
// problems are joined into one error.
func ValidateTemplate(t models.Template) error {
	var errs []error
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, ErrTemplateName)
	}
	if t.CanvasWidth <= 0 || t.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidCanvas, t.CanvasWidth, t.CanvasHeight))
	}

	seen := make(map[string]struct{}, len(t.Shapes))
	for i, s := range t.Shapes {
		if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q (shape %d)", ErrDuplicateShapeID, s.ID, i))
		}
		seen[s.ID] = struct{}{}

		if !s.Type.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q (shape %s)", ErrUnknownVariant, s.Type, s.ID))
		}
		if !s.TextAlign.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q (shape %s)", ErrUnknownAlignment, s.TextAlign, s.ID))
		}
		if s.DataField != "" && !s.DataField.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q (shape %s)", ErrUnknownDataField, s.DataField, s.ID))
		}
	}
	return errors.Join(errs...)
}

// Layered returns a copy of shapes in paint order: ascending z-index, with
// ties kept in their original order.
func Layered(shapes []models.Shape) []models.Shape {
	out := slices.Clone(shapes)
	slices.SortStableFunc(out, func(a, b models.Shape) int {
		return a.ZIndex - b.ZIndex
	})
	return out
}
