// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"marketops/internal/models"
)

// Canvas used for templates that arrive without dimensions.
const (
	DefaultCanvasWidth  = 1200
	DefaultCanvasHeight = 675
)

// FieldError describes one field of a loosely-typed record that could not be
// read and was replaced by its fallback value.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// ParseError is returned by Normalize when one or more fields were malformed.
// It is recoverable: the template returned alongside it is complete, with
// each bad field replaced by its documented fallback.
type ParseError struct {
	Fields []FieldError
}

func (e *ParseError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "design: malformed template fields: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// IsRecoverable reports whether err is (or wraps) a *ParseError, meaning the
// accompanying template is usable.
func IsRecoverable(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Field names tried in order: canonical snake_case first, then the one known
// alternate spelling.
var (
	keyID              = []string{"id", "_id"}
	keyOwnerID         = []string{"owner_id", "ownerId"}
	keyName            = []string{"name", "title"}
	keyDescription     = []string{"description", "desc"}
	keyShapes          = []string{"shapes", "shapes_json"}
	keyCanvasWidth     = []string{"canvas_width", "canvasWidth"}
	keyCanvasHeight    = []string{"canvas_height", "canvasHeight"}
	keyBackgroundImage = []string{"background_image", "backgroundImage"}
	keyLogoPlacement   = []string{"logo_placement", "logoPlacement"}
	keyThumbnailURL    = []string{"thumbnail_url", "thumbnailUrl"}
	keyPreviewURL      = []string{"preview_url", "previewUrl"}
	keyCreatedAt       = []string{"created_at", "createdAt"}
	keyUpdatedAt       = []string{"updated_at", "updatedAt"}
)

// Normalize converts a record from the persistence/transport boundary into a
// canonical template. Absent fields take their defaults: canvas 1200x675,
// an empty shape list and nil optional image, logo and preview fields.
// Shapes may be a native list or a JSON-encoded string. Every shape is run
// through DefaultShape.
//
// Malformed fields also fall back to their defaults, but are reported in a
// *ParseError so the caller can log or surface them. The template is always
// complete, whether or not an error is returned.
func Normalize(raw map[string]any) (models.Template, error) {
	r := record(raw)
	var errs []FieldError
	report := func(field string, err error) {
		errs = append(errs, FieldError{Field: field, Err: err})
	}

	t := models.Template{
		Shapes:       []models.Shape{},
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
	}

	t.ID = r.text(keyID, report)
	t.OwnerID = r.text(keyOwnerID, report)
	t.Name = r.text(keyName, report)
	t.Description = r.text(keyDescription, report)

	if w, ok := r.dimension(keyCanvasWidth, report); ok {
		t.CanvasWidth = w
	}
	if h, ok := r.dimension(keyCanvasHeight, report); ok {
		t.CanvasHeight = h
	}

	t.BackgroundImage = r.optionalText(keyBackgroundImage, report)
	t.ThumbnailURL = r.optionalText(keyThumbnailURL, report)
	t.PreviewURL = r.optionalText(keyPreviewURL, report)
	t.LogoPlacement = r.logo(keyLogoPlacement, report)
	t.Shapes = r.shapes(keyShapes, report)
	t.CreatedAt = r.timestamp(keyCreatedAt, report)
	t.UpdatedAt = r.timestamp(keyUpdatedAt, report)

	if len(errs) > 0 {
		return t, &ParseError{Fields: errs}
	}
	return t, nil
}

// record is a loosely-typed map with lenient accessors. Every accessor
// returns the zero value and calls report when a present value is malformed.
type record map[string]any

type reporter func(field string, err error)

// lookup returns the first non-nil value among names.
func (r record) lookup(names []string) (any, string, bool) {
	for _, name := range names {
		if v, ok := r[name]; ok && v != nil {
			return v, name, true
		}
	}
	return nil, names[0], false
}

func (r record) text(names []string, report reporter) string {
	v, name, ok := r.lookup(names)
	if !ok {
		return ""
	}
	s, err := toString(v)
	if err != nil {
		report(name, err)
	}
	return s
}

func (r record) optionalText(names []string, report reporter) *string {
	s := r.text(names, report)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (r record) integer(names []string, report reporter) (int, bool) {
	v, name, ok := r.lookup(names)
	if !ok {
		return 0, false
	}
	n, err := toInt(v)
	if err != nil {
		report(name, err)
		return 0, false
	}
	return n, true
}

// dimension reads a positive canvas side.
func (r record) dimension(names []string, report reporter) (int, bool) {
	v, name, ok := r.lookup(names)
	if !ok {
		return 0, false
	}
	n, err := toInt(v)
	if err == nil && n <= 0 {
		err = fmt.Errorf("must be positive, got %d", n)
	}
	if err != nil {
		report(name, err)
		return 0, false
	}
	return n, true
}

func (r record) float(names []string, report reporter) (float64, bool) {
	v, name, ok := r.lookup(names)
	if !ok {
		return 0, false
	}
	f, err := toFloat(v)
	if err != nil {
		report(name, err)
		return 0, false
	}
	return f, true
}

func (r record) timestamp(names []string, report reporter) time.Time {
	v, name, ok := r.lookup(names)
	if !ok {
		return time.Time{}
	}
	switch tv := v.(type) {
	case time.Time:
		return tv
	case string:
		if tv == "" {
			return time.Time{}
		}
		ts, err := time.Parse(time.RFC3339Nano, tv)
		if err != nil {
			report(name, err)
			return time.Time{}
		}
		return ts
	}
	report(name, fmt.Errorf("unsupported timestamp type %T", v))
	return time.Time{}
}

func (r record) logo(names []string, report reporter) *models.LogoPlacement {
	v, name, ok := r.lookup(names)
	if !ok {
		return nil
	}

	switch lv := v.(type) {
	case *models.LogoPlacement:
		return lv
	case models.LogoPlacement:
		return &lv
	}

	decoded, err := decodeEmbedded(v)
	if err != nil {
		report(name, err)
		return nil
	}
	if decoded == nil {
		return nil
	}
	m, isMap := decoded.(map[string]any)
	if !isMap {
		report(name, fmt.Errorf("expected an object, got %T", decoded))
		return nil
	}

	sub := record(m)
	fieldReport := func(field string, err error) { report(name+"."+field, err) }
	logo := &models.LogoPlacement{Opacity: DefaultOpacity}
	logo.URL = sub.text([]string{"url", "image"}, fieldReport)
	logo.X, _ = sub.integer([]string{"x"}, fieldReport)
	logo.Y, _ = sub.integer([]string{"y"}, fieldReport)
	logo.Width, _ = sub.integer([]string{"width"}, fieldReport)
	logo.Height, _ = sub.integer([]string{"height"}, fieldReport)
	if o, ok := sub.float([]string{"opacity"}, fieldReport); ok {
		logo.Opacity = min(max(o, 0), 1)
	}
	return logo
}

func (r record) shapes(names []string, report reporter) []models.Shape {
	v, name, ok := r.lookup(names)
	if !ok {
		return []models.Shape{}
	}

	if typed, isTyped := v.([]models.Shape); isTyped {
		parts := make([]PartialShape, len(typed))
		for i, s := range typed {
			parts[i] = PartialOf(s)
		}
		return defaultStored(parts)
	}

	decoded, err := decodeEmbedded(v)
	if err != nil {
		report(name, err)
		return []models.Shape{}
	}

	var items []any
	switch dv := decoded.(type) {
	case nil:
		return []models.Shape{}
	case []any:
		items = dv
	case []map[string]any:
		items = make([]any, len(dv))
		for i, m := range dv {
			items[i] = m
		}
	default:
		report(name, fmt.Errorf("expected a list, got %T", decoded))
		return []models.Shape{}
	}

	parts := make([]PartialShape, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("%s[%d]", name, i)
		m, isMap := item.(map[string]any)
		if !isMap {
			report(field, fmt.Errorf("expected an object, got %T", item))
			continue
		}
		fieldReport := func(sub string, err error) { report(field+"."+sub, err) }
		parts = append(parts, partialFromRecord(record(m), fieldReport))
	}
	return defaultStored(parts)
}

// defaultStored defaults stored shapes. Shapes without an ID get
// "shape-<position>", skipping IDs already taken in the list, so the same
// record always normalizes to the same template.
func defaultStored(parts []PartialShape) []models.Shape {
	taken := make(map[string]bool, len(parts))
	for _, p := range parts {
		if id := str(p.ID, ""); id != "" {
			taken[id] = true
		}
	}

	out := make([]models.Shape, len(parts))
	for i, p := range parts {
		if str(p.ID, "") == "" {
			id := fmt.Sprintf("shape-%d", i)
			for n := 1; taken[id]; n++ {
				id = fmt.Sprintf("shape-%d-%d", i, n)
			}
			taken[id] = true
			p.ID = &id
		}
		out[i] = DefaultShape(p)
	}
	return out
}

// partialFromRecord reads a shape description. Keys are tried in camelCase
// first (the design studio's spelling), then snake_case.
func partialFromRecord(r record, report reporter) PartialShape {
	var p PartialShape

	optInt := func(names ...string) *int {
		if n, ok := r.integer(names, report); ok {
			return &n
		}
		return nil
	}
	optStr := func(names ...string) *string {
		if _, _, ok := r.lookup(names); !ok {
			return nil
		}
		s := r.text(names, report)
		return &s
	}

	p.ID = optStr("id")
	if s := optStr("type", "variant"); s != nil {
		v := models.ShapeVariant(*s)
		if !v.Valid() {
			report("type", fmt.Errorf("unknown shape variant %q", *s))
		} else {
			p.Type = &v
		}
	}

	p.X = optInt("x")
	p.Y = optInt("y")
	p.Width = optInt("width")
	p.Height = optInt("height")

	p.BackgroundColor = optStr("backgroundColor", "background_color")
	p.BorderColor = optStr("borderColor", "border_color")
	p.BorderWidth = optInt("borderWidth", "border_width")
	p.BorderRadius = optInt("borderRadius", "border_radius")
	p.TextColor = optStr("textColor", "text_color")
	p.FontFamily = optStr("fontFamily", "font_family")
	p.FontSize = optInt("fontSize", "font_size")
	p.FontWeight = fontWeight(r, report)
	if s := optStr("textAlign", "text_align"); s != nil {
		a := models.TextAlign(strings.ToLower(*s))
		if !a.Valid() {
			report("textAlign", fmt.Errorf("unknown text alignment %q", *s))
		} else {
			p.TextAlign = &a
		}
	}
	p.Padding = optInt("padding")
	if o, ok := r.float([]string{"opacity"}, report); ok {
		p.Opacity = &o
	}

	p.ShadowBlur = optInt("shadowBlur", "shadow_blur")
	p.ShadowOffsetX = optInt("shadowOffsetX", "shadow_offset_x")
	p.ShadowOffsetY = optInt("shadowOffsetY", "shadow_offset_y")
	p.ShadowColor = optStr("shadowColor", "shadow_color")

	p.ZIndex = optInt("zIndex", "z_index")
	p.Text = optStr("text")
	if s := optStr("dataField", "data_field"); s != nil && *s != "" {
		f := models.DataField(*s)
		if !f.Valid() {
			report("dataField", fmt.Errorf("unknown campaign field %q", *s))
		} else {
			p.DataField = &f
		}
	}
	return p
}

// fontWeight accepts numeric weights as well as the CSS keywords.
func fontWeight(r record, report reporter) *int {
	names := []string{"fontWeight", "font_weight"}
	v, name, ok := r.lookup(names)
	if !ok {
		return nil
	}
	if s, isStr := v.(string); isStr {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "normal":
			n := 400
			return &n
		case "bold":
			n := 700
			return &n
		}
	}
	n, err := toInt(v)
	if err != nil {
		report(name, err)
		return nil
	}
	return &n
}

// decodeEmbedded returns v unchanged unless it is a JSON-encoded string, in
// which case the decoded value is returned. Blank strings decode to nil.
func decodeEmbedded(v any) (any, error) {
	var raw []byte
	switch tv := v.(type) {
	case string:
		raw = []byte(tv)
	case []byte:
		raw = tv
	case json.RawMessage:
		raw = tv
	default:
		return v, nil
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return decoded, nil
}

func toString(v any) (string, error) {
	switch tv := v.(type) {
	case string:
		return tv, nil
	case json.Number:
		return tv.String(), nil
	case fmt.Stringer:
		return tv.String(), nil
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(tv), nil
	case int64:
		return strconv.FormatInt(tv, 10), nil
	}
	return "", fmt.Errorf("expected a string, got %T", v)
}

func toFloat(v any) (float64, error) {
	switch tv := v.(type) {
	case float64:
		return tv, nil
	case float32:
		return float64(tv), nil
	case int:
		return float64(tv), nil
	case int32:
		return float64(tv), nil
	case int64:
		return float64(tv), nil
	case json.Number:
		return tv.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(tv), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", tv)
		}
		return f, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected a finite number, got %v", f)
	}
	return int(math.Round(f)), nil
}
