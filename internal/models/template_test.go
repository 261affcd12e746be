// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestShapeVariantValid verifies the set of drawable variants.
func TestShapeVariantValid(t *testing.T) {
	tests := []struct {
		variant ShapeVariant
		want    bool
	}{
		{variant: ShapeText, want: true},
		{variant: ShapeRectangle, want: true},
		{variant: ShapeRoundedRectangle, want: true},
		{variant: ShapeCircle, want: true},
		{variant: ShapeBulletGroup, want: true},
		{variant: ShapeVariant(""), want: false},
		{variant: ShapeVariant("triangle"), want: false},
		{variant: ShapeVariant("Text"), want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			if got := tt.variant.Valid(); got != tt.want {
				t.Errorf("ShapeVariant(%q).Valid() = %v, want %v", tt.variant, got, tt.want)
			}
		})
	}
}

func TestTextAlignValid(t *testing.T) {
	for _, a := range []TextAlign{AlignLeft, AlignCenter, AlignRight} {
		if !a.Valid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if TextAlign("justify").Valid() {
		t.Error("justify should be invalid")
	}
}

func TestDataFieldValid(t *testing.T) {
	for _, f := range DataFields {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if DataField("price").Valid() {
		t.Error("price should be invalid")
	}
}

// TestShapeJSONKeys checks that shapes use the design studio's camelCase
// keys and omit empty bindings.
func TestShapeJSONKeys(t *testing.T) {
	raw, err := json.Marshal(Shape{ID: "s1", Type: ShapeText, FontSize: 36})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(raw)

	for _, key := range []string{`"fontSize":36`, `"backgroundColor"`, `"zIndex"`, `"shadowOffsetX"`} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %s in %s", key, out)
		}
	}
	for _, key := range []string{`"text"`, `"dataField"`} {
		if strings.Contains(out, key) {
			t.Errorf("did not expect %s in %s", key, out)
		}
	}
}

// TestTemplateJSONOmitsZeroTimestamps checks that unsaved templates carry no
// timestamps.
func TestTemplateJSONOmitsZeroTimestamps(t *testing.T) {
	raw, err := json.Marshal(Template{ID: "t1", Shapes: []Shape{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "created_at") {
		t.Errorf("unexpected created_at in %s", raw)
	}
	if !strings.Contains(string(raw), `"shapes":[]`) {
		t.Errorf("expected empty shapes array in %s", raw)
	}
}
