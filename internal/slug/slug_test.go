// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"errors"
	"strings"
	"testing"
)

// TestGenerate exercises the slug generator across brand names, prompts
// and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Hello World", want: "hello-world"},
		{name: "punctuation dropped", input: "Hello, World! How's it going?", want: "hello-world-hows-it-going"},
		{name: "ampersand and at", input: "Rock & Roll @ the Arena", want: "rock-roll-the-arena"},
		{name: "dots vanish", input: "Version 2.0.1", want: "version-201"},
		{name: "slash separates", input: "Frontend/Backend", want: "frontend-backend"},
		{name: "underscore separates", input: "summer_sale_2026", want: "summer-sale-2026"},
		{name: "tabs and newlines separate", input: "hello\tworld\nagain", want: "hello-world-again"},
		{name: "diacritics folded", input: "Café Résumé Noël", want: "cafe-resume-noel"},
		{name: "romanian letters", input: "Brașov Țară", want: "brasov-tara"},
		{name: "eszett", input: "Straße", want: "strasse"},
		{name: "non latin dropped", input: "Tokyo 東京", want: "tokyo"},
		{name: "leading and trailing hyphens", input: "  --hello -- world--  ", want: "hello-world"},
		{name: "date kept", input: "2026-02-25", want: "2026-02-25"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!@#$%^&*()", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerateTruncatesAtWordBoundary checks that long prompts are cut at a
// hyphen, never mid-word.
func TestGenerateTruncatesAtWordBoundary(t *testing.T) {
	input := "a photorealistic flat lay of artisan sourdough loaves on a rustic wooden table at golden hour"
	got := Generate(input)

	if len(got) > MaxLength {
		t.Fatalf("len = %d, want <= %d", len(got), MaxLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug %q ends with a hyphen", got)
	}
	if !strings.HasPrefix(input, strings.ReplaceAll(got, "-", " ")) {
		t.Errorf("slug %q is not a word-aligned prefix of the input", got)
	}
}

func TestUnique(t *testing.T) {
	existing := map[string]bool{"acme": true, "acme-2": true}
	taken := func(s string) (bool, error) { return existing[s], nil }

	got, err := Unique("acme", taken)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if got != "acme-3" {
		t.Errorf("Unique = %q, want acme-3", got)
	}

	got, err = Unique("globex", taken)
	if err != nil || got != "globex" {
		t.Errorf("Unique(globex) = %q, %v", got, err)
	}
}

func TestUniquePropagatesErrors(t *testing.T) {
	boom := errors.New("db down")
	_, err := Unique("acme", func(string) (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
