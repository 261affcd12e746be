// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns brand names and prompts into URL and object-key safe
// identifiers.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxLength caps generated slugs. Longer input is cut at the last hyphen
// that fits.
const MaxLength = 64

// folds maps common Latin diacritics to their ASCII base letter.
var folds = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ä", "a", "ã", "a", "å", "a", "ă", "a",
	"ç", "c", "č", "c",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"ñ", "n",
	"ò", "o", "ó", "o", "ô", "o", "ö", "o", "õ", "o", "ø", "o",
	"ș", "s", "ş", "s", "š", "s", "ß", "ss",
	"ț", "t", "ţ", "t",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ý", "y", "ÿ", "y", "ž", "z",
)

// Generate creates a lowercase, hyphen-separated slug.
// Example: "Café Résumé & Co. 2026" → "cafe-resume-co-2026"
func Generate(s string) string {
	s = folds.Replace(strings.ToLower(s))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			pendingHyphen = true
		}
	}
	return truncate(b.String(), MaxLength)
}

// Unique returns base, or base suffixed with -2, -3, ... until taken reports
// false. taken errors are returned unchanged.
func Unique(base string, taken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		suffix := "-" + strconv.Itoa(n)
		candidate = truncate(base, MaxLength-len(suffix)) + suffix
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	s = s[:limit]
	if i := strings.LastIndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "-")
}
