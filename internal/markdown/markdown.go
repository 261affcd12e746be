// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts post captions written in Markdown into HTML
// previews using goldmark. Raw HTML in a caption is dropped, not rendered.
package markdown

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,       // bare URLs become links
		extension.Strikethrough, // ~~was~~ now
		extension.Typographer,   // smart quotes and dashes
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // captions are line oriented
	),
)

var rawHTMLComment = regexp.MustCompile(`<!-- raw HTML omitted -->`)

// ToHTML converts caption Markdown into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return rawHTMLComment.ReplaceAllString(buf.String(), ""), nil
}
