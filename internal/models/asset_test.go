// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestAssetIsImage verifies that IsImage checks for the "image/" prefix.
func TestAssetIsImage(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{contentType: "image/png", want: true},
		{contentType: "image/svg+xml", want: true},
		{contentType: "application/pdf", want: false},
		{contentType: "", want: false},
		{contentType: "IMAGE/PNG", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			a := &Asset{ContentType: tt.contentType}
			if got := a.IsImage(); got != tt.want {
				t.Errorf("Asset{ContentType: %q}.IsImage() = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

// TestAssetHumanSize covers the byte, kilobyte and megabyte ranges.
func TestAssetHumanSize(t *testing.T) {
	tests := []struct {
		sizeBytes int64
		want      string
	}{
		{sizeBytes: 0, want: "0 B"},
		{sizeBytes: 1023, want: "1023 B"},
		{sizeBytes: 1024, want: "1 KB"},
		{sizeBytes: 1536, want: "2 KB"},
		{sizeBytes: 1048576, want: "1.0 MB"},
		{sizeBytes: MaxUploadSize, want: "50.0 MB"},
	}

	for _, tt := range tests {
		a := &Asset{SizeBytes: tt.sizeBytes}
		if got := a.HumanSize(); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.sizeBytes, got, tt.want)
		}
	}
}

func TestUploadContentTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/svg+xml"} {
		if _, ok := UploadContentTypes[ct]; !ok {
			t.Errorf("%s should be accepted", ct)
		}
	}
	if _, ok := UploadContentTypes["image/tiff"]; ok {
		t.Error("image/tiff should not be accepted")
	}
}
