// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetSource records how an image reached object storage.
type AssetSource string

const (
	AssetUploaded  AssetSource = "uploaded"
	AssetGenerated AssetSource = "generated"
)

// MaxUploadSize is the largest file a client may upload through a presigned URL.
const MaxUploadSize int64 = 50 << 20

// UploadContentTypes maps each accepted image MIME type to its file extension.
var UploadContentTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// Asset is an image stored in the S3-compatible bucket. Metadata lives in
// PostgreSQL; the bytes live in the bucket.
type Asset struct {
	ID          uuid.UUID   `json:"id"`
	AccountID   string      `json:"account_id"`
	Source      AssetSource `json:"source"`
	Prompt      *string     `json:"prompt,omitempty"`
	ContentType string      `json:"content_type"`
	SizeBytes   int64       `json:"size_bytes"`
	S3Key       string      `json:"s3_key"`
	URL         string      `json:"url"`
	ThumbS3Key  *string     `json:"thumb_s3_key,omitempty"`
	ThumbURL    *string     `json:"thumb_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// IsImage returns true if the asset is an image type.
func (a *Asset) IsImage() bool {
	return strings.HasPrefix(a.ContentType, "image/")
}

// HumanSize returns a human-readable file size string.
func (a *Asset) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case a.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(a.SizeBytes)/float64(mb))
	case a.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(a.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", a.SizeBytes)
	}
}
