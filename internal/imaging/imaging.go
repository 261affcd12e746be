// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging produces thumbnails for generated and uploaded raster
// images. Images narrower than the target are not upscaled.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ThumbWidth is the default thumbnail width in pixels.
const ThumbWidth = 320

// ErrUnsupported is returned for formats that cannot be decoded, such as SVG.
var ErrUnsupported = errors.New("imaging: unsupported image format")

// Thumbnail holds one encoded variant ready for upload.
type Thumbnail struct {
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/png"
}

// Thumb decodes original and scales it to at most width pixels wide,
// keeping the aspect ratio.
func Thumb(original []byte, width int) (*Thumbnail, error) {
	if width <= 0 {
		width = ThumbWidth
	}

	src, _, err := image.Decode(bytes.NewReader(original))
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("imaging: empty image")
	}

	w, h := b.Dx(), b.Dy()
	if w > width {
		h = max(1, h*width/w)
		w = width
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}

	return &Thumbnail{Width: w, Height: h, Data: buf.Bytes(), ContentType: "image/png"}, nil
}
