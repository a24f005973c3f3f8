// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageuri encodes images as PNG data URIs for the markup and
// element variants.
package imageuri

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"reflect"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/internal/cache"
)

// Prefix starts every URI returned by Encode.
const Prefix = "data:image/png;base64,"

// uris holds encoded images keyed by identity. Images are expected to be
// immutable while displayed.
var uris = cache.New[image.Image, string](64)

// Encode returns img as a base64 PNG data URI, or "" for a nil image.
func Encode(img image.Image) string {
	if img == nil {
		return ""
	}
	if !reflect.TypeOf(img).Comparable() {
		return encode(img)
	}
	return uris.GetOrCreate(img, func() string { return encode(img) })
}

// Stats returns the statistics of the encoding cache.
func Stats() cache.Stats { return uris.Stats() }

func encode(img image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		scenery.Logger().Warn("imageuri: encode", "err", err)
		return ""
	}
	return Prefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}
