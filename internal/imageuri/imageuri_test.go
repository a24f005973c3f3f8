// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageuri

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestEncodeRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.RGBA{R: 255, A: 255})

	uri := Encode(img)
	if !strings.HasPrefix(uri, Prefix) {
		t.Fatalf("Encode() = %q, want %q prefix", uri, Prefix)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, Prefix))
	if err != nil {
		t.Fatal(err)
	}
	got, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := got.At(1, 0).RGBA(); r != 0xffff {
		t.Errorf("pixel (1,0) red = %#x, want 0xffff", r)
	}
}

func TestEncodeCachesByIdentity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	before := Stats().Hits
	a := Encode(img)
	b := Encode(img)
	if a != b {
		t.Error("same image encoded differently")
	}
	if Stats().Hits != before+1 {
		t.Errorf("hits = %d, want %d", Stats().Hits, before+1)
	}
	if Encode(nil) != "" {
		t.Error("nil image should encode to empty string")
	}
}
