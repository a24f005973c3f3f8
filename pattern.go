// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"image"
	"math"
)

// Pattern paints by tiling an image in the local coordinates of the node,
// with the image's top-left corner at the origin.
type Pattern struct {
	Image image.Image
}

// NewPattern creates an image pattern.
func NewPattern(img image.Image) *Pattern {
	return &Pattern{Image: img}
}

func (*Pattern) isPaint() {}

// ColorAt returns the pattern color at the local point (x, y).
func (p *Pattern) ColorAt(x, y float64) RGBA {
	if p.Image == nil {
		return Transparent
	}
	b := p.Image.Bounds()
	if b.Empty() {
		return Transparent
	}
	ix := ((int(math.Floor(x)) % b.Dx()) + b.Dx()) % b.Dx()
	iy := ((int(math.Floor(y)) % b.Dy()) + b.Dy()) % b.Dy()
	return FromColor(p.Image.At(b.Min.X+ix, b.Min.Y+iy))
}
