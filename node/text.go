// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

import (
	"image"
	"strconv"

	"github.com/gogpu/scenery"
)

// FontStyle is the slant of a font.
type FontStyle uint8

const (
	FontNormal FontStyle = iota
	FontItalic
)

// String returns the CSS name.
func (s FontStyle) String() string {
	if s == FontItalic {
		return "italic"
	}
	return "normal"
}

// Font describes the face a text node is drawn with.
type Font struct {
	Family string
	Size   float64
	Weight int
	Style  FontStyle
}

// DefaultFont is the font of a new text node.
var DefaultFont = Font{Family: "sans-serif", Size: 12, Weight: 400}

// CSS returns the font as a CSS shorthand, e.g. "italic 700 16px serif".
func (f Font) CSS() string {
	return f.Style.String() + " " + strconv.Itoa(f.Weight) + " " +
		strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// Text is a single line of text whose baseline starts at the local origin.
type Text struct {
	Base
	Paintable

	text string
	font Font
}

// NewText creates a text node filled with black.
func NewText(text string) *Text {
	t := &Text{text: text, font: DefaultFont}
	t.init(t)
	t.initPaintable(&t.Base, scenery.Black)
	return t
}

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

// Renderers implements Node.
func (t *Text) Renderers() scenery.Renderer {
	return t.paintRestrictions(Capabilities(KindText))
}

// String returns the text content.
func (t *Text) String() string { return t.text }

// SetString sets the text content.
func (t *Text) SetString(text string) {
	if text == t.text {
		return
	}
	t.text = text
	t.notify(AttrText | AttrBounds)
}

// Font returns the font.
func (t *Text) Font() Font { return t.font }

// SetFont sets the font. A non-positive size keeps the current size.
func (t *Text) SetFont(f Font) {
	if f.Size <= 0 {
		f.Size = t.font.Size
	}
	if f == t.font {
		return
	}
	t.font = f
	t.notify(AttrFont | AttrBounds)
}

// Image displays a bitmap with its top-left corner at the local origin.
type Image struct {
	Base

	img     image.Image
	opacity float64
}

// NewImage creates an image node.
func NewImage(img image.Image) *Image {
	i := &Image{img: img, opacity: 1}
	i.init(i)
	return i
}

// Kind implements Node.
func (i *Image) Kind() Kind { return KindImage }

// Renderers implements Node.
func (i *Image) Renderers() scenery.Renderer { return Capabilities(KindImage) }

// Image returns the bitmap, which may be nil.
func (i *Image) Image() image.Image { return i.img }

// SetImage replaces the bitmap.
func (i *Image) SetImage(img image.Image) {
	if img == i.img {
		return
	}
	i.img = img
	i.notify(AttrImage | AttrBounds)
}

// Size returns the bitmap size in pixels.
func (i *Image) Size() (width, height int) {
	if i.img == nil {
		return 0, 0
	}
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Opacity returns the image opacity in [0, 1].
func (i *Image) Opacity() float64 { return i.opacity }

// SetOpacity sets the image opacity, clamped to [0, 1].
func (i *Image) SetOpacity(o float64) {
	o = min(max(o, 0), 1)
	if o == i.opacity {
		return
	}
	i.opacity = o
	i.notify(AttrImage)
}
