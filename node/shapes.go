// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

import (
	"github.com/gogpu/scenery"
)

// Rectangle is an axis-aligned rectangle with optional rounded corners.
type Rectangle struct {
	Base
	Paintable

	x, y, width, height float64
	cornerRadius        float64
}

// NewRectangle creates a rectangle filled with black.
func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{x: x, y: y, width: width, height: height}
	r.init(r)
	r.initPaintable(&r.Base, scenery.Black)
	return r
}

// Kind implements Node.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// Renderers implements Node.
func (r *Rectangle) Renderers() scenery.Renderer {
	return r.paintRestrictions(Capabilities(KindRectangle))
}

// Rect returns the position and size.
func (r *Rectangle) Rect() (x, y, width, height float64) {
	return r.x, r.y, r.width, r.height
}

// SetRect sets the position and size.
func (r *Rectangle) SetRect(x, y, width, height float64) {
	if x == r.x && y == r.y && width == r.width && height == r.height {
		return
	}
	r.x, r.y, r.width, r.height = x, y, width, height
	r.notify(AttrShape | AttrBounds)
}

// CornerRadius returns the corner radius.
func (r *Rectangle) CornerRadius() float64 { return r.cornerRadius }

// SetCornerRadius sets the corner radius.
func (r *Rectangle) SetCornerRadius(radius float64) {
	if radius < 0 {
		radius = 0
	}
	if radius == r.cornerRadius {
		return
	}
	r.cornerRadius = radius
	r.notify(AttrShape)
}

// Circle is a circle centered on the local origin.
type Circle struct {
	Base
	Paintable

	radius float64
}

// NewCircle creates a circle filled with black.
func NewCircle(radius float64) *Circle {
	c := &Circle{radius: radius}
	c.init(c)
	c.initPaintable(&c.Base, scenery.Black)
	return c
}

// Kind implements Node.
func (c *Circle) Kind() Kind { return KindCircle }

// Renderers implements Node.
func (c *Circle) Renderers() scenery.Renderer {
	return c.paintRestrictions(Capabilities(KindCircle))
}

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius.
func (c *Circle) SetRadius(radius float64) {
	if radius < 0 {
		radius = 0
	}
	if radius == c.radius {
		return
	}
	c.radius = radius
	c.notify(AttrShape | AttrBounds)
}

// Line is a straight segment. Lines are stroked only; the fill is ignored.
type Line struct {
	Base
	Paintable

	x1, y1, x2, y2 float64
}

// NewLine creates a line stroked with black.
func NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{x1: x1, y1: y1, x2: x2, y2: y2}
	l.init(l)
	l.initPaintable(&l.Base, nil)
	l.stroke = scenery.Black
	return l
}

// Kind implements Node.
func (l *Line) Kind() Kind { return KindLine }

// Renderers implements Node. Lines are drawn as quads by the buffer
// variant, so unlike other shapes their stroke does not exclude it.
func (l *Line) Renderers() scenery.Renderer {
	r := Capabilities(KindLine)
	if !scenery.IsSolid(l.stroke) {
		r &^= scenery.RendererBuffer
	}
	return r
}

// Points returns the endpoints.
func (l *Line) Points() (x1, y1, x2, y2 float64) {
	return l.x1, l.y1, l.x2, l.y2
}

// SetPoints sets the endpoints.
func (l *Line) SetPoints(x1, y1, x2, y2 float64) {
	if x1 == l.x1 && y1 == l.y1 && x2 == l.x2 && y2 == l.y2 {
		return
	}
	l.x1, l.y1, l.x2, l.y2 = x1, y1, x2, y2
	l.notify(AttrShape | AttrBounds)
}
