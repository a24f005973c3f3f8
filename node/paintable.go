// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

import (
	"slices"

	"github.com/gogpu/scenery"
)

// LineCap is the shape at the end of open strokes.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// String returns the markup name.
func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin is the shape at stroke corners.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// String returns the markup name.
func (j LineJoin) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// DefaultLineWidth is the stroke width of a new node.
const DefaultLineWidth = 1.0

// Paintable holds fill, stroke and line style. Nodes that can be filled or
// stroked embed it.
type Paintable struct {
	owner *Base

	fill      scenery.Paint
	stroke    scenery.Paint
	lineWidth float64
	lineCap   LineCap
	lineJoin  LineJoin
	lineDash  []float64
}

func (p *Paintable) initPaintable(owner *Base, fill scenery.Paint) {
	p.owner = owner
	p.fill = fill
	p.lineWidth = DefaultLineWidth
}

// Fill returns the fill paint source.
func (p *Paintable) Fill() scenery.Paint { return p.fill }

// SetFill sets the fill paint source. A nil paint disables filling.
func (p *Paintable) SetFill(fill scenery.Paint) {
	if fill == p.fill {
		return
	}
	before := p.owner.self.Renderers()
	p.fill = fill
	p.owner.notify(AttrFill | p.renderersChanged(before))
}

// Stroke returns the stroke paint source.
func (p *Paintable) Stroke() scenery.Paint { return p.stroke }

// SetStroke sets the stroke paint source. A nil paint disables stroking.
func (p *Paintable) SetStroke(stroke scenery.Paint) {
	if stroke == p.stroke {
		return
	}
	before := p.owner.self.Renderers()
	p.stroke = stroke
	p.owner.notify(AttrStroke | AttrBounds | p.renderersChanged(before))
}

// HasFill reports whether a fill paint is set.
func (p *Paintable) HasFill() bool { return p.fill != nil }

// HasStroke reports whether a stroke paint is set.
func (p *Paintable) HasStroke() bool { return p.stroke != nil }

// LineWidth returns the stroke width.
func (p *Paintable) LineWidth() float64 { return p.lineWidth }

// SetLineWidth sets the stroke width. Negative widths are clamped to zero.
func (p *Paintable) SetLineWidth(w float64) {
	if w < 0 {
		w = 0
	}
	if w == p.lineWidth {
		return
	}
	p.lineWidth = w
	p.owner.notify(AttrLineWidth | AttrBounds)
}

// LineCap returns the stroke cap.
func (p *Paintable) LineCap() LineCap { return p.lineCap }

// SetLineCap sets the stroke cap.
func (p *Paintable) SetLineCap(c LineCap) {
	if c == p.lineCap {
		return
	}
	p.lineCap = c
	p.owner.notify(AttrLineStyle)
}

// LineJoin returns the stroke join.
func (p *Paintable) LineJoin() LineJoin { return p.lineJoin }

// SetLineJoin sets the stroke join.
func (p *Paintable) SetLineJoin(j LineJoin) {
	if j == p.lineJoin {
		return
	}
	p.lineJoin = j
	p.owner.notify(AttrLineStyle)
}

// LineDash returns the dash pattern. The returned slice must not be modified.
func (p *Paintable) LineDash() []float64 { return p.lineDash }

// SetLineDash sets the dash pattern; nil or empty means a solid stroke.
func (p *Paintable) SetLineDash(dash []float64) {
	if slices.Equal(dash, p.lineDash) {
		return
	}
	p.lineDash = slices.Clone(dash)
	p.owner.notify(AttrLineStyle)
}

// paintRestrictions removes the variants that cannot show the current paint:
// element and buffer only do flat colors, buffer does not stroke.
func (p *Paintable) paintRestrictions(r scenery.Renderer) scenery.Renderer {
	if !scenery.IsSolid(p.fill) || !scenery.IsSolid(p.stroke) {
		r &^= scenery.RendererElement | scenery.RendererBuffer
	}
	if p.stroke != nil {
		r &^= scenery.RendererBuffer
	}
	return r
}

func (p *Paintable) renderersChanged(before scenery.Renderer) Attribute {
	if p.owner.self.Renderers() != before {
		return AttrRenderers
	}
	return 0
}
