// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import (
	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/node"
)

// PaintResult tells the block whether a drawable produced visible output.
type PaintResult int

const (
	// PaintedNothing means there is nothing to draw.
	PaintedNothing PaintResult = iota
	// PaintedSomething means vertices were drawn.
	PaintedSomething
)

// String returns the result name.
func (r PaintResult) String() string {
	if r == PaintedSomething {
		return "painted-something"
	}
	return "painted-nothing"
}

// Counters records the writes a drawable made to its block's arrays.
type Counters struct {
	Tessellations   int // full vertex rewrites
	ColorWrites     int // color-only rewrites
	TransformWrites int // slot-only rewrites
}

// outline builds the local-space outline of a node and reports whether it
// is closed.
type outline func(n node.Node) ([]vec, bool)

type kindInfo struct {
	tracks  drawable.Flag
	outline outline
	fills   bool
}

const geometryFlags = drawable.DirtyShape | drawable.DirtyLineWidth | drawable.DirtyLineStyle

func init() {
	shape := drawable.DirtyShape | drawable.FlagsShapePaint
	register := func(kind node.Kind, info *kindInfo) {
		drawable.Register(kind, scenery.RendererBuffer, func() drawable.Drawable {
			return &Drawable{info: info, slot: -1}
		})
	}
	register(node.KindRectangle, &kindInfo{tracks: shape, outline: rectangleOutline, fills: true})
	register(node.KindCircle, &kindInfo{tracks: shape, outline: circleNodeOutline, fills: true})
	register(node.KindLine, &kindInfo{
		tracks:  drawable.DirtyShape | drawable.DirtyStroke | drawable.DirtyLineWidth | drawable.DirtyLineStyle,
		outline: lineOutline,
	})
}

func rectangleOutline(n node.Node) ([]vec, bool) {
	r := n.(*node.Rectangle)
	x, y, w, h := r.Rect()
	if w <= 0 || h <= 0 {
		return nil, true
	}
	return rectOutline(float32(x), float32(y), float32(w), float32(h), float32(r.CornerRadius())), true
}

func circleNodeOutline(n node.Node) ([]vec, bool) {
	r := n.(*node.Circle).Radius()
	if r <= 0 {
		return nil, true
	}
	return circleOutline(float32(r)), true
}

func lineOutline(n node.Node) ([]vec, bool) {
	x1, y1, x2, y2 := n.(*node.Line).Points()
	return []vec{{float32(x1), float32(y1)}, {float32(x2), float32(y2)}}, false
}

type paintable interface {
	Fill() scenery.Paint
	Stroke() scenery.Paint
	LineWidth() float64
	LineCap() node.LineCap
	LineJoin() node.LineJoin
	LineDash() []float64
}

// Drawable is the buffer variant. Its region is laid out as the fill
// triangles followed by the stroke triangles.
type Drawable struct {
	drawable.Base
	drawable.PaintState

	info      *kindInfo
	host      *Block
	region    Range
	fillCount int
	slot      int
	built     bool
	hasFill   bool
	hasStroke bool

	fillColor   drawable.Shadow[scenery.RGBA]
	strokeColor drawable.Shadow[scenery.RGBA]
	counters    Counters
}

// Region returns the drawable's vertex range.
func (d *Drawable) Region() Range { return d.region }

// Slot returns the drawable's transform slot, or -1 before the first
// update.
func (d *Drawable) Slot() int { return d.slot }

// Counters returns the writes made since the drawable was attached.
func (d *Drawable) Counters() Counters { return d.counters }

// Draw reports whether the drawable has anything to draw.
func (d *Drawable) Draw() PaintResult {
	if d.host == nil || d.region.Count == 0 {
		return PaintedNothing
	}
	return PaintedSomething
}

// Tracks implements drawable.BackendWritable.
func (d *Drawable) Tracks() drawable.Flag { return d.info.tracks }

// OnAttach implements drawable.BackendWritable.
func (d *Drawable) OnAttach() {
	host, ok := d.Block().(*Block)
	if !ok {
		host = NewBlock()
	}
	d.host = host
	d.forget()
	d.counters = Counters{}
}

// OnDetach implements drawable.BackendWritable. Regions are never retained.
func (d *Drawable) OnDetach(bool) {
	if d.host != nil {
		d.host.alloc.release(d.region)
		d.host.slots.release(d.slot)
	}
	d.host = nil
	d.forget()
}

// OnContextChange drops every reference into the block's arrays, which the
// block has already discarded, and marks everything dirty so the next
// update rebuilds from scratch.
func (d *Drawable) OnContextChange() {
	d.forget()
	d.MarkDirty(d.Tracked())
	d.MarkTransformDirty()
}

func (d *Drawable) forget() {
	d.region = Range{}
	d.fillCount = 0
	d.slot = -1
	d.built = false
	d.hasFill, d.hasStroke = false, false
	d.fillColor.Invalidate()
	d.strokeColor.Invalidate()
}

// Update implements drawable.BackendWritable.
func (d *Drawable) Update() {
	if n := d.Node(); n != nil && d.host != nil {
		d.write(n)
	}
	d.SetToCleanState()
	d.CleanTransform()
}

func visible(p scenery.Paint) (scenery.RGBA, bool) {
	c, ok := scenery.SolidColor(p)
	return c, ok && !c.IsTransparent()
}

func (d *Drawable) write(n node.Node) {
	p := n.(paintable)
	fc, hasFill := visible(p.Fill())
	hasFill = hasFill && d.info.fills
	sc, hasStroke := visible(p.Stroke())
	hasStroke = hasStroke && p.LineWidth() > 0

	if d.slot < 0 {
		d.slot = d.host.slots.alloc()
	}
	if !d.built || d.IsDirty(geometryFlags) || hasFill != d.hasFill || hasStroke != d.hasStroke {
		d.tessellate(n, p, fc, sc, hasFill, hasStroke)
	} else {
		if hasFill && d.IsDirty(drawable.DirtyFill) {
			d.fillColor.Apply(fc, func(c scenery.RGBA) {
				d.host.writeColor(Range{Start: d.region.Start, Count: d.fillCount}, c)
				d.counters.ColorWrites++
			})
		}
		if hasStroke && d.IsDirty(drawable.DirtyStroke) {
			d.strokeColor.Apply(sc, func(c scenery.RGBA) {
				d.host.writeColor(Range{Start: d.region.Start + d.fillCount, Count: d.region.Count - d.fillCount}, c)
				d.counters.ColorWrites++
			})
		}
	}
	if d.IsTransformDirty() {
		d.host.writeTransform(d.slot, d.Transform())
		d.counters.TransformWrites++
	}
}

func (d *Drawable) tessellate(n node.Node, p paintable, fc, sc scenery.RGBA, hasFill, hasStroke bool) {
	pts, closed := d.info.outline(n)
	var fill, stroke tris
	if hasFill && len(pts) >= 3 {
		fill.fan(pts)
	}
	if hasStroke {
		dash := make([]float32, len(p.LineDash()))
		for i, v := range p.LineDash() {
			dash[i] = float32(v)
		}
		stroke.stroke(pts, closed, strokeStyle{
			width: float32(p.LineWidth()),
			cap:   p.LineCap(),
			join:  p.LineJoin(),
			dash:  dash,
		})
	}

	count := len(fill) + len(stroke)
	if count != d.region.Count {
		d.host.alloc.release(d.region)
		d.region = d.host.alloc.alloc(count)
	}
	d.fillCount = len(fill)
	slot := float32(d.slot)
	d.host.writeVertices(d.region.Start, fill, fc, slot)
	d.host.writeVertices(d.region.Start+len(fill), stroke, sc, slot)

	d.fillColor.Invalidate()
	d.fillColor.Apply(fc, func(scenery.RGBA) {})
	d.strokeColor.Invalidate()
	d.strokeColor.Apply(sc, func(scenery.RGBA) {})
	d.hasFill, d.hasStroke = hasFill, hasStroke
	d.built = true
	d.counters.Tessellations++
}
