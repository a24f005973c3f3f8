// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/node"
)

// painter draws one node kind from its live state.
type painter func(s *Surface, n node.Node, m scenery.Matrix)

// Drawable is the raster variant for every node kind. It keeps no copy of
// node state; PaintImmediate reads the node each time.
type Drawable struct {
	drawable.Base
	drawable.PaintState

	tracks drawable.Flag
	paint  painter
}

func factory(tracks drawable.Flag, paint painter) drawable.Factory {
	return func() drawable.Drawable {
		return &Drawable{tracks: tracks, paint: paint}
	}
}

func init() {
	shape := drawable.DirtyShape | drawable.FlagsShapePaint | drawable.DirtyBounds
	drawable.Register(node.KindRectangle, scenery.RendererRaster, factory(shape, paintRectangle))
	drawable.Register(node.KindCircle, scenery.RendererRaster, factory(shape, paintCircle))
	drawable.Register(node.KindLine, scenery.RendererRaster,
		factory(drawable.DirtyShape|drawable.DirtyStroke|drawable.DirtyLineWidth|
			drawable.DirtyLineStyle|drawable.DirtyBounds, paintLine))
	drawable.Register(node.KindText, scenery.RendererRaster,
		factory(drawable.DirtyText|drawable.DirtyFont|drawable.DirtyFill|
			drawable.DirtyBounds, paintText))
	drawable.Register(node.KindImage, scenery.RendererRaster,
		factory(drawable.DirtyImage|drawable.DirtyBounds, paintImage))
}

// Tracks implements drawable.BackendWritable.
func (d *Drawable) Tracks() drawable.Flag { return d.tracks }

// OnAttach implements drawable.BackendWritable. The surface belongs to the
// block, so there is nothing to create.
func (d *Drawable) OnAttach() {}

// OnDetach implements drawable.BackendWritable.
func (d *Drawable) OnDetach(bool) {}

// Update implements drawable.BackendWritable. Raster output is repainted
// in full by the block, so only the bits are cleared.
func (d *Drawable) Update() {
	d.SetToCleanState()
	d.CleanTransform()
}

// PaintImmediate draws the node onto s from its current state.
func (d *Drawable) PaintImmediate(s *Surface) {
	if n := d.Node(); n != nil {
		d.paint(s, n, d.Transform())
	}
}

func strokeStyle(p *node.Paintable) StrokeStyle {
	return StrokeStyle{
		Width: p.LineWidth(),
		Cap:   p.LineCap(),
		Join:  p.LineJoin(),
		Dash:  p.LineDash(),
	}
}

func fillAndStroke(s *Surface, outline Polygon, p *node.Paintable, m scenery.Matrix) {
	if src := source(p.Fill(), m); src != nil {
		s.Fill([]Polygon{outline.Transform(m)}, src)
	}
	if src := source(p.Stroke(), m); src != nil {
		pieces := Stroke(outline, true, strokeStyle(p), m.ScaleFactor())
		for i, pc := range pieces {
			pieces[i] = pc.Transform(m)
		}
		s.Fill(pieces, src)
	}
}

func paintRectangle(s *Surface, n node.Node, m scenery.Matrix) {
	r := n.(*node.Rectangle)
	x, y, w, h := r.Rect()
	if w <= 0 || h <= 0 {
		return
	}
	fillAndStroke(s, RoundRect(x, y, w, h, r.CornerRadius(), m.ScaleFactor()), &r.Paintable, m)
}

func paintCircle(s *Surface, n node.Node, m scenery.Matrix) {
	c := n.(*node.Circle)
	if c.Radius() <= 0 {
		return
	}
	fillAndStroke(s, Circle(0, 0, c.Radius(), m.ScaleFactor()), &c.Paintable, m)
}

func paintLine(s *Surface, n node.Node, m scenery.Matrix) {
	l := n.(*node.Line)
	src := source(l.Stroke(), m)
	if src == nil {
		return
	}
	x1, y1, x2, y2 := l.Points()
	pts := []scenery.Point{scenery.Pt(x1, y1), scenery.Pt(x2, y2)}
	pieces := Stroke(pts, false, strokeStyle(&l.Paintable), m.ScaleFactor())
	for i, pc := range pieces {
		pieces[i] = pc.Transform(m)
	}
	s.Fill(pieces, src)
}

func paintText(s *Surface, n node.Node, m scenery.Matrix) {
	t := n.(*node.Text)
	s.DrawText(t.String(), t.Font().Size, t.Fill(), m)
}

func paintImage(s *Surface, n node.Node, m scenery.Matrix) {
	img := n.(*node.Image)
	s.DrawImage(img.Image(), m, img.Opacity())
}
