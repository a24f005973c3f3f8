// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"strconv"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/internal/imageuri"
	"github.com/gogpu/scenery/internal/textmeasure"
	"github.com/gogpu/scenery/node"
)

// kindInfo describes how one node kind maps onto a markup element.
type kindInfo struct {
	tag      string
	tracks   drawable.Flag
	geometry drawable.Flag
	sync     func(d *Drawable, n node.Node)
}

const strokeFlags = drawable.DirtyStroke | drawable.DirtyLineWidth | drawable.DirtyLineStyle

var (
	rectInfo = &kindInfo{
		tag:      "rect",
		tracks:   drawable.DirtyShape | drawable.FlagsShapePaint,
		geometry: drawable.DirtyShape,
		sync:     syncRectangle,
	}
	circleInfo = &kindInfo{
		tag:      "circle",
		tracks:   drawable.DirtyShape | drawable.FlagsShapePaint,
		geometry: drawable.DirtyShape,
		sync:     syncCircle,
	}
	lineInfo = &kindInfo{
		tag:      "line",
		tracks:   drawable.DirtyShape | strokeFlags,
		geometry: drawable.DirtyShape,
		sync:     syncLine,
	}
	textInfo = &kindInfo{
		tag:      "text",
		tracks:   drawable.DirtyText | drawable.DirtyFont | drawable.DirtyFill | strokeFlags,
		geometry: drawable.DirtyText | drawable.DirtyFont,
		sync:     syncText,
	}
	imageInfo = &kindInfo{
		tag:      "image",
		tracks:   drawable.DirtyImage,
		geometry: drawable.DirtyImage,
		sync:     syncImage,
	}
)

func init() {
	for kind, info := range map[node.Kind]*kindInfo{
		node.KindRectangle: rectInfo,
		node.KindCircle:    circleInfo,
		node.KindLine:      lineInfo,
		node.KindText:      textInfo,
		node.KindImage:     imageInfo,
	} {
		drawable.Register(kind, scenery.RendererMarkup, func() drawable.Drawable {
			return &Drawable{info: info}
		})
	}
}

// paintable is the paint surface of shape and text nodes.
type paintable interface {
	Fill() scenery.Paint
	Stroke() scenery.Paint
	LineWidth() float64
	LineCap() node.LineCap
	LineJoin() node.LineJoin
	LineDash() []float64
}

// Drawable is the markup variant. It owns one element and writes only the
// attributes whose computed value differs from what it last wrote.
type Drawable struct {
	drawable.Base
	drawable.PaintState

	info    *kindInfo
	host    *Block
	el      *Element
	shadows map[string]*drawable.Shadow[string]
	text    drawable.Shadow[string]

	fillDef, strokeDef scenery.Paint
}

// Element returns the element the drawable writes, or nil while pooled
// without retained resources.
func (d *Drawable) Element() *Element { return d.el }

// Tracks implements drawable.BackendWritable.
func (d *Drawable) Tracks() drawable.Flag { return d.info.tracks }

// OnAttach implements drawable.BackendWritable. A retained element is
// scrubbed so nothing of the previous node survives, and every shadow is
// forgotten so the first update writes everything.
func (d *Drawable) OnAttach() {
	host, ok := d.Block().(*Block)
	if !ok {
		host = NewBlock(0, 0)
	}
	d.host = host
	if d.el != nil {
		d.el.scrub(host.doc)
	} else {
		d.el = host.doc.NewElement(d.info.tag)
	}
	for _, s := range d.shadows {
		s.Invalidate()
	}
	d.text.Invalidate()
}

// OnDetach implements drawable.BackendWritable.
func (d *Drawable) OnDetach(retain bool) {
	if d.host != nil {
		if d.fillDef != nil {
			d.host.defs.release(d.fillDef)
		}
		if d.strokeDef != nil {
			d.host.defs.release(d.strokeDef)
		}
	}
	d.fillDef, d.strokeDef = nil, nil
	d.host = nil
	if d.el != nil {
		d.el.Detach()
	}
	if !retain {
		d.el = nil
	}
}

// Update implements drawable.BackendWritable.
func (d *Drawable) Update() {
	n := d.Node()
	if n != nil && d.el != nil {
		d.write(n)
	}
	d.SetToCleanState()
	d.CleanTransform()
}

func (d *Drawable) write(n node.Node) {
	if d.IsDirty(d.info.geometry) {
		d.info.sync(d, n)
	}
	if p, ok := n.(paintable); ok {
		if d.IsDirty(drawable.DirtyFill) {
			d.syncPaint("fill", p.Fill(), &d.fillDef, "none")
		}
		if d.IsDirty(drawable.DirtyStroke) {
			d.syncPaint("stroke", p.Stroke(), &d.strokeDef, "")
		}
		if d.IsDirty(drawable.DirtyLineWidth) {
			d.apply("stroke-width", num(p.LineWidth()))
		}
		if d.IsDirty(drawable.DirtyLineStyle) {
			d.apply("stroke-linecap", p.LineCap().String())
			d.apply("stroke-linejoin", p.LineJoin().String())
			d.apply("stroke-dasharray", dashArray(p.LineDash()))
		}
	}
	if d.IsTransformDirty() {
		d.apply("transform", transformAttr(d.Transform()))
	}
}

// apply writes an attribute if v differs from the last value written. An
// empty value removes the attribute.
func (d *Drawable) apply(name, v string) {
	s, ok := d.shadows[name]
	if !ok {
		if d.shadows == nil {
			d.shadows = make(map[string]*drawable.Shadow[string])
		}
		s = &drawable.Shadow[string]{}
		d.shadows[name] = s
	}
	s.Apply(v, func(v string) {
		if v == "" {
			d.el.RemoveAttr(name)
		} else {
			d.el.SetAttr(name, v)
		}
	})
}

func (d *Drawable) syncPaint(attr string, p scenery.Paint, ref *scenery.Paint, none string) {
	var value string
	var server scenery.Paint
	switch v := scenery.Unwrap(p).(type) {
	case scenery.RGBA:
		if !v.IsTransparent() {
			value = v.CSS()
		}
	case *scenery.LinearGradient, *scenery.RadialGradient, *scenery.Pattern:
		server = v
	}
	if server != nil {
		if *ref == server {
			value = d.host.defs.refresh(server)
		} else {
			value = d.host.defs.acquire(server)
		}
	}
	if *ref != nil && *ref != server {
		d.host.defs.release(*ref)
	}
	*ref = server
	if value == "" {
		value = none
	}
	d.apply(attr, value)
}

func syncRectangle(d *Drawable, n node.Node) {
	r := n.(*node.Rectangle)
	x, y, w, h := r.Rect()
	d.apply("x", num(x))
	d.apply("y", num(y))
	d.apply("width", num(max(w, 0)))
	d.apply("height", num(max(h, 0)))
	rx := ""
	if cr := r.CornerRadius(); cr > 0 {
		rx = num(cr)
	}
	d.apply("rx", rx)
}

func syncCircle(d *Drawable, n node.Node) {
	d.apply("r", num(max(n.(*node.Circle).Radius(), 0)))
}

func syncLine(d *Drawable, n node.Node) {
	x1, y1, x2, y2 := n.(*node.Line).Points()
	d.apply("x1", num(x1))
	d.apply("y1", num(y1))
	d.apply("x2", num(x2))
	d.apply("y2", num(y2))
}

func syncText(d *Drawable, n node.Node) {
	t := n.(*node.Text)
	if d.IsDirty(drawable.DirtyText) {
		d.text.Apply(t.String(), d.el.SetText)
		dir := ""
		if textmeasure.Direction(t.String()) == "rtl" {
			dir = "rtl"
		}
		d.apply("direction", dir)
	}
	if d.IsDirty(drawable.DirtyFont) {
		f := t.Font()
		d.apply("font-family", f.Family)
		d.apply("font-size", num(f.Size))
		d.apply("font-weight", strconv.Itoa(f.Weight))
		style := ""
		if f.Style != node.FontNormal {
			style = f.Style.String()
		}
		d.apply("font-style", style)
	}
}

func syncImage(d *Drawable, n node.Node) {
	img := n.(*node.Image)
	w, h := img.Size()
	d.apply("href", imageuri.Encode(img.Image()))
	d.apply("width", strconv.Itoa(w))
	d.apply("height", strconv.Itoa(h))
	opacity := ""
	if o := img.Opacity(); o < 1 {
		opacity = num(o)
	}
	d.apply("opacity", opacity)
}
