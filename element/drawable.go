// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package element

import (
	"strconv"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/internal/imageuri"
	"github.com/gogpu/scenery/internal/textmeasure"
	"github.com/gogpu/scenery/node"
)

type kindInfo struct {
	tag    string
	tracks drawable.Flag
	sync   func(d *Drawable, n node.Node)
}

const boxFlags = drawable.DirtyShape | drawable.FlagsShapePaint

var kinds = map[node.Kind]*kindInfo{
	node.KindRectangle: {tag: "div", tracks: boxFlags, sync: syncRectangle},
	node.KindCircle:    {tag: "div", tracks: boxFlags, sync: syncCircle},
	node.KindText: {
		tag: "span",
		tracks: drawable.DirtyText | drawable.DirtyFont | drawable.DirtyFill |
			drawable.DirtyStroke | drawable.DirtyLineWidth,
		sync: syncText,
	},
	node.KindImage: {tag: "img", tracks: drawable.DirtyImage, sync: syncImage},
}

func init() {
	for kind, info := range kinds {
		drawable.Register(kind, scenery.RendererElement, func() drawable.Drawable {
			return &Drawable{info: info}
		})
	}
}

// Drawable is the element variant. It owns one positioned element and
// writes only style properties whose computed value changed.
type Drawable struct {
	drawable.Base
	drawable.PaintState

	info    *kindInfo
	el      *Element
	shadows map[string]*drawable.Shadow[string]
	text    drawable.Shadow[string]
}

// Element returns the element the drawable writes, or nil while pooled
// without retained resources.
func (d *Drawable) Element() *Element { return d.el }

// Tracks implements drawable.BackendWritable.
func (d *Drawable) Tracks() drawable.Flag { return d.info.tracks }

// OnAttach implements drawable.BackendWritable.
func (d *Drawable) OnAttach() {
	var counters *Counters
	if b, ok := d.Block().(*Block); ok {
		counters = &b.counters
	}
	if d.el != nil {
		d.el.scrub(counters)
	} else {
		d.el = NewElement(d.info.tag, counters)
	}
	for _, s := range d.shadows {
		s.Invalidate()
	}
	d.text.Invalidate()
}

// OnDetach implements drawable.BackendWritable.
func (d *Drawable) OnDetach(retain bool) {
	if d.el != nil {
		d.el.Remove()
	}
	if !retain {
		d.el = nil
	}
}

// Update implements drawable.BackendWritable.
func (d *Drawable) Update() {
	if n := d.Node(); n != nil && d.el != nil {
		if d.IsPaintDirty() {
			d.info.sync(d, n)
		}
		if d.IsTransformDirty() {
			d.style("position", "absolute")
			d.style("transform-origin", "0 0")
			d.style("transform", cssTransform(d.Transform()))
		}
	}
	d.SetToCleanState()
	d.CleanTransform()
}

func (d *Drawable) shadow(name string) *drawable.Shadow[string] {
	s, ok := d.shadows[name]
	if !ok {
		if d.shadows == nil {
			d.shadows = make(map[string]*drawable.Shadow[string])
		}
		s = &drawable.Shadow[string]{}
		d.shadows[name] = s
	}
	return s
}

func (d *Drawable) style(name, v string) {
	d.shadow(name).Apply(v, func(v string) { d.el.SetStyle(name, v) })
}

func (d *Drawable) attr(name, v string) {
	d.shadow("@"+name).Apply(v, func(v string) { d.el.SetAttr(name, v) })
}

// outline centers a stroke of width w on the box edge.
func (d *Drawable) outline(p paintable) {
	if d.IsDirty(drawable.DirtyStroke | drawable.DirtyLineWidth | drawable.DirtyLineStyle) {
		color := cssColor(p.Stroke())
		value, offset := "", ""
		if color != "" && p.LineWidth() > 0 {
			kind := "solid"
			if len(p.LineDash()) > 0 {
				kind = "dashed"
			}
			value = px(p.LineWidth()) + " " + kind + " " + color
			offset = px(-p.LineWidth() / 2)
		}
		d.style("outline", value)
		d.style("outline-offset", offset)
	}
}

type paintable interface {
	Fill() scenery.Paint
	Stroke() scenery.Paint
	LineWidth() float64
	LineDash() []float64
}

func (d *Drawable) box(p paintable, x, y, w, h float64, radius string) {
	if d.IsDirty(drawable.DirtyShape) {
		d.style("left", px(x))
		d.style("top", px(y))
		d.style("width", px(max(w, 0)))
		d.style("height", px(max(h, 0)))
		d.style("border-radius", radius)
	}
	if d.IsDirty(drawable.DirtyFill) {
		d.style("background-color", cssColor(p.Fill()))
	}
	d.outline(p)
}

func syncRectangle(d *Drawable, n node.Node) {
	r := n.(*node.Rectangle)
	x, y, w, h := r.Rect()
	radius := ""
	if cr := r.CornerRadius(); cr > 0 {
		radius = px(cr)
	}
	d.box(r, x, y, w, h, radius)
}

func syncCircle(d *Drawable, n node.Node) {
	c := n.(*node.Circle)
	r := c.Radius()
	d.box(c, -r, -r, 2*r, 2*r, "50%")
}

func syncText(d *Drawable, n node.Node) {
	t := n.(*node.Text)
	if d.IsDirty(drawable.DirtyText | drawable.DirtyFont) {
		f := t.Font()
		m := textmeasure.Default().Measure(t.String(), f.Size)
		d.text.Apply(t.String(), d.el.SetText)
		d.style("white-space", "pre")
		d.style("font", f.CSS())
		d.style("direction", textmeasure.Direction(t.String()))
		d.style("left", "0px")
		d.style("top", px(-m.Ascent))
		d.style("width", px(m.Width))
		d.style("line-height", px(m.Height()))
	}
	if d.IsDirty(drawable.DirtyFill) {
		d.style("color", cssColor(t.Fill()))
	}
	if d.IsDirty(drawable.DirtyStroke | drawable.DirtyLineWidth) {
		stroke := ""
		if c := cssColor(t.Stroke()); c != "" {
			stroke = px(t.LineWidth()) + " " + c
		}
		d.style("-webkit-text-stroke", stroke)
	}
}

func syncImage(d *Drawable, n node.Node) {
	img := n.(*node.Image)
	w, h := img.Size()
	d.attr("src", imageuri.Encode(img.Image()))
	d.style("left", "0px")
	d.style("top", "0px")
	d.style("width", strconv.Itoa(w)+"px")
	d.style("height", strconv.Itoa(h)+"px")
	opacity := ""
	if o := img.Opacity(); o < 1 {
		opacity = number(o)
	}
	d.style("opacity", opacity)
}
