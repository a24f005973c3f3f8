// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"strconv"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/internal/imageuri"
)

// Defs shares gradient and pattern definitions between the drawables of
// one document. Entries are keyed by paint identity and removed when the
// last user releases them. Ids are assigned from a per-document counter,
// so the same sequence of operations always yields the same markup.
type Defs struct {
	doc     *Document
	entries map[scenery.Paint]*def
	next    int
}

type def struct {
	id    string
	el    *Element
	stops []*Element
	refs  int
}

func newDefs(doc *Document) *Defs {
	return &Defs{doc: doc, entries: make(map[scenery.Paint]*def)}
}

// Len returns the number of live definitions.
func (d *Defs) Len() int { return len(d.entries) }

// Refs returns the reference count of p's definition.
func (d *Defs) Refs(p scenery.Paint) int {
	if e, ok := d.entries[p]; ok {
		return e.refs
	}
	return 0
}

// acquire adds a reference to p's definition, creating it if needed, and
// returns the paint server URL.
func (d *Defs) acquire(p scenery.Paint) string {
	e, ok := d.entries[p]
	if !ok {
		e = d.create(p)
		d.entries[p] = e
		d.doc.defs.AppendChild(e.el)
	}
	e.refs++
	return "url(#" + e.id + ")"
}

// refresh rewrites stop colors that changed since they were written and
// returns the paint server URL.
func (d *Defs) refresh(p scenery.Paint) string {
	e, ok := d.entries[p]
	if !ok {
		return d.acquire(p)
	}
	if stops := resolvedStops(p); len(stops) == len(e.stops) {
		for i, s := range stops {
			writeStop(e.stops[i], s)
		}
	}
	return "url(#" + e.id + ")"
}

// release drops a reference to p's definition.
func (d *Defs) release(p scenery.Paint) {
	e, ok := d.entries[p]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	e.el.Detach()
	delete(d.entries, p)
}

func (d *Defs) create(p scenery.Paint) *def {
	d.next++
	e := &def{}
	switch v := p.(type) {
	case *scenery.LinearGradient:
		e.id = "g" + strconv.Itoa(d.next)
		e.el = d.doc.NewElement("linearGradient")
		e.el.SetAttr("gradientUnits", "userSpaceOnUse")
		e.el.SetAttr("x1", num(v.Start.X))
		e.el.SetAttr("y1", num(v.Start.Y))
		e.el.SetAttr("x2", num(v.End.X))
		e.el.SetAttr("y2", num(v.End.Y))
		e.el.SetAttr("spreadMethod", v.Extend.String())
	case *scenery.RadialGradient:
		e.id = "g" + strconv.Itoa(d.next)
		e.el = d.doc.NewElement("radialGradient")
		e.el.SetAttr("gradientUnits", "userSpaceOnUse")
		e.el.SetAttr("fx", num(v.Start.X))
		e.el.SetAttr("fy", num(v.Start.Y))
		e.el.SetAttr("fr", num(v.StartRadius))
		e.el.SetAttr("cx", num(v.End.X))
		e.el.SetAttr("cy", num(v.End.Y))
		e.el.SetAttr("r", num(v.EndRadius))
		e.el.SetAttr("spreadMethod", v.Extend.String())
	case *scenery.Pattern:
		e.id = "p" + strconv.Itoa(d.next)
		e.el = d.doc.NewElement("pattern")
		e.el.SetAttr("patternUnits", "userSpaceOnUse")
		w, h := 0, 0
		if v.Image != nil {
			w, h = v.Image.Bounds().Dx(), v.Image.Bounds().Dy()
		}
		e.el.SetAttr("width", strconv.Itoa(w))
		e.el.SetAttr("height", strconv.Itoa(h))
		img := d.doc.NewElement("image")
		img.SetAttr("width", strconv.Itoa(w))
		img.SetAttr("height", strconv.Itoa(h))
		img.SetAttr("href", imageuri.Encode(v.Image))
		e.el.AppendChild(img)
	}
	e.el.SetAttr("id", e.id)
	for _, s := range resolvedStops(p) {
		stop := d.doc.NewElement("stop")
		stop.SetAttr("offset", num(s.Ratio))
		writeStop(stop, s)
		e.el.AppendChild(stop)
		e.stops = append(e.stops, stop)
	}
	return e
}

func resolvedStops(p scenery.Paint) []scenery.ResolvedStop {
	switch v := p.(type) {
	case *scenery.LinearGradient:
		return v.ResolvedStops()
	case *scenery.RadialGradient:
		return v.ResolvedStops()
	}
	return nil
}

func writeStop(el *Element, s scenery.ResolvedStop) {
	color, opacity := hexRGB(s.Color), num(s.Color.A)
	if v, _ := el.Attr("stop-color"); v != color {
		el.SetAttr("stop-color", color)
	}
	if v, _ := el.Attr("stop-opacity"); v != opacity {
		el.SetAttr("stop-opacity", opacity)
	}
}
