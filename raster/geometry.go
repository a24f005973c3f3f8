// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// Polygon is a closed contour.
type Polygon []scenery.Point

// Transform maps every point through m.
func (p Polygon) Transform(m scenery.Matrix) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = m.TransformPoint(pt)
	}
	return out
}

// signedArea is positive for counter-clockwise contours in a y-up frame.
func (p Polygon) signedArea() float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// normalized returns p wound so its signed area is non-negative. The
// rasterizer sums signed coverage, so overlapping stroke pieces must agree
// on winding or they cancel.
func (p Polygon) normalized() Polygon {
	if p.signedArea() >= 0 {
		return p
	}
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// arcSegments returns the number of segments for a full circle of radius r
// after scaling by scale.
func arcSegments(r, scale float64) int {
	n := int(math.Ceil(2 * math.Pi * r * scale / 2))
	return min(max(n, 16), 512)
}

// Circle returns a circle contour.
func Circle(cx, cy, r, scale float64) Polygon {
	n := arcSegments(r, scale)
	p := make(Polygon, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		p[i] = scenery.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return p
}

// RoundRect returns a rectangle contour with corners rounded by radius,
// which is clamped to half the shorter side.
func RoundRect(x, y, w, h, radius, scale float64) Polygon {
	radius = min(radius, w/2, h/2)
	if radius <= 0 {
		return Polygon{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	}
	steps := max(arcSegments(radius, scale)/4, 2)
	corners := []struct {
		cx, cy, start float64
	}{
		{x + w - radius, y + radius, -math.Pi / 2},
		{x + w - radius, y + h - radius, 0},
		{x + radius, y + h - radius, math.Pi / 2},
		{x + radius, y + radius, math.Pi},
	}
	p := make(Polygon, 0, 4*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + math.Pi/2*float64(i)/float64(steps)
			p = append(p, scenery.Pt(c.cx+radius*math.Cos(a), c.cy+radius*math.Sin(a)))
		}
	}
	return p
}

// miterLimit matches the SVG default.
const miterLimit = 4

// StrokeStyle describes how a polyline is stroked.
type StrokeStyle struct {
	Width float64
	Cap   node.LineCap
	Join  node.LineJoin
	Dash  []float64
}

// Stroke returns polygons whose union covers the stroke of pts. The
// polygons overlap; fill them with consistent winding.
func Stroke(pts []scenery.Point, closed bool, st StrokeStyle, scale float64) []Polygon {
	if st.Width <= 0 || len(pts) < 2 {
		return nil
	}
	path := pts
	if closed {
		path = append(append([]scenery.Point(nil), pts...), pts[0])
	}
	runs := [][]scenery.Point{path}
	if dashed := Dash(path, st.Dash); dashed != nil {
		runs = dashed
		closed = false
	}
	hw := st.Width / 2
	var out []Polygon
	for _, run := range runs {
		run = dedupe(run)
		if len(run) < 2 {
			continue
		}
		for i := 0; i+1 < len(run); i++ {
			a, b := run[i], run[i+1]
			n := b.Sub(a).Normalize().Perp().Mul(hw)
			out = append(out, Polygon{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
		}
		for i := 1; i+1 < len(run); i++ {
			out = appendJoin(out, run[i-1], run[i], run[i+1], hw, st.Join, scale)
		}
		if closed {
			last := len(run) - 1
			out = appendJoin(out, run[last-1], run[0], run[1], hw, st.Join, scale)
			continue
		}
		out = appendCap(out, run[1], run[0], hw, st.Cap, scale)
		out = appendCap(out, run[len(run)-2], run[len(run)-1], hw, st.Cap, scale)
	}
	return out
}

func dedupe(run []scenery.Point) []scenery.Point {
	out := run[:0:0]
	for i, p := range run {
		if i == 0 || p != run[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func appendJoin(out []Polygon, prev, v, next scenery.Point, hw float64, join node.LineJoin, scale float64) []Polygon {
	d0 := v.Sub(prev).Normalize()
	d1 := next.Sub(v).Normalize()
	n0 := d0.Perp().Mul(hw)
	n1 := d1.Perp().Mul(hw)
	switch join {
	case node.JoinRound:
		return append(out, Circle(v.X, v.Y, hw, scale))
	case node.JoinMiter:
		// The outer side is the one the next segment turns away from.
		if n0.Dot(d1) > 0 {
			n0, n1 = n0.Mul(-1), n1.Mul(-1)
		}
		if s := n0.Add(n1); s.Length() > 0 {
			u := s.Normalize()
			if c := u.Dot(n0) / hw; c > 1.0/miterLimit {
				tip := v.Add(u.Mul(hw / c))
				return append(out, Polygon{v, v.Add(n0), tip, v.Add(n1)})
			}
		}
		return append(out, Polygon{v, v.Add(n0), v.Add(n1)})
	default:
		return append(out,
			Polygon{v, v.Add(n0), v.Add(n1)},
			Polygon{v, v.Sub(n0), v.Sub(n1)})
	}
}

// appendCap adds the cap at end for a segment coming from prev.
func appendCap(out []Polygon, prev, end scenery.Point, hw float64, c node.LineCap, scale float64) []Polygon {
	switch c {
	case node.CapRound:
		return append(out, Circle(end.X, end.Y, hw, scale))
	case node.CapSquare:
		d := end.Sub(prev).Normalize()
		n := d.Perp().Mul(hw)
		tip := end.Add(d.Mul(hw))
		return append(out, Polygon{end.Add(n), tip.Add(n), tip.Sub(n), end.Sub(n)})
	default:
		return out
	}
}

// Dash splits a polyline into its "on" runs. It returns nil when dash
// describes a solid line: empty, all zero, or containing a negative entry.
func Dash(pts []scenery.Point, dash []float64) [][]scenery.Point {
	var total float64
	for _, d := range dash {
		if d < 0 {
			return nil
		}
		total += d
	}
	if total <= 0 {
		return nil
	}
	pattern := dash
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), dash...), dash...)
	}

	var runs [][]scenery.Point
	idx, rem, on := 0, pattern[0], true
	cur := []scenery.Point{pts[0]}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		seg := b.Sub(a)
		segLen := seg.Length()
		pos := 0.0
		for segLen-pos > rem {
			pos += rem
			p := a.Add(seg.Mul(pos / segLen))
			if on {
				runs = append(runs, append(cur, p))
				cur = nil
			} else {
				cur = []scenery.Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			rem = pattern[idx]
		}
		rem -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
