// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/scenery/node"
)

type vec struct{ x, y float32 }

func (a vec) add(b vec) vec         { return vec{a.x + b.x, a.y + b.y} }
func (a vec) sub(b vec) vec         { return vec{a.x - b.x, a.y - b.y} }
func (a vec) scale(s float32) vec   { return vec{a.x * s, a.y * s} }
func (a vec) cross(b vec) float32   { return a.x*b.y - a.y*b.x }
func (a vec) length() float32       { return math32.Hypot(a.x, a.y) }
func (a vec) perp() vec             { return vec{-a.y, a.x} }
func (a vec) normalize() (vec, bool) {
	l := a.length()
	if l < 1e-6 {
		return vec{}, false
	}
	return a.scale(1 / l), true
}

// tris is a triangle list: every three points form one triangle.
type tris []vec

func (t *tris) tri(a, b, c vec) { *t = append(*t, a, b, c) }

func (t *tris) quad(a, b, c, d vec) {
	t.tri(a, b, c)
	t.tri(a, c, d)
}

// fan triangulates a convex polygon around its first point.
func (t *tris) fan(pts []vec) {
	for i := 1; i+1 < len(pts); i++ {
		t.tri(pts[0], pts[i], pts[i+1])
	}
}

const miterLimit = 4

// arcSteps returns the segment count for an arc of the given radius and
// angle, keeping chords under about half a pixel of error.
func arcSteps(radius, angle float32) int {
	if radius <= 0 {
		return 1
	}
	n := int(math32.Ceil(math32.Abs(angle) / (2 * math32.Acos(1-min(0.5/radius, 1)))))
	return max(2, min(n, 128))
}

func arc(c vec, radius, from, sweep float32, out []vec) []vec {
	steps := arcSteps(radius, sweep)
	for i := 0; i <= steps; i++ {
		a := from + sweep*float32(i)/float32(steps)
		s, co := math32.Sincos(a)
		out = append(out, vec{c.x + co*radius, c.y + s*radius})
	}
	return out
}

func circleOutline(r float32) []vec {
	pts := arc(vec{}, r, 0, 2*math32.Pi, nil)
	return pts[:len(pts)-1]
}

func rectOutline(x, y, w, h, radius float32) []vec {
	radius = min(radius, w/2, h/2)
	if radius <= 0 {
		return []vec{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	var pts []vec
	pts = arc(vec{x + w - radius, y + radius}, radius, -math32.Pi/2, math32.Pi/2, pts)
	pts = arc(vec{x + w - radius, y + h - radius}, radius, 0, math32.Pi/2, pts)
	pts = arc(vec{x + radius, y + h - radius}, radius, math32.Pi/2, math32.Pi/2, pts)
	pts = arc(vec{x + radius, y + radius}, radius, math32.Pi, math32.Pi/2, pts)
	return pts
}

type strokeStyle struct {
	width float32
	cap   node.LineCap
	join  node.LineJoin
	dash  []float32
}

// stroke appends the triangles covering a polyline of the given style.
func (t *tris) stroke(pts []vec, closed bool, st strokeStyle) {
	if st.width <= 0 || len(pts) < 2 {
		return
	}
	if len(st.dash) > 0 {
		for _, run := range dash(pts, closed, st.dash) {
			t.strokeRun(run, false, st)
		}
		return
	}
	t.strokeRun(pts, closed, st)
}

func (t *tris) strokeRun(pts []vec, closed bool, st strokeStyle) {
	hw := st.width / 2
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dir, ok := b.sub(a).normalize()
		if !ok {
			continue
		}
		off := dir.perp().scale(hw)
		if !closed && st.cap == node.CapSquare {
			if i == 0 {
				a = a.sub(dir.scale(hw))
			}
			if i == segs-1 {
				b = b.add(dir.scale(hw))
			}
		}
		t.quad(a.add(off), b.add(off), b.sub(off), a.sub(off))
	}
	joins := n - 2
	if closed {
		joins = n
	}
	for i := 0; i < joins; i++ {
		p0 := pts[i%n]
		p1 := pts[(i+1)%n]
		p2 := pts[(i+2)%n]
		t.join(p0, p1, p2, hw, st.join)
	}
	if !closed && st.cap == node.CapRound {
		t.roundCap(pts[0], pts[1], hw)
		t.roundCap(pts[n-1], pts[n-2], hw)
	}
}

func (t *tris) join(p0, p1, p2 vec, hw float32, join node.LineJoin) {
	d0, ok0 := p1.sub(p0).normalize()
	d1, ok1 := p2.sub(p1).normalize()
	if !ok0 || !ok1 {
		return
	}
	turn := d0.cross(d1)
	if math32.Abs(turn) < 1e-6 {
		return
	}
	// The outer side is opposite the turn direction.
	sign := float32(-1)
	if turn < 0 {
		sign = 1
	}
	o0 := p1.add(d0.perp().scale(hw * sign))
	o1 := p1.add(d1.perp().scale(hw * sign))
	switch join {
	case node.JoinRound:
		t.fan(append([]vec{p1}, circleOutlineAt(p1, hw)...))
	case node.JoinMiter:
		cos := d0.x*d1.x + d0.y*d1.y
		ratio := 1 / math32.Sqrt(max((1+cos)/2, 1e-12))
		if ratio <= miterLimit {
			bis, ok := d0.perp().add(d1.perp()).normalize()
			if ok {
				tip := p1.add(bis.scale(hw * ratio * sign))
				t.tri(p1, o0, tip)
				t.tri(p1, tip, o1)
				return
			}
		}
		t.tri(p1, o0, o1)
	default:
		t.tri(p1, o0, o1)
	}
}

func circleOutlineAt(c vec, r float32) []vec {
	pts := circleOutline(r)
	for i := range pts {
		pts[i] = pts[i].add(c)
	}
	return append(pts, pts[0])
}

func (t *tris) roundCap(end, prev vec, hw float32) {
	dir, ok := end.sub(prev).normalize()
	if !ok {
		return
	}
	start := math32.Atan2(dir.y, dir.x) - math32.Pi/2
	pts := arc(end, hw, start, math32.Pi, []vec{end})
	t.fan(pts)
}

// dash splits a polyline into the runs covered by the on intervals of the
// pattern. An odd-length pattern is repeated to make it even.
func dash(pts []vec, closed bool, pattern []float32) [][]vec {
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	var total float32
	for _, v := range pattern {
		total += v
	}
	if total <= 0 {
		return [][]vec{pts}
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	var runs [][]vec
	var cur []vec
	idx, left, on := 0, pattern[0], true
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		seg := b.sub(a).length()
		pos := float32(0)
		for seg-pos > 1e-6 {
			step := min(left, seg-pos)
			p0 := a.add(b.sub(a).scale(pos / seg))
			p1 := a.add(b.sub(a).scale((pos + step) / seg))
			if on {
				if len(cur) == 0 {
					cur = append(cur, p0)
				}
				cur = append(cur, p1)
			}
			pos += step
			left -= step
			if left <= 1e-6 {
				if on && len(cur) > 1 {
					runs = append(runs, cur)
				}
				cur = nil
				idx = (idx + 1) % len(pattern)
				left, on = pattern[idx], !on
			}
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
