// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// String returns the SVG spreadMethod name.
func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// ColorStop is a color at a position in a gradient. The color may be an
// observable *ColorProperty; drawables observing the gradient are notified
// when it changes.
type ColorStop struct {
	Ratio float64     // Position in gradient, 0.0 to 1.0
	Color ColorSource // RGBA or *ColorProperty
}

// gradient holds what linear and radial gradients share.
type gradient struct {
	Stops  []ColorStop
	Extend ExtendMode
}

// ResolvedStops returns the stops sorted by ratio with their current colors.
func (g *gradient) ResolvedStops() []ResolvedStop {
	out := make([]ResolvedStop, len(g.Stops))
	for i, s := range g.Stops {
		out[i] = ResolvedStop{Ratio: clamp01(s.Ratio), Color: ResolveColor(s.Color)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio < out[j].Ratio })
	return out
}

// ColorProperties returns the distinct observable stop colors, in stop order.
func (g *gradient) ColorProperties() []*ColorProperty {
	var props []*ColorProperty
	seen := make(map[*ColorProperty]bool)
	for _, s := range g.Stops {
		if p, ok := s.Color.(*ColorProperty); ok && p != nil && !seen[p] {
			seen[p] = true
			props = append(props, p)
		}
	}
	return props
}

// ResolvedStop is a gradient stop with its color evaluated.
type ResolvedStop struct {
	Ratio float64
	Color RGBA
}

// LinearGradient is a color transition along the line from Start to End,
// in the local coordinates of the node it paints.
//
// Stops must not be added once the gradient is assigned to a node; only the
// values of observable stop colors may change afterwards.
//
// Example:
//
//	g := scenery.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, scenery.Red).
//	    AddColorStop(1, scenery.NewColorProperty(scenery.Blue))
type LinearGradient struct {
	gradient
	Start, End Point
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

func (*LinearGradient) isPaint() {}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *LinearGradient) AddColorStop(ratio float64, c ColorSource) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Ratio: ratio, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

// ColorAt returns the color at the local point (x, y).
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	stops := g.ResolvedStops()
	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return firstStopColor(stops)
	}
	t := Pt(x, y).Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(stops, t, g.Extend)
}

// RadialGradient is a two-circle radial gradient: colors are interpolated
// from the circle (Start, StartRadius) to the circle (End, EndRadius).
type RadialGradient struct {
	gradient
	Start, End             Point
	StartRadius, EndRadius float64
}

// NewRadialGradient creates a radial gradient between two circles.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{
		Start: Pt(x0, y0), StartRadius: r0,
		End: Pt(x1, y1), EndRadius: r1,
	}
}

func (*RadialGradient) isPaint() {}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *RadialGradient) AddColorStop(ratio float64, c ColorSource) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Ratio: ratio, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// ColorAt returns the color at the local point (x, y).
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	stops := g.ResolvedStops()
	t, ok := g.parameter(Pt(x, y))
	if !ok {
		return Transparent
	}
	return colorAtOffset(stops, t, g.Extend)
}

// parameter solves for the largest t such that p lies on the circle
// interpolated between the start and end circles with a non-negative radius.
func (g *RadialGradient) parameter(p Point) (float64, bool) {
	cd := g.End.Sub(g.Start)
	pd := p.Sub(g.Start)
	dr := g.EndRadius - g.StartRadius

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.StartRadius*dr
	c := pd.Dot(pd) - g.StartRadius*g.StartRadius

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, g.StartRadius+t*dr >= 0
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (b + sq) / a
	t2 := (b - sq) / a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.StartRadius+t1*dr >= 0 {
		return t1, true
	}
	if g.StartRadius+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func firstStopColor(stops []ResolvedStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}

// colorAtOffset interpolates sorted stops at t in straight sRGB, the
// interpolation markup backends use by default.
func colorAtOffset(stops []ResolvedStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Ratio >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Ratio == s1.Ratio {
		return s1.Color
	}
	return s1.Color.Lerp(s2.Color, (t-s1.Ratio)/(s2.Ratio-s1.Ratio))
}
