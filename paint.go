// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

// Paint is what a fill or stroke is set to. It is a sealed interface;
// the implementations are:
//   - nil: no paint
//   - [RGBA]: a flat color
//   - *[ColorProperty]: an observable color
//   - *[PaintProperty]: an observable container of any other Paint
//   - *[LinearGradient], *[RadialGradient]: gradients whose stops may be
//     observable colors
//   - *[Pattern]: an image pattern
//
// Only RGBA values may be compared by value; the others are compared by
// identity.
type Paint interface {
	isPaint()
}

// ColorSource is a gradient stop color: an [RGBA] or a *[ColorProperty].
type ColorSource interface {
	isColorSource()
}

// ColorProperty is an observable color usable directly as a Paint and as a
// gradient stop color.
type ColorProperty struct {
	Property[RGBA]
}

// NewColorProperty creates an observable color holding c.
func NewColorProperty(c RGBA) *ColorProperty {
	return &ColorProperty{Property: Property[RGBA]{value: c}}
}

func (*ColorProperty) isPaint()       {}
func (*ColorProperty) isColorSource() {}

// PaintProperty is an observable container whose value is itself a Paint.
// Its value may change kind, for example from a flat color to a gradient.
type PaintProperty struct {
	Property[Paint]
}

// NewPaintProperty creates an observable paint holding p.
func NewPaintProperty(p Paint) *PaintProperty {
	return &PaintProperty{Property: Property[Paint]{value: p}}
}

func (*PaintProperty) isPaint() {}

// PaintKind classifies a resolved paint.
type PaintKind uint8

const (
	// PaintNone means nothing is painted.
	PaintNone PaintKind = iota
	// PaintColor is a flat color.
	PaintColor
	// PaintLinear is a linear gradient.
	PaintLinear
	// PaintRadial is a radial gradient.
	PaintRadial
	// PaintPattern is an image pattern.
	PaintPattern
)

// String returns the kind name.
func (k PaintKind) String() string {
	switch k {
	case PaintColor:
		return "color"
	case PaintLinear:
		return "linear"
	case PaintRadial:
		return "radial"
	case PaintPattern:
		return "pattern"
	default:
		return "none"
	}
}

// Unwrap follows property containers down to the concrete paint currently
// in effect: nil, RGBA, *LinearGradient, *RadialGradient or *Pattern.
// An observable color unwraps to its current RGBA.
func Unwrap(p Paint) Paint {
	for {
		switch v := p.(type) {
		case *PaintProperty:
			if v == nil {
				return nil
			}
			p = v.Get()
		case *ColorProperty:
			if v == nil {
				return nil
			}
			return v.Get()
		default:
			return p
		}
	}
}

// KindOf returns the kind of the paint currently in effect.
func KindOf(p Paint) PaintKind {
	switch v := Unwrap(p).(type) {
	case RGBA:
		if v.IsTransparent() {
			return PaintNone
		}
		return PaintColor
	case *LinearGradient:
		return PaintLinear
	case *RadialGradient:
		return PaintRadial
	case *Pattern:
		return PaintPattern
	default:
		return PaintNone
	}
}

// IsSolid reports whether p can only ever be a flat color or nothing:
// nil, an RGBA or an observable color. A PaintProperty is never solid,
// since its kind may change.
func IsSolid(p Paint) bool {
	switch p.(type) {
	case nil, RGBA, *ColorProperty:
		return true
	default:
		return false
	}
}

// ResolveColor returns the current value of a gradient stop color.
func ResolveColor(c ColorSource) RGBA {
	switch v := c.(type) {
	case RGBA:
		return v
	case *ColorProperty:
		if v == nil {
			return Transparent
		}
		return v.Get()
	default:
		return Transparent
	}
}

// SolidColor returns the flat color currently in effect and true, or
// Transparent and false if the paint is not a flat color.
func SolidColor(p Paint) (RGBA, bool) {
	if c, ok := Unwrap(p).(RGBA); ok {
		return c, true
	}
	return Transparent, false
}
