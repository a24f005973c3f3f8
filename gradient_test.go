// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func approxColor(a, b RGBA) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(1, Blue).
		AddColorStop(0, Red)

	tests := []struct {
		name string
		x    float64
		want RGBA
	}{
		{"start", 0, Red},
		{"end", 100, Blue},
		{"middle", 50, NewRGBA(0.5, 0, 0.5, 1)},
		{"before start pads", -20, Red},
		{"after end pads", 150, Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, 7); !approxColor(got, tt.want) {
				t.Errorf("ColorAt(%v) = %+v, want %+v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLinearGradientExtendModes(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).AddColorStop(0, Black).AddColorStop(1, White)

	g.SetExtend(ExtendRepeat)
	if got := g.ColorAt(12.5, 0); !approxColor(got, NewRGBA(0.25, 0.25, 0.25, 1)) {
		t.Errorf("repeat = %+v", got)
	}
	g.SetExtend(ExtendReflect)
	if got := g.ColorAt(12.5, 0); !approxColor(got, NewRGBA(0.75, 0.75, 0.75, 1)) {
		t.Errorf("reflect = %+v", got)
	}
	if ExtendReflect.String() != "reflect" || ExtendPad.String() != "pad" {
		t.Error("ExtendMode.String mismatch")
	}
}

func TestGradientObservableStopResolves(t *testing.T) {
	cp := NewColorProperty(Red)
	g := NewLinearGradient(0, 0, 10, 0).AddColorStop(0, cp)
	if got := g.ColorAt(5, 0); got != Red {
		t.Fatalf("ColorAt = %+v, want red", got)
	}
	cp.Set(Green)
	if got := g.ColorAt(5, 0); got != Green {
		t.Errorf("ColorAt after stop change = %+v, want green", got)
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	g := NewRadialGradient(0, 0, 0, 0, 0, 10).AddColorStop(0, White).AddColorStop(1, Black)
	if got := g.ColorAt(0, 0); !approxColor(got, White) {
		t.Errorf("center = %+v, want white", got)
	}
	if got := g.ColorAt(5, 0); !approxColor(got, NewRGBA(0.5, 0.5, 0.5, 1)) {
		t.Errorf("half radius = %+v", got)
	}
	if got := g.ColorAt(0, 20); !approxColor(got, Black) {
		t.Errorf("outside = %+v, want black", got)
	}
}

func TestPatternColorAtTiles(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})
	p := NewPattern(img)

	if got := p.ColorAt(0.5, 0); got != Red {
		t.Errorf("(0.5,0) = %+v, want red", got)
	}
	if got := p.ColorAt(3, 4); got != Blue {
		t.Errorf("(3,4) = %+v, want blue", got)
	}
	if got := p.ColorAt(-1, 0); got != Blue {
		t.Errorf("(-1,0) = %+v, want blue", got)
	}
	if got := NewPattern(nil).ColorAt(0, 0); got != Transparent {
		t.Errorf("nil image = %+v", got)
	}
}
