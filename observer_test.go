// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import "testing"

func newCountingObserver() (*PaintObserver, *int) {
	n := 0
	return NewPaintObserver(func() { n++ }), &n
}

func TestPaintObserverFlatValue(t *testing.T) {
	o, fired := newCountingObserver()
	o.SetPrimary(Red)
	if o.SubscriptionCount() != 0 {
		t.Errorf("flat color should not subscribe, got %d", o.SubscriptionCount())
	}
	o.SetPrimary(Red)
	if *fired != 0 {
		t.Errorf("SetPrimary must not fire, fired %d", *fired)
	}
}

func TestPaintObserverColorProperty(t *testing.T) {
	o, fired := newCountingObserver()
	cp := NewColorProperty(Red)
	o.SetPrimary(cp)

	cp.Set(Blue)
	cp.Set(Blue)
	if *fired != 1 {
		t.Errorf("fired = %d, want 1", *fired)
	}

	o.Clean()
	cp.Set(Green)
	if *fired != 1 {
		t.Errorf("fired after Clean = %d, want 1", *fired)
	}
	if cp.ListenerCount() != 0 {
		t.Errorf("listeners after Clean = %d, want 0", cp.ListenerCount())
	}
}

func TestPaintObserverGradientStops(t *testing.T) {
	o, fired := newCountingObserver()
	shared := NewColorProperty(Red)
	g := NewLinearGradient(0, 0, 10, 0).
		AddColorStop(0, shared).
		AddColorStop(0.5, Green).
		AddColorStop(1, shared)
	o.SetPrimary(g)

	if o.SubscriptionCount() != 1 {
		t.Fatalf("shared stop property subscribed %d times, want 1", o.SubscriptionCount())
	}
	shared.Set(Blue)
	if *fired != 1 {
		t.Errorf("fired = %d, want exactly 1 for one change", *fired)
	}
}

func TestPaintObserverKindChange(t *testing.T) {
	o, fired := newCountingObserver()
	stop := NewColorProperty(Red)
	g := NewRadialGradient(0, 0, 0, 0, 0, 10).AddColorStop(0, stop).AddColorStop(1, Black)
	container := NewPaintProperty(Blue)
	o.SetPrimary(container)

	// flat value -> gradient
	container.Set(g)
	if *fired != 1 {
		t.Fatalf("fired = %d after kind change, want 1", *fired)
	}
	// the new structure is observed before the next change
	stop.Set(Yellow)
	if *fired != 2 {
		t.Fatalf("fired = %d after stop change, want 2", *fired)
	}

	// gradient -> flat value
	container.Set(Green)
	if *fired != 3 {
		t.Fatalf("fired = %d after second kind change, want 3", *fired)
	}
	if stop.ListenerCount() != 0 {
		t.Errorf("stale stop listener leaked: %d", stop.ListenerCount())
	}
	stop.Set(Red)
	if *fired != 3 {
		t.Errorf("change of a detached stop fired: %d", *fired)
	}
	if container.ListenerCount() != 1 {
		t.Errorf("container listeners = %d, want 1", container.ListenerCount())
	}
}

func TestPaintObserverNestedContainers(t *testing.T) {
	o, fired := newCountingObserver()
	inner := NewPaintProperty(Red)
	outer := NewPaintProperty(inner)
	o.SetPrimary(outer)

	inner.Set(Blue)
	if *fired != 1 {
		t.Fatalf("inner change fired %d, want 1", *fired)
	}

	replacement := NewColorProperty(Green)
	outer.Set(replacement)
	if *fired != 2 {
		t.Fatalf("outer change fired %d, want 2", *fired)
	}
	if inner.ListenerCount() != 0 {
		t.Errorf("old inner container still observed")
	}
	inner.Set(Yellow)
	replacement.Set(Magenta)
	if *fired != 3 {
		t.Errorf("fired = %d, want 3", *fired)
	}
}

func TestPaintObserverSelfReference(t *testing.T) {
	o, _ := newCountingObserver()
	p := NewPaintProperty(nil)
	p.Set(p)
	o.SetPrimary(p)
	if o.SubscriptionCount() != 1 {
		t.Errorf("self-referencing container subscribed %d times, want 1", o.SubscriptionCount())
	}
}

func TestPaintObserverRebind(t *testing.T) {
	o, fired := newCountingObserver()
	a := NewColorProperty(Red)
	b := NewColorProperty(Blue)
	o.SetPrimary(a)
	o.SetPrimary(b)

	a.Set(Green)
	if *fired != 0 {
		t.Errorf("old primary still observed")
	}
	b.Set(Green)
	if *fired != 1 {
		t.Errorf("new primary not observed")
	}
	if a.ListenerCount() != 0 || b.ListenerCount() != 1 {
		t.Errorf("listener counts a=%d b=%d", a.ListenerCount(), b.ListenerCount())
	}
}

func TestUnwrapAndKind(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	tests := []struct {
		name string
		p    Paint
		want PaintKind
	}{
		{"nil", nil, PaintNone},
		{"color", Red, PaintColor},
		{"transparent", Transparent, PaintNone},
		{"color property", NewColorProperty(Blue), PaintColor},
		{"container of gradient", NewPaintProperty(g), PaintLinear},
		{"nested container", NewPaintProperty(NewPaintProperty(NewPattern(nil))), PaintPattern},
		{"radial", NewRadialGradient(0, 0, 0, 0, 0, 1), PaintRadial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.p); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
	if !IsSolid(NewColorProperty(Red)) || IsSolid(NewPaintProperty(Red)) || IsSolid(g) {
		t.Error("IsSolid mismatch")
	}
}
