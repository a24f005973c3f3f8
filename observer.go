// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

// PaintObserver binds one paint source (a fill or a stroke) to a single
// change callback.
//
// The source may be a flat value, an observable color, an observable paint
// container, or a gradient whose stops hold observable colors, nested to any
// depth. The observer keeps exactly one subscription graph for the bound
// source:
//   - the callback fires once per change of any observable in the graph;
//   - when a container changes value, the graph below the primary source is
//     torn down and rebuilt for the new structure before the callback fires,
//     so a change of kind (color to gradient and back) neither leaks
//     listeners nor misses the next change;
//   - a property reachable through several paths is subscribed once.
//
// Replacing the primary source itself is the caller's job (a node setter
// calls SetPrimary through the drawable's dirty path); SetPrimary does not
// fire the callback.
type PaintObserver struct {
	onChange func()
	primary  Paint
	bound    bool
	unsubs   []func()
}

// NewPaintObserver creates an unbound observer calling onChange.
func NewPaintObserver(onChange func()) *PaintObserver {
	return &PaintObserver{onChange: onChange}
}

// Primary returns the bound source.
func (o *PaintObserver) Primary() Paint {
	return o.primary
}

// Bound reports whether SetPrimary has been called since the last Clean.
func (o *PaintObserver) Bound() bool {
	return o.bound
}

// SetPrimary binds the observer to p. Binding the source that is already
// bound is a no-op; anything else replaces the whole subscription graph.
func (o *PaintObserver) SetPrimary(p Paint) {
	if o.bound && p == o.primary {
		return
	}
	o.teardown()
	o.primary = p
	o.bound = true
	o.build()
}

// Clean removes every subscription and unbinds the observer. Safe to call
// more than once.
func (o *PaintObserver) Clean() {
	o.teardown()
	o.primary = nil
	o.bound = false
}

// SubscriptionCount returns the number of live subscriptions in the graph.
func (o *PaintObserver) SubscriptionCount() int {
	return len(o.unsubs)
}

func (o *PaintObserver) teardown() {
	for _, unsub := range o.unsubs {
		unsub()
	}
	o.unsubs = o.unsubs[:0]
}

func (o *PaintObserver) build() {
	seen := make(map[any]bool)
	o.subscribe(o.primary, seen)
}

func (o *PaintObserver) subscribe(p Paint, seen map[any]bool) {
	switch v := p.(type) {
	case *ColorProperty:
		o.subscribeColor(v, seen)
	case *PaintProperty:
		if v == nil || seen[v] {
			return
		}
		seen[v] = true
		o.unsubs = append(o.unsubs, v.Subscribe(func(Paint, Paint) {
			o.restructure()
		}))
		o.subscribe(v.Get(), seen)
	case *LinearGradient:
		if v == nil {
			return
		}
		for _, cp := range v.ColorProperties() {
			o.subscribeColor(cp, seen)
		}
	case *RadialGradient:
		if v == nil {
			return
		}
		for _, cp := range v.ColorProperties() {
			o.subscribeColor(cp, seen)
		}
	}
}

func (o *PaintObserver) subscribeColor(cp *ColorProperty, seen map[any]bool) {
	if cp == nil || seen[cp] {
		return
	}
	seen[cp] = true
	o.unsubs = append(o.unsubs, cp.Subscribe(func(RGBA, RGBA) {
		o.fire()
	}))
}

// restructure runs when a container in the graph changed value.
func (o *PaintObserver) restructure() {
	if !o.bound {
		return
	}
	o.teardown()
	o.build()
	o.fire()
}

func (o *PaintObserver) fire() {
	if o.bound && o.onChange != nil {
		o.onChange()
	}
}
