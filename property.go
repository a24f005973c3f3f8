// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

// Property is an observable value container. Listeners are notified
// synchronously, in subscription order, whenever Set stores a value that is
// different from the current one.
//
// Property is not safe for concurrent use.
type Property[T comparable] struct {
	value     T
	listeners []*propertyListener[T]
	notifying int
}

type propertyListener[T comparable] struct {
	fn     func(newValue, oldValue T)
	active bool
}

// NewProperty creates a property holding v.
func NewProperty[T comparable](v T) *Property[T] {
	return &Property[T]{value: v}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set stores v and notifies listeners if it differs from the current value.
func (p *Property[T]) Set(v T) {
	if v == p.value {
		return
	}
	old := p.value
	p.value = v

	// Iterate over a snapshot so listeners may subscribe or unsubscribe
	// while being notified.
	p.notifying++
	snapshot := p.listeners
	for _, l := range snapshot {
		if l.active {
			l.fn(v, old)
		}
	}
	p.notifying--
	if p.notifying == 0 {
		p.compact()
	}
}

// Subscribe registers fn for future changes and returns a function that
// removes the subscription. The returned function is idempotent.
// fn is not called for the current value.
func (p *Property[T]) Subscribe(fn func(newValue, oldValue T)) (unsubscribe func()) {
	l := &propertyListener[T]{fn: fn, active: true}
	// Copy-on-write keeps snapshots taken by an in-flight Set stable.
	listeners := make([]*propertyListener[T], len(p.listeners), len(p.listeners)+1)
	copy(listeners, p.listeners)
	p.listeners = append(listeners, l)
	return func() {
		if !l.active {
			return
		}
		l.active = false
		if p.notifying == 0 {
			p.compact()
		}
	}
}

// ListenerCount returns the number of active subscriptions.
func (p *Property[T]) ListenerCount() int {
	n := 0
	for _, l := range p.listeners {
		if l.active {
			n++
		}
	}
	return n
}

func (p *Property[T]) compact() {
	n := 0
	for _, l := range p.listeners {
		if l.active {
			n++
		}
	}
	if n == len(p.listeners) {
		return
	}
	kept := make([]*propertyListener[T], 0, n)
	for _, l := range p.listeners {
		if l.active {
			kept = append(kept, l)
		}
	}
	p.listeners = kept
}
