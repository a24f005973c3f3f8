// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

// PoolStats reports pool activity.
type PoolStats struct {
	// Free is the number of objects waiting in the free list.
	Free int
	// Created counts objects built by the constructor.
	Created int
	// Reused counts Get calls served from the free list.
	Reused int
	// Dropped counts Put calls discarded because the pool was full.
	Dropped int
}

// Pool is a free list of reusable objects of one type. It is not safe for
// concurrent use. Unlike sync.Pool it never discards objects on its own, so
// reuse is deterministic.
type Pool[T any] struct {
	newFn   func() T
	free    []T
	maxSize int
	stats   PoolStats
}

// NewPool creates a pool that builds objects with newFn and keeps at most
// maxSize free objects. maxSize 0 means unbounded.
func NewPool[T any](maxSize int, newFn func() T) *Pool[T] {
	return &Pool[T]{newFn: newFn, maxSize: maxSize}
}

// Get pops a free object or constructs a new one. The second result reports
// whether the object was reused.
func (p *Pool[T]) Get() (T, bool) {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		p.stats.Reused++
		return v, true
	}
	p.stats.Created++
	return p.newFn(), false
}

// Put pushes v onto the free list. The caller resets v first. It reports
// false when the pool is full and v was dropped.
func (p *Pool[T]) Put(v T) bool {
	if p.Full() {
		p.stats.Dropped++
		return false
	}
	p.free = append(p.free, v)
	return true
}

// Warmup constructs objects until n are free, bounded by the pool size.
func (p *Pool[T]) Warmup(n int) {
	if p.maxSize > 0 {
		n = min(n, p.maxSize)
	}
	for len(p.free) < n {
		p.stats.Created++
		p.free = append(p.free, p.newFn())
	}
}

// Full reports whether Put would drop.
func (p *Pool[T]) Full() bool {
	return p.maxSize > 0 && len(p.free) >= p.maxSize
}

// Len returns the number of free objects.
func (p *Pool[T]) Len() int { return len(p.free) }

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() PoolStats {
	s := p.stats
	s.Free = len(p.free)
	return s
}
