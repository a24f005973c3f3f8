// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import "slices"

// Range is a run of vertices in a block's vertex array.
type Range struct {
	Start int
	Count int
}

// End returns the index one past the last vertex.
func (r Range) End() int { return r.Start + r.Count }

// allocator hands out vertex ranges first-fit from a free list and grows
// the array when nothing fits. Freed ranges are coalesced with their
// neighbours.
type allocator struct {
	free []Range // sorted by Start
	size int
}

func (a *allocator) alloc(n int) Range {
	if n <= 0 {
		return Range{}
	}
	for i, f := range a.free {
		if f.Count < n {
			continue
		}
		r := Range{Start: f.Start, Count: n}
		if f.Count == n {
			a.free = slices.Delete(a.free, i, i+1)
		} else {
			a.free[i] = Range{Start: f.Start + n, Count: f.Count - n}
		}
		return r
	}
	// Extend a free tail instead of leaving it stranded.
	if last := len(a.free) - 1; last >= 0 && a.free[last].End() == a.size {
		r := Range{Start: a.free[last].Start, Count: n}
		a.free = a.free[:last]
		a.size = r.End()
		return r
	}
	r := Range{Start: a.size, Count: n}
	a.size += n
	return r
}

func (a *allocator) release(r Range) {
	if r.Count == 0 {
		return
	}
	i, _ := slices.BinarySearchFunc(a.free, r.Start, func(f Range, start int) int {
		return f.Start - start
	})
	a.free = slices.Insert(a.free, i, r)
	if i+1 < len(a.free) && a.free[i].End() == a.free[i+1].Start {
		a.free[i].Count += a.free[i+1].Count
		a.free = slices.Delete(a.free, i+1, i+2)
	}
	if i > 0 && a.free[i-1].End() == a.free[i].Start {
		a.free[i-1].Count += a.free[i].Count
		a.free = slices.Delete(a.free, i, i+1)
	}
}

// used returns the number of allocated vertices.
func (a *allocator) used() int {
	n := a.size
	for _, f := range a.free {
		n -= f.Count
	}
	return n
}

func (a *allocator) reset() {
	a.free = a.free[:0]
	a.size = 0
}

// slots hands out transform slot indices, reusing released ones.
type slots struct {
	free []int
	next int
}

func (s *slots) alloc() int {
	if n := len(s.free); n > 0 {
		i := s.free[n-1]
		s.free = s.free[:n-1]
		return i
	}
	s.next++
	return s.next - 1
}

func (s *slots) release(i int) {
	if i >= 0 {
		s.free = append(s.free, i)
	}
}

func (s *slots) reset() {
	s.free = s.free[:0]
	s.next = 0
}
