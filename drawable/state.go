// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import "github.com/gogpu/scenery"

// DirtyState is the paint half of the dirty-flag state machine: an
// aggregate bit plus attribute-specific bits. Any attribute bit implies the
// aggregate.
type DirtyState struct {
	tracked    Flag
	flags      Flag
	paintDirty bool
	onDirty    func()
}

// Tracked returns the attribute bits this state accepts.
func (s *DirtyState) Tracked() Flag { return s.tracked }

// Flags returns the attribute bits currently set.
func (s *DirtyState) Flags() Flag { return s.flags }

// IsPaintDirty reports whether the aggregate bit is set.
func (s *DirtyState) IsPaintDirty() bool { return s.paintDirty }

// IsDirty reports whether any bit of f is set.
func (s *DirtyState) IsDirty(f Flag) bool { return s.flags&f != 0 }

// MarkDirty sets the bits of f and then the aggregate. Bits outside the
// tracked set trip an assertion and are dropped.
func (s *DirtyState) MarkDirty(f Flag) {
	if unknown := f &^ s.tracked; unknown != 0 {
		assertf(false, "mark of untracked bits %v (tracked %v)", unknown, s.tracked)
		f &= s.tracked
		if f == 0 {
			return
		}
	}
	s.flags |= f
	s.MarkPaintDirty()
}

// markTracked marks the tracked part of f; untracked bits are ignored
// silently since the caller maps generic notifications.
func (s *DirtyState) markTracked(f Flag) {
	if f &= s.tracked; f != 0 {
		s.MarkDirty(f)
	}
}

// MarkPaintDirty sets the aggregate bit. The owner is notified only when
// the state goes from clean to dirty.
func (s *DirtyState) MarkPaintDirty() {
	if s.paintDirty {
		return
	}
	s.paintDirty = true
	if s.onDirty != nil {
		s.onDirty()
	}
}

func (s *DirtyState) MarkDirtyShape()     { s.MarkDirty(DirtyShape) }
func (s *DirtyState) MarkDirtyFill()      { s.MarkDirty(DirtyFill) }
func (s *DirtyState) MarkDirtyStroke()    { s.MarkDirty(DirtyStroke) }
func (s *DirtyState) MarkDirtyLineWidth() { s.MarkDirty(DirtyLineWidth) }
func (s *DirtyState) MarkDirtyLineStyle() { s.MarkDirty(DirtyLineStyle) }
func (s *DirtyState) MarkDirtyText()      { s.MarkDirty(DirtyText) }
func (s *DirtyState) MarkDirtyFont()      { s.MarkDirty(DirtyFont) }
func (s *DirtyState) MarkDirtyImage()     { s.MarkDirty(DirtyImage) }
func (s *DirtyState) MarkDirtyBounds()    { s.MarkDirty(DirtyBounds) }

// SetToCleanState clears the aggregate and every attribute bit.
func (s *DirtyState) SetToCleanState() {
	s.flags = 0
	s.paintDirty = false
}

// resetDirty puts the state in the freshly constructed condition: every
// tracked bit and the aggregate set, no notification.
func (s *DirtyState) resetDirty() {
	s.flags = s.tracked
	s.paintDirty = true
}

// TransformState tracks transform dirtiness separately from paint, so a
// variant can take a matrix-only path.
type TransformState struct {
	transformDirty bool
	onDirty        func()
}

// IsTransformDirty reports whether the transform bit is set.
func (s *TransformState) IsTransformDirty() bool { return s.transformDirty }

// MarkTransformDirty sets the transform bit, notifying the owner on the
// clean-to-dirty edge.
func (s *TransformState) MarkTransformDirty() {
	if s.transformDirty {
		return
	}
	s.transformDirty = true
	if s.onDirty != nil {
		s.onDirty()
	}
}

// CleanTransform clears the transform bit.
func (s *TransformState) CleanTransform() { s.transformDirty = false }

// PaintState binds the node's fill and stroke sources to the dirty bits
// through one [scenery.PaintObserver] each.
type PaintState struct {
	fill   *scenery.PaintObserver
	stroke *scenery.PaintObserver
}

func (p *PaintState) paintState() *PaintState { return p }

// FillObserver returns the observer bound to the fill source.
func (p *PaintState) FillObserver() *scenery.PaintObserver { return p.fill }

// StrokeObserver returns the observer bound to the stroke source.
func (p *PaintState) StrokeObserver() *scenery.PaintObserver { return p.stroke }

func (p *PaintState) initPaint(d *DirtyState) {
	if p.fill != nil {
		return
	}
	p.fill = scenery.NewPaintObserver(func() { d.markTracked(DirtyFill) })
	p.stroke = scenery.NewPaintObserver(func() { d.markTracked(DirtyStroke) })
}

func (p *PaintState) bind(src paintSource) {
	p.fill.SetPrimary(src.Fill())
	p.stroke.SetPrimary(src.Stroke())
}

func (p *PaintState) clean() {
	if p.fill == nil {
		return
	}
	p.fill.Clean()
	p.stroke.Clean()
}

// paintSource is implemented by nodes that embed node.Paintable.
type paintSource interface {
	Fill() scenery.Paint
	Stroke() scenery.Paint
}

// Shadow is the last value a stateful variant applied to its backend. A
// write happens when the new value differs from the shadow or the shadow is
// invalid, so a value removed and then restored across two passes is
// written again.
type Shadow[T comparable] struct {
	value T
	valid bool
}

// Apply calls write with v unless v is already applied. It reports whether
// a write happened.
func (s *Shadow[T]) Apply(v T, write func(T)) bool {
	if s.valid && s.value == v {
		return false
	}
	write(v)
	s.value = v
	s.valid = true
	return true
}

// Get returns the applied value and whether the shadow is valid.
func (s *Shadow[T]) Get() (T, bool) { return s.value, s.valid }

// Invalidate forgets the applied value; the next Apply always writes.
func (s *Shadow[T]) Invalidate() {
	var zero T
	s.value = zero
	s.valid = false
}
