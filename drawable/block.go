// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import "github.com/gogpu/scenery"

// Block is the per-backend container drawables write into. It owns the
// backend resources and schedules update passes.
type Block interface {
	// Renderer returns the variant the block displays.
	Renderer() scenery.Renderer

	// AddDrawable appends d to the block. Adding a member again is a no-op.
	AddDrawable(d Drawable)

	// RemoveDrawable removes d and any pending update of it. Removing a
	// drawable that is not a member is a no-op.
	RemoveDrawable(d Drawable)

	// MarkDirty records that d needs an update in the next pass.
	MarkDirty(d Drawable)
}

// BlockBase implements ordered membership and the pending set of a Block.
// Backend blocks embed it. The zero value is not usable; see NewBlockBase.
type BlockBase struct {
	renderer scenery.Renderer
	members  []Drawable
	index    map[Drawable]struct{}
	pending  map[Drawable]struct{}
	schedule func()
	forced   bool
}

// NewBlockBase returns block state for renderer r.
func NewBlockBase(r scenery.Renderer) BlockBase {
	return BlockBase{
		renderer: r,
		index:    make(map[Drawable]struct{}),
		pending:  make(map[Drawable]struct{}),
	}
}

// Renderer implements Block.
func (b *BlockBase) Renderer() scenery.Renderer { return b.renderer }

// SetScheduler sets the callback run when the block goes from having no
// pending drawables to having one. The frame loop uses it to request a
// repaint.
func (b *BlockBase) SetScheduler(fn func()) { b.schedule = fn }

// AddDrawable implements Block.
func (b *BlockBase) AddDrawable(d Drawable) {
	if _, ok := b.index[d]; ok {
		return
	}
	b.index[d] = struct{}{}
	b.members = append(b.members, d)
	if d.IsPaintDirty() || d.IsTransformDirty() {
		b.MarkDirty(d)
	}
}

// RemoveDrawable implements Block.
func (b *BlockBase) RemoveDrawable(d Drawable) {
	if _, ok := b.index[d]; !ok {
		return
	}
	delete(b.index, d)
	delete(b.pending, d)
	for i, m := range b.members {
		if m == d {
			b.members = append(b.members[:i:i], b.members[i+1:]...)
			break
		}
	}
}

// MarkDirty implements Block.
func (b *BlockBase) MarkDirty(d Drawable) {
	if _, ok := b.index[d]; !ok {
		return
	}
	if _, ok := b.pending[d]; ok {
		return
	}
	b.pending[d] = struct{}{}
	if len(b.pending) == 1 && !b.forced && b.schedule != nil {
		b.schedule()
	}
}

// Contains reports whether d is a member.
func (b *BlockBase) Contains(d Drawable) bool {
	_, ok := b.index[d]
	return ok
}

// Drawables returns the members in insertion order. The slice must not be
// modified.
func (b *BlockBase) Drawables() []Drawable { return b.members }

// Len returns the number of members.
func (b *BlockBase) Len() int { return len(b.members) }

// PendingCount returns the number of drawables waiting for an update.
func (b *BlockBase) PendingCount() int { return len(b.pending) }

// IsPending reports whether d waits for an update.
func (b *BlockBase) IsPending(d Drawable) bool {
	_, ok := b.pending[d]
	return ok
}

// Invalidate makes the next Flush report work even if nothing is pending,
// for output that changes without a member being dirty, such as a removal.
func (b *BlockBase) Invalidate() {
	if b.forced {
		return
	}
	b.forced = true
	if len(b.pending) == 0 && b.schedule != nil {
		b.schedule()
	}
}

// Flush runs Update on every pending drawable in membership order and
// reports whether any ran or the block was invalidated. A drawable removed
// during the pass is skipped.
func (b *BlockBase) Flush() bool {
	forced := b.forced
	b.forced = false
	if len(b.pending) == 0 {
		return forced
	}
	order := make([]Drawable, 0, len(b.pending))
	for _, d := range b.members {
		if _, ok := b.pending[d]; ok {
			order = append(order, d)
		}
	}
	clear(b.pending)
	for _, d := range order {
		if _, ok := b.index[d]; !ok {
			continue
		}
		d.Update()
	}
	return true
}
