// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import (
	"errors"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
)

// Stats counts a block's interactions with its target.
type Stats struct {
	Uploads       int
	Draws         int
	ContextLosses int
}

// Option configures a Block.
type Option func(*Block)

// WithTarget sets the target the block uploads to and draws with.
func WithTarget(t Target) Option {
	return func(b *Block) { b.target = t }
}

// Block owns the vertex and transform arrays of its drawables.
type Block struct {
	drawable.BlockBase

	target     Target
	alloc      allocator
	slots      slots
	vertices   []float32
	transforms []float32
	changed    bool
	stats      Stats
}

// NewBlock creates an empty block.
func NewBlock(opts ...Option) *Block {
	b := &Block{BlockBase: drawable.NewBlockBase(scenery.RendererBuffer)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Target returns the block's target, or nil.
func (b *Block) Target() Target { return b.target }

// Stats returns the block's counters.
func (b *Block) Stats() Stats { return b.stats }

// VertexCount returns the number of vertices in use.
func (b *Block) VertexCount() int { return b.alloc.used() }

// Vertices returns the floats of the vertices in r. The slice aliases the
// block's array and is valid until the next update.
func (b *Block) Vertices(r Range) []float32 {
	return b.vertices[r.Start*FloatsPerVertex : r.End()*FloatsPerVertex]
}

// Transform returns the floats of a transform slot.
func (b *Block) Transform(slot int) []float32 {
	return b.transforms[slot*FloatsPerTransform : (slot+1)*FloatsPerTransform]
}

// RemoveDrawable implements drawable.Block. The next Draw must stop
// drawing the removed region, so the block schedules one.
func (b *Block) RemoveDrawable(d drawable.Drawable) {
	if !b.Contains(d) {
		return
	}
	b.BlockBase.RemoveDrawable(d)
	b.Invalidate()
}

// Update runs one update pass and reports whether anything was pending.
func (b *Block) Update() bool {
	return b.Flush()
}

// Draw runs an update pass, uploads the arrays if they changed and draws
// every member region in membership order.
func (b *Block) Draw() PaintResult {
	b.Flush()
	var ranges []Range
	for _, d := range b.Drawables() {
		if bd, ok := d.(*Drawable); ok && bd.Draw() == PaintedSomething {
			ranges = append(ranges, bd.region)
		}
	}
	if len(ranges) == 0 {
		return PaintedNothing
	}
	if b.target == nil {
		return PaintedSomething
	}
	if b.changed {
		err := b.target.Upload(b.vertices[:min(len(b.vertices), b.alloc.size*FloatsPerVertex)],
			b.transforms[:min(len(b.transforms), b.slots.next*FloatsPerTransform)])
		if err != nil {
			b.fail("upload", err)
			return PaintedNothing
		}
		b.changed = false
		b.stats.Uploads++
	}
	if err := b.target.Draw(ranges); err != nil {
		b.fail("draw", err)
		return PaintedNothing
	}
	b.stats.Draws++
	return PaintedSomething
}

func (b *Block) fail(op string, err error) {
	if errors.Is(err, ErrContextLost) {
		scenery.Logger().Warn("buffer: context lost", "op", op)
		b.ContextLost()
		return
	}
	scenery.Logger().Error("buffer: target failed", "op", op, "err", err)
}

// ContextLost discards the target's resources and the block's arrays and
// tells every drawable, which rebuilds lazily on the next pass.
func (b *Block) ContextLost() {
	if b.target != nil {
		b.target.Release()
	}
	b.alloc.reset()
	b.slots.reset()
	b.vertices = b.vertices[:0]
	b.transforms = b.transforms[:0]
	b.changed = true
	b.stats.ContextLosses++
	for _, d := range b.Drawables() {
		if cc, ok := d.(interface{ OnContextChange() }); ok {
			cc.OnContextChange()
		}
	}
}

func (b *Block) writeVertices(start int, pts tris, c scenery.RGBA, slot float32) {
	if len(pts) == 0 {
		return
	}
	end := (start + len(pts)) * FloatsPerVertex
	if len(b.vertices) < end {
		b.vertices = append(b.vertices, make([]float32, end-len(b.vertices))...)
	}
	r, g, bl, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i, p := range pts {
		v := b.vertices[(start+i)*FloatsPerVertex:]
		v[0], v[1], v[2], v[3], v[4], v[5], v[6] = p.x, p.y, r, g, bl, a, slot
	}
	b.changed = true
}

func (b *Block) writeColor(rg Range, c scenery.RGBA) {
	r, g, bl, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := rg.Start; i < rg.End(); i++ {
		v := b.vertices[i*FloatsPerVertex:]
		v[2], v[3], v[4], v[5] = r, g, bl, a
	}
	b.changed = true
}

func (b *Block) writeTransform(slot int, m scenery.Matrix) {
	end := (slot + 1) * FloatsPerTransform
	if len(b.transforms) < end {
		b.transforms = append(b.transforms, make([]float32, end-len(b.transforms))...)
	}
	t := b.transforms[slot*FloatsPerTransform:]
	t[0], t[1], t[2], t[3] = float32(m.A), float32(m.B), float32(m.C), 0
	t[4], t[5], t[6], t[7] = float32(m.D), float32(m.E), float32(m.F), 0
	b.changed = true
}
