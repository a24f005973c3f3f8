// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// resource stands in for a backend object a variant writes into.
type resource struct {
	fill   scenery.RGBA
	stroke scenery.RGBA
	radius float64
	matrix scenery.Matrix
	writes int
}

type fakeDrawable struct {
	Base
	PaintState

	res      *resource
	attaches int
	detaches int
	updates  int
}

func newFake() Drawable { return &fakeDrawable{} }

func (d *fakeDrawable) Tracks() Flag { return DirtyShape | FlagsShapePaint | DirtyBounds }

func (d *fakeDrawable) OnAttach() {
	d.attaches++
	if d.res == nil {
		d.res = &resource{}
		return
	}
	*d.res = resource{}
}

func (d *fakeDrawable) OnDetach(retain bool) {
	d.detaches++
	if !retain {
		d.res = nil
	}
}

func (d *fakeDrawable) Update() {
	d.updates++
	p, _ := d.Node().(interface {
		Fill() scenery.Paint
		Stroke() scenery.Paint
	})
	if d.IsDirty(DirtyFill) && p != nil {
		d.res.fill, _ = scenery.SolidColor(p.Fill())
		d.res.writes++
	}
	if d.IsDirty(DirtyStroke) && p != nil {
		d.res.stroke, _ = scenery.SolidColor(p.Stroke())
		d.res.writes++
	}
	if c, ok := d.Node().(*node.Circle); ok && d.IsDirty(DirtyShape) {
		d.res.radius = c.Radius()
		d.res.writes++
	}
	if d.IsTransformDirty() {
		d.res.matrix = d.Transform()
		d.res.writes++
	}
	d.SetToCleanState()
	d.CleanTransform()
}

type fakeBlock struct {
	BlockBase
	scheduled int
}

func newFakeBlock(r scenery.Renderer) *fakeBlock {
	b := &fakeBlock{BlockBase: NewBlockBase(r)}
	b.SetScheduler(func() { b.scheduled++ })
	return b
}

func (b *fakeBlock) Update() bool { return b.Flush() }

func init() {
	for _, k := range []node.Kind{node.KindRectangle, node.KindCircle} {
		for _, r := range scenery.RendererPriority {
			Register(k, r, newFake)
		}
	}
}

func allBlocks() (Blocks, map[scenery.Renderer]*fakeBlock) {
	blocks := Blocks{}
	fakes := map[scenery.Renderer]*fakeBlock{}
	for _, r := range scenery.RendererPriority {
		fb := newFakeBlock(r)
		blocks[r] = fb
		fakes[r] = fb
	}
	return blocks, fakes
}
