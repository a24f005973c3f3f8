// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// PaintTrackable is the paint half of the dirty protocol.
type PaintTrackable interface {
	Tracked() Flag
	Flags() Flag
	MarkDirty(f Flag)
	MarkPaintDirty()
	IsPaintDirty() bool
	IsDirty(f Flag) bool
	SetToCleanState()
}

// TransformTrackable is the transform half of the dirty protocol.
type TransformTrackable interface {
	MarkTransformDirty()
	IsTransformDirty() bool
	CleanTransform()
}

// BackendWritable is implemented by each variant to synchronize its backend
// resource.
type BackendWritable interface {
	// Tracks returns the attribute bits the variant resynchronizes. It must
	// not depend on the bound node.
	Tracks() Flag

	// OnAttach runs after the drawable is bound to a node and block. The
	// variant creates or scrubs its backend resource here.
	OnAttach()

	// OnDetach runs before the drawable returns to its pool. When retain is
	// false the variant drops its backend resource; otherwise it keeps it
	// for the next occupant, which scrubs it in OnAttach.
	OnDetach(retain bool)

	// Update writes every dirty attribute using the node's current values
	// and clears all bits.
	Update()
}

// Drawable is one backend-specific rendering of one node occurrence.
// Implementations embed [Base].
type Drawable interface {
	PaintTrackable
	TransformTrackable
	BackendWritable
	node.Observer

	Node() node.Node
	Instance() *Instance
	Renderer() scenery.Renderer
	Block() Block

	base() *Base
}

// Base carries the identity and dirty state shared by all variants.
type Base struct {
	DirtyState
	TransformState

	self     Drawable
	node     node.Node
	instance *Instance
	renderer scenery.Renderer
	block    Block
}

func (b *Base) base() *Base { return b }

// Node returns the bound node, or nil while pooled.
func (b *Base) Node() node.Node { return b.node }

// Instance returns the owning instance, or nil while pooled.
func (b *Base) Instance() *Instance { return b.instance }

// Renderer returns the variant.
func (b *Base) Renderer() scenery.Renderer { return b.renderer }

// Block returns the block the drawable writes into.
func (b *Base) Block() Block { return b.block }

// Attached reports whether the drawable is bound to a node.
func (b *Base) Attached() bool { return b.node != nil }

// Transform returns the instance's transform-to-root, or the identity.
func (b *Base) Transform() scenery.Matrix {
	if b.instance == nil {
		return scenery.Identity()
	}
	return b.instance.Transform()
}

// NodeChanged implements node.Observer. Changes are mapped to dirty bits;
// categories the variant does not track are ignored.
func (b *Base) NodeChanged(_ node.Node, changed node.Attribute) {
	if b.node == nil {
		// Released during the notification that triggered the release.
		return
	}
	all := FlagsFor(changed)
	// Both observers follow the node's current sources even when the
	// variant does not track that bit.
	if all&(DirtyFill|DirtyStroke) != 0 {
		if ps := paintStateOf(b.self); ps != nil {
			if src, ok := b.node.(paintSource); ok {
				ps.bind(src)
			}
		}
	}
	if f := all & b.tracked; f != 0 {
		b.MarkDirty(f)
	}
}

// construct wires the state callbacks once, when the pool creates d.
func (b *Base) construct(self Drawable, r scenery.Renderer) {
	b.self = self
	b.renderer = r
	b.tracked = self.Tracks()
	b.DirtyState.onDirty = b.requestUpdate
	b.TransformState.onDirty = b.requestUpdate
	if ps := paintStateOf(self); ps != nil {
		ps.initPaint(&b.DirtyState)
	}
	b.reset()
}

func (b *Base) requestUpdate() {
	if b.block != nil {
		b.block.MarkDirty(b.self)
	}
}

// reset returns to the freshly constructed, fully dirty state.
func (b *Base) reset() {
	b.resetDirty()
	b.transformDirty = true
}

func (b *Base) attach(n node.Node, inst *Instance, block Block) {
	b.node = n
	b.instance = inst
	b.block = block
	b.reset()
	if ps := paintStateOf(b.self); ps != nil {
		if src, ok := n.(paintSource); ok {
			ps.bind(src)
		}
	}
	n.AddObserver(b.self)
	b.self.OnAttach()
	if block != nil {
		block.AddDrawable(b.self)
	}
}

func (b *Base) detach(retain bool) {
	if b.block != nil {
		b.block.RemoveDrawable(b.self)
	}
	b.node.RemoveObserver(b.self)
	if ps := paintStateOf(b.self); ps != nil {
		ps.clean()
	}
	b.self.OnDetach(retain)
	b.node = nil
	b.instance = nil
	b.block = nil
	b.reset()
}

func paintStateOf(d Drawable) *PaintState {
	if p, ok := d.(interface{ paintState() *PaintState }); ok {
		return p.paintState()
	}
	return nil
}
