// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"fmt"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// Blocks maps each renderer to the block displaying it. A nil map places no
// restriction and attaches drawables to no block.
type Blocks map[scenery.Renderer]Block

func (bs Blocks) renderers() scenery.Renderer {
	if bs == nil {
		return scenery.RendererAll
	}
	var r scenery.Renderer
	for k := range bs {
		r |= k
	}
	return r
}

// InstanceOption configures an Instance.
type InstanceOption func(*Instance)

// WithHints restricts the variants to hints, usually the renderer mask
// accumulated from ancestors.
func WithHints(hints scenery.Renderer) InstanceOption {
	return func(i *Instance) { i.hints = hints }
}

// WithTransform sets the initial transform-to-root.
func WithTransform(m scenery.Matrix) InstanceOption {
	return func(i *Instance) { i.transform = m }
}

// Instance is one occurrence of a node. It owns exactly one live drawable
// and swaps it when the selected variant changes.
type Instance struct {
	node      node.Node
	pools     *Pools
	blocks    Blocks
	hints     scenery.Renderer
	transform scenery.Matrix
	drawable  Drawable
	err       error
	disposed  bool
}

// NewInstance creates an instance of n and acquires its drawable.
// It returns ErrUnsupportedRenderer if no variant satisfies the node's
// capabilities, the registered factories, the available blocks and the
// hints.
func NewInstance(n node.Node, pools *Pools, blocks Blocks, opts ...InstanceOption) (*Instance, error) {
	inst := &Instance{
		node:      n,
		pools:     pools,
		blocks:    blocks,
		transform: scenery.Identity(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	r, err := inst.choose(inst.hints)
	if err != nil {
		return nil, err
	}
	n.AddObserver(inst)
	if err := inst.swap(r); err != nil {
		n.RemoveObserver(inst)
		return nil, err
	}
	return inst, nil
}

// MustInstance is like NewInstance but panics on error.
func MustInstance(n node.Node, pools *Pools, blocks Blocks, opts ...InstanceOption) *Instance {
	inst, err := NewInstance(n, pools, blocks, opts...)
	if err != nil {
		panic(err)
	}
	return inst
}

// Node returns the displayed node.
func (i *Instance) Node() node.Node { return i.node }

// Drawable returns the live drawable, or nil after Dispose or when the
// node's current state fits no variant.
func (i *Instance) Drawable() Drawable { return i.drawable }

// Renderer returns the variant of the live drawable.
func (i *Instance) Renderer() scenery.Renderer {
	if i.drawable == nil {
		return scenery.RendererNone
	}
	return i.drawable.Renderer()
}

// Hints returns the renderer hints.
func (i *Instance) Hints() scenery.Renderer { return i.hints }

// Err returns the selection error left by the last node change, if any.
func (i *Instance) Err() error { return i.err }

// Transform returns the transform-to-root.
func (i *Instance) Transform() scenery.Matrix { return i.transform }

// SetTransform updates the transform-to-root and marks the drawable's
// transform dirty.
func (i *Instance) SetTransform(m scenery.Matrix) {
	if i.disposed || m == i.transform {
		return
	}
	i.transform = m
	if i.drawable != nil {
		i.drawable.MarkTransformDirty()
	}
}

// SetHints changes the renderer hints. If they force a different variant,
// the old drawable returns to its pool and a fully dirty one of the new
// variant replaces it. Hints no variant satisfies are rejected and leave
// the instance unchanged.
func (i *Instance) SetHints(hints scenery.Renderer) error {
	if i.disposed {
		return ErrInstanceDisposed
	}
	r, err := i.choose(hints)
	if err != nil {
		return err
	}
	i.hints = hints
	return i.swap(r)
}

// NodeChanged implements node.Observer. A capability change re-selects the
// variant.
func (i *Instance) NodeChanged(_ node.Node, changed node.Attribute) {
	if i.disposed || changed&node.AttrRenderers == 0 {
		return
	}
	r, err := i.choose(i.hints)
	if err != nil {
		scenery.Logger().Error("drawable: no variant after node change",
			"kind", i.node.Kind().String(), "err", err)
		i.err = err
		i.release()
		return
	}
	i.err = i.swap(r)
}

// Dispose releases the drawable and stops observing the node. Pending
// dirty bits are discarded without a write. Safe to call more than once.
func (i *Instance) Dispose() {
	if i.disposed {
		return
	}
	i.disposed = true
	i.node.RemoveObserver(i)
	i.release()
}

// Disposed reports whether Dispose has been called.
func (i *Instance) Disposed() bool { return i.disposed }

func (i *Instance) choose(hints scenery.Renderer) (scenery.Renderer, error) {
	k := i.node.Kind()
	caps := i.node.Renderers() & Registered(k) & i.blocks.renderers()
	r, err := SelectRenderer(caps, hints)
	if err != nil {
		return r, fmt.Errorf("%v: %w", k, err)
	}
	return r, nil
}

func (i *Instance) swap(r scenery.Renderer) error {
	if i.drawable != nil && i.drawable.Renderer() == r {
		return nil
	}
	i.release()
	d, err := i.pools.Acquire(i.node, i, r, i.blocks[r])
	if err != nil {
		return err
	}
	i.drawable = d
	return nil
}

func (i *Instance) release() {
	if i.drawable == nil {
		return
	}
	i.pools.Release(i.drawable)
	i.drawable = nil
}
