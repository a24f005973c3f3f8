// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package element

import (
	"io"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
)

// Block owns a relatively positioned container element. Member elements
// are its children in membership order.
type Block struct {
	drawable.BlockBase

	root     *Element
	counters Counters
}

// NewBlock creates a block with a width x height container.
func NewBlock(width, height float64) *Block {
	b := &Block{BlockBase: drawable.NewBlockBase(scenery.RendererElement)}
	b.root = NewElement("div", nil)
	b.root.SetStyle("position", "relative")
	b.root.SetStyle("overflow", "hidden")
	b.root.SetStyle("width", px(width))
	b.root.SetStyle("height", px(height))
	b.root.counter = &b.counters
	return b
}

// Root returns the container element.
func (b *Block) Root() *Element { return b.root }

// Counters returns the writes and reflows caused by the block's elements.
func (b *Block) Counters() Counters { return b.counters }

// AddDrawable implements drawable.Block.
func (b *Block) AddDrawable(d drawable.Drawable) {
	if b.Contains(d) {
		return
	}
	b.BlockBase.AddDrawable(d)
	if ed, ok := d.(*Drawable); ok && ed.el != nil {
		b.root.AppendChild(ed.el)
	}
}

// RemoveDrawable implements drawable.Block.
func (b *Block) RemoveDrawable(d drawable.Drawable) {
	if !b.Contains(d) {
		return
	}
	b.BlockBase.RemoveDrawable(d)
	if ed, ok := d.(*Drawable); ok && ed.el != nil {
		ed.el.Remove()
	}
}

// Update runs one update pass and reports whether any drawable was
// updated.
func (b *Block) Update() bool {
	before := b.counters
	if !b.Flush() {
		return false
	}
	scenery.Logger().Debug("element: update", "drawables", b.Len(),
		"writes", b.counters.Writes-before.Writes,
		"reflows", b.counters.Reflows-before.Reflows)
	return true
}

// WriteHTML dumps the container and its children.
func (b *Block) WriteHTML(w io.Writer) error {
	return b.root.WriteHTML(w)
}
