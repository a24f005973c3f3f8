// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"io"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
)

// Block owns a Document. Member elements appear in its content group in
// membership order.
type Block struct {
	drawable.BlockBase

	doc  *Document
	defs *Defs
}

// NewBlock creates a block with an empty width x height document.
func NewBlock(width, height float64) *Block {
	doc := NewDocument(width, height)
	return &Block{
		BlockBase: drawable.NewBlockBase(scenery.RendererMarkup),
		doc:       doc,
		defs:      newDefs(doc),
	}
}

// Document returns the block's markup tree.
func (b *Block) Document() *Document { return b.doc }

// Defs returns the shared paint server definitions.
func (b *Block) Defs() *Defs { return b.defs }

// AddDrawable implements drawable.Block.
func (b *Block) AddDrawable(d drawable.Drawable) {
	if b.Contains(d) {
		return
	}
	b.BlockBase.AddDrawable(d)
	if md, ok := d.(*Drawable); ok && md.el != nil {
		b.doc.content.AppendChild(md.el)
	}
}

// RemoveDrawable implements drawable.Block.
func (b *Block) RemoveDrawable(d drawable.Drawable) {
	if !b.Contains(d) {
		return
	}
	b.BlockBase.RemoveDrawable(d)
	if md, ok := d.(*Drawable); ok && md.el != nil {
		md.el.Detach()
	}
}

// Update runs one update pass and reports whether any drawable was
// updated.
func (b *Block) Update() bool {
	before := b.doc.writes
	if !b.Flush() {
		return false
	}
	scenery.Logger().Debug("markup: update", "drawables", b.Len(), "writes", b.doc.writes-before)
	return true
}

// WriteTo serializes the block's document.
func (b *Block) WriteTo(w io.Writer) (int64, error) {
	return b.doc.WriteTo(w)
}
