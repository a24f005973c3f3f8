// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/draw"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
)

// Block owns a Surface and repaints it from scratch whenever any member was
// pending at an update pass.
type Block struct {
	drawable.BlockBase

	surface  *Surface
	repaints int
}

// NewBlock creates a block painting into a width x height surface.
func NewBlock(width, height int, opts ...SurfaceOption) *Block {
	return &Block{
		BlockBase: drawable.NewBlockBase(scenery.RendererRaster),
		surface:   NewSurface(width, height, opts...),
	}
}

// Surface returns the block's pixels as of the last update pass.
func (b *Block) Surface() *Surface { return b.surface }

// Repaints returns how many update passes repainted the surface.
func (b *Block) Repaints() int { return b.repaints }

// Update runs one update pass and reports whether the surface was
// repainted.
func (b *Block) Update() bool {
	if !b.Flush() {
		return false
	}
	b.surface.Clear()
	for _, d := range b.Drawables() {
		d.(*Drawable).PaintImmediate(b.surface)
	}
	b.repaints++
	scenery.Logger().Debug("raster: repaint", "drawables", b.Len())
	return true
}

// RemoveDrawable implements drawable.Block. The removed node's pixels
// disappear at the next pass, so the block schedules one.
func (b *Block) RemoveDrawable(d drawable.Drawable) {
	if !b.Contains(d) {
		return
	}
	b.BlockBase.RemoveDrawable(d)
	b.Invalidate()
}

// PaintImmediate composites the block's surface onto dst without running
// an update pass.
func (b *Block) PaintImmediate(dst *Surface) {
	src := b.surface.Image()
	draw.Draw(dst.Image(), src.Bounds(), src, image.Point{}, draw.Over)
}
