// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

func TestSelectRenderer(t *testing.T) {
	tests := []struct {
		name        string
		caps, hints scenery.Renderer
		want        scenery.Renderer
		wantErr     bool
	}{
		{"no hints prefers markup", scenery.RendererAll, 0, scenery.RendererMarkup, false},
		{"raster before element", scenery.RendererRaster | scenery.RendererElement, 0, scenery.RendererRaster, false},
		{"hint narrows", scenery.RendererAll, scenery.RendererBuffer, scenery.RendererBuffer, false},
		{"hint mask", scenery.RendererAll, scenery.RendererElement | scenery.RendererBuffer, scenery.RendererElement, false},
		{"empty intersection", scenery.RendererRaster, scenery.RendererBuffer, 0, true},
		{"no capabilities", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRenderer(tt.caps, tt.hints)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedRenderer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewInstanceUnsupported(t *testing.T) {
	pools := NewPools(DefaultConfig())
	_, err := NewInstance(node.NewLine(0, 0, 1, 1), pools, nil)
	assert.ErrorIs(t, err, ErrUnsupportedRenderer, "no line factories registered here")

	r := node.NewRectangle(0, 0, 1, 1)
	_, err = NewInstance(r, pools, nil, WithHints(scenery.RendererBuffer|scenery.RendererElement),
		WithTransform(scenery.Identity()))
	require.NoError(t, err)

	blocks := Blocks{scenery.RendererRaster: newFakeBlock(scenery.RendererRaster)}
	_, err = NewInstance(node.NewCircle(1), pools, blocks, WithHints(scenery.RendererMarkup))
	assert.ErrorIs(t, err, ErrUnsupportedRenderer, "no block for markup")

	assert.Panics(t, func() { MustInstance(node.NewLine(0, 0, 1, 1), pools, nil) })
}

func TestSetHintsSwapsVariant(t *testing.T) {
	pools := NewPools(DefaultConfig())
	blocks, fakes := allBlocks()
	c := node.NewCircle(3)
	inst := MustInstance(c, pools, blocks)
	old := inst.Drawable()
	require.Equal(t, scenery.RendererMarkup, old.Renderer())

	require.NoError(t, inst.SetHints(scenery.RendererBuffer))
	d := inst.Drawable()
	assert.Equal(t, scenery.RendererBuffer, d.Renderer())
	assert.True(t, d.IsPaintDirty(), "new variant starts fully dirty")
	assert.Nil(t, old.Node(), "old drawable released")
	assert.False(t, fakes[scenery.RendererMarkup].Contains(old))
	assert.True(t, fakes[scenery.RendererBuffer].IsPending(d))
	assert.Equal(t, 1, pools.Stats(node.KindCircle, scenery.RendererMarkup).Free)

	// Same variant: no swap.
	require.NoError(t, inst.SetHints(scenery.RendererBuffer))
	assert.Same(t, d, inst.Drawable())

	// Impossible hints leave the instance as it was.
	err := inst.SetHints(scenery.Renderer(0x10))
	assert.ErrorIs(t, err, ErrUnsupportedRenderer)
	assert.Same(t, d, inst.Drawable())
	assert.Equal(t, scenery.RendererBuffer, inst.Hints())
}

func TestCapabilityChangeReselects(t *testing.T) {
	pools := NewPools(DefaultConfig())
	blocks, _ := allBlocks()
	r := node.NewRectangle(0, 0, 4, 4)
	inst := MustInstance(r, pools, blocks, WithHints(scenery.RendererBuffer|scenery.RendererElement))
	require.Equal(t, scenery.RendererElement, inst.Renderer())

	require.NoError(t, inst.SetHints(scenery.RendererBuffer))
	r.SetStroke(scenery.Black)
	assert.Nil(t, inst.Drawable(), "stroked rectangle fits no buffer-only hint")
	assert.ErrorIs(t, inst.Err(), ErrUnsupportedRenderer)

	r.SetStroke(nil)
	require.NoError(t, inst.Err())
	require.NotNil(t, inst.Drawable())
	assert.Equal(t, scenery.RendererBuffer, inst.Renderer())
	assert.Equal(t, 2, r.ObserverCount(), "instance and one drawable")
}

func TestNodeChangesMarkDrawable(t *testing.T) {
	pools := NewPools(DefaultConfig())
	blocks, fakes := allBlocks()
	mb := fakes[scenery.RendererMarkup]
	c := node.NewCircle(5)
	inst := MustInstance(c, pools, blocks)
	d := inst.Drawable().(*fakeDrawable)
	mb.Update()
	require.False(t, d.IsPaintDirty())
	scheduled := mb.scheduled

	c.SetRadius(6)
	assert.Equal(t, DirtyShape|DirtyBounds, d.Flags())
	c.SetFill(scenery.Blue)
	assert.Equal(t, DirtyShape|DirtyBounds|DirtyFill, d.Flags())
	assert.Equal(t, scheduled+1, mb.scheduled, "block scheduled once per pass")

	mb.Update()
	assert.False(t, d.IsPaintDirty(), "every bit clear after update")
	assert.Equal(t, FlagsNone, d.Flags())
	assert.Equal(t, 6.0, d.res.radius)
	assert.Equal(t, scenery.Blue, d.res.fill)
}

func TestTransformDirty(t *testing.T) {
	pools := NewPools(DefaultConfig())
	blocks, fakes := allBlocks()
	inst := MustInstance(node.NewCircle(5), pools, blocks)
	d := inst.Drawable().(*fakeDrawable)
	fakes[scenery.RendererMarkup].Update()

	inst.SetTransform(scenery.Identity())
	assert.False(t, d.IsTransformDirty(), "unchanged transform")
	inst.SetTransform(scenery.Translate(1, 2))
	assert.True(t, d.IsTransformDirty())
	assert.False(t, d.IsPaintDirty())
	fakes[scenery.RendererMarkup].Update()
	assert.Equal(t, scenery.Translate(1, 2), d.res.matrix)
}

func TestPaintObserverRebinding(t *testing.T) {
	pools := NewPools(DefaultConfig())
	c := node.NewCircle(5)
	first := scenery.NewColorProperty(scenery.Red)
	second := scenery.NewColorProperty(scenery.Green)
	c.SetFill(first)
	inst := MustInstance(c, pools, nil)
	d := inst.Drawable().(*fakeDrawable)
	d.Update()

	first.Set(scenery.Blue)
	assert.True(t, d.IsDirty(DirtyFill))
	d.Update()

	c.SetFill(second)
	d.Update()
	first.Set(scenery.Yellow)
	assert.False(t, d.IsPaintDirty(), "old source unsubscribed")
	second.Set(scenery.White)
	assert.True(t, d.IsDirty(DirtyFill))
	assert.Equal(t, 1, second.ListenerCount())

	inst.Dispose()
	assert.Equal(t, 0, first.ListenerCount()+second.ListenerCount())
}

func TestFlushSkipsRemovedDrawables(t *testing.T) {
	pools := NewPools(DefaultConfig())
	blocks, fakes := allBlocks()
	mb := fakes[scenery.RendererMarkup]
	i1 := MustInstance(node.NewCircle(1), pools, blocks)
	i2 := MustInstance(node.NewCircle(2), pools, blocks)
	d2 := i2.Drawable().(*fakeDrawable)
	assert.Equal(t, 2, mb.PendingCount())

	i2.Dispose()
	assert.True(t, mb.Update())
	assert.Zero(t, d2.updates)
	assert.False(t, mb.Update(), "nothing pending")
	assert.Equal(t, []Drawable{i1.Drawable()}, mb.Drawables())
}
