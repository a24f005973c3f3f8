// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/scenery/node"
)

func TestDirtyStateEdgeNotification(t *testing.T) {
	calls := 0
	s := DirtyState{tracked: DirtyFill | DirtyStroke, onDirty: func() { calls++ }}

	s.MarkDirtyFill()
	s.MarkDirtyFill()
	s.MarkDirtyStroke()
	s.MarkPaintDirty()
	assert.Equal(t, 1, calls, "only the clean-to-dirty edge notifies")
	assert.True(t, s.IsPaintDirty())
	assert.Equal(t, DirtyFill|DirtyStroke, s.Flags())

	s.SetToCleanState()
	assert.False(t, s.IsPaintDirty())
	assert.Equal(t, FlagsNone, s.Flags())

	s.MarkDirtyStroke()
	assert.Equal(t, 2, calls)
}

func TestAttributeBitImpliesAggregate(t *testing.T) {
	for _, f := range []Flag{DirtyShape, DirtyFill, DirtyStroke, DirtyLineWidth,
		DirtyLineStyle, DirtyText, DirtyFont, DirtyImage, DirtyBounds} {
		s := DirtyState{tracked: FlagsAll}
		s.MarkDirty(f)
		assert.True(t, s.IsPaintDirty(), "%v without aggregate", f)
		assert.True(t, s.IsDirty(f))
	}
}

func TestTransformIndependentOfPaint(t *testing.T) {
	calls := 0
	var b Base
	b.DirtyState = DirtyState{tracked: DirtyFill}
	b.TransformState.onDirty = func() { calls++ }

	b.MarkTransformDirty()
	b.MarkTransformDirty()
	assert.Equal(t, 1, calls)
	assert.False(t, b.IsPaintDirty())

	b.SetToCleanState()
	assert.True(t, b.IsTransformDirty(), "paint clean must not clear transform")
	b.CleanTransform()
	assert.False(t, b.IsTransformDirty())
}

func TestResetIsFullyDirty(t *testing.T) {
	var b Base
	b.tracked = DirtyShape | DirtyFill
	b.reset()
	assert.True(t, b.IsPaintDirty())
	assert.True(t, b.IsTransformDirty())
	assert.Equal(t, DirtyShape|DirtyFill, b.Flags())
}

func TestShadowRewritesAfterRemoval(t *testing.T) {
	var sh Shadow[string]
	var written []string
	write := func(v string) { written = append(written, v) }

	assert.True(t, sh.Apply("black", write))
	assert.False(t, sh.Apply("black", write))
	assert.True(t, sh.Apply("none", write))
	assert.True(t, sh.Apply("black", write), "restored value must be written again")
	assert.Equal(t, []string{"black", "none", "black"}, written)

	sh.Invalidate()
	_, valid := sh.Get()
	assert.False(t, valid)
	assert.True(t, sh.Apply("black", write), "invalid shadow always writes")
}

func TestFlagsFor(t *testing.T) {
	assert.Equal(t, DirtyShape|DirtyBounds, FlagsFor(node.AttrShape|node.AttrBounds))
	assert.Equal(t, FlagsNone, FlagsFor(node.AttrRenderers))
	assert.Equal(t, "fill|stroke", (DirtyFill | DirtyStroke).String())
	assert.Equal(t, "none", FlagsNone.String())
}
