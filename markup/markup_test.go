// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/node"
)

func mount(t *testing.T, pools *drawable.Pools, blk *Block, n node.Node, m scenery.Matrix) *drawable.Instance {
	t.Helper()
	inst, err := drawable.NewInstance(n, pools, drawable.Blocks{scenery.RendererMarkup: blk},
		drawable.WithTransform(m))
	require.NoError(t, err)
	require.Equal(t, scenery.RendererMarkup, inst.Renderer())
	return inst
}

func elementOf(t *testing.T, inst *drawable.Instance) *Element {
	t.Helper()
	d, ok := inst.Drawable().(*Drawable)
	require.True(t, ok)
	require.NotNil(t, d.Element())
	return d.Element()
}

func TestStrokeRestoredIsRewritten(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(100, 40)
	txt := node.NewText("label")
	txt.SetStroke(scenery.Black)
	inst := mount(t, pools, blk, txt, scenery.Identity())
	require.True(t, blk.Update())
	el := elementOf(t, inst)

	v, ok := el.Attr("stroke")
	require.True(t, ok)
	assert.Equal(t, "#000000", v)
	writes := el.Writes()

	txt.SetStroke(nil)
	require.True(t, blk.Update())
	_, ok = el.Attr("stroke")
	assert.False(t, ok, "stroke removed")
	assert.Equal(t, writes+1, el.Writes())

	txt.SetStroke(scenery.Black)
	require.True(t, blk.Update())
	v, ok = el.Attr("stroke")
	require.True(t, ok, "stroke must be written again")
	assert.Equal(t, "#000000", v)
	assert.Equal(t, writes+2, el.Writes())
}

func TestUnchangedValuesAreNotWritten(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(100, 100)
	r := node.NewRectangle(1, 2, 30, 40)
	inst := mount(t, pools, blk, r, scenery.Identity())
	blk.Update()
	el := elementOf(t, inst)
	writes := el.Writes()

	r.SetRect(5, 5, 5, 5)
	r.SetRect(1, 2, 30, 40)
	r.SetFill(scenery.Red)
	r.SetFill(scenery.Black)
	require.True(t, blk.Update(), "drawable was dirty")
	assert.Equal(t, writes, el.Writes(), "values match the shadows")

	r.SetRect(1, 2, 31, 40)
	blk.Update()
	assert.Equal(t, writes+1, el.Writes(), "only width changed")
	w, _ := el.Attr("width")
	assert.Equal(t, "31", w)
}

func TestElementAttributes(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(100, 100)

	r := node.NewRectangle(0, 0, 10, 20)
	r.SetCornerRadius(2)
	r.SetFill(scenery.NewRGBA(1, 0, 0, 0.5))
	r.SetStroke(scenery.Blue)
	r.SetLineWidth(3)
	r.SetLineDash([]float64{4, 2})
	ir := mount(t, pools, blk, r, scenery.Translate(5, 6))

	l := node.NewLine(0, 0, 10, 10)
	il := mount(t, pools, blk, l, scenery.Scale(2, 2))

	txt := node.NewText("שלום")
	txt.SetFont(node.Font{Family: "serif", Size: 16, Weight: 700, Style: node.FontItalic})
	it := mount(t, pools, blk, txt, scenery.Identity())
	blk.Update()

	rel := elementOf(t, ir)
	for name, want := range map[string]string{
		"x": "0", "y": "0", "width": "10", "height": "20", "rx": "2",
		"fill": "rgba(255,0,0,0.5)", "stroke": "#0000ff", "stroke-width": "3",
		"stroke-dasharray": "4 2", "transform": "translate(5 6)",
	} {
		got, ok := rel.Attr(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	lel := elementOf(t, il)
	assert.Equal(t, "line", lel.Tag())
	tr, _ := lel.Attr("transform")
	assert.Equal(t, "matrix(2 0 0 2 0 0)", tr)
	_, hasFill := lel.Attr("fill")
	assert.False(t, hasFill, "lines do not track fill")

	tel := elementOf(t, it)
	assert.Equal(t, "שלום", tel.Text())
	for name, want := range map[string]string{
		"direction": "rtl", "font-family": "serif", "font-size": "16",
		"font-weight": "700", "font-style": "italic", "fill": "#000000",
	} {
		got, _ := tel.Attr(name)
		assert.Equal(t, want, got, name)
	}
	_, identity := tel.Attr("transform")
	assert.False(t, identity)

	order := blk.Document().Content().Children()
	require.Len(t, order, 3)
	assert.Same(t, rel, order[0])
	assert.Same(t, lel, order[1])
	assert.Same(t, tel, order[2])
}

func render(t *testing.T, build func() node.Node, m scenery.Matrix) string {
	t.Helper()
	blk := NewBlock(48, 48)
	mount(t, drawable.NewPools(drawable.DefaultConfig()), blk, build(), m)
	blk.Update()
	return blk.Document().String()
}

func TestPoolReuseMatchesFreshRender(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(48, 48)

	x := node.NewCircle(20)
	x.SetFill(scenery.NewLinearGradient(0, 0, 10, 0).
		AddColorStop(0, scenery.Red).
		AddColorStop(1, scenery.Blue))
	x.SetStroke(scenery.Green)
	x.SetLineWidth(4)
	x.SetLineDash([]float64{3, 3})
	ix := mount(t, pools, blk, x, scenery.Rotate(0.5))
	blk.Update()
	old := ix.Drawable()
	oldEl := elementOf(t, ix)
	x.SetRadius(3)
	ix.Dispose()
	assert.Equal(t, 0, blk.Defs().Len(), "gradient released with its last user")

	buildY := func() node.Node {
		y := node.NewCircle(8)
		y.SetFill(scenery.Red)
		return y
	}
	iy := mount(t, pools, blk, buildY(), scenery.Translate(10, 12))
	require.Same(t, old, iy.Drawable())
	assert.Same(t, oldEl, elementOf(t, iy), "element retained")
	blk.Update()

	assert.Equal(t, render(t, buildY, scenery.Translate(10, 12)), blk.Document().String())
}

func TestReleaseWithoutRetainDropsElement(t *testing.T) {
	cfg := drawable.DefaultConfig()
	cfg.Markup.RetainResources = false
	pools := drawable.NewPools(cfg)
	blk := NewBlock(10, 10)
	inst := mount(t, pools, blk, node.NewCircle(2), scenery.Identity())
	blk.Update()
	d := inst.Drawable().(*Drawable)
	inst.Dispose()
	assert.Nil(t, d.Element())
	assert.Empty(t, blk.Document().Content().Children())
}

func TestConvergence(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(48, 48)
	r := node.NewRectangle(2, 2, 10, 10)
	inst := mount(t, pools, blk, r, scenery.Identity())
	blk.Update()

	r.SetFill(scenery.Red)
	r.SetRect(4, 4, 30, 20)
	blk.Update()
	r.SetStroke(scenery.Blue)
	r.SetLineCap(node.CapRound)
	blk.Update()
	r.SetStroke(nil)
	r.SetCornerRadius(4)
	r.SetFill(scenery.Green)
	r.SetLineCap(node.CapButt)
	inst.SetTransform(scenery.Translate(3, 1))
	blk.Update()

	want := render(t, func() node.Node {
		f := node.NewRectangle(4, 4, 30, 20)
		f.SetCornerRadius(4)
		f.SetFill(scenery.Green)
		return f
	}, scenery.Translate(3, 1))
	assert.Equal(t, want, blk.Document().String())
}

func TestSharedGradientDefs(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(100, 100)
	stop := scenery.NewColorProperty(scenery.Red)
	g := scenery.NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, stop).
		AddColorStop(1, scenery.Blue)

	a := node.NewRectangle(0, 0, 10, 10)
	a.SetFill(g)
	b := node.NewCircle(5)
	b.SetStroke(g)
	ia := mount(t, pools, blk, a, scenery.Identity())
	ib := mount(t, pools, blk, b, scenery.Identity())
	blk.Update()

	require.Equal(t, 1, blk.Defs().Len())
	assert.Equal(t, 2, blk.Defs().Refs(g))
	fill, _ := elementOf(t, ia).Attr("fill")
	stroke, _ := elementOf(t, ib).Attr("stroke")
	assert.Equal(t, "url(#g1)", fill)
	assert.Equal(t, fill, stroke)

	fillWrites := elementOf(t, ia).Writes()
	stop.Set(scenery.Green)
	require.True(t, blk.Update())
	assert.Equal(t, fillWrites, elementOf(t, ia).Writes(), "reference unchanged")
	assert.Contains(t, blk.Document().String(), `stop-color="#00ff00"`)

	a.SetFill(scenery.White)
	blk.Update()
	assert.Equal(t, 1, blk.Defs().Refs(g))

	ib.Dispose()
	ia.Dispose()
	assert.Equal(t, 0, blk.Defs().Len())
	assert.NotContains(t, blk.Document().String(), "linearGradient")
}

func TestPatternAndImage(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(64, 64)
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))

	r := node.NewRectangle(0, 0, 30, 30)
	r.SetFill(scenery.NewPattern(img))
	mount(t, pools, blk, r, scenery.Identity())

	in := node.NewImage(img)
	in.SetOpacity(0.25)
	ii := mount(t, pools, blk, in, scenery.Identity())
	blk.Update()

	el := elementOf(t, ii)
	href, _ := el.Attr("href")
	assert.True(t, strings.HasPrefix(href, "data:image/png;base64,"))
	w, _ := el.Attr("width")
	h, _ := el.Attr("height")
	op, _ := el.Attr("opacity")
	assert.Equal(t, []string{"3", "2", "0.25"}, []string{w, h, op})

	out := blk.Document().String()
	assert.Contains(t, out, `<pattern`)
	assert.Contains(t, out, `fill="url(#p1)"`)
}

func TestDisposeBeforeUpdateWritesNothing(t *testing.T) {
	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(10, 10)
	inst := mount(t, pools, blk, node.NewCircle(4), scenery.Identity())
	before := blk.Document().Writes()
	inst.Dispose()
	assert.False(t, blk.Update())
	assert.Empty(t, blk.Document().Content().Children())
	assert.LessOrEqual(t, blk.Document().Writes()-before, 2, "only membership changes")
}
