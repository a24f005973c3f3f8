// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/buffer"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/element"
	"github.com/gogpu/scenery/markup"
	"github.com/gogpu/scenery/node"
	"github.com/gogpu/scenery/raster"
)

var variants = [...]scenery.Renderer{
	scenery.RendererRaster,
	scenery.RendererMarkup,
	scenery.RendererElement,
	scenery.RendererBuffer,
}

// scene is the demo content: every node is mounted once per variant that
// can show it.
type scene struct {
	accent *scenery.ColorProperty
	card   *node.Rectangle
	badge  *node.Rectangle
	dot    *node.Circle
	rule   *node.Line
	title  *node.Text
	icon   *node.Image

	placed []placement
}

type placement struct {
	n node.Node
	m scenery.Matrix
}

func newScene() *scene {
	s := &scene{accent: scenery.NewColorProperty(scenery.Hex("#3366ff"))}

	s.card = node.NewRectangle(0, 0, 200, 120)
	s.card.SetCornerRadius(8)
	s.card.SetFill(scenery.NewLinearGradient(0, 0, 200, 0).
		AddColorStop(0, scenery.White).
		AddColorStop(1, s.accent))
	s.card.SetStroke(scenery.Hex("#222"))

	s.badge = node.NewRectangle(0, 0, 40, 20)
	s.badge.SetFill(s.accent)

	s.dot = node.NewCircle(12)
	s.dot.SetFill(scenery.Hex("#ff6633"))

	s.rule = node.NewLine(0, 0, 180, 0)
	s.rule.SetStroke(s.accent)
	s.rule.SetLineWidth(2)
	s.rule.SetLineDash([]float64{6, 4})

	s.title = node.NewText("scenery")
	s.title.SetFont(node.Font{Family: "sans-serif", Size: 18, Weight: 700})

	s.icon = node.NewImage(checkerboard(16))

	s.placed = []placement{
		{s.card, scenery.Translate(20, 20)},
		{s.badge, scenery.Translate(170, 30)},
		{s.dot, scenery.Translate(60, 90)},
		{s.rule, scenery.Translate(30, 120)},
		{s.title, scenery.Translate(30, 60)},
		{s.icon, scenery.Translate(250, 30)},
	}
	return s
}

func checkerboard(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
			if (x/4+y/4)%2 == 0 {
				c = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// animate applies frame i's changes: only paint for the accent, only the
// matrix for the badge, geometry for the dot.
func (s *scene) animate(i int, badges []*drawable.Instance) {
	t := float64(i+1) / 4
	s.accent.Set(scenery.Hex("#3366ff").Lerp(scenery.Hex("#33cc66"), t))
	s.dot.SetRadius(12 + float64(i)*2)
	for _, inst := range badges {
		inst.SetTransform(scenery.Translate(170, 30+float64(i)*4))
	}
}

type blocks struct {
	raster  *raster.Block
	markup  *markup.Block
	element *element.Block
	buffer  *buffer.Block
	target  *buffer.RecordingTarget
}

func newBlocks(w, h int) *blocks {
	target := &buffer.RecordingTarget{}
	return &blocks{
		raster:  raster.NewBlock(w, h, raster.WithBackground(scenery.White)),
		markup:  markup.NewBlock(float64(w), float64(h)),
		element: element.NewBlock(float64(w), float64(h)),
		buffer:  buffer.NewBlock(buffer.WithTarget(target)),
		target:  target,
	}
}

func (b *blocks) set() drawable.Blocks {
	return drawable.Blocks{
		scenery.RendererRaster:  b.raster,
		scenery.RendererMarkup:  b.markup,
		scenery.RendererElement: b.element,
		scenery.RendererBuffer:  b.buffer,
	}
}

func (b *blocks) update() {
	b.raster.Update()
	b.markup.Update()
	b.element.Update()
	b.buffer.Draw()
}

func run(ctx context.Context, logger *log.Logger, cfg drawable.Config, opts options) error {
	pools := drawable.NewPools(cfg)
	blk := newBlocks(opts.width, opts.height)
	s := newScene()

	var (
		instances []*drawable.Instance
		badges    []*drawable.Instance
	)
	defer func() {
		for _, inst := range instances {
			inst.Dispose()
		}
	}()
	for _, r := range variants {
		for _, p := range s.placed {
			inst, err := drawable.NewInstance(p.n, pools, blk.set(),
				drawable.WithHints(r), drawable.WithTransform(p.m))
			if errors.Is(err, drawable.ErrUnsupportedRenderer) {
				logger.Debug("skipped", "kind", p.n.Kind(), "renderer", r)
				continue
			}
			if err != nil {
				return err
			}
			instances = append(instances, inst)
			if p.n == node.Node(s.badge) {
				badges = append(badges, inst)
			}
		}
	}
	logger.Info("mounted", "instances", len(instances))

	blk.update()
	for i := range opts.frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		writes := blk.markup.Document().Writes()
		counters := blk.element.Counters()
		s.animate(i, badges)
		blk.update()
		logger.Info("frame",
			"n", i,
			"raster.repaints", blk.raster.Repaints(),
			"markup.writes", blk.markup.Document().Writes()-writes,
			"element.writes", blk.element.Counters().Writes-counters.Writes,
			"element.reflows", blk.element.Counters().Reflows-counters.Reflows,
			"buffer.uploads", blk.buffer.Stats().Uploads,
		)
	}

	return blk.write(logger, opts.out)
}

func (b *blocks) write(logger *log.Logger, dir string) error {
	if err := writeFile(filepath.Join(dir, "scene.png"), func(f *os.File) error {
		return png.Encode(f, b.raster.Surface().Image())
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "scene.svg"), func(f *os.File) error {
		_, err := b.markup.WriteTo(f)
		return err
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "scene.html"), func(f *os.File) error {
		return b.element.WriteHTML(f)
	}); err != nil {
		return err
	}
	st := b.buffer.Stats()
	logger.Info("buffer",
		"vertices", b.buffer.VertexCount(),
		"uploads", st.Uploads,
		"draws", st.Draws,
		"ranges", len(b.target.LastDraw()),
	)
	logger.Info("written", "dir", dir)
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
