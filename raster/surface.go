// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/internal/cache"
)

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithBackground sets the color Clear fills with. The default is
// transparent.
func WithBackground(c scenery.RGBA) SurfaceOption {
	return func(s *Surface) { s.background = c }
}

// WithInterpolator sets the resampling used for images and text drawn
// under a non-translation transform. The default is ApproxBiLinear.
func WithInterpolator(i xdraw.Interpolator) SurfaceOption {
	return func(s *Surface) { s.interp = i }
}

// Surface is an RGBA pixel buffer with path, image and text drawing.
// It is not safe for concurrent use.
type Surface struct {
	img        *image.RGBA
	rast       vector.Rasterizer
	background scenery.RGBA
	interp     xdraw.Interpolator
	faces      *cache.Cache[float64, font.Face]
}

// NewSurface creates a cleared surface of the given size.
func NewSurface(width, height int, opts ...SurfaceOption) *Surface {
	s := &Surface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		interp: xdraw.ApproxBiLinear,
		faces:  cache.New[float64, font.Face](16),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Clear()
	return s
}

// Image returns the pixel buffer.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the pixel rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// Clear fills the surface with the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) scenery.RGBA {
	return scenery.FromColor(s.img.At(x, y))
}

// Fill composites src over the union of the device-space polygons.
func (s *Surface) Fill(polys []Polygon, src image.Image) {
	if len(polys) == 0 || src == nil {
		return
	}
	b := s.img.Bounds()
	s.rast.Reset(b.Dx(), b.Dy())
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		p = p.normalized()
		s.rast.MoveTo(float32(p[0].X), float32(p[0].Y))
		for _, pt := range p[1:] {
			s.rast.LineTo(float32(pt.X), float32(pt.Y))
		}
		s.rast.ClosePath()
	}
	s.rast.Draw(s.img, b, src, b.Min)
}

// DrawImage composites img, whose top-left corner maps through m, with the
// given opacity.
func (s *Surface) DrawImage(img image.Image, m scenery.Matrix, opacity float64) {
	if img == nil || opacity <= 0 {
		return
	}
	sr := img.Bounds()
	m = m.Multiply(scenery.Translate(float64(-sr.Min.X), float64(-sr.Min.Y)))
	var opts *xdraw.Options
	if opacity < 1 {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha16{A: uint16(opacity * 0xffff)})}
	}
	if m.IsTranslation() && m.C == float64(int(m.C)) && m.F == float64(int(m.F)) && opts == nil {
		draw.Draw(s.img, sr.Add(image.Pt(int(m.C), int(m.F))), img, sr.Min, draw.Over)
		return
	}
	s.interp.Transform(s.img, aff3(m), img, sr, xdraw.Over, opts)
}

func aff3(m scenery.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

var goRegular *opentype.Font

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic("raster: parse Go Regular: " + err.Error())
	}
	goRegular = f
}

// face returns the Go Regular face at size pixels.
func (s *Surface) face(size float64) font.Face {
	return s.faces.GetOrCreate(size, func() font.Face {
		f, err := opentype.NewFace(goRegular, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			scenery.Logger().Warn("raster: create face", "size", size, "err", err)
			return nil
		}
		return f
	})
}

// shader adapts a gradient or pattern to an image.Image in device space.
type shader struct {
	paint interface {
		ColorAt(x, y float64) scenery.RGBA
	}
	inv scenery.Matrix
}

var infinite = image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)

func (sh *shader) ColorModel() color.Model { return color.RGBA64Model }

func (sh *shader) Bounds() image.Rectangle { return infinite }

func (sh *shader) At(x, y int) color.Color {
	p := sh.inv.TransformPoint(scenery.Pt(float64(x)+0.5, float64(y)+0.5))
	return sh.paint.ColorAt(p.X, p.Y)
}

// source returns the image to composite for paint p whose local space maps
// to device space through m, or nil if nothing is painted.
func source(p scenery.Paint, m scenery.Matrix) image.Image {
	switch v := scenery.Unwrap(p).(type) {
	case scenery.RGBA:
		if v.IsTransparent() {
			return nil
		}
		return image.NewUniform(v)
	case *scenery.LinearGradient:
		return &shader{paint: v, inv: m.Invert()}
	case *scenery.RadialGradient:
		return &shader{paint: v, inv: m.Invert()}
	case *scenery.Pattern:
		return &shader{paint: v, inv: m.Invert()}
	default:
		return nil
	}
}

// DrawText draws a single line of text whose baseline starts at the local
// origin. Glyphs are rasterized at the device scale of m and then mapped
// through m, so rotated text stays sharp enough for UI sizes.
func (s *Surface) DrawText(text string, size float64, fill scenery.Paint, m scenery.Matrix) {
	k := m.ScaleFactor()
	if text == "" || size <= 0 || k <= 0 {
		return
	}
	face := s.face(size * k)
	if face == nil {
		return
	}
	bounds, _ := font.BoundString(face, text)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return
	}
	// Glyph pixels relate to local coordinates by a scale of k and the
	// offset of the ink box.
	localToGlyph := scenery.Translate(float64(-minX), float64(-minY)).Multiply(scenery.Scale(k, k))
	src := source(fill, localToGlyph)
	if src == nil {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  src,
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(text)
	s.DrawImage(glyphs, m.Multiply(localToGlyph.Invert()), 1)
}
