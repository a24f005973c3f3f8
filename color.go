// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and not premultiplied.
//
// RGBA is the flat (non-observable) paint source: a fill or stroke set to an
// RGBA never notifies, it only changes when the node's paint is replaced.
type RGBA struct {
	R, G, B, A float64
}

func (RGBA) isPaint()       {}
func (RGBA) isColorSource() {}

// RGBA implements color.Color with alpha-premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.To8()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	r, g, b, a := c.To8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// To8 returns the 8-bit straight-alpha components.
func (c RGBA) To8() (r, g, b, a uint8) {
	return uint8(clamp255(math.Round(c.R * 255))),
		uint8(clamp255(math.Round(c.G * 255))),
		uint8(clamp255(math.Round(c.B * 255))),
		uint8(clamp255(math.Round(c.A * 255)))
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// CSS returns the color in the form markup and element backends write:
// "#rrggbb" when opaque, "rgba(r,g,b,a)" otherwise. The alpha is rounded
// to three decimals so equal colors always format identically.
func (c RGBA) CSS() string {
	r, g, b, a := c.To8()
	if a == 255 {
		const digits = "0123456789abcdef"
		buf := []byte{'#', 0, 0, 0, 0, 0, 0}
		for i, v := range [3]uint8{r, g, b} {
			buf[1+i*2] = digits[v>>4]
			buf[2+i*2] = digits[v&0x0f]
		}
		return string(buf)
	}
	alpha := math.Round(c.A*1000) / 1000
	return "rgba(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," +
		strconv.Itoa(int(b)) + "," + strconv.FormatFloat(alpha, 'f', -1, 64) + ")"
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = NewRGBA(0, 0, 0, 0)
)
