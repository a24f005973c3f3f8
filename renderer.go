// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"fmt"
	"strings"
)

// Renderer is a bitmask of backend variants. A node's capabilities, an
// ancestor's rendering hints and a drawable's identity are all Renderer
// values; a drawable always has exactly one bit set.
type Renderer uint8

const (
	// RendererRaster paints pixels immediately; every frame overwrites.
	RendererRaster Renderer = 1 << iota

	// RendererMarkup keeps one retained vector element per drawable.
	RendererMarkup

	// RendererElement keeps one retained platform UI element per drawable.
	RendererElement

	// RendererBuffer writes vertex and color data into block-owned GPU buffers.
	RendererBuffer

	// RendererNone is the empty mask.
	RendererNone Renderer = 0

	// RendererAll is every variant.
	RendererAll = RendererRaster | RendererMarkup | RendererElement | RendererBuffer
)

// RendererPriority is the order in which SelectRenderer-style callers pick a
// variant out of a mask with several bits set.
var RendererPriority = [...]Renderer{RendererMarkup, RendererRaster, RendererElement, RendererBuffer}

var rendererNames = map[Renderer]string{
	RendererRaster:  "raster",
	RendererMarkup:  "markup",
	RendererElement: "element",
	RendererBuffer:  "buffer",
}

// Has reports whether every bit of other is set in r.
func (r Renderer) Has(other Renderer) bool {
	return other != 0 && r&other == other
}

// Single reports whether exactly one bit is set.
func (r Renderer) Single() bool {
	return r != 0 && r&(r-1) == 0
}

// First returns the highest-priority single variant in the mask, or
// RendererNone.
func (r Renderer) First() Renderer {
	for _, v := range RendererPriority {
		if r&v != 0 {
			return v
		}
	}
	return RendererNone
}

// String returns "raster", "markup|buffer", or "none".
func (r Renderer) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for _, v := range RendererPriority {
		if r&v != 0 {
			parts = append(parts, rendererNames[v])
		}
	}
	if rest := r &^ RendererAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseRenderer parses a mask written as names joined by '|' or ','.
// "all" and "none" are accepted.
func ParseRenderer(s string) (Renderer, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none":
		return RendererNone, nil
	case "all":
		return RendererAll, nil
	}
	var r Renderer
	for _, part := range strings.FieldsFunc(s, func(c rune) bool { return c == '|' || c == ',' }) {
		part = strings.TrimSpace(part)
		found := false
		for v, name := range rendererNames {
			if name == part {
				r |= v
				found = true
				break
			}
		}
		if !found {
			return RendererNone, fmt.Errorf("scenery: unknown renderer %q", part)
		}
	}
	return r, nil
}
