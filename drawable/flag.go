// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"strings"

	"github.com/gogpu/scenery/node"
)

// Flag is a set of attribute-specific dirty bits.
type Flag uint16

const (
	DirtyShape Flag = 1 << iota
	DirtyFill
	DirtyStroke
	DirtyLineWidth
	DirtyLineStyle
	DirtyText
	DirtyFont
	DirtyImage
	DirtyBounds

	// FlagsNone is the empty set.
	FlagsNone Flag = 0
)

// Paint-related sets used by the shape variants.
const (
	FlagsShapePaint = DirtyFill | DirtyStroke | DirtyLineWidth | DirtyLineStyle
	FlagsAll        = DirtyShape | FlagsShapePaint | DirtyText | DirtyFont | DirtyImage | DirtyBounds
)

var flagNames = [...]string{
	"shape", "fill", "stroke", "lineWidth", "lineStyle",
	"text", "font", "image", "bounds",
}

// String returns the set bits joined by '|'.
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

var attrFlags = []struct {
	attr node.Attribute
	flag Flag
}{
	{node.AttrShape, DirtyShape},
	{node.AttrFill, DirtyFill},
	{node.AttrStroke, DirtyStroke},
	{node.AttrLineWidth, DirtyLineWidth},
	{node.AttrLineStyle, DirtyLineStyle},
	{node.AttrText, DirtyText},
	{node.AttrFont, DirtyFont},
	{node.AttrImage, DirtyImage},
	{node.AttrBounds, DirtyBounds},
}

// FlagsFor maps node change categories to dirty bits. AttrRenderers has no
// dirty bit; it is handled by the instance.
func FlagsFor(a node.Attribute) Flag {
	var f Flag
	for _, m := range attrFlags {
		if a&m.attr != 0 {
			f |= m.flag
		}
	}
	return f
}
