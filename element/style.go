// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package element

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/scenery"
)

// px formats a length in CSS pixels with at most three decimals.
func px(v float64) string {
	return number(v) + "px"
}

func number(v float64) string {
	s := strconv.FormatFloat(math.Round(v*1e3)/1e3, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// cssTransform formats m as a CSS transform, or "" for the identity.
func cssTransform(m scenery.Matrix) string {
	if m.IsIdentity() {
		return ""
	}
	if m.IsTranslation() {
		return "translate(" + px(m.C) + ", " + px(m.F) + ")"
	}
	return "matrix(" + strings.Join([]string{
		number(m.A), number(m.D), number(m.B), number(m.E), number(m.C), number(m.F),
	}, ", ") + ")"
}

// cssColor formats a flat paint, or "" when p paints nothing.
func cssColor(p scenery.Paint) string {
	c, ok := scenery.SolidColor(p)
	if !ok || c.IsTransparent() {
		return ""
	}
	return c.CSS()
}
