// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"strings"

	"github.com/gogpu/scenery"
)

// transformAttr formats m as an SVG transform, or "" for the identity.
func transformAttr(m scenery.Matrix) string {
	switch {
	case m.IsIdentity():
		return ""
	case m.IsTranslation():
		return "translate(" + num(m.C) + " " + num(m.F) + ")"
	}
	return "matrix(" + strings.Join([]string{
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F),
	}, " ") + ")"
}

// hexRGB formats the color channels of c, ignoring alpha.
func hexRGB(c scenery.RGBA) string {
	c.A = 1
	return c.CSS()
}

func dashArray(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, v := range dash {
		parts[i] = num(v)
	}
	return strings.Join(parts, " ")
}
