// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"fmt"

	"github.com/gogpu/scenery"
)

// SelectRenderer picks one variant from the node's capabilities restricted
// by the ancestor hints. Hints of RendererNone mean no preference. The
// first match in scenery.RendererPriority wins.
func SelectRenderer(capabilities, hints scenery.Renderer) (scenery.Renderer, error) {
	candidates := capabilities
	if hints != scenery.RendererNone {
		candidates &= hints
	}
	if r := candidates.First(); r != scenery.RendererNone {
		return r, nil
	}
	return scenery.RendererNone, fmt.Errorf("%w: capabilities %v, hints %v",
		ErrUnsupportedRenderer, capabilities, hints)
}
