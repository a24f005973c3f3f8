// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drawable implements the lifecycle and dirty-state synchronization
// shared by every renderer variant.
//
// A [Drawable] is one backend-specific rendering of one node occurrence. It
// embeds [Base], which carries a [DirtyState] (aggregate paint bit plus one
// bit per attribute) and a [TransformState] tracked independently. Node
// setters and paint observers mark bits; the owning [Block] is told about the
// drawable only on the clean-to-dirty edge. During an update pass each
// pending drawable reads the node's current values, writes its backend
// resource and clears every bit.
//
// Bits are level-triggered: marking twice before an update is the same as
// marking once, and no intermediate values are kept.
//
// # Variants
//
// Backend packages register a factory per (node kind, renderer) from init:
//
//	func init() {
//		drawable.Register(node.KindCircle, scenery.RendererRaster, newCircle)
//	}
//
// An [Instance] selects the variant from the node's capability mask and the
// ancestor hints, acquiring drawables from [Pools]. Released drawables are
// reset to the fully dirty state, so a reused drawable cannot be told apart
// from a new one.
//
// # Assertions
//
// Marking a bit the variant does not track is a programming error. Builds
// with the scenerydebug tag panic; other builds log a warning and drop the
// unknown bits.
package drawable
