// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scenery is the retained-mode rendering core of a scene graph.
//
// # Overview
//
// A mutable tree of visual nodes (see package node) is displayed through
// drawables (see package drawable). Each drawable renders one occurrence of
// one node on one backend and is kept in sync with the node through a
// level-triggered dirty-flag protocol:
//
//	node setter -> drawable.MarkDirtyX -> block schedules -> Update -> clean
//
// Four backends are provided:
//   - raster: immediate-mode pixels, repainted from live state (package raster)
//   - markup: retained SVG elements with per-attribute diffing (package markup)
//   - element: platform UI elements with per-style diffing (package element)
//   - buffer: GPU vertex buffers with fast paths (package buffer)
//
// # Shared Types
//
// This package holds the value types every layer shares: [RGBA], [Matrix],
// [Point], the [Renderer] capability bitmask, the observable [Property],
// the paint sources ([ColorProperty], [PaintProperty], [LinearGradient],
// [RadialGradient], [Pattern]) and [PaintObserver], which binds a paint
// source to a single dirty callback.
//
// # Threading
//
// Everything is single-threaded and synchronous. Mutations fan out to
// drawables on the calling goroutine; writes happen inside the next update
// pass driven by the host frame loop.
//
// # Logging
//
// scenery logs through [log/slog] and is silent by default. Call
// [SetLogger] to enable output for this package and all sub-packages.
package scenery
