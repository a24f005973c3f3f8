// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package buffer is the GPU-buffer variant.
//
// A Block owns one vertex array and one transform array. Each drawable
// tessellates its node into a region of the vertex array and owns one
// transform slot. Vertices are stored in local coordinates as seven floats
// (x, y, r, g, b, a, slot); a slot holds the drawable's transform-to-root
// as two rows of four floats (a, b, c, 0, d, e, f, 0), so a transform
// change rewrites eight floats and a color change rewrites only the color
// components of the affected vertices.
//
// The arrays are handed to a Target on Draw. RecordingTarget keeps them in
// memory; HALTarget uploads them to a wgpu HAL device.
//
// Importing the package registers buffer drawables for rectangles,
// circles and lines.
package buffer
