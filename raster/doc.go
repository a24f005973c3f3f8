// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster is the immediate-mode raster variant.
//
// Raster drawables are stateless: their Update only clears dirty bits. When
// any member of a [Block] was pending, the block clears its [Surface] and
// repaints every member from the nodes' live state, so pixels change only
// at update passes.
//
// Paths are filled with golang.org/x/image/vector; images and text are
// drawn through an affine transform with golang.org/x/image/draw. Text
// uses the Go Regular font at any size; the font family is not consulted.
//
// Importing the package registers raster drawables for rectangles,
// circles, lines, text and images.
package raster
