// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package markup is the retained vector-markup (SVG) variant.
//
// Each drawable owns one element in its block's [Document] and keeps a
// shadow of every attribute value it applied. An update writes an
// attribute only when the newly computed value differs from the shadow, so
// unchanged attributes cost nothing, while a value removed in one pass and
// restored in the next is written again.
//
// Gradients and patterns live in the document's defs section and are
// shared by reference count between drawables of the same block.
//
// Importing the package registers markup drawables for rectangles,
// circles, lines, text and images.
package markup
