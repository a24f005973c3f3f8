// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package element is the positioned-element variant: every node becomes an
// absolutely positioned box styled with CSS properties, the way a document
// object model displays it.
//
// Style writes are diffed against per-property shadows. Writes to
// properties that affect layout are counted separately as reflows, since
// those are the expensive ones on a real document.
//
// Importing the package registers element drawables for rectangles,
// circles, text and images.
package element
