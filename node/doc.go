// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package node provides the node surface that drawables consume: attribute
// getters, change notification keyed by attribute category, and the
// renderer capability mask of each node.
//
// Geometry, bounds and the scene tree itself live elsewhere; the nodes here
// carry only the attributes drawables read. Every setter that changes a
// value notifies all observers synchronously with the affected categories.
package node
