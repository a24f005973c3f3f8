// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import "errors"

var (
	// ErrUnsupportedRenderer is returned when no renderer variant can
	// display a node under the given hints. It is a configuration error and
	// is not retried.
	ErrUnsupportedRenderer = errors.New("drawable: unsupported renderer")

	// ErrInstanceDisposed is returned by operations on a disposed instance.
	ErrInstanceDisposed = errors.New("drawable: instance disposed")

	// ErrInvalidConfig is returned for a malformed retention policy.
	ErrInvalidConfig = errors.New("drawable: invalid config")
)
